// Package web provides the café panel web server: routing, embedded
// templates, session middleware and background maintenance jobs.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/re912/cafe-managenent/config"
	"github.com/re912/cafe-managenent/logger"
	"github.com/re912/cafe-managenent/util/common"
	"github.com/re912/cafe-managenent/util/random"
	"github.com/re912/cafe-managenent/web/controller"
	"github.com/re912/cafe-managenent/web/job"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

//go:embed html/*
var htmlFS embed.FS

// Server is the café panel web server with its controllers and cron
// scheduler.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth    *controller.AuthController
	catalog *controller.CatalogController
	stock   *controller.StockController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware, templates, static
// upload serving and the controllers.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.MaxMultipartMemory = config.GetMaxUploadBytes()

	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	// Flash-message store; the key is per process, flashes do not
	// survive a restart.
	store := cookie.NewStore([]byte(random.Seq(32)))
	engine.Use(sessions.Sessions("cafe_flash", store))

	tpl, err := template.ParseFS(htmlFS, "html/*.html")
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)

	uploadFolder := config.GetUploadFolder()
	engine.Static("/"+uploadFolder, uploadFolder)

	g := engine.Group("/")
	s.auth = controller.NewAuthController(g)
	s.catalog = controller.NewCatalogController(g, config.DefaultUploadConfig())
	s.stock = controller.NewStockController(g, s.catalog.ProductService())

	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/product_list")
	})

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@hourly", job.NewCheckpointJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and the cron scheduler.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
