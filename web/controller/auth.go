package controller

import (
	"net/http"

	"github.com/re912/cafe-managenent/logger"
	"github.com/re912/cafe-managenent/web/service"
	"github.com/re912/cafe-managenent/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request fields.
type LoginForm struct {
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

// RegisterForm represents the staff registration fields.
type RegisterForm struct {
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// AuthController handles login, logout and staff registration.
type AuthController struct {
	managerService service.ManagerService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
	g.GET("/register_staff", a.registerPage)
	g.POST("/register_staff", a.register)
}

func (a *AuthController) loginPage(c *gin.Context) {
	if session.IsLoggedIn(c) {
		c.Redirect(http.StatusFound, "/product_list")
		return
	}
	html(c, "login.html", "Login", nil)
}

// login validates credentials and issues the responsible_person cookie.
// The cookie value is the plaintext manager name; see web/session.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Name == "" || form.Password == "" {
		session.SetFlash(c, "name and password are required")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	manager := a.managerService.CheckManager(form.Name, form.Password)
	if manager == nil {
		logger.Warningf("failed login for %q from %s", form.Name, getRemoteIp(c))
		session.SetFlash(c, "wrong name or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session.SetResponsiblePerson(c, manager.Name)
	logger.Infof("%s logged in from %s", manager.Name, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/product_list")
}

func (a *AuthController) logout(c *gin.Context) {
	if name := session.GetResponsiblePerson(c); name != "" {
		logger.Infof("%s logged out", name)
	}
	session.ClearResponsiblePerson(c)
	c.Redirect(http.StatusFound, "/login")
}

func (a *AuthController) registerPage(c *gin.Context) {
	html(c, "register_staff.html", "Register Staff", nil)
}

// register stores a new manager account. Duplicate names are accepted;
// lookups resolve to the earliest row.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil || form.Name == "" || form.Password == "" {
		session.SetFlash(c, "name and password are required")
		c.Redirect(http.StatusFound, "/register_staff")
		return
	}

	if err := a.managerService.AddManager(form.Name, form.Password, form.Role); err != nil {
		jsonMsg(c, "register staff", err)
		return
	}
	logger.Infof("registered staff %q with role %q", form.Name, form.Role)
	session.SetFlash(c, "registration complete, please log in")
	c.Redirect(http.StatusFound, "/login")
}
