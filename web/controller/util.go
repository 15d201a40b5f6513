// Package controller provides the HTTP handlers for the café panel:
// product catalog, stock ledger and staff login.
package controller

import (
	"net"
	"net/http"
	"strconv"

	"github.com/re912/cafe-managenent/config"
	"github.com/re912/cafe-managenent/logger"
	"github.com/re912/cafe-managenent/web/entity"
	"github.com/re912/cafe-managenent/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the client IP from proxy headers or the remote
// address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonMsg sends a JSON response with a message and error status.
func jsonMsg(c *gin.Context, msg string, err error) {
	m := entity.Msg{}
	if err == nil {
		m.Success = true
		m.Msg = msg
	} else {
		m.Success = false
		m.Msg = msg + " (" + err.Error() + ")"
		logger.Warning(msg+" failed: ", err)
	}
	c.JSON(http.StatusOK, m)
}

// html renders a template, injecting title, version, any pending flash
// message and the current responsible person.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["cur_ver"] = config.GetVersion()
	data["flash"] = session.TakeFlash(c)
	data["responsible_person"] = session.GetResponsiblePerson(c)
	c.HTML(http.StatusOK, name, data)
}

// paramInt parses a numeric path parameter; ok is false on garbage.
func paramInt(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}

// formInt reads an integer form field, coercing anything unparsable to
// zero the way the storage layer would.
func formInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.PostForm(name))
	return v
}

// formFloat reads a decimal form field with the same zero coercion.
func formFloat(c *gin.Context, name string) float64 {
	v, _ := strconv.ParseFloat(c.PostForm(name), 64)
	return v
}
