// Package session manages the responsible_person cookie and flash
// messages.
//
// The responsible_person cookie is the entire "session": its value is
// the plaintext manager name, unsigned and without an explicit expiry.
// Anyone can forge it by setting the cookie directly; that weak
// contract is deliberate and documented. Flash messages use the
// gin-contrib/sessions cookie store instead, which is signed with a
// per-process key.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the pseudo-session cookie holding the manager name.
	CookieName = "responsible_person"

	flashKey = "FLASH"
)

// SetResponsiblePerson issues the session cookie for the given manager
// name. MaxAge 0 leaves the expiry to the browser session.
func SetResponsiblePerson(c *gin.Context, name string) {
	c.SetCookie(CookieName, name, 0, "/", "", false, false)
}

// GetResponsiblePerson returns the manager name from the cookie, or ""
// when no cookie is present.
func GetResponsiblePerson(c *gin.Context) string {
	name, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return name
}

// IsLoggedIn reports whether a responsible_person cookie is set.
func IsLoggedIn(c *gin.Context) bool {
	return GetResponsiblePerson(c) != ""
}

// ClearResponsiblePerson expires the session cookie immediately.
func ClearResponsiblePerson(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, false)
}

// SetFlash stores a one-shot message shown on the next rendered page.
func SetFlash(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.Set(flashKey, msg)
	_ = s.Save()
}

// TakeFlash returns the pending flash message, clearing it.
func TakeFlash(c *gin.Context) string {
	s := sessions.Default(c)
	obj := s.Get(flashKey)
	if obj == nil {
		return ""
	}
	s.Delete(flashKey)
	_ = s.Save()
	msg, _ := obj.(string)
	return msg
}
