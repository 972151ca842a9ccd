package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "campusconnect_session"
	SessionHeader = "X-Session-ID"

	sessionContextKey = "session_id"
)

// CookieOptions sets the session cookie attributes. A frontend served from
// another origin needs SameSite None, which browsers accept only on
// Secure cookies.
type CookieOptions struct {
	SameSite http.SameSite
	Secure   bool
}

// NewCookieOptions maps the configured SameSite name (lax, strict, none)
// to cookie options. Unknown names fall back to lax. None implies Secure.
func NewCookieOptions(sameSite string, secure bool) CookieOptions {
	opts := CookieOptions{SameSite: http.SameSiteLaxMode, Secure: secure}
	switch strings.ToLower(sameSite) {
	case "strict":
		opts.SameSite = http.SameSiteStrictMode
	case "none":
		opts.SameSite = http.SameSiteNoneMode
		opts.Secure = true
	}
	return opts
}

// Session attaches a session token to every request. It is taken from the
// session header or cookie; a new one is issued when neither is valid.
// The cookie has no Max-Age so it ends with the browser session.
func Session(opts CookieOptions) gin.HandlerFunc {
	if opts.SameSite == 0 {
		opts.SameSite = http.SameSiteLaxMode
	}
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.SetSameSite(opts.SameSite)
			c.SetCookie(SessionCookie, id, 0, "/", "", opts.Secure, true)
		}

		c.Header(SessionHeader, id)
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

// SessionID returns the request's session token.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
