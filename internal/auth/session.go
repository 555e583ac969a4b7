package auth

import (
	"net/http"
	"time"

	"citylegends/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie carrying the signed user id.
const CookieName = "cl_session"

const sessionKey = "session"

// Session is the per-request view of the session cookie. A zero UserID means
// the request is anonymous.
type Session struct {
	UserID string
}

// Authenticated reports whether the session is bound to a user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

// Sessions issues and reads session cookies.
type Sessions struct {
	secret string
	ttl    time.Duration
	secure bool
}

// NewSessions creates a session manager signing cookies with secret.
func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{secret: secret, ttl: ttl, secure: secure}
}

// Middleware decodes the session cookie into an explicit *Session stored on
// the gin context. Missing, tampered or expired cookies yield an anonymous
// session instead of failing the request.
func (m *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := &Session{}
		if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
			if userID, err := jwt.ParseToken(raw, m.secret); err == nil {
				s.UserID = userID
			}
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// Bind attaches userID to the session and writes a fresh cookie.
func (m *Sessions) Bind(c *gin.Context, userID string) error {
	token, err := jwt.GenerateToken(userID, m.secret, m.ttl)
	if err != nil {
		return err
	}
	From(c).UserID = userID
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// Clear drops the user from the session and expires the cookie.
func (m *Sessions) Clear(c *gin.Context) {
	From(c).UserID = ""
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// From returns the session of the current request. Handlers mounted without
// the middleware get a detached anonymous session.
func From(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := &Session{}
	c.Set(sessionKey, s)
	return s
}
