package handler

import (
	"net/http"

	"citylegends/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the server-side pages.
type PageHandler struct {
	sessions *auth.Sessions
}

func NewPageHandler(sessions *auth.Sessions) *PageHandler {
	return &PageHandler{sessions: sessions}
}

// Render returns a handler that renders a page which needs no user.
func (h *PageHandler) Render(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{"Title": title})
	}
}

// RenderUser returns a handler for a page bound to the logged-in user. It
// must be mounted behind auth.RequirePageUser.
func (h *PageHandler) RenderUser(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.PageUser(c)
		c.HTML(http.StatusOK, name, gin.H{"Title": title, "User": newUserView(user)})
	}
}

// Logout clears the session and sends the browser to the auth choice page.
func (h *PageHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/auth")
}
