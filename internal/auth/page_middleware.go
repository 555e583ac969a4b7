package auth

import (
	"context"
	"errors"
	"net/http"

	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const userKey = "user"

// UserLoader resolves the user a session points at.
type UserLoader interface {
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// RequirePageUser guards server-rendered pages. It must be used AFTER
// Sessions.Middleware. Anonymous sessions, and sessions whose user no longer
// exists, are redirected to the auth choice page.
func RequirePageUser(users UserLoader, authPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := From(c)
		if !s.Authenticated() {
			c.Redirect(http.StatusFound, authPath)
			c.Abort()
			return
		}

		user, err := users.CurrentUser(c.Request.Context(), s.UserID)
		if err != nil {
			var lerr *lobby.Error
			if !errors.As(err, &lerr) {
				log.Error().Err(err).Str("user_id", s.UserID).Msg("load page user")
			}
			c.Redirect(http.StatusFound, authPath)
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// PageUser returns the user loaded by RequirePageUser.
func PageUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
