package handler

import (
	"errors"
	"net/http"

	"citylegends/backend/internal/auth"
	"citylegends/backend/internal/httpx"
	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/metrics"
	"citylegends/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the account endpoints.
type AuthHandler struct {
	users    *service.AuthService
	sessions *auth.Sessions
}

func NewAuthHandler(users *service.AuthService, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Login godoc
// @Summary      Log in
// @Description  Checks email and password and binds the account to the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body lobby.LoginInput true "Credentials"
// @Success      200  {object}  lobby.AuthResponse
// @Failure      400  {object}  httpx.ErrorResponse "validation_error"
// @Failure      401  {object}  httpx.ErrorResponse "invalid_credentials"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	in := httpx.Bind[lobby.LoginInput](c)

	user, err := h.users.Login(c.Request.Context(), in.Email, in.Password)
	metrics.LoginsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		httpx.Error(c, err)
		return
	}
	if err := h.sessions.Bind(c, user.ID); err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, lobby.AuthResponse{
		OK:      true,
		Message: lobby.MsgLoggedIn,
		Token:   lobby.DevToken,
		User:    newUserView(user),
	})
}

// Register godoc
// @Summary      Register
// @Description  Creates an account and logs it in. All field problems are reported at once.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body lobby.RegisterInput true "Account"
// @Success      201  {object}  lobby.AuthResponse
// @Failure      400  {object}  httpx.ErrorResponse "validation_error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	in := httpx.Bind[lobby.RegisterInput](c)

	user, err := h.users.Register(c.Request.Context(), in.Nickname, in.Email, in.Password)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	metrics.RegistrationsTotal.Inc()
	if err := h.sessions.Bind(c, user.ID); err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, lobby.AuthResponse{
		OK:      true,
		Message: lobby.MsgRegistered,
		Token:   lobby.DevToken,
		User:    newUserView(user),
	})
}

// Reset godoc
// @Summary      Request a password reset
// @Description  Accepts any non-empty email. No mail is sent.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body lobby.ResetInput true "Email"
// @Success      200  {object}  lobby.MessageResponse
// @Failure      400  {object}  httpx.ErrorResponse "validation_error"
// @Router       /auth/reset [post]
func (h *AuthHandler) Reset(c *gin.Context) {
	in := httpx.Bind[lobby.ResetInput](c)

	if err := h.users.RequestReset(c.Request.Context(), in.Email); err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, lobby.MessageResponse{OK: true, Message: lobby.MsgResetSent})
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  lobby.OKResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, lobby.OKResponse{OK: true})
}

// UpdateNickname godoc
// @Summary      Change nickname
// @Description  Renames the logged-in account. A session whose account is gone is cleared.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        input body lobby.NicknameInput true "New nickname"
// @Success      200  {object}  lobby.ProfileResponse
// @Failure      400  {object}  httpx.ErrorResponse "validation_error"
// @Failure      401  {object}  httpx.ErrorResponse "unauthorized"
// @Router       /profile/nickname [post]
func (h *AuthHandler) UpdateNickname(c *gin.Context) {
	s := auth.From(c)
	if !s.Authenticated() {
		httpx.Error(c, lobby.ErrUnauthorized)
		return
	}
	in := httpx.Bind[lobby.NicknameInput](c)

	user, err := h.users.UpdateNickname(c.Request.Context(), s.UserID, in.Nickname)
	if err != nil {
		if errors.Is(err, lobby.ErrUnauthorized) {
			h.sessions.Clear(c)
		}
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, lobby.ProfileResponse{
		OK:      true,
		Message: lobby.MsgNicknameSaved,
		User:    newUserView(user),
	})
}
