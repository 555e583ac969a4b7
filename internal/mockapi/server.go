package mockapi

import (
	"net/http"
	"strings"

	"citylegends/backend/internal/httpx"
	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/mw"

	"github.com/gin-gonic/gin"
)

// Demo account returned by every successful mock login.
const (
	DemoUserID   = "u_demo"
	DemoNickname = "DemoPlayer"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// Server serves the mock API out of a Store.
type Server struct {
	store     *Store
	wsBaseURL string
}

func NewServer(store *Store, wsBaseURL string) *Server {
	return &Server{store: store, wsBaseURL: wsBaseURL}
}

// Router mounts the mock routes. The paths match the persistent API.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw.RequestLogger())
	r.Use(mw.CORS("*"))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.POST("/auth/login", s.login)
	r.POST("/auth/register", s.register)
	r.POST("/auth/reset", s.reset)

	r.GET("/rooms", s.listRooms)
	r.POST("/rooms", s.createRoom)
	r.POST("/rooms/:id/join", s.joinRoom)

	r.GET("/api/chat/:roomId", s.listChat)
	r.POST("/api/chat/:roomId", s.postChat)
	return r
}

func (s *Server) login(c *gin.Context) {
	in := httpx.Bind[loginInput](c)
	email := strings.TrimSpace(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		httpx.Error(c, &lobby.Error{
			Code:    lobby.CodeValidation,
			Message: lobby.MsgLoginRequired,
			Details: lobby.Details{"email": lobby.FieldRequired, "password": lobby.FieldRequired},
		})
		return
	}

	nickname := in.Nickname
	if nickname == "" {
		nickname = DemoNickname
	}
	c.JSON(http.StatusOK, lobby.AuthResponse{
		OK:      true,
		Message: lobby.MsgLoggedIn,
		Token:   lobby.DevToken,
		User: lobby.UserView{
			ID:       DemoUserID,
			Nickname: nickname,
			Email:    email,
			Stats:    lobby.Stats{MatchesPlayed: 10, Wins: 6},
		},
	})
}

func (s *Server) register(c *gin.Context) {
	in := httpx.Bind[lobby.RegisterInput](c)
	nickname := strings.TrimSpace(in.Nickname)
	email := strings.TrimSpace(in.Email)

	details := lobby.Details{}
	lobby.CheckNickname(nickname, details)
	if email == "" {
		details.Set("email", lobby.FieldRequired)
	}
	if strings.TrimSpace(in.Password) == "" {
		details.Set("password", lobby.FieldRequired)
	}
	if err := lobby.Validation(lobby.MsgRegisterInvalid, details); err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, lobby.AuthResponse{
		OK:      true,
		Message: lobby.MsgRegistered,
		Token:   lobby.DevToken,
		User:    lobby.UserView{ID: lobby.NewMockUserID(), Nickname: nickname, Email: email},
	})
}

func (s *Server) reset(c *gin.Context) {
	in := httpx.Bind[lobby.ResetInput](c)
	if strings.TrimSpace(in.Email) == "" {
		httpx.Error(c, lobby.Validation(lobby.MsgEmailRequired, lobby.Details{"email": lobby.FieldRequired}))
		return
	}
	c.JSON(http.StatusOK, lobby.MessageResponse{OK: true, Message: lobby.MsgResetSent})
}

func (s *Server) listRooms(c *gin.Context) {
	c.JSON(http.StatusOK, lobby.RoomsResponse{Rooms: s.store.Rooms(c.Query("mode"), c.Query("access"))})
}

func (s *Server) createRoom(c *gin.Context) {
	in := httpx.Bind[lobby.CreateRoomInput](c)
	req := in.RoomRequest()
	if err := lobby.Validation(lobby.MsgRoomInvalid, req.Check()); err != nil {
		httpx.Error(c, err)
		return
	}

	room := s.store.CreateRoom(req)
	c.JSON(http.StatusCreated, lobby.CreateRoomResponse{
		OK:         true,
		Room:       room,
		InviteCode: "CL-" + room.ID,
	})
}

func (s *Server) joinRoom(c *gin.Context) {
	in := httpx.Bind[lobby.JoinRoomInput](c)
	id := c.Param("id")

	room, err := s.store.Join(id, strings.TrimSpace(in.Password))
	if err != nil {
		httpx.Error(c, err)
		return
	}

	playerID := lobby.NewPlayerID()
	c.JSON(http.StatusOK, lobby.JoinRoomResponse{
		OK:       true,
		Room:     room,
		PlayerID: playerID,
		WSURL:    lobby.MatchURL(s.wsBaseURL, id, playerID),
	})
}

func (s *Server) listChat(c *gin.Context) {
	c.JSON(http.StatusOK, lobby.ChatListResponse{Messages: s.store.Messages(c.Param("roomId"), c.Query("sinceId"))})
}

func (s *Server) postChat(c *gin.Context) {
	in := httpx.Bind[lobby.ChatPostInput](c)
	text := strings.TrimSpace(in.Text)
	if text == "" {
		httpx.Error(c, lobby.Validation(lobby.MsgTextRequired, lobby.Details{"text": lobby.FieldRequired}))
		return
	}

	msg := s.store.Post(c.Param("roomId"), lobby.Author(in.Author), text)
	c.JSON(http.StatusCreated, lobby.ChatPostResponse{Message: msg})
}
