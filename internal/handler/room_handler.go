package handler

import (
	"net/http"

	"citylegends/backend/internal/httpx"
	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/metrics"
	"citylegends/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RoomHandler serves room listing, creation and joining.
type RoomHandler struct {
	rooms *service.RoomService
}

func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// List godoc
// @Summary      List rooms
// @Description  Newest rooms first, optionally filtered by mode and access.
// @Tags         rooms
// @Produce      json
// @Param        mode   query  string  false  "quick or classic"
// @Param        access query  string  false  "public or private"
// @Param        limit  query  int     false  "Page size, 1..100" default(20)
// @Param        offset query  int     false  "Rows to skip" default(0)
// @Success      200  {object}  lobby.RoomsResponse
// @Router       /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	filter := service.RoomFilter{
		Mode:   c.Query("mode"),
		Access: c.Query("access"),
		Limit:  queryInt(c, "limit", service.DefaultRoomLimit),
		Offset: queryInt(c, "offset", 0),
	}

	rooms, err := h.rooms.List(c.Request.Context(), filter)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	views := make([]lobby.RoomView, 0, len(rooms))
	for i := range rooms {
		views = append(views, newRoomView(&rooms[i]))
	}
	c.JSON(http.StatusOK, lobby.RoomsResponse{Rooms: views})
}

// Create godoc
// @Summary      Create a room
// @Description  Missing mode, maxPlayers and access default to quick, 2 and public. Private rooms need a password of at least 4 characters.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        input body lobby.CreateRoomInput true "Room"
// @Success      201  {object}  lobby.CreateRoomResponse
// @Failure      400  {object}  httpx.ErrorResponse "validation_error"
// @Router       /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	in := httpx.Bind[lobby.CreateRoomInput](c)

	room, err := h.rooms.Create(c.Request.Context(), in.RoomRequest())
	if err != nil {
		httpx.Error(c, err)
		return
	}
	metrics.RoomsCreatedTotal.WithLabelValues(room.Mode, room.Access).Inc()

	c.JSON(http.StatusCreated, lobby.CreateRoomResponse{
		OK:         true,
		Room:       newRoomView(room),
		InviteCode: *room.InviteCode,
	})
}

// Join godoc
// @Summary      Join a room
// @Description  Takes a seat and returns the match endpoint for this player.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Room ID"
// @Param        input body  lobby.JoinRoomInput false "Room password"
// @Success      200  {object}  lobby.JoinRoomResponse
// @Failure      403  {object}  httpx.ErrorResponse "forbidden or room_full"
// @Failure      404  {object}  httpx.ErrorResponse "not_found"
// @Router       /rooms/{id}/join [post]
func (h *RoomHandler) Join(c *gin.Context) {
	in := httpx.Bind[lobby.JoinRoomInput](c)

	res, err := h.rooms.Join(c.Request.Context(), c.Param("id"), in.Password)
	metrics.RoomJoinsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, lobby.JoinRoomResponse{
		OK:       true,
		Room:     newRoomView(&res.Room),
		PlayerID: res.PlayerID,
		WSURL:    res.WSURL,
	})
}
