package handler

import (
	"net/http"

	"citylegends/backend/internal/httpx"
	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/metrics"
	"citylegends/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves per-room chat history.
type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// List godoc
// @Summary      Chat history
// @Description  Messages oldest first. With sinceId only newer messages are returned; an unknown sinceId returns the whole history. Unknown rooms have no messages.
// @Tags         chat
// @Produce      json
// @Param        roomId  path   string  true   "Room ID"
// @Param        sinceId query  string  false  "Last message id the client has"
// @Success      200  {object}  lobby.ChatListResponse
// @Router       /api/chat/{roomId} [get]
func (h *ChatHandler) List(c *gin.Context) {
	msgs, err := h.chat.List(c.Request.Context(), c.Param("roomId"), c.Query("sinceId"))
	if err != nil {
		httpx.Error(c, err)
		return
	}

	views := make([]lobby.MessageView, 0, len(msgs))
	for i := range msgs {
		views = append(views, newMessageView(&msgs[i]))
	}
	c.JSON(http.StatusOK, lobby.ChatListResponse{Messages: views})
}

// Post godoc
// @Summary      Post a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        roomId path  string               true  "Room ID"
// @Param        input  body  lobby.ChatPostInput  true  "Message"
// @Success      201  {object}  lobby.ChatPostResponse
// @Failure      400  {object}  httpx.ErrorResponse "validation_error"
// @Failure      404  {object}  httpx.ErrorResponse "not_found"
// @Router       /api/chat/{roomId} [post]
func (h *ChatHandler) Post(c *gin.Context) {
	in := httpx.Bind[lobby.ChatPostInput](c)

	msg, err := h.chat.Post(c.Request.Context(), c.Param("roomId"), in.Text, in.Author)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	metrics.ChatMessagesTotal.Inc()

	c.JSON(http.StatusCreated, lobby.ChatPostResponse{Message: newMessageView(msg)})
}
