package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/models"

	"gorm.io/gorm"
)

// ChatService stores and replays per-room chat history.
type ChatService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewChatService creates a ChatService backed by db.
func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db, now: utcNow}
}

// List returns the room's messages oldest first. With sinceID set only the
// messages after it are returned; an unknown sinceID returns everything.
// Unknown or malformed room ids yield an empty history.
func (s *ChatService) List(ctx context.Context, roomID, sinceID string) ([]models.ChatMessage, error) {
	id, ok := parseRoomID(roomID)
	if !ok {
		return []models.ChatMessage{}, nil
	}
	exists, err := s.roomExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []models.ChatMessage{}, nil
	}

	messages := []models.ChatMessage{}
	err = s.db.WithContext(ctx).
		Where("room_id = ?", id).
		Order("created_at ASC").Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list chat of room %d: %w", id, err)
	}

	return lobby.SliceAfter(messages, sinceID, func(m models.ChatMessage) string { return m.ID }), nil
}

// Post appends a message to the room's chat.
func (s *ChatService) Post(ctx context.Context, roomID, text, author string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, lobby.Validation(lobby.MsgTextRequired, lobby.Details{"text": lobby.FieldRequired})
	}

	id, ok := parseRoomID(roomID)
	if !ok {
		return nil, lobby.ErrRoomNotFound
	}
	exists, err := s.roomExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, lobby.ErrRoomNotFound
	}

	msg, err := models.NewChatMessage(id, lobby.Author(author), text, s.now())
	if err != nil {
		return nil, fmt.Errorf("new chat message: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("create chat message: %w", err)
	}
	return &msg, nil
}

func (s *ChatService) roomExists(ctx context.Context, id uint) (bool, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Select("id").First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find room %d: %w", id, err)
	}
	return true, nil
}
