package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a single line of a room's chat history. Messages are owned by
// their room and go away with it.
type ChatMessage struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	RoomID    uint      `gorm:"not null;index"`
	Author    string    `gorm:"size:64;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName pins the table name used by the chat endpoints.
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// NewChatMessage builds a message with a time-ordered id so that messages
// created within the same clock tick still sort in insertion order.
func NewChatMessage(roomID uint, author, text string, now time.Time) (ChatMessage, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return ChatMessage{}, err
	}
	return ChatMessage{
		ID:        id.String(),
		RoomID:    roomID,
		Author:    author,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
