package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered player account.
type User struct {
	ID            string    `gorm:"type:varchar(36);primaryKey"`
	Nickname      string    `gorm:"size:16;uniqueIndex;not null"`
	Email         string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash  string    `gorm:"size:255;not null"`
	MatchesPlayed int       `gorm:"not null;default:0"`
	Wins          int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
}

// NewUser builds a user with a fresh id and both timestamps set to now.
func NewUser(nickname, email, passwordHash string, now time.Time) User {
	return User{
		ID:           uuid.NewString(),
		Nickname:     nickname,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Rename changes the nickname and stamps the update time.
func (u *User) Rename(nickname string, now time.Time) {
	u.Nickname = nickname
	u.UpdatedAt = now
}
