package models

import "time"

// Room represents a game lobby players can join.
//
// CurrentPlayers is only ever incremented; there is no leave path.
type Room struct {
	ID              uint      `gorm:"primaryKey"`
	Name            string    `gorm:"size:255;not null"`
	Mode            string    `gorm:"size:16;not null"`
	MaxPlayers      int       `gorm:"not null"`
	CurrentPlayers  int       `gorm:"not null;default:0"`
	Access          string    `gorm:"size:16;not null;index"`
	HasPassword     bool      `gorm:"not null;default:false"`
	PasswordHash    *string   `gorm:"size:255"`
	Status          string    `gorm:"size:32;not null"`
	PingMs          int       `gorm:"not null"`
	InviteCode      *string   `gorm:"size:32;uniqueIndex"`
	TurnDurationSec int       `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime:false"`

	Messages []ChatMessage `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;"`
}

// IsFull reports whether the occupancy counter reached capacity.
func (r *Room) IsFull() bool {
	return r.CurrentPlayers >= r.MaxPlayers
}

// SetPasswordHash stores the hash and keeps HasPassword in sync with it.
func (r *Room) SetPasswordHash(hash string) {
	if hash == "" {
		r.PasswordHash = nil
		r.HasPassword = false
		return
	}
	r.PasswordHash = &hash
	r.HasPassword = true
}
