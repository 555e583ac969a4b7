package lobby

import "time"

// TimeLayout renders UTC timestamps as ISO-8601 with microseconds and a Z suffix.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatTime renders t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Stats is the cumulative match record of a user.
type Stats struct {
	MatchesPlayed int `json:"matchesPlayed" example:"10"`
	Wins          int `json:"wins" example:"6"`
}

// UserView is the public shape of an account. It never carries the password.
type UserView struct {
	ID       string `json:"id" example:"3f0c5d1e-8f7e-4a55-9a4e-0f3c1b0e9d2a"`
	Nickname string `json:"nickname" example:"Legend"`
	Email    string `json:"email" example:"a@x.com"`
	Stats    Stats  `json:"stats"`
}

// RoomView is the public shape of a room: no password hash, no invite code.
type RoomView struct {
	ID             string `json:"id" example:"1"`
	Name           string `json:"name" example:"Quick demo #1"`
	Mode           string `json:"mode" example:"quick"`
	MaxPlayers     int    `json:"maxPlayers" example:"2"`
	CurrentPlayers int    `json:"currentPlayers" example:"0"`
	Access         string `json:"access" example:"public"`
	HasPassword    bool   `json:"hasPassword" example:"false"`
	Status         string `json:"status" example:"waiting"`
	PingMs         int    `json:"pingMs" example:"42"`
}

// MessageView is the public shape of a chat message.
type MessageView struct {
	ID        string `json:"id"`
	Author    string `json:"author" example:"Гравець"`
	Text      string `json:"text" example:"gl hf"`
	CreatedAt string `json:"createdAt" example:"2025-01-01T12:00:00.000000Z"`
}

// SliceAfter returns the items strictly after the first item whose id equals
// sinceID. An empty sinceID, or one that matches nothing, returns items as is.
func SliceAfter[T any](items []T, sinceID string, idOf func(T) string) []T {
	if sinceID == "" {
		return items
	}
	for i, item := range items {
		if idOf(item) == sinceID {
			return items[i+1:]
		}
	}
	return items
}
