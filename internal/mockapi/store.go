// Package mockapi is an in-memory stand-in for the lobby API. It keeps the
// same routes and envelopes but no database: logins always succeed, rooms
// never fill up and chat accepts any room id.
package mockapi

import (
	"strconv"
	"sync"
	"time"

	"citylegends/backend/internal/lobby"

	"github.com/google/uuid"
)

type room struct {
	view     lobby.RoomView
	password string
}

// Store holds the demo rooms and chat history.
type Store struct {
	mu    sync.Mutex
	rooms []room
	chat  map[string][]lobby.MessageView
	now   func() time.Time
}

// NewStore returns a store seeded with the three demo rooms.
func NewStore() *Store {
	return &Store{
		rooms: []room{
			{view: lobby.RoomView{ID: "1", Name: "Quick demo #1", Mode: lobby.ModeQuick, MaxPlayers: 2, CurrentPlayers: 1,
				Access: lobby.AccessPublic, Status: lobby.StatusWaiting, PingMs: 32}},
			{view: lobby.RoomView{ID: "2", Name: "Classic lobby", Mode: lobby.ModeClassic, MaxPlayers: 4, CurrentPlayers: 3,
				Access: lobby.AccessPublic, Status: lobby.StatusWaiting, PingMs: 54}},
			{view: lobby.RoomView{ID: "3", Name: "Private test room", Mode: lobby.ModeQuick, MaxPlayers: 2, CurrentPlayers: 0,
				Access: lobby.AccessPrivate, HasPassword: true, Status: lobby.StatusWaiting, PingMs: 40}, password: "1234"},
		},
		chat: make(map[string][]lobby.MessageView),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Rooms returns the rooms matching mode and access in creation order. Empty
// filters match everything.
func (s *Store) Rooms(mode, access string) []lobby.RoomView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]lobby.RoomView, 0, len(s.rooms))
	for _, r := range s.rooms {
		if mode != "" && r.view.Mode != mode {
			continue
		}
		if access != "" && r.view.Access != access {
			continue
		}
		out = append(out, r.view)
	}
	return out
}

// CreateRoom stores a validated request. The id is the room count plus one.
func (s *Store) CreateRoom(req lobby.RoomRequest) lobby.RoomView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := lobby.RoomView{
		ID:          strconv.Itoa(len(s.rooms) + 1),
		Name:        req.Name,
		Mode:        req.Mode,
		MaxPlayers:  req.MaxPlayers,
		Access:      req.Access,
		HasPassword: req.Password != "",
		Status:      lobby.StatusWaiting,
		PingMs:      lobby.DefaultPingMs,
	}
	s.rooms = append(s.rooms, room{view: view, password: req.Password})
	return view
}

// Join checks the room password in plain text. Occupancy is left untouched.
func (s *Store) Join(id, password string) (lobby.RoomView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.view.ID != id {
			continue
		}
		if r.view.Access == lobby.AccessPrivate && r.view.HasPassword && password != r.password {
			return lobby.RoomView{}, lobby.ErrWrongRoomPassword
		}
		return r.view, nil
	}
	return lobby.RoomView{}, lobby.ErrRoomNotFound
}

// Messages returns the chat of roomID after sinceID.
func (s *Store) Messages(roomID, sinceID string) []lobby.MessageView {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := lobby.SliceAfter(s.chat[roomID], sinceID, func(m lobby.MessageView) string { return m.ID })
	out := make([]lobby.MessageView, len(msgs))
	copy(out, msgs)
	return out
}

// Post appends a message to the chat of roomID. Any room id is accepted.
func (s *Store) Post(roomID, author, text string) lobby.MessageView {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := lobby.MessageView{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		CreatedAt: lobby.FormatTime(s.now()),
	}
	s.chat[roomID] = append(s.chat[roomID], msg)
	return msg
}
