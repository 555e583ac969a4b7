// Package mockpages is a tiny page-flow double used by browser tests:
// home, sign in, lobby, room and play screens linked by form posts and
// redirects. Nothing is authenticated or persisted.
package mockpages

import (
	"strconv"
	"sync"
)

// Room is a placeholder room; only its id matters to the flow.
type Room struct {
	ID string
}

// Store keeps rooms in creation order.
type Store struct {
	mu    sync.Mutex
	order []string
	rooms map[string]Room
}

func NewStore() *Store {
	return &Store{rooms: make(map[string]Room)}
}

// Create adds a room whose id is the room count plus one.
func (s *Store) Create() Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := strconv.Itoa(len(s.rooms) + 1)
	s.put(id)
	return s.rooms[id]
}

// Ensure returns the room with id, creating it if missing.
func (s *Store) Ensure(id string) Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.rooms[id]; ok {
		return r
	}
	s.put(id)
	return s.rooms[id]
}

// Get returns the room with id, or an unsaved placeholder.
func (s *Store) Get(id string) Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.rooms[id]; ok {
		return r
	}
	return Room{ID: id}
}

func (s *Store) List() []Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Room, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rooms[id])
	}
	return out
}

func (s *Store) put(id string) {
	if _, ok := s.rooms[id]; !ok {
		s.order = append(s.order, id)
	}
	s.rooms[id] = Room{ID: id}
}
