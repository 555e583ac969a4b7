package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Room list paging bounds.
const (
	DefaultRoomLimit = 20
	MaxRoomLimit     = 100
)

// RoomFilter narrows a room listing. Empty Mode or Access match everything.
type RoomFilter struct {
	Mode   string
	Access string
	Limit  int
	Offset int
}

func (f RoomFilter) clamped() RoomFilter {
	f.Limit = max(1, min(f.Limit, MaxRoomLimit))
	f.Offset = max(0, f.Offset)
	return f
}

// JoinResult is what a player receives after entering a room.
type JoinResult struct {
	Room     models.Room
	PlayerID string
	WSURL    string
}

// RoomService creates, lists and fills rooms.
type RoomService struct {
	db        *gorm.DB
	wsBaseURL string
	now       func() time.Time
	hashCost  int
}

// NewRoomService creates a RoomService. wsBaseURL prefixes the match URL
// handed out on join.
func NewRoomService(db *gorm.DB, wsBaseURL string) *RoomService {
	return &RoomService{db: db, wsBaseURL: wsBaseURL, now: utcNow, hashCost: bcrypt.DefaultCost}
}

// List returns rooms newest first. Limit is clamped to [1, MaxRoomLimit] and
// a negative offset is treated as zero.
func (s *RoomService) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	filter = filter.clamped()

	q := s.db.WithContext(ctx).Model(&models.Room{})
	if filter.Mode != "" {
		q = q.Where("mode = ?", filter.Mode)
	}
	if filter.Access != "" {
		q = q.Where("access = ?", filter.Access)
	}

	var rooms []models.Room
	err := q.Order("created_at DESC").Order("id DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// Create validates req and stores a waiting room with an invite code derived
// from its id.
func (s *RoomService) Create(ctx context.Context, req lobby.RoomRequest) (*models.Room, error) {
	if err := lobby.Validation(lobby.MsgRoomInvalid, req.Check()); err != nil {
		return nil, err
	}

	now := s.now()
	room := models.Room{
		Name:            req.Name,
		Mode:            req.Mode,
		MaxPlayers:      req.MaxPlayers,
		Access:          req.Access,
		Status:          lobby.StatusWaiting,
		PingMs:          lobby.DefaultPingMs,
		TurnDurationSec: lobby.TurnDuration(req.Mode),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash room password: %w", err)
		}
		room.SetPasswordHash(string(hash))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return fmt.Errorf("create room: %w", err)
		}
		code := lobby.InviteCode(room.ID)
		room.InviteCode = &code
		if err := tx.Model(&room).Update("invite_code", code).Error; err != nil {
			return fmt.Errorf("set invite code: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Join admits one player into the room addressed by roomID. The occupancy
// counter is read, checked and written back without locking, so concurrent
// joins may overshoot capacity.
func (s *RoomService) Join(ctx context.Context, roomID, password string) (*JoinResult, error) {
	id, ok := parseRoomID(roomID)
	if !ok {
		return nil, lobby.ErrRoomNotFound
	}

	var room models.Room
	err := s.db.WithContext(ctx).First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lobby.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find room %d: %w", id, err)
	}

	if room.Access == lobby.AccessPrivate && room.HasPassword {
		password = strings.TrimSpace(password)
		if room.PasswordHash == nil ||
			bcrypt.CompareHashAndPassword([]byte(*room.PasswordHash), []byte(password)) != nil {
			return nil, lobby.ErrWrongRoomPassword
		}
	}

	if room.IsFull() {
		return nil, lobby.ErrRoomFull
	}

	room.CurrentPlayers++
	room.UpdatedAt = s.now()
	err = s.db.WithContext(ctx).Model(&room).
		Updates(map[string]any{"current_players": room.CurrentPlayers, "updated_at": room.UpdatedAt}).Error
	if err != nil {
		return nil, fmt.Errorf("update room %d occupancy: %w", id, err)
	}

	playerID := lobby.NewPlayerID()
	return &JoinResult{
		Room:     room,
		PlayerID: playerID,
		WSURL:    lobby.MatchURL(s.wsBaseURL, fmt.Sprint(room.ID), playerID),
	}, nil
}
