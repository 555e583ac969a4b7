package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"citylegends/backend/internal/database/dbtest"
	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChatService(t *testing.T) (*ChatService, *gorm.DB, *clock, string) {
	t.Helper()
	db := dbtest.New(t)
	clk := newClock()

	room := models.Room{
		Name: "chat", Mode: lobby.ModeQuick, MaxPlayers: 2, Access: lobby.AccessPublic,
		Status: lobby.StatusWaiting, PingMs: lobby.DefaultPingMs, TurnDurationSec: 30,
		CreatedAt: clk.Now(), UpdatedAt: clk.Now(),
	}
	require.NoError(t, db.Create(&room).Error)

	s := NewChatService(db)
	s.now = clk.Now
	return s, db, clk, fmt.Sprint(room.ID)
}

func post(t *testing.T, s *ChatService, roomID, text string) *models.ChatMessage {
	t.Helper()
	msg, err := s.Post(context.Background(), roomID, text, "")
	require.NoError(t, err)
	return msg
}

func TestPost(t *testing.T) {
	s, _, clk, roomID := newChatService(t)

	msg, err := s.Post(context.Background(), roomID, "  gl hf ", "  ")
	require.NoError(t, err)
	assert.Equal(t, "gl hf", msg.Text)
	assert.Equal(t, lobby.DefaultAuthor, msg.Author)
	assert.Equal(t, clk.Now(), msg.CreatedAt)

	msg, err = s.Post(context.Background(), roomID, "hi", " Legend ")
	require.NoError(t, err)
	assert.Equal(t, "Legend", msg.Author)

	msg, err = s.Post(context.Background(), roomID, "hi", strings.Repeat("я", 70))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("я", lobby.MaxAuthorLen), msg.Author)
}

func TestPost_Errors(t *testing.T) {
	s, _, _, roomID := newChatService(t)
	ctx := context.Background()

	_, err := s.Post(ctx, roomID, "   ", "a")
	lerr := requireLobbyError(t, err, lobby.CodeValidation)
	assert.Equal(t, lobby.Details{"text": lobby.FieldRequired}, lerr.Details)

	_, err = s.Post(ctx, "999", "hi", "")
	requireLobbyError(t, err, lobby.CodeNotFound)

	_, err = s.Post(ctx, "abc", "hi", "")
	requireLobbyError(t, err, lobby.CodeNotFound)

	_, err = s.Post(ctx, "abc", "", "")
	requireLobbyError(t, err, lobby.CodeValidation)
}

func TestList_SinceID(t *testing.T) {
	s, _, clk, roomID := newChatService(t)
	ctx := context.Background()

	m1 := post(t, s, roomID, "one")
	clk.Advance(time.Millisecond)
	m2 := post(t, s, roomID, "two")
	m3 := post(t, s, roomID, "three")

	all, err := s.List(ctx, roomID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{m1.ID, m2.ID, m3.ID}, messageIDs(all))

	after, err := s.List(ctx, roomID, m1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{m2.ID, m3.ID}, messageIDs(after))

	last, err := s.List(ctx, roomID, m3.ID)
	require.NoError(t, err)
	assert.Empty(t, last)

	unknown, err := s.List(ctx, roomID, "no-such-id")
	require.NoError(t, err)
	assert.Equal(t, messageIDs(all), messageIDs(unknown))
}

func TestList_UnknownRoomIsEmpty(t *testing.T) {
	s, _, _, roomID := newChatService(t)
	post(t, s, roomID, "one")

	for _, id := range []string{"abc", "999"} {
		msgs, err := s.List(context.Background(), id, "")
		require.NoError(t, err)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
	}
}

func TestList_OnlyOwnRoom(t *testing.T) {
	s, db, clk, roomID := newChatService(t)

	other := models.Room{
		Name: "other", Mode: lobby.ModeQuick, MaxPlayers: 2, Access: lobby.AccessPublic,
		Status: lobby.StatusWaiting, CreatedAt: clk.Now(), UpdatedAt: clk.Now(),
	}
	require.NoError(t, db.Create(&other).Error)

	post(t, s, roomID, "mine")
	post(t, s, fmt.Sprint(other.ID), "theirs")

	msgs, err := s.List(context.Background(), roomID, "")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "mine", msgs[0].Text)
}

func messageIDs(msgs []models.ChatMessage) []string {
	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	return ids
}
