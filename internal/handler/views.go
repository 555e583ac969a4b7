package handler

import (
	"strconv"

	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/models"
)

func newUserView(u *models.User) lobby.UserView {
	return lobby.UserView{
		ID:       u.ID,
		Nickname: u.Nickname,
		Email:    u.Email,
		Stats:    lobby.Stats{MatchesPlayed: u.MatchesPlayed, Wins: u.Wins},
	}
}

func newRoomView(r *models.Room) lobby.RoomView {
	return lobby.RoomView{
		ID:             strconv.FormatUint(uint64(r.ID), 10),
		Name:           r.Name,
		Mode:           r.Mode,
		MaxPlayers:     r.MaxPlayers,
		CurrentPlayers: r.CurrentPlayers,
		Access:         r.Access,
		HasPassword:    r.HasPassword,
		Status:         r.Status,
		PingMs:         r.PingMs,
	}
}

func newMessageView(m *models.ChatMessage) lobby.MessageView {
	return lobby.MessageView{
		ID:        m.ID,
		Author:    m.Author,
		Text:      m.Text,
		CreatedAt: lobby.FormatTime(m.CreatedAt),
	}
}
