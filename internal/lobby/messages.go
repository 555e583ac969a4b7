package lobby

import "math"

// Request bodies. Every field is optional on the wire; a body that fails to
// decode is handled as an empty object.

type LoginInput struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"secret"`
}

type RegisterInput struct {
	Nickname string `json:"nickname" example:"Legend"`
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"secret"`
}

type ResetInput struct {
	Email string `json:"email" example:"a@x.com"`
}

type NicknameInput struct {
	Nickname string `json:"nickname" example:"Legend"`
}

// CreateRoomInput keeps maxPlayers loosely typed: a missing, null, false or
// empty value means the default, any other non-number is invalid.
type CreateRoomInput struct {
	Name       string `json:"name" example:"Room A"`
	Mode       string `json:"mode" example:"quick"`
	MaxPlayers any    `json:"maxPlayers" swaggertype:"integer" example:"2"`
	Access     string `json:"access" example:"public"`
	Password   string `json:"password,omitempty" example:"1234"`
}

// RoomRequest applies the create-room defaults to the decoded body.
func (in CreateRoomInput) RoomRequest() RoomRequest {
	return NewRoomRequest(in.Name, in.Mode, PlayerCount(in.MaxPlayers), in.Access, in.Password)
}

type JoinRoomInput struct {
	Password string `json:"password,omitempty" example:"1234"`
}

type ChatPostInput struct {
	Text   string `json:"text" example:"gl hf"`
	Author string `json:"author,omitempty" example:"Legend"`
}

// PlayerCount converts a decoded JSON maxPlayers value. Falsy values return 0
// so the default applies; values that are not whole numbers return -1.
func PlayerCount(v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case bool:
		if !n {
			return 0
		}
		return -1
	case string:
		if n == "" {
			return 0
		}
		return -1
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return -1
		}
		return int(n)
	default:
		return -1
	}
}

// Success bodies.

type AuthResponse struct {
	OK      bool     `json:"ok" example:"true"`
	Message string   `json:"message" example:"Успішний вхід. Welcome back!"`
	Token   string   `json:"token" example:"dev-token"`
	User    UserView `json:"user"`
}

type MessageResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Message string `json:"message" example:"Лист надіслано. Перевірте свою пошту."`
}

type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

type ProfileResponse struct {
	OK      bool     `json:"ok" example:"true"`
	Message string   `json:"message" example:"Зміни збережено."`
	User    UserView `json:"user"`
}

type RoomsResponse struct {
	Rooms []RoomView `json:"rooms"`
}

type CreateRoomResponse struct {
	OK         bool     `json:"ok" example:"true"`
	Room       RoomView `json:"room"`
	InviteCode string   `json:"inviteCode" example:"CL-1"`
}

type JoinRoomResponse struct {
	OK       bool     `json:"ok" example:"true"`
	Room     RoomView `json:"room"`
	PlayerID string   `json:"playerId" example:"p_1a2b3c4d"`
	WSURL    string   `json:"wsUrl" example:"ws://localhost:8081/ws/match/1?token=dev-token&playerId=p_1a2b3c4d"`
}

type ChatListResponse struct {
	Messages []MessageView `json:"messages"`
}

type ChatPostResponse struct {
	Message MessageView `json:"message"`
}

// Success messages.
const (
	MsgLoggedIn      = "Успішний вхід. Welcome back!"
	MsgRegistered    = "Акаунт створено. Лист підтвердження успішно надіслано."
	MsgResetSent     = "Лист надіслано. Перевірте свою пошту."
	MsgNicknameSaved = "Зміни збережено."
)
