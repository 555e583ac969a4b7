package lobby

import (
	"strings"
	"unicode/utf8"
)

// Room modes and access levels.
const (
	ModeQuick     = "quick"
	ModeClassic   = "classic"
	AccessPublic  = "public"
	AccessPrivate = "private"

	StatusWaiting = "waiting"
	DefaultPingMs = 42

	MaxNicknameLen    = 16
	MinRoomPassword   = 4
	MaxAuthorLen      = 64
	DefaultAuthor     = "Гравець"
	DefaultMaxPlayers = 2
)

// Validation messages for the aggregated error envelope.
const (
	MsgRegisterInvalid = "Помилка валідації полів реєстрації."
	MsgLoginRequired   = "Email та пароль обов'язкові."
	MsgEmailRequired   = "Емейл обов'язковий."
	MsgNicknameInvalid = "Помилка валідації ніку."
	MsgRoomInvalid     = "Помилка валідації параметрів кімнати."
	MsgTextRequired    = "Текст повідомлення обов'язковий."
)

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckNickname validates a trimmed nickname and records the first problem.
func CheckNickname(nickname string, details Details) {
	switch {
	case nickname == "":
		details.Set("nickname", FieldRequired)
	case utf8.RuneCountInString(nickname) > MaxNicknameLen:
		details.Set("nickname", FieldTooLong)
	}
}

// Registration is a trimmed registration request.
type Registration struct {
	Nickname string
	Email    string
	Password string
}

// NewRegistration trims all fields and normalizes the email.
func NewRegistration(nickname, email, password string) Registration {
	return Registration{
		Nickname: strings.TrimSpace(nickname),
		Email:    NormalizeEmail(email),
		Password: strings.TrimSpace(password),
	}
}

// Check returns the field-format problems of the registration. Uniqueness is
// the store's business and is layered on top by the caller.
func (r Registration) Check() Details {
	details := Details{}
	CheckNickname(r.Nickname, details)
	if r.Email == "" {
		details.Set("email", FieldRequired)
	}
	if r.Password == "" {
		details.Set("password", FieldRequired)
	}
	return details
}

// RoomRequest is the raw create-room input after defaults are applied.
type RoomRequest struct {
	Name       string
	Mode       string
	MaxPlayers int
	Access     string
	Password   string
}

// NewRoomRequest applies the create-room defaults: missing mode is quick,
// missing or zero maxPlayers is 2, missing access is public. The password is
// only kept for private rooms.
func NewRoomRequest(name, mode string, maxPlayers int, access, password string) RoomRequest {
	if mode == "" {
		mode = ModeQuick
	}
	if maxPlayers == 0 {
		maxPlayers = DefaultMaxPlayers
	}
	if access == "" {
		access = AccessPublic
	}
	req := RoomRequest{
		Name:       strings.TrimSpace(name),
		Mode:       strings.TrimSpace(mode),
		MaxPlayers: maxPlayers,
		Access:     strings.TrimSpace(access),
	}
	if req.Access == AccessPrivate {
		req.Password = strings.TrimSpace(password)
	}
	return req
}

// Check aggregates every field problem of the request.
func (r RoomRequest) Check() Details {
	details := Details{}
	if r.Name == "" {
		details.Set("name", FieldRequired)
	}
	if r.Mode != ModeQuick && r.Mode != ModeClassic {
		details.Set("mode", FieldInvalid)
	}
	if r.MaxPlayers != 2 && r.MaxPlayers != 4 {
		details.Set("maxPlayers", FieldInvalid)
	}
	if r.Access != AccessPublic && r.Access != AccessPrivate {
		details.Set("access", FieldInvalid)
	}
	if r.Access == AccessPrivate && utf8.RuneCountInString(r.Password) < MinRoomPassword {
		details.Set("password", FieldTooShort)
	}
	return details
}

// TurnDuration returns the turn length in seconds for a mode.
func TurnDuration(mode string) int {
	if mode == ModeClassic {
		return 45
	}
	return 30
}

// Author returns the trimmed author name, the default placeholder when blank,
// cut to MaxAuthorLen characters.
func Author(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return DefaultAuthor
	}
	if utf8.RuneCountInString(author) > MaxAuthorLen {
		author = string([]rune(author)[:MaxAuthorLen])
	}
	return author
}
