package lobby

import "strings"

// Error codes surfaced in the {ok:false, code, message, details} envelope.
const (
	CodeValidation         = "validation_error"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeRoomFull           = "room_full"
	CodeNotFound           = "not_found"
	CodeTooManyRequests    = "too_many_requests"
	CodeInternal           = "internal_error"
)

// Per-field detail codes.
const (
	FieldRequired     = "required"
	FieldTooLong      = "too_long"
	FieldTooShort     = "too_short"
	FieldInvalid      = "invalid"
	FieldAlreadyInUse = "already_in_use"
)

// Details maps a request field name to a detail code.
type Details map[string]string

// Set records code for field unless the field already carries one. The first
// problem found for a field wins.
func (d Details) Set(field, code string) {
	if _, ok := d[field]; ok {
		return
	}
	d[field] = code
}

// Error is a terminal, caller-visible failure of a lobby operation.
type Error struct {
	Code    string
	Message string
	Details Details
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return e.Code + ": " + e.Message
	}
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteString(": ")
	b.WriteString(e.Message)
	for field, code := range e.Details {
		b.WriteString(" ")
		b.WriteString(field)
		b.WriteString("=")
		b.WriteString(code)
	}
	return b.String()
}

// Validation wraps aggregated field problems. It returns nil when details is
// empty so callers can write `if err := Validation(...); err != nil`.
func Validation(message string, details Details) error {
	if len(details) == 0 {
		return nil
	}
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

var (
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials, Message: "Невірні дані входу."}
	ErrUnauthorized       = &Error{Code: CodeUnauthorized, Message: "Потрібно увійти в акаунт."}
	ErrRoomNotFound       = &Error{Code: CodeNotFound, Message: "Кімнату не знайдено."}
	ErrWrongRoomPassword  = &Error{Code: CodeForbidden, Message: "Невірний пароль кімнати."}
	ErrRoomFull           = &Error{Code: CodeRoomFull, Message: "Кімната заповнена."}
)
