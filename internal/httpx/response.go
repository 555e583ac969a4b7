package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"citylegends/backend/internal/lobby"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const internalMessage = "Внутрішня помилка сервера."

// ErrorResponse is the envelope of every failed API call.
type ErrorResponse struct {
	OK      bool              `json:"ok" example:"false"`
	Code    string            `json:"code" example:"validation_error"`
	Message string            `json:"message" example:"Помилка валідації полів реєстрації."`
	Details map[string]string `json:"details,omitempty"`
}

// StatusFor maps an error code onto its HTTP status.
func StatusFor(code string) int {
	switch code {
	case lobby.CodeValidation:
		return http.StatusBadRequest
	case lobby.CodeInvalidCredentials, lobby.CodeUnauthorized:
		return http.StatusUnauthorized
	case lobby.CodeForbidden, lobby.CodeRoomFull:
		return http.StatusForbidden
	case lobby.CodeNotFound:
		return http.StatusNotFound
	case lobby.CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as an error envelope. Errors that are not *lobby.Error are
// logged and answered with internal_error.
func Error(c *gin.Context, err error) {
	var lerr *lobby.Error
	if !errors.As(err, &lerr) {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
		lerr = &lobby.Error{Code: lobby.CodeInternal, Message: internalMessage}
	}

	resp := ErrorResponse{Code: lerr.Code, Message: lerr.Message}
	if len(lerr.Details) > 0 {
		resp.Details = lerr.Details
	}
	c.AbortWithStatusJSON(StatusFor(lerr.Code), resp)
}

// Bind decodes the JSON body into a fresh T one key at a time. A missing or
// malformed body, or anything other than an object, yields the zero T; a key
// whose value has the wrong type is skipped and the other keys still apply.
func Bind[T any](c *gin.Context) T {
	var in T
	raw, err := c.GetRawData()
	if err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("ignoring unreadable body")
		return in
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return in
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("ignoring malformed body")
		return in
	}
	for key, value := range fields {
		one, err := json.Marshal(map[string]json.RawMessage{key: value})
		if err != nil {
			continue
		}
		if err := json.Unmarshal(one, &in); err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Str("field", key).Msg("ignoring mistyped field")
		}
	}
	return in
}
