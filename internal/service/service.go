// Package service implements the lobby operations on top of gorm. Every
// caller-visible failure is a *lobby.Error; anything else is an unexpected
// store error.
package service

import (
	"strconv"
	"strings"
	"time"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

// parseRoomID converts a path room id into a primary key. Surrounding
// whitespace and a single leading plus sign are accepted.
func parseRoomID(raw string) (uint, bool) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "+")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
