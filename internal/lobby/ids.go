package lobby

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DevToken is the placeholder auth token handed out until real tokens exist.
const DevToken = "dev-token"

// InviteCode derives the public invite code of a room from its id.
func InviteCode(roomID uint) string {
	return "CL-" + strconv.FormatUint(uint64(roomID), 10)
}

// NewPlayerID returns an opaque per-join player id such as p_1a2b3c4d.
func NewPlayerID() string {
	return "p_" + shortHex()
}

// NewMockUserID returns an opaque user id for the in-memory API, u_1a2b3c4d.
func NewMockUserID() string {
	return "u_" + shortHex()
}

func shortHex() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}

// MatchURL builds the realtime endpoint a player connects to after joining.
// roomID is embedded exactly as the caller addressed the room.
func MatchURL(base, roomID, playerID string) string {
	return fmt.Sprintf("%s/ws/match/%s?token=%s&playerId=%s",
		strings.TrimRight(base, "/"), url.PathEscape(roomID), DevToken, url.QueryEscape(playerID))
}
