package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// queryInt reads an integer query parameter, falling back to def when it is
// missing or not an integer. Range clamping is left to the service.
func queryInt(c *gin.Context, key string, def int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
