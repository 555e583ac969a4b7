package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"citylegends/backend/internal/lobby"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, lobby.CodeRoomFull, Outcome(lobby.ErrRoomFull))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/rooms/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	labels := []string{http.MethodGet, "/rooms/:id", "418"}
	before := counterValue(t, HttpRequestsTotal.WithLabelValues(labels...))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms/7", nil))

	assert.Equal(t, before+1, counterValue(t, HttpRequestsTotal.WithLabelValues(labels...)))
}
