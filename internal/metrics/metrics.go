package metrics

import (
	"errors"
	"strconv"
	"time"

	"citylegends/backend/internal/lobby"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RegistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "citylegends_registrations_total",
		Help: "Total number of accounts created",
	})
	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citylegends_logins_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"result"})
	RoomsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citylegends_rooms_created_total",
		Help: "Total number of rooms created",
	}, []string{"mode", "access"})
	RoomJoinsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "citylegends_room_joins_total",
		Help: "Total number of room join attempts by outcome",
	}, []string{"result"})
	ChatMessagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "citylegends_chat_messages_total",
		Help: "Total number of chat messages posted",
	})
	HttpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
	HttpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(
		RegistrationsTotal, LoginsTotal, RoomsCreatedTotal, RoomJoinsTotal, ChatMessagesTotal,
		HttpRequestsTotal, HttpRequestDuration,
	)
}

// Outcome turns an operation error into a result label: "ok" for nil, the
// lobby error code for domain failures and "error" for anything else.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var lerr *lobby.Error
	if errors.As(err, &lerr) {
		return lerr.Code
	}
	return "error"
}

// GinMiddleware records request count and latency per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := prometheus.Labels{"method": c.Request.Method, "path": path, "status": status}
		HttpRequestsTotal.With(labels).Inc()
		HttpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}
