package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"citylegends/backend/internal/lobby"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := map[string]int{
		lobby.CodeValidation:         http.StatusBadRequest,
		lobby.CodeInvalidCredentials: http.StatusUnauthorized,
		lobby.CodeUnauthorized:       http.StatusUnauthorized,
		lobby.CodeForbidden:          http.StatusForbidden,
		lobby.CodeRoomFull:           http.StatusForbidden,
		lobby.CodeNotFound:           http.StatusNotFound,
		lobby.CodeTooManyRequests:    http.StatusTooManyRequests,
		lobby.CodeInternal:           http.StatusInternalServerError,
		"something_else":             http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, StatusFor(code), code)
	}
}

func serveError(err error) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { Error(c, err) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestError_Envelope(t *testing.T) {
	err := lobby.Validation(lobby.MsgRoomInvalid, lobby.Details{"name": lobby.FieldRequired})
	w := serveError(err)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, lobby.CodeValidation, body["code"])
	assert.Equal(t, map[string]any{"name": "required"}, body["details"])
}

func TestError_OmitsEmptyDetails(t *testing.T) {
	w := serveError(lobby.ErrRoomFull)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}

func TestError_UnknownErrorIsInternal(t *testing.T) {
	w := serveError(errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), lobby.CodeInternal)
	assert.NotContains(t, w.Body.String(), "db down")
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestBind(t *testing.T) {
	cases := []struct {
		body string
		want sample
	}{
		{`{"name":"a","count":2}`, sample{Name: "a", Count: 2}},
		{``, sample{}},
		{`not json`, sample{}},
		{`{"name":"a","count":"two"}`, sample{Name: "a"}},
		{`{"name":7,"count":3}`, sample{Count: 3}},
		{`null`, sample{}},
		{`[1,2]`, sample{}},
	}
	for _, tc := range cases {
		var got sample
		r := gin.New()
		r.POST("/x", func(c *gin.Context) { got = Bind[sample](c) })
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, tc.want, got, tc.body)
	}
}
