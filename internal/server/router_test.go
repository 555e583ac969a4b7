package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"citylegends/backend/internal/auth"
	"citylegends/backend/internal/config"
	"citylegends/backend/internal/database/dbtest"
	"citylegends/backend/internal/mw"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	return config.Config{
		Env:             "test",
		Port:            "0",
		SecretKey:       "test-secret",
		WSBaseURL:       "ws://localhost:8081",
		SessionTTLHours: 1,
		CORSOrigins:     "*",
		StaticDir:       "does-not-exist",
	}
}

// client carries the session cookie between requests like a browser would.
type client struct {
	t      *testing.T
	r      *gin.Engine
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	r, err := SetupRouter(testConfig(), dbtest.New(t), nil)
	require.NoError(t, err)
	return &client{t: t, r: r}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name != auth.CookieName {
			continue
		}
		if ck.MaxAge < 0 {
			c.cookie = nil
		} else {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) post(path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	b, err := json.Marshal(body)
	require.NoError(c.t, err)
	return c.do(http.MethodPost, path, string(b))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), w.Body.String())
	return m
}

func TestRateLimiterIsApplied(t *testing.T) {
	limiter := mw.NewRateLimiter(rate.Every(time.Hour), 1, time.Minute)
	defer limiter.Stop()
	r, err := SetupRouter(testConfig(), dbtest.New(t), limiter)
	require.NoError(t, err)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestHealthz(t *testing.T) {
	c := newClient(t)
	w := c.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterThenChangeNickname(t *testing.T) {
	c := newClient(t)

	w := c.post("/auth/register", gin.H{"nickname": "A", "email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "dev-token", body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "A", user["nickname"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, map[string]any{"matchesPlayed": 0.0, "wins": 0.0}, user["stats"])
	assert.NotContains(t, w.Body.String(), "password")
	require.NotNil(t, c.cookie)

	w = c.post("/profile/nickname", gin.H{"nickname": "B"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "B", decode(t, w)["user"].(map[string]any)["nickname"])
}

func TestRegister_Conflicts(t *testing.T) {
	c := newClient(t)
	require.Equal(t, http.StatusCreated, c.post("/auth/register", gin.H{"nickname": "A", "email": "a@x.com", "password": "p"}).Code)

	w := c.post("/auth/register", gin.H{"nickname": "A", "email": "A@X.com", "password": "p"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "validation_error", body["code"])
	assert.Equal(t, map[string]any{"nickname": "already_in_use", "email": "already_in_use"}, body["details"])
}

func TestRegister_MalformedBodyIsEmptyObject(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/auth/register", "{not json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"nickname": "required", "email": "required", "password": "required"}, decode(t, w)["details"])
}

func TestRegister_MistypedFieldKeepsTheOthers(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/auth/register", `{"nickname":"Legend","email":"a@x.com","password":12345678}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"password": "required"}, decode(t, w)["details"])
}

func TestLogin(t *testing.T) {
	c := newClient(t)
	require.Equal(t, http.StatusCreated, c.post("/auth/register", gin.H{"nickname": "A", "email": "a@x.com", "password": "p"}).Code)
	c.cookie = nil

	w := c.post("/auth/login", gin.H{"email": "A@X.COM ", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Успішний вхід. Welcome back!", decode(t, w)["message"])
	assert.NotNil(t, c.cookie)

	w = c.post("/auth/login", gin.H{"email": "a@x.com", "password": "q"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decode(t, w)["code"])

	w = c.post("/auth/login", gin.H{"email": "a@x.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"email": "required", "password": "required"}, decode(t, w)["details"])
}

func TestReset(t *testing.T) {
	c := newClient(t)

	w := c.post("/auth/reset", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"email": "required"}, decode(t, w)["details"])

	w = c.post("/auth/reset", gin.H{"email": "who@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ok"])
}

func TestNickname_RequiresSession(t *testing.T) {
	c := newClient(t)

	w := c.post("/profile/nickname", gin.H{"nickname": "B"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decode(t, w)["code"])
}

func TestLogout(t *testing.T) {
	c := newClient(t)
	require.Equal(t, http.StatusCreated, c.post("/auth/register", gin.H{"nickname": "A", "email": "a@x.com", "password": "p"}).Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/profile", "").Code)

	w := c.post("/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, c.cookie)

	assert.Equal(t, http.StatusUnauthorized, c.post("/profile/nickname", gin.H{"nickname": "B"}).Code)
}

func TestPages(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/", "/auth", "/authentication", "/registration", "/reset-password",
		"/faq", "/faq-about-cards", "/how-to-play", "/playable-window"} {
		w := c.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "City Legends", path)
	}

	for _, path := range []string{"/profile", "/settings"} {
		w := c.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/auth", w.Header().Get("Location"), path)
	}

	require.Equal(t, http.StatusCreated, c.post("/auth/register", gin.H{"nickname": "Legend", "email": "a@x.com", "password": "p"}).Code)
	w := c.do(http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Legend")
	w = c.do(http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Legend"`)

	w = c.do(http.MethodGet, "/auth/logout", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth", w.Header().Get("Location"))
	assert.Equal(t, http.StatusFound, c.do(http.MethodGet, "/profile", "").Code)
}

func TestStaticFallsBackToEmbedded(t *testing.T) {
	c := newClient(t)
	w := c.do(http.MethodGet, "/static/css/main.css", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPrivateRoomFlow(t *testing.T) {
	c := newClient(t)

	w := c.post("/rooms", gin.H{"name": "R", "access": "private", "password": "1234"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	room := body["room"].(map[string]any)
	id := room["id"].(string)
	assert.Equal(t, "CL-"+id, body["inviteCode"])
	assert.Equal(t, true, room["hasPassword"])
	assert.Equal(t, "quick", room["mode"])
	assert.Equal(t, 2.0, room["maxPlayers"])
	assert.Equal(t, 0.0, room["currentPlayers"])
	assert.Equal(t, "waiting", room["status"])
	assert.Equal(t, 42.0, room["pingMs"])
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = c.post("/rooms/"+id+"/join", gin.H{"password": "0000"})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", decode(t, w)["code"])

	w = c.post("/rooms/"+id+"/join", gin.H{"password": "1234"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.Equal(t, 1.0, body["room"].(map[string]any)["currentPlayers"])
	playerID := body["playerId"].(string)
	assert.Regexp(t, `^p_[0-9a-f]{8}$`, playerID)
	assert.Equal(t, fmt.Sprintf("ws://localhost:8081/ws/match/%s?token=dev-token&playerId=%s", id, playerID), body["wsUrl"])

	require.Equal(t, http.StatusOK, c.post("/rooms/"+id+"/join", gin.H{"password": "1234"}).Code)
	w = c.post("/rooms/"+id+"/join", gin.H{"password": "1234"})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "room_full", decode(t, w)["code"])
}

func TestCreateRoom_Validation(t *testing.T) {
	c := newClient(t)

	w := c.post("/rooms", gin.H{"mode": "blitz", "maxPlayers": 3, "access": "secret"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{
		"name": "required", "mode": "invalid", "maxPlayers": "invalid", "access": "invalid",
	}, decode(t, w)["details"])

	w = c.post("/rooms", gin.H{"name": "x", "access": "private", "password": "12"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"password": "too_short"}, decode(t, w)["details"])
}

func TestCreateRoom_PublicIgnoresMistypedPassword(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/rooms", `{"name":"Room","mode":"quick","maxPlayers":2,"access":"public","password":1234}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	room := decode(t, w)["room"].(map[string]any)
	assert.Equal(t, "Room", room["name"])
	assert.Equal(t, false, room["hasPassword"])
}

func TestJoin_NotFound(t *testing.T) {
	c := newClient(t)
	for _, id := range []string{"abc", "999"} {
		w := c.post("/rooms/"+id+"/join", nil)
		require.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, "not_found", decode(t, w)["code"])
	}
}

func TestJoin_PlusSignedID(t *testing.T) {
	c := newClient(t)
	w := c.post("/rooms", gin.H{"name": "R"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode(t, w)["room"].(map[string]any)["id"].(string)

	w = c.post("/rooms/+"+id+"/join", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, id, body["room"].(map[string]any)["id"])
	assert.Contains(t, body["wsUrl"], "/ws/match/"+id+"?")
}

func TestListRooms_Paging(t *testing.T) {
	c := newClient(t)
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusCreated, c.post("/rooms", gin.H{"name": fmt.Sprintf("r%d", i)}).Code)
	}
	require.Equal(t, http.StatusCreated, c.post("/rooms", gin.H{"name": "c", "mode": "classic", "maxPlayers": 4}).Code)

	rooms := func(query string) []any {
		w := c.do(http.MethodGet, "/rooms"+query, "")
		require.Equal(t, http.StatusOK, w.Code)
		return decode(t, w)["rooms"].([]any)
	}

	assert.Len(t, rooms(""), 4)
	assert.Len(t, rooms("?limit=0"), 1)
	assert.Len(t, rooms("?limit=abc"), 4)
	assert.Len(t, rooms("?offset=-5&limit=2"), 2)
	assert.Len(t, rooms("?offset=3"), 1)

	classic := rooms("?mode=classic")
	require.Len(t, classic, 1)
	assert.Equal(t, "c", classic[0].(map[string]any)["name"])
	assert.Empty(t, rooms("?access=private"))
}

func TestChat(t *testing.T) {
	c := newClient(t)

	w := c.post("/rooms", gin.H{"name": "chat"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["room"].(map[string]any)["id"].(string)

	w = c.post("/api/chat/"+id, gin.H{"text": "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"text": "required"}, decode(t, w)["details"])

	w = c.post("/api/chat/999", gin.H{"text": "hi"})
	require.Equal(t, http.StatusNotFound, w.Code)

	var ids []string
	for _, text := range []string{"one", "two", "three"} {
		w = c.post("/api/chat/"+id, gin.H{"text": text})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		msg := decode(t, w)["message"].(map[string]any)
		assert.Equal(t, "Гравець", msg["author"])
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`, msg["createdAt"])
		ids = append(ids, msg["id"].(string))
	}

	texts := func(query string) []string {
		w := c.do(http.MethodGet, "/api/chat/"+id+query, "")
		require.Equal(t, http.StatusOK, w.Code)
		var out []string
		for _, m := range decode(t, w)["messages"].([]any) {
			out = append(out, m.(map[string]any)["text"].(string))
		}
		return out
	}

	assert.Equal(t, []string{"one", "two", "three"}, texts(""))
	assert.Equal(t, []string{"two", "three"}, texts("?sinceId="+ids[0]))
	assert.Empty(t, texts("?sinceId="+ids[2]))
	assert.Equal(t, []string{"one", "two", "three"}, texts("?sinceId=unknown"))

	w = c.do(http.MethodGet, "/api/chat/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"messages":[]}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	c := newClient(t)

	req := httptest.NewRequest(http.MethodOptions, "/rooms", bytes.NewReader(nil))
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
