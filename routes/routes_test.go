package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/bracket-editor/brackets"
	"github.com/Dosada05/bracket-editor/handlers"
	"github.com/Dosada05/bracket-editor/services"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	hub *brackets.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := brackets.NewHub(logger)
	go hub.Run(ctx)

	editor := services.NewEditorService(services.NewStaticTeamPool(nil), hub, services.EditorConfig{}, logger)
	archives := services.NewArchiveService(editor, nil, nil, logger)

	router := chi.NewRouter()
	SetupRoutes(router, Handlers{
		Session:   handlers.NewSessionHandler(editor),
		Match:     handlers.NewMatchHandler(editor),
		Team:      handlers.NewTeamHandler(editor, archives),
		Archive:   handlers.NewArchiveHandler(archives),
		WebSocket: handlers.NewWebSocketHandler(hub, []string{"*"}),
	}, Options{
		Logger:         logger,
		AllowedOrigins: []string{"*"},
		SessionExists:  editor.Exists,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, hub: hub}
}

func (s *testServer) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeSession(t *testing.T, resp *http.Response) services.SessionState {
	t.Helper()
	var env struct {
		Session services.SessionState `json:"session"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Session
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var env struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Error
}

const seededBody = `{"teams":[
	{"id":"a","name":"A","seed":1},{"id":"b","name":"B","seed":2},
	{"id":"c","name":"C","seed":3},{"id":"d","name":"D","seed":4}],"seeded":true}`

func (s *testServer) createSession(t *testing.T) services.SessionState {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/sessions", seededBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	state := decodeSession(t, resp)
	assert.Equal(t, "/sessions/"+state.ID, resp.Header.Get("Location"))
	return state
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp := srv.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	created := srv.createSession(t)
	path := "/sessions/" + created.ID

	resp := srv.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeSession(t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Len(t, got.Teams, 4)

	resp = srv.do(t, http.MethodPut, path+"/matches/ub1-1", `{"status":"completed","scores":[2,0]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeSession(t, resp)
	final := state.Bracket.FindMatch("ub2-1")
	require.NotNil(t, final.Teams[0].Team)
	assert.Equal(t, "a", final.Teams[0].Team.ID)
	assert.True(t, state.CanUndo)

	resp = srv.do(t, http.MethodPost, path+"/undo", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decodeSession(t, resp).Bracket.FindMatch("ub2-1").Teams[0].Team)

	resp = srv.do(t, http.MethodPost, path+"/undo", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = srv.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = srv.do(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestErrorMapping(t *testing.T) {
	srv := newTestServer(t)
	created := srv.createSession(t)
	path := "/sessions/" + created.ID

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown session", http.MethodGet, "/sessions/nope", "", http.StatusNotFound},
		{"unknown match", http.MethodPost, path + "/matches/zz/swap", "", http.StatusNotFound},
		{"unknown field", http.MethodPut, path + "/matches/ub1-1", `{"colour":"red"}`, http.StatusBadRequest},
		{"match not ready", http.MethodPost, path + "/matches/ub2-1/quick-score", `{"scores":[2,0]}`, http.StatusConflict},
		{"forfeit without slot", http.MethodPost, path + "/matches/ub1-1/forfeit", `{}`, http.StatusBadRequest},
		{"unsupported size", http.MethodPost, path + "/size", `{"size":6}`, http.StatusBadRequest},
		{"empty settings", http.MethodPut, path + "/settings", `{}`, http.StatusBadRequest},
		{"bad import", http.MethodPost, path + "/import", `{"bestOf":0}`, http.StatusUnprocessableEntity},
		{"empty import", http.MethodPost, path + "/import", "", http.StatusBadRequest},
		{"unknown team", http.MethodDelete, path + "/teams/zz", "", http.StatusNotFound},
		{"archive disabled", http.MethodPost, path + "/archive", "", http.StatusServiceUnavailable},
		{"archive id format", http.MethodGet, "/archives/not-a-uuid", "", http.StatusBadRequest},
		{"group stage too many groups", http.MethodPost, path + "/group-stage", `{"group_count":3}`, http.StatusUnprocessableEntity},
		{"redo without undo", http.MethodPost, path + "/redo", "", http.StatusConflict},
		{"swap fed match", http.MethodPost, path + "/matches/ub2-1/swap", "", http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := srv.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.NotEmpty(t, decodeError(t, resp))
		})
	}
}

func TestExportImport(t *testing.T) {
	srv := newTestServer(t)
	source := srv.createSession(t)
	target := srv.createSession(t)

	resp := srv.do(t, http.MethodPost, "/sessions/"+source.ID+"/matches/ub1-2/quick-score", `{"scores":[1,2]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = srv.do(t, http.MethodGet, "/sessions/"+source.ID+"/export", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "bracket-"+source.ID+".json")
	exported, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	resp = srv.do(t, http.MethodPost, "/sessions/"+target.ID+"/import", string(exported))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeSession(t, resp)

	lower := state.Bracket.FindMatch("lb1-1")
	require.NotNil(t, lower.Teams[1].Team)
	assert.Equal(t, "b", lower.Teams[1].Team.ID)
}

func TestTeamsAndSize(t *testing.T) {
	srv := newTestServer(t)
	created := srv.createSession(t)
	path := "/sessions/" + created.ID

	resp := srv.do(t, http.MethodPost, path+"/teams", `{"name":"Eagles"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	state := decodeSession(t, resp)
	assert.Len(t, state.Teams, 5)
	assert.EqualValues(t, 8, state.BracketSize)

	resp = srv.do(t, http.MethodPatch, path+"/teams/a", `{"name":"Alpha"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alpha", decodeSession(t, resp).Teams[0].Name)

	resp = srv.do(t, http.MethodPost, path+"/size", `{"size":16}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeSession(t, resp).Teams, 16)

	resp = srv.do(t, http.MethodGet, path+"/single-elimination", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadLogo_Disabled(t *testing.T) {
	srv := newTestServer(t)
	created := srv.createSession(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/sessions/"+created.ID+"/teams/a/logo", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestWebSocketReceivesUpdates(t *testing.T) {
	srv := newTestServer(t)
	created := srv.createSession(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/sessions/" + created.ID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return srv.hub.RoomSize(created.ID) == 1 }, time.Second, 10*time.Millisecond)

	resp := srv.do(t, http.MethodPost, "/sessions/"+created.ID+"/shuffle", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		Type   string `json:"type"`
		RoomID string `json:"room_id"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, brackets.MessageBracketUpdated, msg.Type)
	assert.Equal(t, created.ID, msg.RoomID)

	_, _, err = websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/sessions/nope", nil)
	assert.Error(t, err)
}
