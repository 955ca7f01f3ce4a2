package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/bracket-editor/brackets"
	"github.com/Dosada05/bracket-editor/models"
	"github.com/Dosada05/bracket-editor/repositories"
	"github.com/Dosada05/bracket-editor/storage"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 10, 20, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []brackets.WebSocketMessage
	rooms    []string
	closed   []string
}

func (n *recordingNotifier) CloseRoom(room string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = append(n.closed, room)
}

func (n *recordingNotifier) BroadcastToRoom(room string, message brackets.WebSocketMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rooms = append(n.rooms, room)
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	for i, m := range n.messages {
		out[i] = m.Type
	}
	return out
}

func newTestEditor(t *testing.T) (*editorService, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	svc := NewEditorService(NewStaticTeamPool(nil), notifier, EditorConfig{}, discardLogger()).(*editorService)
	svc.now = func() time.Time { return testNow }
	return svc, notifier
}

func namedTeams(names ...string) []models.Team {
	teams := make([]models.Team, len(names))
	for i, n := range names {
		teams[i] = models.Team{ID: strings.ToLower(n), Name: n, Seed: models.IntPtr(i + 1)}
	}
	return teams
}

// newSeededSession creates a session for A..D seeded 1..4.
func newSeededSession(t *testing.T, svc EditorService) *SessionState {
	t.Helper()
	state, err := svc.CreateSession(context.Background(), CreateSessionInput{
		Teams:  namedTeams("A", "B", "C", "D"),
		Seeded: true,
	})
	require.NoError(t, err)
	return state
}

func findMatch(t *testing.T, state *SessionState, id string) *models.Match {
	t.Helper()
	m := state.Bracket.FindMatch(id)
	require.NotNil(t, m, "match %s", id)
	return m
}

func slotID(m *models.Match, slot int) string {
	if m.Teams[slot].Team == nil {
		return ""
	}
	return m.Teams[slot].Team.ID
}

type fakeArchiveRepo struct {
	mu        sync.Mutex
	archives  map[string]*models.Archive
	createErr error
	deleted   []string
}

func newFakeArchiveRepo() *fakeArchiveRepo {
	return &fakeArchiveRepo{archives: make(map[string]*models.Archive)}
}

func (r *fakeArchiveRepo) Create(ctx context.Context, archive *models.Archive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.archives[archive.ID]; ok {
		return repositories.ErrArchiveConflict
	}
	archive.CreatedAt = testNow
	stored := *archive
	stored.Snapshot = nil
	stored.ExportURL = nil
	r.archives[archive.ID] = &stored
	return nil
}

func (r *fakeArchiveRepo) GetByID(ctx context.Context, id string) (*models.Archive, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.archives[id]
	if !ok {
		return nil, repositories.ErrArchiveNotFound
	}
	c := *a
	return &c, nil
}

func (r *fakeArchiveRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]*models.Archive, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Archive
	for _, a := range r.archives {
		if a.SessionID == sessionID && len(out) < limit {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeArchiveRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.archives[id]; !ok {
		return repositories.ErrArchiveNotFound
	}
	delete(r.archives, id)
	r.deleted = append(r.deleted, id)
	return nil
}

const fakeBaseURL = "https://cdn.example.com"

type fakeUploader struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	uploadErr error
	deleted   []string
}

var _ storage.FileUploader = (*fakeUploader)(nil)

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (u *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if u.uploadErr != nil {
		return nil, u.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = data
	u.types[key] = contentType
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(ctx context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.objects[key]; !ok {
		return fmt.Errorf("no such key %q", key)
	}
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return fakeBaseURL + "/" + key
}

func (u *fakeUploader) has(key string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.objects[key]
	return ok
}
