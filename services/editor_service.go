package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Dosada05/bracket-editor/brackets"
	"github.com/Dosada05/bracket-editor/models"
	"github.com/google/uuid"
)

const (
	DefaultBestOf    = 3
	DefaultTeamCount = 4
)

// Notifier receives session updates for live subscribers. *brackets.Hub
// implements it.
type Notifier interface {
	BroadcastToRoom(room string, message brackets.WebSocketMessage)
	CloseRoom(room string)
}

type EditorConfig struct {
	DefaultBestOf int
	HistoryLimit  int
}

type CreateSessionInput struct {
	Teams     []models.Team `json:"teams,omitempty"`
	TeamCount *int          `json:"team_count,omitempty"`
	Size      *int          `json:"size,omitempty"`
	BestOf    *int          `json:"best_of,omitempty"`
	Seeded    bool          `json:"seeded,omitempty"`
}

// MatchUpdateInput edits one match. Absent fields keep their value.
// WinnerSlot -1 clears the winner flags.
type MatchUpdateInput struct {
	Status        *models.MatchStatus `json:"status,omitempty"`
	Scores        *[2]int             `json:"scores,omitempty"`
	WinnerSlot    *int                `json:"winner_slot,omitempty"`
	BestOf        *int                `json:"best_of,omitempty"`
	ScheduledAt   *time.Time          `json:"scheduled_at,omitempty"`
	ClearSchedule bool                `json:"clear_schedule,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
	StreamURL     *string             `json:"stream_url,omitempty"`
	Venue         *string             `json:"venue,omitempty"`
}

type AddTeamInput struct {
	Name *string `json:"name,omitempty"`
	Seed *int    `json:"seed,omitempty"`
}

type UpdateTeamInput struct {
	Name *string `json:"name,omitempty"`
	Seed *int    `json:"seed,omitempty"`
}

type ScheduleInput struct {
	Start       *time.Time `json:"start,omitempty"`
	SlotMinutes *int       `json:"slot_minutes,omitempty"`
}

type SettingsInput struct {
	BestOf         *int                   `json:"best_of,omitempty"`
	ConnectorStyle *models.ConnectorStyle `json:"connector_style,omitempty"`
}

type GroupStageInput struct {
	GroupCount int `json:"group_count"`
	Legs       int `json:"legs"`
}

type EditorService interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*SessionState, error)
	GetSession(ctx context.Context, sessionID string) (*SessionState, error)
	Exists(sessionID string) bool
	DeleteSession(ctx context.Context, sessionID string) error

	UpdateMatch(ctx context.Context, sessionID, matchID string, input MatchUpdateInput) (*SessionState, error)
	ForfeitMatch(ctx context.Context, sessionID, matchID string, slot int) (*SessionState, error)
	QuickScoreMatch(ctx context.Context, sessionID, matchID string, scoreA, scoreB int) (*SessionState, error)
	SwapMatchTeams(ctx context.Context, sessionID, matchID string) (*SessionState, error)

	AddTeam(ctx context.Context, sessionID string, input AddTeamInput) (*SessionState, error)
	UpdateTeam(ctx context.Context, sessionID, teamID string, input UpdateTeamInput) (*SessionState, error)
	RemoveTeam(ctx context.Context, sessionID, teamID string) (*SessionState, error)
	SetTeamLogo(ctx context.Context, sessionID, teamID string, logoURL *string) (*SessionState, string, error)

	Reset(ctx context.Context, sessionID string) (*SessionState, error)
	Shuffle(ctx context.Context, sessionID string) (*SessionState, error)
	SeedByRank(ctx context.Context, sessionID string) (*SessionState, error)
	ChangeSize(ctx context.Context, sessionID string, size int) (*SessionState, error)
	AutoSchedule(ctx context.Context, sessionID string, input ScheduleInput) (*SessionState, error)
	UpdateSettings(ctx context.Context, sessionID string, input SettingsInput) (*SessionState, error)
	Undo(ctx context.Context, sessionID string) (*SessionState, error)
	Redo(ctx context.Context, sessionID string) (*SessionState, error)

	GenerateGroupStage(ctx context.Context, sessionID string, input GroupStageInput) (*SessionState, error)
	UpdateGroupMatch(ctx context.Context, sessionID, matchID string, scores [2]int, status models.MatchStatus) (*SessionState, error)
	SingleElimination(ctx context.Context, sessionID string) (*models.SingleEliminationBracket, error)

	Import(ctx context.Context, sessionID string, data []byte) (*SessionState, error)
	ImportSingleElimination(ctx context.Context, sessionID string, data []byte) (*SessionState, error)
	Export(ctx context.Context, sessionID string) (*models.Snapshot, error)
}

type editorService struct {
	mu       sync.RWMutex
	sessions map[string]*session

	pool     TeamPool
	notifier Notifier
	cfg      EditorConfig
	logger   *slog.Logger
	now      func() time.Time
}

func NewEditorService(pool TeamPool, notifier Notifier, cfg EditorConfig, logger *slog.Logger) EditorService {
	if cfg.DefaultBestOf <= 0 {
		cfg.DefaultBestOf = DefaultBestOf
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = MaxHistory
	}
	if pool == nil {
		pool = NewStaticTeamPool(nil)
	}
	return &editorService{
		sessions: make(map[string]*session),
		pool:     pool,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *editorService) CreateSession(ctx context.Context, input CreateSessionInput) (*SessionState, error) {
	bestOf := s.cfg.DefaultBestOf
	if input.BestOf != nil {
		if *input.BestOf <= 0 {
			return nil, ErrInvalidBestOf
		}
		bestOf = *input.BestOf
	}

	teams, err := realTeams(input.Teams)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		count := DefaultTeamCount
		if input.TeamCount != nil {
			count = *input.TeamCount
		} else if input.Size != nil {
			count = *input.Size
		}
		if count < 2 {
			return nil, ErrTooFewTeams
		}
		if count > int(models.BracketSize64) {
			return nil, ErrTooManyTeams
		}
		teams = pickTeams(s.pool, nil, count)
	}

	var size models.BracketSize
	if input.Size != nil {
		size, err = models.ParseBracketSize(*input.Size)
	} else {
		size, err = sizeForTeams(len(teams))
	}
	if err != nil {
		return nil, err
	}

	if input.Seeded {
		teams = sortBySeed(teams)
	}
	b, err := generate(teams, size, input.Seeded)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &session{
		id:             uuid.NewString(),
		bestOf:         bestOf,
		connectorStyle: models.ConnectorStyleDefault,
		history:        NewHistory(s.cfg.HistoryLimit),
		createdAt:      now,
		updatedAt:      now,
	}
	sess.commit(b, teams, now)
	state := sess.state()

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "editor session created",
		slog.String("session_id", sess.id),
		slog.Int("teams", len(teams)),
		slog.Int("bracket_size", int(size)),
	)
	return state, nil
}

func (s *editorService) GetSession(ctx context.Context, sessionID string) (*SessionState, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state(), nil
}

func (s *editorService) Exists(sessionID string) bool {
	_, err := s.lookup(sessionID)
	return err == nil
}

func (s *editorService) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	if s.notifier != nil {
		s.notifier.BroadcastToRoom(sessionID, brackets.WebSocketMessage{
			Type:    brackets.MessageSessionDeleted,
			Payload: map[string]string{"session_id": sessionID},
		})
		s.notifier.CloseRoom(sessionID)
	}
	s.logger.InfoContext(ctx, "editor session deleted", slog.String("session_id", sessionID))
	return nil
}

func (s *editorService) UpdateMatch(ctx context.Context, sessionID, matchID string, input MatchUpdateInput) (*SessionState, error) {
	if input.Scores != nil && (input.Scores[0] < 0 || input.Scores[1] < 0) {
		return nil, ErrInvalidScore
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMatchStatus, *input.Status)
	}
	if input.WinnerSlot != nil && (*input.WinnerSlot < -1 || *input.WinnerSlot > 1) {
		return nil, ErrInvalidSlot
	}
	if input.BestOf != nil && *input.BestOf <= 0 {
		return nil, ErrInvalidBestOf
	}

	return s.mutateMatch(ctx, sessionID, matchID, "update_match", func(_ *session, m models.Match) (models.Match, error) {
		if input.Status != nil {
			m.Status = *input.Status
		}
		if input.Scores != nil {
			m.Teams[0].Score = input.Scores[0]
			m.Teams[1].Score = input.Scores[1]
			// новый счет определяет победителя, если он не указан явно
			m.Teams[0].IsWinner = input.Scores[0] > input.Scores[1]
			m.Teams[1].IsWinner = input.Scores[1] > input.Scores[0]
		}
		if input.WinnerSlot != nil {
			m.Teams[0].IsWinner = *input.WinnerSlot == 0
			m.Teams[1].IsWinner = *input.WinnerSlot == 1
		}
		if input.BestOf != nil {
			m.BestOf = input.BestOf
		}
		if input.ClearSchedule {
			m.ScheduledAt = nil
		} else if input.ScheduledAt != nil {
			at := *input.ScheduledAt
			m.ScheduledAt = &at
		}
		if input.Notes != nil {
			m.Notes = optionalString(*input.Notes)
		}
		if input.StreamURL != nil {
			m.StreamURL = optionalString(*input.StreamURL)
		}
		if input.Venue != nil {
			m.Venue = optionalString(*input.Venue)
		}
		if m.Status != models.MatchStatusCompleted {
			m.ForfeitTeamID = nil
		}
		if m.Status == models.MatchStatusCompleted && !m.HasBothTeams() {
			return m, ErrMatchNotReady
		}
		return m, nil
	})
}

func (s *editorService) ForfeitMatch(ctx context.Context, sessionID, matchID string, slot int) (*SessionState, error) {
	if slot < 0 || slot > 1 {
		return nil, ErrInvalidSlot
	}
	return s.mutateMatch(ctx, sessionID, matchID, "forfeit", func(sess *session, m models.Match) (models.Match, error) {
		out, ok := brackets.Forfeit(m, slot, sess.bestOf)
		if !ok {
			return m, ErrMatchNotReady
		}
		return out, nil
	})
}

func (s *editorService) QuickScoreMatch(ctx context.Context, sessionID, matchID string, scoreA, scoreB int) (*SessionState, error) {
	if scoreA < 0 || scoreB < 0 {
		return nil, ErrInvalidScore
	}
	return s.mutateMatch(ctx, sessionID, matchID, "quick_score", func(_ *session, m models.Match) (models.Match, error) {
		out, ok := brackets.QuickScore(m, scoreA, scoreB)
		if !ok {
			return m, ErrMatchNotReady
		}
		out.ForfeitTeamID = nil
		return out, nil
	})
}

func (s *editorService) SwapMatchTeams(ctx context.Context, sessionID, matchID string) (*SessionState, error) {
	return s.mutateMatch(ctx, sessionID, matchID, "swap", func(sess *session, m models.Match) (models.Match, error) {
		if !brackets.CanSwap(sess.flow(), m.ID) {
			return m, fmt.Errorf("%w: %s", ErrSwapNotAllowed, m.ID)
		}
		return brackets.SwapTeams(m), nil
	})
}

func (s *editorService) AddTeam(ctx context.Context, sessionID string, input AddTeamInput) (*SessionState, error) {
	return s.mutate(ctx, sessionID, "add_team", func(sess *session) error {
		if len(sess.teams) >= int(models.BracketSize64) {
			return ErrTooManyTeams
		}

		var team models.Team
		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return ErrTeamNameRequired
			}
			team = models.Team{
				ID:   "t-" + strings.SplitN(uuid.NewString(), "-", 2)[0],
				Name: name,
				Seed: models.IntPtr(len(sess.teams) + 1),
			}
		} else {
			team = pickTeams(s.pool, sess.teams, 1)[0]
		}
		if input.Seed != nil {
			team.Seed = models.IntPtr(*input.Seed)
		}

		teams := append(models.CloneTeams(sess.teams), team)
		return s.rebuild(sess, teams, false)
	})
}

func (s *editorService) UpdateTeam(ctx context.Context, sessionID, teamID string, input UpdateTeamInput) (*SessionState, error) {
	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrTeamNameRequired
		}
	}
	return s.mutate(ctx, sessionID, "update_team", func(sess *session) error {
		idx := sess.findTeam(teamID)
		if idx < 0 {
			return ErrTeamNotFound
		}
		teams := models.CloneTeams(sess.teams)
		b := sess.bracket
		if input.Name != nil {
			teams[idx].Name = name
			b = brackets.RenameTeam(b, teamID, name)
		}
		if input.Seed != nil {
			teams[idx].Seed = models.IntPtr(*input.Seed)
			b = brackets.UpdateTeam(b, teams[idx])
		}
		sess.commit(b, teams, s.now())
		return nil
	})
}

func (s *editorService) RemoveTeam(ctx context.Context, sessionID, teamID string) (*SessionState, error) {
	return s.mutate(ctx, sessionID, "remove_team", func(sess *session) error {
		idx := sess.findTeam(teamID)
		if idx < 0 {
			return ErrTeamNotFound
		}
		if len(sess.teams) <= 2 {
			return ErrTooFewTeams
		}
		teams := make([]models.Team, 0, len(sess.teams)-1)
		teams = append(teams, sess.teams[:idx]...)
		teams = append(teams, sess.teams[idx+1:]...)
		return s.rebuild(sess, models.CloneTeams(teams), false)
	})
}

// SetTeamLogo stores logoURL on the team and returns the previous logo.
func (s *editorService) SetTeamLogo(ctx context.Context, sessionID, teamID string, logoURL *string) (*SessionState, string, error) {
	var previous string
	state, err := s.mutate(ctx, sessionID, "set_team_logo", func(sess *session) error {
		idx := sess.findTeam(teamID)
		if idx < 0 {
			return ErrTeamNotFound
		}
		teams := models.CloneTeams(sess.teams)
		if teams[idx].Logo != nil {
			previous = *teams[idx].Logo
		}
		teams[idx].Logo = nil
		if logoURL != nil {
			l := *logoURL
			teams[idx].Logo = &l
		}
		sess.commit(brackets.UpdateTeam(sess.bracket, teams[idx]), teams, s.now())
		return nil
	})
	return state, previous, err
}

// Reset rebuilds the bracket from the current roster and restores the
// default best-of.
func (s *editorService) Reset(ctx context.Context, sessionID string) (*SessionState, error) {
	return s.mutate(ctx, sessionID, "reset", func(sess *session) error {
		b, err := generate(sess.teams, sess.size, false)
		if err != nil {
			return err
		}
		sess.bestOf = s.cfg.DefaultBestOf
		sess.groupStage = nil
		sess.commit(b, models.CloneTeams(sess.teams), s.now())
		return nil
	})
}

func (s *editorService) Shuffle(ctx context.Context, sessionID string) (*SessionState, error) {
	return s.mutate(ctx, sessionID, "shuffle", func(sess *session) error {
		teams := models.CloneTeams(sess.teams)
		rand.Shuffle(len(teams), func(i, j int) {
			teams[i], teams[j] = teams[j], teams[i]
		})
		b, err := generate(teams, sess.size, false)
		if err != nil {
			return err
		}
		sess.commit(b, teams, s.now())
		return nil
	})
}

func (s *editorService) SeedByRank(ctx context.Context, sessionID string) (*SessionState, error) {
	return s.mutate(ctx, sessionID, "seed", func(sess *session) error {
		teams := sortBySeed(sess.teams)
		b, err := generate(teams, sess.size, true)
		if err != nil {
			return err
		}
		sess.commit(b, teams, s.now())
		return nil
	})
}

// ChangeSize switches the bracket size, topping the roster up from the team
// pool or trimming it from the end.
func (s *editorService) ChangeSize(ctx context.Context, sessionID string, size int) (*SessionState, error) {
	newSize, err := models.ParseBracketSize(size)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, "change_size", func(sess *session) error {
		teams := models.CloneTeams(sess.teams)
		switch {
		case len(teams) < int(newSize):
			teams = append(teams, pickTeams(s.pool, teams, int(newSize)-len(teams))...)
		case len(teams) > int(newSize):
			teams = teams[:newSize]
		}
		b, err := generate(teams, newSize, false)
		if err != nil {
			return err
		}
		sess.commit(b, teams, s.now())
		return nil
	})
}

func (s *editorService) AutoSchedule(ctx context.Context, sessionID string, input ScheduleInput) (*SessionState, error) {
	slot := brackets.DefaultMatchDuration
	if input.SlotMinutes != nil {
		if *input.SlotMinutes <= 0 {
			return nil, fmt.Errorf("%w: slot_minutes must be positive", ErrValidationFailed)
		}
		slot = time.Duration(*input.SlotMinutes) * time.Minute
	}
	return s.mutate(ctx, sessionID, "auto_schedule", func(sess *session) error {
		start := brackets.NextScheduleStart(s.now())
		if input.Start != nil {
			start = *input.Start
		}
		sess.commit(brackets.AutoSchedule(sess.bracket, start, slot), models.CloneTeams(sess.teams), s.now())
		return nil
	})
}

func (s *editorService) UpdateSettings(ctx context.Context, sessionID string, input SettingsInput) (*SessionState, error) {
	if input.BestOf != nil && *input.BestOf <= 0 {
		return nil, ErrInvalidBestOf
	}
	if input.ConnectorStyle != nil && !input.ConnectorStyle.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConnectorStyle, *input.ConnectorStyle)
	}
	return s.mutate(ctx, sessionID, "update_settings", func(sess *session) error {
		if input.BestOf != nil {
			sess.bestOf = *input.BestOf
		}
		if input.ConnectorStyle != nil {
			sess.connectorStyle = *input.ConnectorStyle
		}
		return nil
	})
}

func (s *editorService) Undo(ctx context.Context, sessionID string) (*SessionState, error) {
	return s.mutate(ctx, sessionID, "undo", func(sess *session) error {
		entry, err := sess.history.Undo()
		if err != nil {
			return err
		}
		sess.restore(entry)
		return nil
	})
}

func (s *editorService) Redo(ctx context.Context, sessionID string) (*SessionState, error) {
	return s.mutate(ctx, sessionID, "redo", func(sess *session) error {
		entry, err := sess.history.Redo()
		if err != nil {
			return err
		}
		sess.restore(entry)
		return nil
	})
}

func (s *editorService) GenerateGroupStage(ctx context.Context, sessionID string, input GroupStageInput) (*SessionState, error) {
	legs := input.Legs
	if legs == 0 {
		legs = 1
	}
	return s.mutate(ctx, sessionID, "generate_group_stage", func(sess *session) error {
		stage, err := brackets.GenerateGroupStage(sess.teams, input.GroupCount, legs)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		sess.groupStage = stage
		return nil
	})
}

func (s *editorService) UpdateGroupMatch(ctx context.Context, sessionID, matchID string, scores [2]int, status models.MatchStatus) (*SessionState, error) {
	if scores[0] < 0 || scores[1] < 0 {
		return nil, ErrInvalidScore
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMatchStatus, status)
	}
	return s.mutate(ctx, sessionID, "update_group_match", func(sess *session) error {
		if sess.groupStage == nil {
			return ErrMatchNotFound
		}
		var current *models.Match
		for g := range sess.groupStage.Groups {
			for i := range sess.groupStage.Groups[g].Matches {
				if sess.groupStage.Groups[g].Matches[i].ID == matchID {
					current = &sess.groupStage.Groups[g].Matches[i]
				}
			}
		}
		if current == nil {
			return ErrMatchNotFound
		}
		m := current.Clone()
		m.Status = status
		m.Teams[0].Score = scores[0]
		m.Teams[1].Score = scores[1]
		completed := status == models.MatchStatusCompleted
		m.Teams[0].IsWinner = completed && scores[0] > scores[1]
		m.Teams[1].IsWinner = completed && scores[1] > scores[0]
		sess.groupStage = brackets.UpdateGroupMatch(sess.groupStage, m)
		return nil
	})
}

func (s *editorService) SingleElimination(ctx context.Context, sessionID string) (*models.SingleEliminationBracket, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return brackets.ConvertToSingleElimination(sess.bracket), nil
}

func (s *editorService) lookup(sessionID string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// mutate runs fn under the session lock and publishes the resulting state.
// fn leaves the session untouched when it returns an error.
func (s *editorService) mutate(ctx context.Context, sessionID, op string, fn func(sess *session) error) (*SessionState, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess); err != nil {
		if !isClientError(err) {
			s.logger.ErrorContext(ctx, "session operation failed",
				slog.String("session_id", sessionID),
				slog.String("operation", op),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	sess.updatedAt = s.now()
	state := sess.state()

	if s.notifier != nil {
		s.notifier.BroadcastToRoom(sessionID, brackets.WebSocketMessage{
			Type:    brackets.MessageBracketUpdated,
			Payload: state,
		})
	}
	s.logger.DebugContext(ctx, "session updated",
		slog.String("session_id", sessionID),
		slog.String("operation", op),
	)
	return state, nil
}

// mutateMatch applies edit to a copy of the match and runs the result
// through progression and BYE resolution.
func (s *editorService) mutateMatch(ctx context.Context, sessionID, matchID, op string, edit func(sess *session, m models.Match) (models.Match, error)) (*SessionState, error) {
	return s.mutate(ctx, sessionID, op, func(sess *session) error {
		current := sess.bracket.FindMatch(matchID)
		if current == nil {
			return fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
		}
		updated, err := edit(sess, current.Clone())
		if err != nil {
			return err
		}
		flow := sess.flow()
		b := brackets.ApplyUpdate(sess.bracket, updated, flow)
		b = brackets.HandleByeAdvancement(b, flow)
		sess.commit(b, models.CloneTeams(sess.teams), s.now())
		return nil
	})
}

// rebuild regenerates the bracket for a changed roster, resizing to the
// smallest bracket that fits it.
func (s *editorService) rebuild(sess *session, teams []models.Team, seeded bool) error {
	size, err := sizeForTeams(len(teams))
	if err != nil {
		return err
	}
	b, err := generate(teams, size, seeded)
	if err != nil {
		return err
	}
	sess.commit(b, teams, s.now())
	return nil
}

func generate(teams []models.Team, size models.BracketSize, seeded bool) (*models.DoubleEliminationBracket, error) {
	b, err := brackets.GenerateBracket(brackets.GenerateBracketParams{
		Teams:  teams,
		Size:   size,
		Seeded: seeded,
	})
	switch {
	case errors.Is(err, brackets.ErrNotEnoughTeams):
		return nil, fmt.Errorf("%w: %w", ErrTooFewTeams, err)
	case err != nil:
		return nil, err
	}
	return b, nil
}

func sizeForTeams(count int) (models.BracketSize, error) {
	if count < 2 {
		return 0, ErrTooFewTeams
	}
	size, err := models.NextBracketSize(count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTooManyTeams, err)
	}
	return size, nil
}

// realTeams drops BYE placeholders and rejects unnamed or duplicate teams.
func realTeams(teams []models.Team) ([]models.Team, error) {
	out := make([]models.Team, 0, len(teams))
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if t.IsBye() {
			continue
		}
		if strings.TrimSpace(t.Name) == "" {
			return nil, ErrTeamNameRequired
		}
		if t.ID == "" {
			t.ID = "t-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate team id %q", ErrValidationFailed, t.ID)
		}
		seen[t.ID] = struct{}{}
		out = append(out, t.Clone())
	}
	return out, nil
}

func sortBySeed(teams []models.Team) []models.Team {
	out := models.CloneTeams(teams)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SeedOrWorst() < out[j].SeedOrWorst()
	})
	return out
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// isClientError reports whether err is caused by the request rather than
// the service.
func isClientError(err error) bool {
	for _, target := range []error{
		ErrValidationFailed, ErrSessionNotFound, ErrMatchNotFound, ErrTeamNotFound,
		ErrUnsupportedBracketSize, ErrTooFewTeams, ErrTooManyTeams, ErrTeamNameRequired,
		ErrInvalidBestOf, ErrInvalidConnectorStyle, ErrInvalidScore, ErrInvalidSlot,
		ErrInvalidMatchStatus, ErrMatchNotReady, ErrSwapNotAllowed, ErrImportFailed, ErrNothingToUndo, ErrNothingToRedo,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
