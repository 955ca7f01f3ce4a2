package services

import (
	"sync"
	"time"

	"github.com/Dosada05/bracket-editor/brackets"
	"github.com/Dosada05/bracket-editor/models"
)

// session is one in-memory editing session. All fields are guarded by mu.
type session struct {
	mu sync.Mutex

	id             string
	teams          []models.Team
	bracket        *models.DoubleEliminationBracket
	size           models.BracketSize
	bestOf         int
	connectorStyle models.ConnectorStyle
	groupStage     *models.GroupStageBracket
	history        *History

	createdAt time.Time
	updatedAt time.Time
}

// SessionState is the view of a session returned to clients: the editable
// state together with the analysis derived from it.
type SessionState struct {
	ID               string                           `json:"id"`
	Teams            []models.Team                    `json:"teams"`
	Bracket          *models.DoubleEliminationBracket `json:"bracket"`
	BracketSize      models.BracketSize               `json:"bracket_size"`
	BestOf           int                              `json:"best_of"`
	ConnectorStyle   models.ConnectorStyle            `json:"connector_style"`
	GroupStage       *models.GroupStageBracket        `json:"group_stage,omitempty"`
	QuickScores      [][2]int                         `json:"quick_scores"`
	ValidationErrors []models.ValidationError         `json:"validation_errors"`
	Conflicts        []models.ScheduleConflict        `json:"conflicts"`
	Stats            []models.TeamStats               `json:"stats"`
	CanUndo          bool                             `json:"can_undo"`
	CanRedo          bool                             `json:"can_redo"`
	CreatedAt        time.Time                        `json:"created_at"`
	UpdatedAt        time.Time                        `json:"updated_at"`
}

func (s *session) flow() models.BracketFlow {
	return brackets.BuildBracketFlow(s.size)
}

// commit installs a new bracket and roster and records them in history.
func (s *session) commit(b *models.DoubleEliminationBracket, teams []models.Team, at time.Time) {
	s.bracket = b
	s.teams = teams
	s.size = b.Size()
	s.history.Push(models.NewHistoryEntry(b, teams, at))
}

// restore installs a history entry without recording it.
func (s *session) restore(entry models.HistoryEntry) {
	s.bracket = entry.Bracket
	s.teams = entry.Teams
	s.size = entry.Bracket.Size()
}

func (s *session) findTeam(teamID string) int {
	for i, t := range s.teams {
		if t.ID == teamID {
			return i
		}
	}
	return -1
}

func (s *session) snapshot() *models.Snapshot {
	return &models.Snapshot{
		Teams:          models.CloneTeams(s.teams),
		Bracket:        s.bracket.Clone(),
		BestOf:         s.bestOf,
		ConnectorStyle: s.connectorStyle,
		BracketSize:    s.size,
	}
}

func (s *session) state() *SessionState {
	st := &SessionState{
		ID:               s.id,
		Teams:            models.CloneTeams(s.teams),
		Bracket:          s.bracket.Clone(),
		BracketSize:      s.size,
		BestOf:           s.bestOf,
		ConnectorStyle:   s.connectorStyle,
		GroupStage:       s.groupStage,
		QuickScores:      brackets.QuickScores(s.bestOf),
		ValidationErrors: brackets.ValidateBracket(s.bracket, s.bestOf),
		Conflicts:        brackets.DetectConflicts(s.bracket, brackets.DefaultConflictWindow),
		Stats:            brackets.ComputeTeamStats(s.bracket),
		CanUndo:          s.history.CanUndo(),
		CanRedo:          s.history.CanRedo(),
		CreatedAt:        s.createdAt,
		UpdatedAt:        s.updatedAt,
	}
	if st.Teams == nil {
		st.Teams = []models.Team{}
	}
	if st.ValidationErrors == nil {
		st.ValidationErrors = []models.ValidationError{}
	}
	if st.Conflicts == nil {
		st.Conflicts = []models.ScheduleConflict{}
	}
	if st.Stats == nil {
		st.Stats = []models.TeamStats{}
	}
	return st
}
