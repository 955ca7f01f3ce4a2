package models

import "time"

type MatchStatus string

const (
	MatchStatusUpcoming  MatchStatus = "upcoming"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusCompleted MatchStatus = "completed"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusUpcoming, MatchStatusLive, MatchStatusCompleted:
		return true
	}
	return false
}

// MatchSlot is one side of a match. Team is nil while undetermined.
type MatchSlot struct {
	Team     *Team `json:"team"`
	Score    int   `json:"score"`
	IsWinner bool  `json:"isWinner,omitempty"`
}

// Clear empties the slot: no team, no score, not a winner.
func (s *MatchSlot) Clear() {
	s.Team = nil
	s.ResetResult()
}

// ResetResult keeps the team but drops score and winner flag.
func (s *MatchSlot) ResetResult() {
	s.Score = 0
	s.IsWinner = false
}

type Match struct {
	ID          string       `json:"id"`
	Round       int          `json:"round"`
	Position    int          `json:"position"`
	BestOf      *int         `json:"bestOf,omitempty"`
	ScheduledAt *time.Time   `json:"scheduledAt,omitempty"`
	Status      MatchStatus  `json:"status"`
	Teams       [2]MatchSlot `json:"teams"`

	// Editor-only fields.
	ForfeitTeamID *string `json:"forfeitTeamId,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	StreamURL     *string `json:"streamUrl,omitempty"`
	Venue         *string `json:"venue,omitempty"`
}

func (m *Match) IsCompleted() bool {
	return m.Status == MatchStatusCompleted
}

// WinnerIndex returns the slot flagged as winner, or -1.
func (m *Match) WinnerIndex() int {
	for i := range m.Teams {
		if m.Teams[i].IsWinner {
			return i
		}
	}
	return -1
}

// Winner and Loser return the deciding teams of a completed match. When no
// slot is flagged both are nil.
func (m *Match) Winner() *Team {
	if w := m.WinnerIndex(); w >= 0 {
		return m.Teams[w].Team
	}
	return nil
}

func (m *Match) Loser() *Team {
	if w := m.WinnerIndex(); w >= 0 {
		return m.Teams[1-w].Team
	}
	return nil
}

// HasBye reports one BYE side facing a real team.
func (m *Match) HasBye() bool {
	a, b := m.Teams[0].Team, m.Teams[1].Team
	return (a.IsBye() && b != nil && !b.IsBye()) || (b.IsBye() && a != nil && !a.IsBye())
}

// InvolvesBye reports whether either side is a BYE.
func (m *Match) InvolvesBye() bool {
	return m.Teams[0].Team.IsBye() || m.Teams[1].Team.IsBye()
}

// HasBothTeams reports whether both slots are populated.
func (m *Match) HasBothTeams() bool {
	return m.Teams[0].Team != nil && m.Teams[1].Team != nil
}

// EffectiveBestOf resolves the per-match override against a default.
func (m *Match) EffectiveBestOf(defaultBestOf int) int {
	if m.BestOf != nil && *m.BestOf > 0 {
		return *m.BestOf
	}
	return defaultBestOf
}

func (m Match) Clone() Match {
	c := m
	if m.BestOf != nil {
		v := *m.BestOf
		c.BestOf = &v
	}
	if m.ScheduledAt != nil {
		v := *m.ScheduledAt
		c.ScheduledAt = &v
	}
	for i := range m.Teams {
		if m.Teams[i].Team != nil {
			t := m.Teams[i].Team.Clone()
			c.Teams[i].Team = &t
		}
	}
	c.ForfeitTeamID = cloneString(m.ForfeitTeamID)
	c.Notes = cloneString(m.Notes)
	c.StreamURL = cloneString(m.StreamURL)
	c.Venue = cloneString(m.Venue)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
