package models

type ValidationErrorType string

const (
	ValidationOrphanedTeam       ValidationErrorType = "orphaned_team"
	ValidationInvalidPropagation ValidationErrorType = "invalid_propagation"
	ValidationScoreExceedsBestOf ValidationErrorType = "score_exceeds_bo"
	ValidationByeNotAdvanced     ValidationErrorType = "bye_not_advanced"
)

type ValidationError struct {
	MatchID string              `json:"matchId"`
	Type    ValidationErrorType `json:"type"`
	Message string              `json:"message"`
}

type ConflictReason string

const (
	ConflictSameTeam    ConflictReason = "same_team"
	ConflictTimeOverlap ConflictReason = "time_overlap"
)

type ScheduleConflict struct {
	MatchIDs [2]string      `json:"matchIds"`
	Reason   ConflictReason `json:"reason"`
	TeamID   *string        `json:"teamId,omitempty"`
}

type TeamStats struct {
	TeamID        string `json:"teamId"`
	TeamName      string `json:"teamName"`
	MatchesPlayed int    `json:"matchesPlayed"`
	MatchesWon    int    `json:"matchesWon"`
	MatchesLost   int    `json:"matchesLost"`
	MapsPlayed    int    `json:"mapsPlayed"`
	MapsWon       int    `json:"mapsWon"`
	MapsLost      int    `json:"mapsLost"`
}

func (s TeamStats) MapDifferential() int {
	return s.MapsWon - s.MapsLost
}
