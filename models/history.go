package models

import "time"

// HistoryEntry is a deep-copied editor state used by undo/redo.
type HistoryEntry struct {
	Bracket   *DoubleEliminationBracket `json:"bracket"`
	Teams     []Team                    `json:"teams"`
	Timestamp time.Time                 `json:"timestamp"`
}

func NewHistoryEntry(b *DoubleEliminationBracket, teams []Team, at time.Time) HistoryEntry {
	return HistoryEntry{
		Bracket:   b.Clone(),
		Teams:     CloneTeams(teams),
		Timestamp: at,
	}
}
