package models

import (
	"errors"
	"fmt"
	"time"
)

type ConnectorStyle string

const (
	ConnectorStyleDefault ConnectorStyle = "default"
	ConnectorStyleSimple  ConnectorStyle = "simple"
)

func (c ConnectorStyle) Valid() bool {
	return c == ConnectorStyleDefault || c == ConnectorStyleSimple
}

// Snapshot is the exported editor state.
type Snapshot struct {
	Teams          []Team                    `json:"teams"`
	Bracket        *DoubleEliminationBracket `json:"bracket"`
	BestOf         int                       `json:"bestOf"`
	ConnectorStyle ConnectorStyle            `json:"connectorStyle"`
	BracketSize    BracketSize               `json:"bracketSize"`
}

// SnapshotPatch is an imported state. Every field is optional and applied
// on its own when present.
type SnapshotPatch struct {
	Teams          []Team                    `json:"teams,omitempty"`
	Bracket        *DoubleEliminationBracket `json:"bracket,omitempty"`
	BestOf         *int                      `json:"bestOf,omitempty"`
	ConnectorStyle *ConnectorStyle           `json:"connectorStyle,omitempty"`
	BracketSize    *BracketSize              `json:"bracketSize,omitempty"`
}

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Validate checks the fields that are present. It never inspects absent ones.
func (p *SnapshotPatch) Validate() error {
	if p.BestOf != nil && *p.BestOf <= 0 {
		return fmt.Errorf("%w: bestOf must be positive, got %d", ErrInvalidSnapshot, *p.BestOf)
	}
	if p.ConnectorStyle != nil && !p.ConnectorStyle.Valid() {
		return fmt.Errorf("%w: unknown connector style %q", ErrInvalidSnapshot, *p.ConnectorStyle)
	}
	if p.BracketSize != nil && !p.BracketSize.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidSnapshot, ErrUnsupportedBracketSize, *p.BracketSize)
	}
	if p.Bracket != nil {
		seen := make(map[string]struct{})
		for _, m := range p.Bracket.Matches() {
			if m.ID == "" {
				return fmt.Errorf("%w: match without id", ErrInvalidSnapshot)
			}
			if _, dup := seen[m.ID]; dup {
				return fmt.Errorf("%w: duplicate match id %q", ErrInvalidSnapshot, m.ID)
			}
			seen[m.ID] = struct{}{}
			if m.Status != "" && !m.Status.Valid() {
				return fmt.Errorf("%w: match %q has unknown status %q", ErrInvalidSnapshot, m.ID, m.Status)
			}
		}
	}
	for _, t := range p.Teams {
		if t.ID == "" {
			return fmt.Errorf("%w: team without id", ErrInvalidSnapshot)
		}
	}
	return nil
}

// Archive is an exported snapshot kept in the database.
type Archive struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Payload   []byte    `json:"-" db:"payload"`
	ExportKey *string   `json:"-" db:"export_key"`
	ExportURL *string   `json:"export_url,omitempty" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Snapshot *Snapshot `json:"snapshot,omitempty" db:"-"`
}
