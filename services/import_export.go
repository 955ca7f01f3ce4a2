package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Dosada05/bracket-editor/brackets"
	"github.com/Dosada05/bracket-editor/models"
)

// Import replaces the parts of the session present in data. The payload is
// parsed and validated in full before anything is applied; on any failure
// the session is left as it was and the error wraps ErrImportFailed.
func (s *editorService) Import(ctx context.Context, sessionID string, data []byte) (*SessionState, error) {
	var patch models.SnapshotPatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}

	state, err := s.mutate(ctx, sessionID, "import", func(sess *session) error {
		size := sess.size
		if patch.BracketSize != nil {
			size = *patch.BracketSize
		}

		b := sess.bracket
		if patch.Bracket != nil {
			b = patch.Bracket.Clone()
			if b.Type == "" {
				b.Type = models.BracketTypeDoubleElimination
			}
		}
		if err := brackets.CheckStructure(b, size); err != nil {
			return fmt.Errorf("%w: %w", ErrImportFailed, err)
		}

		teams := models.CloneTeams(sess.teams)
		if patch.Teams != nil {
			imported, err := realTeams(patch.Teams)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrImportFailed, err)
			}
			teams = imported
		}

		if patch.BestOf != nil {
			sess.bestOf = *patch.BestOf
		}
		if patch.ConnectorStyle != nil {
			sess.connectorStyle = *patch.ConnectorStyle
		}
		sess.commit(b, teams, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "bracket imported", slog.String("session_id", sessionID), slog.Int("bytes", len(data)))
	return state, nil
}

// ImportSingleElimination loads a single-elimination bracket into the
// session as the upper half of a fresh double-elimination bracket.
func (s *editorService) ImportSingleElimination(ctx context.Context, sessionID string, data []byte) (*SessionState, error) {
	var se models.SingleEliminationBracket
	if err := json.Unmarshal(data, &se); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}
	b, err := brackets.ConvertToDoubleElimination(&se)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}

	return s.mutate(ctx, sessionID, "import_single_elimination", func(sess *session) error {
		teams := teamsOf(b)
		if len(teams) == 0 {
			teams = models.CloneTeams(sess.teams)
		}
		b = brackets.HandleByeAdvancement(b, brackets.BuildBracketFlow(b.Size()))
		sess.commit(b, teams, s.now())
		return nil
	})
}

func (s *editorService) Export(ctx context.Context, sessionID string) (*models.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// teamsOf lists the real teams of the first upper round in slot order.
func teamsOf(b *models.DoubleEliminationBracket) []models.Team {
	if len(b.Upper) == 0 {
		return nil
	}
	var teams []models.Team
	for _, m := range b.Upper[0].Matches {
		for _, slot := range m.Teams {
			if slot.Team != nil && !slot.Team.IsBye() {
				teams = append(teams, slot.Team.Clone())
			}
		}
	}
	return teams
}
