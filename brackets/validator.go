package brackets

import (
	"fmt"

	"github.com/Dosada05/bracket-editor/models"
)

// ValidateBracket reports every consistency problem in b. It does not stop
// at the first one and never modifies b.
func ValidateBracket(b *models.DoubleEliminationBracket, defaultBestOf int) []models.ValidationError {
	var errs []models.ValidationError
	for _, m := range b.Matches() {
		errs = append(errs, validateMatch(m, defaultBestOf)...)
	}
	return errs
}

func validateMatch(m *models.Match, defaultBestOf int) []models.ValidationError {
	var errs []models.ValidationError

	bestOf := m.EffectiveBestOf(defaultBestOf)
	maxScore := WinsNeeded(bestOf)
	for _, slot := range m.Teams {
		if slot.Score > maxScore {
			errs = append(errs, models.ValidationError{
				MatchID: m.ID,
				Type:    models.ValidationScoreExceedsBestOf,
				Message: fmt.Sprintf("Score %d exceeds max %d for BO%d", slot.Score, maxScore, bestOf),
			})
		}
	}

	if m.HasBye() && !m.IsCompleted() {
		errs = append(errs, models.ValidationError{
			MatchID: m.ID,
			Type:    models.ValidationByeNotAdvanced,
			Message: "Match with BYE should be auto-completed",
		})
	}

	if m.IsCompleted() && m.Winner() == nil {
		errs = append(errs, models.ValidationError{
			MatchID: m.ID,
			Type:    models.ValidationInvalidPropagation,
			Message: "Completed match has no winner set",
		})
	}
	return errs
}
