package brackets

import (
	"fmt"
	"strings"

	"github.com/Dosada05/bracket-editor/models"
)

// ConvertToSingleElimination keeps the upper bracket of de and appends the
// grand final as a last round.
func ConvertToSingleElimination(de *models.DoubleEliminationBracket) *models.SingleEliminationBracket {
	se := &models.SingleEliminationBracket{Type: models.BracketTypeSingleElimination}
	for _, r := range de.Upper {
		c := r.Clone()
		c.Name = strings.TrimPrefix(c.Name, "UB ")
		se.Rounds = append(se.Rounds, c)
	}
	if de.GrandFinal != nil {
		se.Rounds = append(se.Rounds, models.Round{
			Name:    "Grand Final",
			Matches: []models.Match{de.GrandFinal.Clone()},
		})
	}
	return se
}

// ConvertToDoubleElimination lays the rounds of se over the upper bracket of
// a fresh double-elimination bracket of matching size. Matches are matched
// by round and position; completed results are then replayed through the
// flow graph so that losers drop into the lower bracket.
func ConvertToDoubleElimination(se *models.SingleEliminationBracket) (*models.DoubleEliminationBracket, error) {
	if len(se.Rounds) == 0 || len(se.Rounds[0].Matches) == 0 {
		return nil, fmt.Errorf("convert to double elimination: %w: empty bracket", models.ErrUnsupportedBracketSize)
	}
	size, err := models.ParseBracketSize(2 * len(se.Rounds[0].Matches))
	if err != nil {
		return nil, fmt.Errorf("convert to double elimination: %w", err)
	}

	de := BuildBracketForSize(nil, size)
	flow := BuildBracketFlow(size)

	for r := 0; r < len(se.Rounds) && r < len(de.Upper); r++ {
		for i, m := range se.Rounds[r].Matches {
			if i >= len(de.Upper[r].Matches) {
				break
			}
			target := &de.Upper[r].Matches[i]
			id, round, pos := target.ID, target.Round, target.Position
			*target = m.Clone()
			target.ID, target.Round, target.Position = id, round, pos
		}
	}

	for r := range de.Upper {
		for i := range de.Upper[r].Matches {
			m := &de.Upper[r].Matches[i]
			if m.IsCompleted() {
				propagateResult(de, m, flow)
			}
		}
	}
	return de, nil
}
