package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/bracket-editor/models"
)

var ErrNotEnoughTeams = errors.New("not enough teams to generate a bracket (minimum 2)")

type GenerateBracketParams struct {
	Teams []models.Team
	Size  models.BracketSize
	// Seeded places teams by standard seeding instead of list order. BYEs
	// carry the worst seed, so the top seeds receive them.
	Seeded bool
}

// GenerateBracket builds a double-elimination bracket for the given teams:
// the list is padded with BYEs to Size, optionally seeded, laid out, and
// BYE matches are resolved.
func GenerateBracket(params GenerateBracketParams) (*models.DoubleEliminationBracket, error) {
	if !params.Size.Valid() {
		return nil, fmt.Errorf("generate bracket: %w: %d", models.ErrUnsupportedBracketSize, params.Size)
	}
	if len(params.Teams) < 2 {
		return nil, fmt.Errorf("generate bracket: %w (found %d)", ErrNotEnoughTeams, len(params.Teams))
	}
	if len(params.Teams) > int(params.Size) {
		return nil, fmt.Errorf("generate bracket: %w: %d teams do not fit size %d", models.ErrUnsupportedBracketSize, len(params.Teams), params.Size)
	}

	placed := FillWithByes(params.Teams, params.Size)
	if params.Seeded {
		placed = ApplySeeding(placed, params.Size)
	}

	b := BuildBracketForSize(placed, params.Size)
	return HandleByeAdvancement(b, BuildBracketFlow(params.Size)), nil
}
