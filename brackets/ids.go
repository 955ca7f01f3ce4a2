package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/bracket-editor/models"
)

const GrandFinalID = "gf"

// MatchIDs holds the match identifiers of a double-elimination bracket,
// indexed by round then position.
type MatchIDs struct {
	Upper      [][]string
	Lower      [][]string
	GrandFinal string
}

func upperMatchID(round, pos int) string { return fmt.Sprintf("ub%d-%d", round+1, pos+1) }
func lowerMatchID(round, pos int) string { return fmt.Sprintf("lb%d-%d", round+1, pos+1) }

// LowerRoundCount is the number of lower-bracket rounds: 2*(log2(size)-1).
func LowerRoundCount(size models.BracketSize) int {
	return 2 * (size.UpperRounds() - 1)
}

// lowerRoundMatchCount returns how many matches lower round r holds. Round 0
// takes upper round 0 losers in pairs, odd rounds take one upper dropout
// each, and even rounds after 0 halve the field.
func lowerRoundMatchCount(size models.BracketSize, r int) int {
	n := int(size) >> (r/2 + 2)
	return max(1, n)
}

// GenerateMatchIDs allocates ids for every match of a bracket of the given
// size. Ids are deterministic so that they can key the flow graph.
func GenerateMatchIDs(size models.BracketSize) MatchIDs {
	upperRounds := size.UpperRounds()
	ids := MatchIDs{GrandFinal: GrandFinalID}

	for r := 0; r < upperRounds; r++ {
		count := int(size) >> (r + 1)
		round := make([]string, count)
		for i := range round {
			round[i] = upperMatchID(r, i)
		}
		ids.Upper = append(ids.Upper, round)
	}

	for r := 0; r < LowerRoundCount(size); r++ {
		round := make([]string, lowerRoundMatchCount(size, r))
		for i := range round {
			round[i] = lowerMatchID(r, i)
		}
		ids.Lower = append(ids.Lower, round)
	}
	return ids
}

var ErrBracketShape = errors.New("bracket does not match its size")

// CheckStructure reports whether b has exactly the rounds and match ids a
// bracket of the given size is built with.
func CheckStructure(b *models.DoubleEliminationBracket, size models.BracketSize) error {
	ids := GenerateMatchIDs(size)
	if err := checkRounds("upper", b.Upper, ids.Upper); err != nil {
		return err
	}
	if err := checkRounds("lower", b.Lower, ids.Lower); err != nil {
		return err
	}
	if b.GrandFinal == nil || b.GrandFinal.ID != ids.GrandFinal {
		return fmt.Errorf("%w: grand final %q missing", ErrBracketShape, ids.GrandFinal)
	}
	return nil
}

func checkRounds(side string, rounds []models.Round, want [][]string) error {
	if len(rounds) != len(want) {
		return fmt.Errorf("%w: %s bracket has %d rounds, want %d", ErrBracketShape, side, len(rounds), len(want))
	}
	for r, round := range rounds {
		if len(round.Matches) != len(want[r]) {
			return fmt.Errorf("%w: %s round %d has %d matches, want %d", ErrBracketShape, side, r+1, len(round.Matches), len(want[r]))
		}
		for i, m := range round.Matches {
			if m.ID != want[r][i] {
				return fmt.Errorf("%w: %s round %d position %d is %q, want %q", ErrBracketShape, side, r+1, i+1, m.ID, want[r][i])
			}
		}
	}
	return nil
}
