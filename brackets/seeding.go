package brackets

import (
	"fmt"
	"sort"

	"github.com/Dosada05/bracket-editor/models"
)

// GenerateSeeding returns the first-round seed pairs for a bracket of size n.
// Seed 1 meets seed n, and the top seeds are kept apart until late rounds:
// for n=8 the result is (1,8),(4,5),(2,7),(3,6). n must be a power of two
// no smaller than 2.
func GenerateSeeding(n int) [][2]int {
	if n < 2 || n&(n-1) != 0 {
		panic(fmt.Sprintf("brackets: seeding size %d is not a power of two", n))
	}
	if n == 2 {
		return [][2]int{{1, 2}}
	}
	half := GenerateSeeding(n / 2)
	pairs := make([][2]int, 0, n/2)
	for _, p := range half {
		pairs = append(pairs, [2]int{p[0], n + 1 - p[0]})
		pairs = append(pairs, [2]int{p[1], n + 1 - p[1]})
	}
	return pairs
}

// ApplySeeding orders teams for bracket placement. Teams are ranked by seed
// (missing seed ranks last, ties keep input order) and then laid out so that
// consecutive pairs form the seeded first-round matches. Seed positions with
// no team are skipped.
func ApplySeeding(teams []models.Team, size models.BracketSize) []models.Team {
	ranked := models.CloneTeams(teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SeedOrWorst() < ranked[j].SeedOrWorst()
	})

	out := make([]models.Team, 0, len(ranked))
	for _, pair := range GenerateSeeding(int(size)) {
		for _, seed := range pair {
			if seed-1 < len(ranked) {
				out = append(out, ranked[seed-1])
			}
		}
	}
	return out
}
