package services

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Dosada05/bracket-editor/models"
	"github.com/google/uuid"
)

// TeamPool supplies the roster used to fill new sessions and added slots.
type TeamPool interface {
	Teams() []models.Team
}

type staticTeamPool struct {
	teams []models.Team
}

// NewStaticTeamPool returns a pool over teams, or over the built-in roster
// when teams is empty.
func NewStaticTeamPool(teams []models.Team) TeamPool {
	if len(teams) == 0 {
		teams = DefaultTeams()
	}
	return &staticTeamPool{teams: models.CloneTeams(teams)}
}

func (p *staticTeamPool) Teams() []models.Team {
	return models.CloneTeams(p.teams)
}

var (
	poolColors  = []string{"Crimson", "Azure", "Golden", "Silver", "Emerald", "Obsidian", "Scarlet", "Ivory"}
	poolMascots = []string{"Falcons", "Wolves", "Titans", "Vipers", "Ravens", "Comets", "Knights", "Sharks"}
)

// DefaultTeams is the built-in 64 team roster, seeded 1..64.
func DefaultTeams() []models.Team {
	teams := make([]models.Team, 0, len(poolColors)*len(poolMascots))
	for _, mascot := range poolMascots {
		for _, color := range poolColors {
			n := len(teams) + 1
			teams = append(teams, models.Team{
				ID:   fmt.Sprintf("t%d", n),
				Name: color + " " + mascot,
				Seed: models.IntPtr(n),
			})
		}
	}
	return teams
}

// pickTeams draws count pool teams that are not in existing, in random
// order, and generates placeholder teams once the pool runs dry. Seeds
// continue from len(existing)+1.
func pickTeams(pool TeamPool, existing []models.Team, count int) []models.Team {
	taken := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		taken[t.ID] = struct{}{}
	}

	var available []models.Team
	for _, t := range pool.Teams() {
		if _, ok := taken[t.ID]; !ok {
			available = append(available, t)
		}
	}
	rand.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	picked := make([]models.Team, 0, count)
	for i := 0; i < count; i++ {
		seed := len(existing) + len(picked) + 1
		var team models.Team
		if i < len(available) {
			team = available[i]
		} else {
			team = models.Team{
				ID:   "t-" + strings.SplitN(uuid.NewString(), "-", 2)[0],
				Name: fmt.Sprintf("Team %d", seed),
			}
		}
		team.Seed = models.IntPtr(seed)
		picked = append(picked, team)
	}
	return picked
}
