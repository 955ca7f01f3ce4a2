package brackets

import (
	"time"

	"github.com/Dosada05/bracket-editor/models"
)

const DefaultConflictWindow = 45 * time.Minute

// DetectConflicts reports pairs of scheduled matches that start less than
// window apart and share a team. Every pair is compared, which is fine for
// brackets of at most 64 teams.
func DetectConflicts(b *models.DoubleEliminationBracket, window time.Duration) []models.ScheduleConflict {
	var scheduled []*models.Match
	for _, m := range b.Matches() {
		if m.ScheduledAt != nil {
			scheduled = append(scheduled, m)
		}
	}

	var conflicts []models.ScheduleConflict
	for i := 0; i < len(scheduled); i++ {
		for j := i + 1; j < len(scheduled); j++ {
			a, c := scheduled[i], scheduled[j]
			diff := a.ScheduledAt.Sub(*c.ScheduledAt)
			if diff < 0 {
				diff = -diff
			}
			if diff >= window {
				continue
			}
			if shared, ok := sharedTeam(a, c); ok {
				conflicts = append(conflicts, models.ScheduleConflict{
					MatchIDs: [2]string{a.ID, c.ID},
					Reason:   models.ConflictSameTeam,
					TeamID:   &shared,
				})
			}
		}
	}
	return conflicts
}

func sharedTeam(a, b *models.Match) (string, bool) {
	for _, sa := range a.Teams {
		if sa.Team == nil {
			continue
		}
		for _, sb := range b.Teams {
			if sb.Team != nil && sb.Team.ID == sa.Team.ID {
				return sa.Team.ID, true
			}
		}
	}
	return "", false
}
