package brackets

import (
	"sort"

	"github.com/Dosada05/bracket-editor/models"
)

// ComputeTeamStats tallies match and map records from completed matches.
// Matches involving a BYE do not count. Rows are ordered by matches won, then map
// differential, both descending, then team id.
func ComputeTeamStats(b *models.DoubleEliminationBracket) []models.TeamStats {
	byTeam := make(map[string]*models.TeamStats)

	for _, m := range b.Matches() {
		if !m.IsCompleted() || m.InvolvesBye() {
			continue
		}
		for i, slot := range m.Teams {
			team := slot.Team
			if team == nil {
				continue
			}
			st, ok := byTeam[team.ID]
			if !ok {
				st = &models.TeamStats{TeamID: team.ID, TeamName: team.Name}
				byTeam[team.ID] = st
			}
			opp := m.Teams[1-i].Score

			st.MatchesPlayed++
			if slot.IsWinner {
				st.MatchesWon++
			} else {
				st.MatchesLost++
			}
			st.MapsWon += slot.Score
			st.MapsLost += opp
			st.MapsPlayed += slot.Score + opp
		}
	}

	out := make([]models.TeamStats, 0, len(byTeam))
	for _, st := range byTeam {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchesWon != out[j].MatchesWon {
			return out[i].MatchesWon > out[j].MatchesWon
		}
		if di, dj := out[i].MapDifferential(), out[j].MapDifferential(); di != dj {
			return di > dj
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}
