package brackets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Dosada05/bracket-editor/models"
)

const (
	PointsForWin  = 3
	PointsForDraw = 1
)

var ErrInvalidGroupStage = errors.New("invalid group stage parameters")

// GenerateGroupStage splits teams into groupCount round-robin groups and
// pairs every team in a group with every other one, legs times (1 or 2).
// Teams are dealt to groups in snake order of seed so that groups are
// balanced. Pairings follow the circle method; an odd group gets a resting
// team each round.
func GenerateGroupStage(teams []models.Team, groupCount, legs int) (*models.GroupStageBracket, error) {
	if groupCount < 1 {
		return nil, fmt.Errorf("%w: group count must be positive, got %d", ErrInvalidGroupStage, groupCount)
	}
	if legs != 1 && legs != 2 {
		return nil, fmt.Errorf("%w: legs must be 1 or 2, got %d", ErrInvalidGroupStage, legs)
	}
	if len(teams) < 2*groupCount {
		return nil, fmt.Errorf("%w: %d teams cannot fill %d groups of at least 2", ErrInvalidGroupStage, len(teams), groupCount)
	}

	ranked := models.CloneTeams(teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SeedOrWorst() < ranked[j].SeedOrWorst()
	})

	stage := &models.GroupStageBracket{Type: models.BracketTypeGroupStage}
	for g := 0; g < groupCount; g++ {
		stage.Groups = append(stage.Groups, models.Group{Name: fmt.Sprintf("Group %c", 'A'+g)})
	}
	for i, t := range ranked {
		g := i % groupCount
		if (i/groupCount)%2 == 1 {
			g = groupCount - 1 - g
		}
		stage.Groups[g].Teams = append(stage.Groups[g].Teams, t)
	}

	for g := range stage.Groups {
		group := &stage.Groups[g]
		group.Matches = roundRobinMatches(g, group.Teams, legs)
		group.Standings = ComputeGroupStandings(*group)
	}
	return stage, nil
}

func roundRobinMatches(groupIndex int, teams []models.Team, legs int) []models.Match {
	slots := make([]*models.Team, len(teams))
	for i := range teams {
		slots[i] = &teams[i]
	}
	if len(slots)%2 == 1 {
		slots = append(slots, nil)
	}
	n := len(slots)
	rounds := n - 1

	var matches []models.Match
	for leg := 0; leg < legs; leg++ {
		order := append([]*models.Team(nil), slots...)
		for r := 0; r < rounds; r++ {
			pos := 0
			for i := 0; i < n/2; i++ {
				home, away := order[i], order[n-1-i]
				if home == nil || away == nil {
					continue
				}
				if leg == 1 {
					home, away = away, home
				}
				round := leg*rounds + r
				id := fmt.Sprintf("g%d-r%d-%d", groupIndex+1, round+1, pos+1)
				matches = append(matches, CreateMatch(id, round, pos, home, away))
				pos++
			}
			// Keep the first slot fixed and rotate the rest clockwise.
			order = append([]*models.Team{order[0], order[n-1]}, order[1:n-1]...)
		}
	}
	return matches
}

// ComputeGroupStandings builds the table of a group from its completed
// matches. Ordering is points, differential, score for, then team id.
func ComputeGroupStandings(group models.Group) []models.GroupStanding {
	rows := make(map[string]*models.GroupStanding, len(group.Teams))
	standings := make([]*models.GroupStanding, 0, len(group.Teams))
	for _, t := range group.Teams {
		row := &models.GroupStanding{Team: t.Clone()}
		rows[t.ID] = row
		standings = append(standings, row)
	}

	for _, m := range group.Matches {
		if !m.IsCompleted() || !m.HasBothTeams() {
			continue
		}
		a, b := rows[m.Teams[0].Team.ID], rows[m.Teams[1].Team.ID]
		if a == nil || b == nil {
			continue
		}
		sa, sb := m.Teams[0].Score, m.Teams[1].Score
		recordGroupResult(a, sa, sb)
		recordGroupResult(b, sb, sa)
	}

	out := make([]models.GroupStanding, len(standings))
	for i, row := range standings {
		row.Differential = row.ScoreFor - row.ScoreAgainst
		out[i] = *row
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch {
		case out[i].Points != out[j].Points:
			return out[i].Points > out[j].Points
		case out[i].Differential != out[j].Differential:
			return out[i].Differential > out[j].Differential
		case out[i].ScoreFor != out[j].ScoreFor:
			return out[i].ScoreFor > out[j].ScoreFor
		}
		return out[i].Team.ID < out[j].Team.ID
	})
	return out
}

func recordGroupResult(row *models.GroupStanding, scored, conceded int) {
	row.Played++
	row.ScoreFor += scored
	row.ScoreAgainst += conceded
	switch {
	case scored > conceded:
		row.Wins++
		row.Points += PointsForWin
	case scored < conceded:
		row.Losses++
	default:
		row.Draws++
		row.Points += PointsForDraw
	}
}

// UpdateGroupMatch returns a copy of stage with updated swapped in and the
// owning group's standings recomputed. Group matches may end level, so no
// result normalization is applied. Unknown ids leave the stage unchanged.
func UpdateGroupMatch(stage *models.GroupStageBracket, updated models.Match) *models.GroupStageBracket {
	next := &models.GroupStageBracket{Type: stage.Type, Groups: make([]models.Group, len(stage.Groups))}
	for g, group := range stage.Groups {
		c := models.Group{Name: group.Name, Teams: models.CloneTeams(group.Teams)}
		touched := false
		for _, m := range group.Matches {
			if m.ID == updated.ID {
				m = updated
				touched = true
			}
			c.Matches = append(c.Matches, m.Clone())
		}
		if touched {
			c.Standings = ComputeGroupStandings(c)
		} else {
			c.Standings = append([]models.GroupStanding(nil), group.Standings...)
		}
		next.Groups[g] = c
	}
	return next
}
