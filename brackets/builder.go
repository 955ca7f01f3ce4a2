package brackets

import (
	"fmt"

	"github.com/Dosada05/bracket-editor/models"
)

// CreateMatch returns an upcoming match with both slots empty of results.
func CreateMatch(id string, round, position int, teamA, teamB *models.Team) models.Match {
	m := models.Match{
		ID:       id,
		Round:    round,
		Position: position,
		Status:   models.MatchStatusUpcoming,
	}
	if teamA != nil {
		t := teamA.Clone()
		m.Teams[0].Team = &t
	}
	if teamB != nil {
		t := teamB.Clone()
		m.Teams[1].Team = &t
	}
	return m
}

func upperRoundName(r, total int) string {
	switch r {
	case total - 1:
		return "UB Final"
	case total - 2:
		return "UB Semifinal"
	default:
		return fmt.Sprintf("UB Round %d", r+1)
	}
}

func lowerRoundName(r, total int) string {
	if r == total-1 {
		return "LB Final"
	}
	return fmt.Sprintf("LB Round %d", r+1)
}

// BuildBracketForSize lays out an empty double-elimination bracket and places
// teams[2i], teams[2i+1] into upper round 0 match i. Missing teams leave the
// slot empty. size must be a supported bracket size.
func BuildBracketForSize(teams []models.Team, size models.BracketSize) *models.DoubleEliminationBracket {
	ids := GenerateMatchIDs(size)
	b := &models.DoubleEliminationBracket{Type: models.BracketTypeDoubleElimination}

	teamAt := func(i int) *models.Team {
		if i < len(teams) {
			return &teams[i]
		}
		return nil
	}

	for r, roundIDs := range ids.Upper {
		matches := make([]models.Match, len(roundIDs))
		for i, id := range roundIDs {
			if r == 0 {
				matches[i] = CreateMatch(id, r, i, teamAt(2*i), teamAt(2*i+1))
			} else {
				matches[i] = CreateMatch(id, r, i, nil, nil)
			}
		}
		b.Upper = append(b.Upper, models.Round{Name: upperRoundName(r, len(ids.Upper)), Matches: matches})
	}

	for r, roundIDs := range ids.Lower {
		matches := make([]models.Match, len(roundIDs))
		for i, id := range roundIDs {
			matches[i] = CreateMatch(id, r, i, nil, nil)
		}
		b.Lower = append(b.Lower, models.Round{Name: lowerRoundName(r, len(ids.Lower)), Matches: matches})
	}

	gf := CreateMatch(ids.GrandFinal, 0, 0, nil, nil)
	b.GrandFinal = &gf
	return b
}

// FillWithByes pads teams with BYE placeholders up to size.
func FillWithByes(teams []models.Team, size models.BracketSize) []models.Team {
	out := models.CloneTeams(teams)
	for len(out) < int(size) {
		out = append(out, models.NewByeTeam(len(out)))
	}
	return out
}

// RenameTeam returns a copy of b with every slot holding teamID renamed.
func RenameTeam(b *models.DoubleEliminationBracket, teamID, name string) *models.DoubleEliminationBracket {
	next := b.Clone()
	for _, m := range next.Matches() {
		for i := range m.Teams {
			if t := m.Teams[i].Team; t != nil && t.ID == teamID {
				t.Name = name
			}
		}
	}
	return next
}

// UpdateTeam returns a copy of b with every slot holding team.ID replaced by
// a copy of team.
func UpdateTeam(b *models.DoubleEliminationBracket, team models.Team) *models.DoubleEliminationBracket {
	next := b.Clone()
	for _, m := range next.Matches() {
		for i := range m.Teams {
			if t := m.Teams[i].Team; t != nil && t.ID == team.ID {
				c := team.Clone()
				m.Teams[i].Team = &c
			}
		}
	}
	return next
}
