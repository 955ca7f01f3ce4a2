package brackets

import (
	"github.com/Dosada05/bracket-editor/models"
)

// HandleByeAdvancement returns a copy of b where every match pairing a real
// team with a BYE is completed 1-0 for the real team.
//
// Results are chained through flow: the real team and the BYE are forwarded
// into their target slots and the scan repeats until nothing changes, so a
// team with consecutive byes reaches the first round where it has a real
// opponent. A match holding two BYEs stays as it is but hands a BYE on to
// its targets, which keeps the empty half of a sparse bracket moving.
func HandleByeAdvancement(b *models.DoubleEliminationBracket, flow models.BracketFlow) *models.DoubleEliminationBracket {
	next := b.Clone()
	for changed := true; changed; {
		changed = false
		for _, m := range next.Matches() {
			switch {
			case m.HasBye() && !m.IsCompleted():
				awardBye(m)
				propagateResult(next, m, flow)
				changed = true
			case m.Teams[0].Team.IsBye() && m.Teams[1].Team.IsBye():
				if forwardBye(next, m, flow) {
					changed = true
				}
			}
		}
	}
	return next
}

func awardBye(m *models.Match) {
	winner := 0
	if m.Teams[0].Team.IsBye() {
		winner = 1
	}
	m.Status = models.MatchStatusCompleted
	m.Teams[winner].Score = 1
	m.Teams[winner].IsWinner = true
	m.Teams[1-winner].Score = 0
	m.Teams[1-winner].IsWinner = false
}

func forwardBye(b *models.DoubleEliminationBracket, m *models.Match, flow models.BracketFlow) bool {
	edges := flow[m.ID]
	moved := false
	for _, t := range []*models.FlowTarget{edges.Winner, edges.Loser} {
		if t == nil {
			continue
		}
		target := b.FindMatch(t.MatchID)
		if target == nil || target.Teams[t.Slot].Team.IsBye() {
			continue
		}
		if target.Teams[t.Slot].Team != nil {
			continue
		}
		bye := m.Teams[0].Team.Clone()
		target.Teams[t.Slot].Team = &bye
		moved = true
	}
	return moved
}
