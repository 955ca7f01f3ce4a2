package brackets

import (
	"github.com/Dosada05/bracket-editor/models"
)

// NormalizeResult makes the status and winner flags of m consistent. A
// completed match with level scores cannot have a winner and is demoted to
// live. A match that is not completed carries no winner flag. A completed
// match with no flagged winner takes the higher score as winner.
func NormalizeResult(m models.Match) models.Match {
	if m.Status == models.MatchStatusCompleted && m.Teams[0].Score == m.Teams[1].Score {
		m.Status = models.MatchStatusLive
	}
	if m.Status != models.MatchStatusCompleted {
		m.Teams[0].IsWinner = false
		m.Teams[1].IsWinner = false
		return m
	}
	if (m.Teams[0].IsWinner && m.Teams[1].IsWinner) || m.WinnerIndex() < 0 {
		m.Teams[0].IsWinner = m.Teams[0].Score > m.Teams[1].Score
		m.Teams[1].IsWinner = m.Teams[1].Score > m.Teams[0].Score
	}
	return m
}

// ApplyUpdate returns a copy of b with updated swapped in for the match of
// the same id and the rest of the bracket kept consistent with flow.
//
// Completing a match writes its winner and loser into their target slots.
// Reopening a completed match clears those slots and resets every match
// reachable from it: status back to upcoming, results cleared, and the team
// removed from each slot fed by the reopened match or by another reset match.
// Slots filled by unrelated, still-completed matches are kept.
//
// An unknown match id leaves the bracket unchanged. b is never modified.
func ApplyUpdate(b *models.DoubleEliminationBracket, updated models.Match, flow models.BracketFlow) *models.DoubleEliminationBracket {
	next := b.Clone()
	prev := b.FindMatch(updated.ID)
	if prev == nil {
		return next
	}

	updated = NormalizeResult(updated.Clone())
	next.ReplaceMatch(updated)

	wasCompleted := prev.IsCompleted()
	isCompleted := updated.IsCompleted()

	switch {
	case isCompleted && !wasCompleted:
		propagateResult(next, &updated, flow)
	case isCompleted && wasCompleted:
		if !sameOutcome(prev, &updated) {
			cascadeReset(next, updated.ID, flow)
		}
		propagateResult(next, &updated, flow)
	case wasCompleted && !isCompleted:
		cascadeReset(next, updated.ID, flow)
	}
	return next
}

func propagateResult(b *models.DoubleEliminationBracket, m *models.Match, flow models.BracketFlow) {
	edges := flow[m.ID]
	if edges.Winner != nil {
		setSlotTeam(b, *edges.Winner, m.Winner())
	}
	if edges.Loser != nil {
		setSlotTeam(b, *edges.Loser, m.Loser())
	}
}

func setSlotTeam(b *models.DoubleEliminationBracket, target models.FlowTarget, team *models.Team) {
	m := b.FindMatch(target.MatchID)
	if m == nil {
		return
	}
	if team == nil {
		m.Teams[target.Slot].Team = nil
		return
	}
	t := team.Clone()
	m.Teams[target.Slot].Team = &t
}

func cascadeReset(b *models.DoubleEliminationBracket, matchID string, flow models.BracketFlow) {
	edges := flow[matchID]
	for _, t := range []*models.FlowTarget{edges.Winner, edges.Loser} {
		if t == nil {
			continue
		}
		if m := b.FindMatch(t.MatchID); m != nil {
			m.Teams[t.Slot].Clear()
		}
	}

	reachable := Downstream(flow, matchID)
	invalidated := make(map[string]bool, len(reachable)+1)
	invalidated[matchID] = true
	for _, id := range reachable {
		invalidated[id] = true
	}

	sources := Sources(flow)
	for _, id := range reachable {
		m := b.FindMatch(id)
		if m == nil {
			continue
		}
		m.Status = models.MatchStatusUpcoming
		for slot := range m.Teams {
			m.Teams[slot].ResetResult()
			src, fed := sources[models.FlowTarget{MatchID: id, Slot: slot}]
			if fed && invalidated[src] {
				m.Teams[slot].Team = nil
			}
		}
	}
}

func sameOutcome(a, b *models.Match) bool {
	return teamID(a.Winner()) == teamID(b.Winner()) && teamID(a.Loser()) == teamID(b.Loser())
}

func teamID(t *models.Team) string {
	if t == nil {
		return ""
	}
	return t.ID
}

// WinsNeeded is the number of games that decides a best-of series.
func WinsNeeded(bestOf int) int {
	return (bestOf + 1) / 2
}

// QuickScores lists every final score of a best-of series, winner first and
// mirrored: for bestOf 3 that is 2-0, 0-2, 2-1, 1-2.
func QuickScores(bestOf int) [][2]int {
	need := WinsNeeded(bestOf)
	scores := make([][2]int, 0, 2*need)
	for loser := 0; loser < need; loser++ {
		scores = append(scores, [2]int{need, loser}, [2]int{loser, need})
	}
	return scores
}

// QuickScore completes m with the given score. It reports false and leaves m
// untouched when either slot is empty.
func QuickScore(m models.Match, scoreA, scoreB int) (models.Match, bool) {
	if !m.HasBothTeams() {
		return m, false
	}
	out := m.Clone()
	out.Teams[0].Score = scoreA
	out.Teams[1].Score = scoreB
	out.Teams[0].IsWinner = scoreA > scoreB
	out.Teams[1].IsWinner = scoreB > scoreA
	out.Status = models.MatchStatusCompleted
	return out, true
}

// Forfeit completes m in favour of the opponent of slot forfeiting. The
// forfeiting side scores 0 and the other side the series threshold. It
// reports false when either slot is empty or the slot index is invalid.
func Forfeit(m models.Match, forfeiting int, defaultBestOf int) (models.Match, bool) {
	if forfeiting < 0 || forfeiting > 1 || !m.HasBothTeams() {
		return m, false
	}
	out := m.Clone()
	winner := 1 - forfeiting
	id := out.Teams[forfeiting].Team.ID
	out.ForfeitTeamID = &id
	out.Status = models.MatchStatusCompleted
	out.Teams[forfeiting].Score = 0
	out.Teams[forfeiting].IsWinner = false
	out.Teams[winner].Score = WinsNeeded(out.EffectiveBestOf(defaultBestOf))
	out.Teams[winner].IsWinner = true
	return out, true
}

// SwapTeams exchanges the two slots of m, results included.
func SwapTeams(m models.Match) models.Match {
	out := m.Clone()
	out.Teams[0], out.Teams[1] = out.Teams[1], out.Teams[0]
	return out
}
