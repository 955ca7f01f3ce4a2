package brackets

import (
	"sync"

	"github.com/Dosada05/bracket-editor/models"
)

var flowCache sync.Map // models.BracketSize -> models.BracketFlow

// BuildBracketFlow returns the winner/loser advancement graph for a bracket
// of the given size. The graph depends on size only and is memoized; the
// returned map is shared and must be treated as read-only.
func BuildBracketFlow(size models.BracketSize) models.BracketFlow {
	if cached, ok := flowCache.Load(size); ok {
		return cached.(models.BracketFlow)
	}
	flow := computeBracketFlow(size)
	actual, _ := flowCache.LoadOrStore(size, flow)
	return actual.(models.BracketFlow)
}

func computeBracketFlow(size models.BracketSize) models.BracketFlow {
	ids := GenerateMatchIDs(size)
	flow := make(models.BracketFlow)

	for r, round := range ids.Upper {
		for i, id := range round {
			var edges models.FlowEdges

			if r+1 < len(ids.Upper) {
				edges.Winner = &models.FlowTarget{MatchID: ids.Upper[r+1][i/2], Slot: i % 2}
			} else {
				edges.Winner = &models.FlowTarget{MatchID: ids.GrandFinal, Slot: 0}
			}

			// Round 0 losers pair up in lower round 0. Later upper rounds drop
			// one loser into slot 1 of the matching lower drop-in round.
			if r == 0 {
				if lr := lowerRound(ids, 0); lr != nil && i/2 < len(lr) {
					edges.Loser = &models.FlowTarget{MatchID: lr[i/2], Slot: i % 2}
				}
			} else if lr := lowerRound(ids, 2*r-1); lr != nil && i < len(lr) {
				edges.Loser = &models.FlowTarget{MatchID: lr[i], Slot: 1}
			}

			flow[id] = edges
		}
	}

	for r, round := range ids.Lower {
		for i, id := range round {
			var edges models.FlowEdges
			switch {
			case r == len(ids.Lower)-1:
				edges.Winner = &models.FlowTarget{MatchID: ids.GrandFinal, Slot: 1}
			case r%2 == 0:
				// Into the next drop-in round, facing an upper-bracket dropout.
				edges.Winner = &models.FlowTarget{MatchID: ids.Lower[r+1][i], Slot: 0}
			default:
				// Drop-in winners meet each other in the consolidation round.
				edges.Winner = &models.FlowTarget{MatchID: ids.Lower[r+1][i/2], Slot: i % 2}
			}
			flow[id] = edges
		}
	}

	flow[ids.GrandFinal] = models.FlowEdges{}
	return flow
}

func lowerRound(ids MatchIDs, r int) []string {
	if r < 0 || r >= len(ids.Lower) {
		return nil
	}
	return ids.Lower[r]
}

// Downstream returns every match reachable from matchID through winner and
// loser edges, excluding matchID itself. The walk is an iterative DFS with a
// visited set, so a match reachable along several paths is listed once.
func Downstream(flow models.BracketFlow, matchID string) []string {
	visited := map[string]bool{matchID: true}
	var out []string
	stack := []string{matchID}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		edges := flow[id]
		for _, t := range []*models.FlowTarget{edges.Winner, edges.Loser} {
			if t == nil || visited[t.MatchID] {
				continue
			}
			visited[t.MatchID] = true
			out = append(out, t.MatchID)
			stack = append(stack, t.MatchID)
		}
	}
	return out
}

// Sources inverts flow: for each receiving slot it returns the match whose
// result fills it.
func Sources(flow models.BracketFlow) map[models.FlowTarget]string {
	src := make(map[models.FlowTarget]string, 2*len(flow))
	for id, edges := range flow {
		if edges.Winner != nil {
			src[*edges.Winner] = id
		}
		if edges.Loser != nil {
			src[*edges.Loser] = id
		}
	}
	return src
}

// CanSwap reports whether the slots of matchID may be exchanged. A slot
// filled by another match's result must stay where its edge points, so only
// matches with no fed slot qualify.
func CanSwap(flow models.BracketFlow, matchID string) bool {
	sources := Sources(flow)
	for slot := 0; slot < 2; slot++ {
		if _, fed := sources[models.FlowTarget{MatchID: matchID, Slot: slot}]; fed {
			return false
		}
	}
	return true
}
