package models

// FlowTarget is the slot of a downstream match that receives a team.
type FlowTarget struct {
	MatchID string `json:"matchId"`
	Slot    int    `json:"slot"`
}

type FlowEdges struct {
	Winner *FlowTarget `json:"winner,omitempty"`
	Loser  *FlowTarget `json:"loser,omitempty"`
}

// BracketFlow maps a match id to where its winner and loser advance.
type BracketFlow map[string]FlowEdges
