package models

// GroupStanding is a team's row in a round-robin group table.
type GroupStanding struct {
	Team         Team `json:"team"`
	Played       int  `json:"played"`
	Wins         int  `json:"wins"`
	Losses       int  `json:"losses"`
	Draws        int  `json:"draws"`
	Points       int  `json:"points"`
	ScoreFor     int  `json:"scoreFor"`
	ScoreAgainst int  `json:"scoreAgainst"`
	Differential int  `json:"differential"`
}

type Group struct {
	Name      string          `json:"name"`
	Teams     []Team          `json:"teams"`
	Matches   []Match         `json:"matches"`
	Standings []GroupStanding `json:"standings"`
}

type GroupStageBracket struct {
	Type   string  `json:"type"`
	Groups []Group `json:"groups"`
}

const BracketTypeGroupStage = "group-stage"
