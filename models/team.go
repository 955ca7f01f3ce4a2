package models

import (
	"strconv"
	"strings"
)

const (
	ByeTeamID   = "bye"
	ByeTeamName = "BYE"
	ByeSeed     = 999
)

type Team struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Seed *int    `json:"seed,omitempty" yaml:"seed,omitempty"`
	Logo *string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// NewByeTeam returns a padding opponent. Padding ids are "bye-<index>".
func NewByeTeam(index int) Team {
	seed := ByeSeed
	return Team{
		ID:   ByeTeamID + "-" + strconv.Itoa(index),
		Name: ByeTeamName,
		Seed: &seed,
	}
}

// IsBye reports whether t is a BYE placeholder. A nil team is not a BYE.
func (t *Team) IsBye() bool {
	if t == nil {
		return false
	}
	return t.ID == ByeTeamID || strings.HasPrefix(t.ID, ByeTeamID+"-")
}

// SeedOrWorst returns the seed, or ByeSeed when none is set.
func (t Team) SeedOrWorst() int {
	if t.Seed == nil {
		return ByeSeed
	}
	return *t.Seed
}

func (t Team) Clone() Team {
	c := t
	if t.Seed != nil {
		s := *t.Seed
		c.Seed = &s
	}
	if t.Logo != nil {
		l := *t.Logo
		c.Logo = &l
	}
	return c
}

func CloneTeams(teams []Team) []Team {
	if teams == nil {
		return nil
	}
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = t.Clone()
	}
	return out
}

func IntPtr(v int) *int { return &v }
