package models

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	BracketTypeSingleElimination = "single-elimination"
	BracketTypeDoubleElimination = "double-elimination"
)

var ErrUnsupportedBracketSize = errors.New("unsupported bracket size")

// BracketSize is the number of first-round slots of an elimination bracket.
type BracketSize int

const (
	BracketSize4  BracketSize = 4
	BracketSize8  BracketSize = 8
	BracketSize16 BracketSize = 16
	BracketSize32 BracketSize = 32
	BracketSize64 BracketSize = 64
)

var SupportedBracketSizes = []BracketSize{BracketSize4, BracketSize8, BracketSize16, BracketSize32, BracketSize64}

func (s BracketSize) Valid() bool {
	for _, v := range SupportedBracketSizes {
		if s == v {
			return true
		}
	}
	return false
}

// UpperRounds is log2(size).
func (s BracketSize) UpperRounds() int {
	return bits.TrailingZeros(uint(s))
}

func ParseBracketSize(n int) (BracketSize, error) {
	s := BracketSize(n)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d (supported: 4, 8, 16, 32, 64)", ErrUnsupportedBracketSize, n)
	}
	return s, nil
}

// NextBracketSize returns the smallest supported size that fits teamCount.
func NextBracketSize(teamCount int) (BracketSize, error) {
	for _, s := range SupportedBracketSizes {
		if teamCount <= int(s) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %d teams exceed the largest bracket", ErrUnsupportedBracketSize, teamCount)
}

type Round struct {
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
}

func (r Round) Clone() Round {
	c := Round{Name: r.Name, Matches: make([]Match, len(r.Matches))}
	for i, m := range r.Matches {
		c.Matches[i] = m.Clone()
	}
	return c
}

type DoubleEliminationBracket struct {
	Type       string  `json:"type"`
	Upper      []Round `json:"upper"`
	Lower      []Round `json:"lower"`
	GrandFinal *Match  `json:"grandFinal,omitempty"`
}

type SingleEliminationBracket struct {
	Type   string  `json:"type"`
	Rounds []Round `json:"rounds"`
}

// Clone returns a deep copy sharing no memory with b.
func (b *DoubleEliminationBracket) Clone() *DoubleEliminationBracket {
	if b == nil {
		return nil
	}
	c := &DoubleEliminationBracket{
		Type:  b.Type,
		Upper: cloneRounds(b.Upper),
		Lower: cloneRounds(b.Lower),
	}
	if b.GrandFinal != nil {
		gf := b.GrandFinal.Clone()
		c.GrandFinal = &gf
	}
	return c
}

// Size derives the bracket size from the first upper round. It is 0 for an
// empty bracket.
func (b *DoubleEliminationBracket) Size() BracketSize {
	if b == nil || len(b.Upper) == 0 {
		return 0
	}
	return BracketSize(2 * len(b.Upper[0].Matches))
}

func cloneRounds(rounds []Round) []Round {
	if rounds == nil {
		return nil
	}
	out := make([]Round, len(rounds))
	for i, r := range rounds {
		out[i] = r.Clone()
	}
	return out
}

// Matches returns pointers to every match in upper, lower, grand final order.
// The pointers alias b.
func (b *DoubleEliminationBracket) Matches() []*Match {
	var out []*Match
	for ri := range b.Upper {
		for mi := range b.Upper[ri].Matches {
			out = append(out, &b.Upper[ri].Matches[mi])
		}
	}
	for ri := range b.Lower {
		for mi := range b.Lower[ri].Matches {
			out = append(out, &b.Lower[ri].Matches[mi])
		}
	}
	if b.GrandFinal != nil {
		out = append(out, b.GrandFinal)
	}
	return out
}

// FindMatch returns the match with the given id, aliasing b, or nil.
func (b *DoubleEliminationBracket) FindMatch(id string) *Match {
	for _, m := range b.Matches() {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// ReplaceMatch swaps in updated for the match with the same id. It reports
// whether a match was replaced.
func (b *DoubleEliminationBracket) ReplaceMatch(updated Match) bool {
	m := b.FindMatch(updated.ID)
	if m == nil {
		return false
	}
	*m = updated
	return true
}
