package windowfinder

import (
	"context"
)

// Disambiguator decides which candidate to use when the keyword search
// matched more than one window. The decision point is pluggable: it can be
// an automatic tie-break or a human choice.
type Disambiguator interface {
	Pick(ctx context.Context, candidates []Candidate) (*Candidate, error)
}

// AutoPick resolves ties without asking anyone: the candidate with the
// best keyword priority wins, enumeration order breaks the remaining ties.
type AutoPick struct{}

var _ Disambiguator = AutoPick{}

func (AutoPick) Pick(ctx context.Context, candidates []Candidate) (*Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[0], nil
}
