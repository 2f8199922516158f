package swing

import (
	"github.com/katalvlaran/ecflip/election"
	"github.com/katalvlaran/ecflip/subset"
)

// BruteForce finds a minimal-voter swing set by exhaustive search.
//
// Every subset of winnerStates is enumerated; a subset is feasible when its
// combined electoral weight reaches electoralVotesNeeded. Among feasible
// subsets the one with the fewest required voters (Σ margin+1) is returned.
// Several subsets may share the minimum; the first one in powerset
// enumeration order wins — an arbitrary but deterministic policy, and any
// minimizer is correct.
//
// Contracts:
//   - electoralVotesNeeded ≤ 0 returns the empty Selection with nil error
//     (no flip needed; the empty subset is itself feasible).
//   - len(winnerStates) must not exceed opts.MaxBruteForceStates
//     (ErrTooManyStates otherwise) — the caller owns the exponential cost.
//   - No feasible subset (target above the pool's total weight) returns
//     ErrUnattainable.
//   - winnerStates is never mutated.
//
// Complexity: O(n·2^n) time, O(n·2^n) memory.
func BruteForce(winnerStates []*election.State, electoralVotesNeeded int, opts Options) (Selection, error) {
	if electoralVotesNeeded <= 0 {
		return Selection{}, nil
	}
	ceiling := opts.MaxBruteForceStates
	if ceiling <= 0 {
		ceiling = DefaultMaxBruteForceStates
	}
	if len(winnerStates) > ceiling {
		return Selection{}, ErrTooManyStates
	}

	var (
		best  Selection
		found bool
	)
	for _, combo := range subset.All(winnerStates) {
		var weight, voters int
		for _, s := range combo {
			weight += s.ElectoralVotes()
			voters += s.Margin() + 1
		}
		if weight < electoralVotesNeeded {
			continue
		}
		if !found || voters < best.VotersRequired {
			best = Selection{States: combo, ElectoralVotes: weight, VotersRequired: voters}
			found = true
		}
	}
	if !found {
		return Selection{}, ErrUnattainable
	}
	return best, nil
}
