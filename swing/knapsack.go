package swing

import "github.com/katalvlaran/ecflip/election"

// memoKey addresses one subproblem: the suffix starting at index and the
// electoral weight still spendable. Keying by index into the shared slice
// (never by re-sliced copies) keeps equal-looking subproblems from distinct
// invocations apart — the memo itself lives only inside one call.
type memoKey struct {
	index int
	bound int
}

// memoEntry records a subproblem's optimal value and whether the state at
// its index is included in that optimum.
type memoEntry struct {
	value int
	take  bool
}

// selector owns the state of a single MaxVoterSubset invocation.
type selector struct {
	states []*election.State
	memo   map[memoKey]memoEntry
}

// MaxVoterSubset solves the weight-bounded 0/1 selection problem: choose a
// subset of winnerStates whose combined electoral weight stays ≤
// weightBound while maximizing the combined voters-to-flip value
// (Σ margin+1).
//
// This is the knapsack analogy of the original problem: each state weighs
// its electoral votes and is valued at margin+1 displaced voters. The
// chosen subset is the set of states the loser can afford to *leave alone*;
// its complement (see MinVoters) is a minimal swing set.
//
// Algorithm: top-down recursion over the state sequence by index, memoized
// on (index, remaining bound). Per state, either it exceeds the remaining
// bound (forced exclusion) or the better of include/exclude is taken, with
// ties favoring exclusion — a documented, arbitrary policy that picks which
// exact set is returned, never its value.
//
// Contracts:
//   - A negative weightBound is treated as 0 (nothing fits).
//   - winnerStates is never mutated; returned States alias the input.
//   - Deterministic: repeated calls return the identical selection.
//
// Complexity: O(n·W) memoized subproblems (W = distinct bounds reached),
// O(1) work per subproblem beyond two lookups; O(n·W) memory.
func MaxVoterSubset(winnerStates []*election.State, weightBound int) Selection {
	if weightBound < 0 {
		weightBound = 0
	}
	sel := &selector{
		states: winnerStates,
		memo:   make(map[memoKey]memoEntry),
	}
	sel.solve(0, weightBound)
	return sel.reconstruct(weightBound)
}

// solve returns the optimal value for the suffix states[i:] under bound b,
// filling the memo along the way.
func (sel *selector) solve(i, b int) int {
	if i == len(sel.states) || b <= 0 {
		return 0
	}
	key := memoKey{index: i, bound: b}
	if e, ok := sel.memo[key]; ok {
		return e.value
	}

	var e memoEntry
	st := sel.states[i]
	if st.ElectoralVotes() > b {
		// Too heavy for the remaining bound: forced exclusion.
		e.value = sel.solve(i+1, b)
	} else {
		with := st.Margin() + 1 + sel.solve(i+1, b-st.ElectoralVotes())
		without := sel.solve(i+1, b)
		if with > without {
			e = memoEntry{value: with, take: true}
		} else {
			// Ties favor exclusion.
			e.value = without
		}
	}
	sel.memo[key] = e
	return e.value
}

// reconstruct replays the memoized decisions from the top to materialize
// the chosen subset in input order.
func (sel *selector) reconstruct(bound int) Selection {
	var out Selection
	b := bound
	for i := 0; i < len(sel.states) && b > 0; i++ {
		st := sel.states[i]
		if st.ElectoralVotes() > b {
			continue
		}
		if sel.memo[memoKey{index: i, bound: b}].take {
			out.add(st)
			b -= st.ElectoralVotes()
		}
	}
	return out
}

// MinVoters finds a minimal-voter swing set via the complement formulation:
// with bound = total winner-held weight − electoralVotesNeeded, the states
// excluded from the maximum-value bounded selection are exactly a swing set
// that reaches the target with the fewest relocated voters.
//
// Contracts:
//   - electoralVotesNeeded ≤ 0 returns the empty Selection with nil error
//     (no flip needed); callers must screen this case themselves before
//     reading meaning into an empty result.
//   - electoralVotesNeeded greater than the pool's total weight returns
//     ErrUnattainable — the flip is impossible from this pool, which is a
//     different outcome than "no flip needed".
//   - Agrees with BruteForce on VotersRequired and ElectoralVotes for every
//     input (the exact state sets may differ under ties).
//   - winnerStates is never mutated.
//
// Complexity: that of MaxVoterSubset plus an O(n) complement pass.
func MinVoters(winnerStates []*election.State, electoralVotesNeeded int) (Selection, error) {
	if electoralVotesNeeded <= 0 {
		return Selection{}, nil
	}
	var totalWeight int
	for _, s := range winnerStates {
		totalWeight += s.ElectoralVotes()
	}
	if electoralVotesNeeded > totalWeight {
		return Selection{}, ErrUnattainable
	}

	kept := MaxVoterSubset(winnerStates, totalWeight-electoralVotesNeeded)
	keptSet := make(map[*election.State]struct{}, len(kept.States))
	for _, s := range kept.States {
		keptSet[s] = struct{}{}
	}

	var sel Selection
	for _, s := range winnerStates {
		if _, ok := keptSet[s]; ok {
			continue
		}
		sel.add(s)
	}
	return sel, nil
}
