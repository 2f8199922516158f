package election

// WinnerAndLoser determines the overall outcome: each state's electoral
// weight is credited to its local popular-vote winner, and the party with
// the strictly greater electoral total wins.
//
// Contracts:
//   - states must be non-empty (ErrNoStates otherwise).
//   - Only strict comparison is defined: on an exact electoral tie the
//     non-strict holder (Democrat) is reported as losing.
//
// Complexity: O(n) time, O(1) memory.
func WinnerAndLoser(states []*State) (winner, loser Party, err error) {
	if len(states) == 0 {
		return 0, 0, ErrNoStates
	}
	var demVotes, repVotes int
	for _, s := range states {
		if s.Winner() == Democrat {
			demVotes += s.ecVotes
		} else {
			repVotes += s.ecVotes
		}
	}
	if demVotes > repVotes {
		return Democrat, Republican, nil
	}
	return Republican, Democrat, nil
}

// WinnerHeldStates returns the states whose local winner is the overall
// winner, preserving input order. The result is recomputed on demand and
// shares the input's *State pointers.
//
// Complexity: O(n) time, O(n) memory.
func WinnerHeldStates(states []*State) ([]*State, error) {
	winner, _, err := WinnerAndLoser(states)
	if err != nil {
		return nil, err
	}
	held := make([]*State, 0, len(states))
	for _, s := range states {
		if s.Winner() == winner {
			held = append(held, s)
		}
	}
	return held, nil
}

// VotesToFlip returns the number of additional electoral votes the overall
// loser needs to reach the majority threshold of totalElectoralVotes (half
// the total plus one), given the weight it already holds through its own
// states.
//
// The arithmetic is (total + 2 − 2·loserHeldWeight) / 2 in integer math,
// which truncates toward zero for odd totals and negative results alike.
// A non-positive result means the loser already meets the threshold — no
// flip is needed; callers must screen for that before invoking a solver.
//
// Complexity: O(n) time, O(1) memory.
func VotesToFlip(states []*State, totalElectoralVotes int) (int, error) {
	winner, _, err := WinnerAndLoser(states)
	if err != nil {
		return 0, err
	}
	var loserHeld int
	for _, s := range states {
		if s.Winner() != winner {
			loserHeld += s.ecVotes
		}
	}
	return (totalElectoralVotes + 2 - 2*loserHeld) / 2, nil
}
