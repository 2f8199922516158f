package relocate

import (
	"github.com/katalvlaran/ecflip/election"
)

// pending is one computed-but-uncommitted donation out of a donor state.
type pending struct {
	donor  *election.State
	amount int
}

// arrival is a swing state's total computed-but-uncommitted inflow.
type arrival struct {
	recipient *election.State
	voters    int
}

// PlanReallocation computes a voter-transportation plan that flips every
// state in swingStates, drawing donors from the states not held by the
// overall winner of states.
//
// Processing order: swing states in the order given; for each, donors in
// states order (restricted to non-winner-held records), skipping protected
// names and donors without slack. Each donor gives
// min(slack, remaining demand); its slack never drops below zero, which
// keeps its margin pinned at ≥ 1 — a donor must remain won by its original
// local winner. A swing state's demand is its margin+1 at planning time.
//
// Two-phase commit: demand satisfaction is proven against a scratch slack
// table first; the records are mutated (donors lose winning-side voters,
// recipients gain trailing-side voters) only after every swing state has
// cleared. An infeasible attempt therefore leaves states untouched and
// returns *InfeasibleError wrapping ErrInfeasible, carrying the starved
// state, its shortfall, and the would-be transfers for diagnostics.
//
// Contracts:
//   - swingStates must be winner-held records drawn from states; the donor
//     pool and the swing set are disjoint by construction.
//   - The caller owns states exclusively for the duration of the call; the
//     planner is not safe for concurrent passes over shared records.
//   - A returned Plan is immutable; the mutated records pair with it.
//
// Complexity: O(len(swingStates)·len(states)) time, O(states) memory.
func PlanReallocation(states []*election.State, swingStates []*election.State, opts Options) (*Plan, error) {
	winner, _, err := election.WinnerAndLoser(states)
	if err != nil {
		return nil, err
	}

	protected := make(map[string]struct{}, len(opts.ProtectedDonors))
	for _, name := range opts.ProtectedDonors {
		protected[name] = struct{}{}
	}

	// Donor pool: non-winner-held records in input order, each with
	// slack = margin−1 (a donor may shrink to a 1-voter margin, never 0).
	var (
		donors []*election.State
		slack  []int
	)
	for _, s := range states {
		if s.Winner() == winner {
			continue
		}
		donors = append(donors, s)
		slack = append(slack, s.Margin()-1)
	}

	plan := &Plan{Transfers: make(map[Transfer]int)}
	var (
		departures []pending
		arrivals   []arrival
	)

	for _, sw := range swingStates {
		demand := sw.Margin() + 1
		arrivals = append(arrivals, arrival{recipient: sw, voters: demand})
		for i, d := range donors {
			if demand == 0 {
				break
			}
			if _, ok := protected[d.Name()]; ok {
				continue
			}
			if slack[i] <= 0 {
				continue
			}
			give := slack[i]
			if give > demand {
				give = demand
			}
			slack[i] -= give
			demand -= give
			departures = append(departures, pending{donor: d, amount: give})
			plan.Transfers[Transfer{From: d.Name(), To: sw.Name()}] += give
			plan.TotalMoved += give
		}
		if demand > 0 {
			return nil, &InfeasibleError{
				StarvedState: sw.Name(),
				Shortfall:    demand,
				Transfers:    plan.Transfers,
			}
		}
		plan.ElectoralVotesGained += sw.ElectoralVotes()
	}

	// Every swing state cleared: commit the mutations in planning order.
	// Each recipient's inflow lands as one margin+1 add, crossing the exact
	// popular-vote tie atomically so every relocated voter registers for the
	// state's original trailing side.
	for _, c := range departures {
		if err = c.donor.RemoveWinningVoters(c.amount); err != nil {
			return nil, err
		}
	}
	for _, a := range arrivals {
		if err = a.recipient.AddLosingVoters(a.voters); err != nil {
			return nil, err
		}
	}
	return plan, nil
}
