// Package election models a simplified two-party, winner-take-all election:
// each state carries popular-vote totals for both parties and a fixed
// Electoral-College weight, and every electoral vote of a state goes to the
// party with the strict popular-vote majority there.
//
// What:
//
//   - State wraps one per-state record with validated, non-negative vote
//     totals and a positive electoral weight.
//   - WinnerAndLoser sums electoral weight per local winner and orders the
//     parties (majority, minority).
//   - WinnerHeldStates filters the records held by the overall winner.
//   - VotesToFlip computes how many additional electoral votes the overall
//     loser needs to reach the majority threshold (half the total plus one).
//   - LoadResults / LoadResultsFile parse the tab-separated results format
//     (one header line, then Name \t DemVotes \t RepVotes \t Weight).
//
// Why:
//
//   - Every solver and planner in this module consumes this model; it is the
//     leaf package with no dependencies beyond the standard library.
//
// Invariants:
//
//   - Vote totals never go negative; the two mutators are the only write
//     path and reject transfers that would break the invariant.
//   - Margin and local winner are recomputed on demand, never cached.
//   - Exact popular-vote ties are not modeled; Winner of a tied state
//     reports Republican (the non-strict side loses the comparison).
//
// Errors:
//
//   - ErrNoStates: an operation was asked to summarize zero records.
//   - ErrBadRecord: malformed constructor input or results line.
//   - ErrBadTransfer: a mutator call that would corrupt a vote total.
package election
