// Package swing selects minimal sets of winner-held states ("swing states")
// whose flip would change the overall election outcome.
//
// What:
//
//   - BruteForce scans every subset of the winner-held states and keeps the
//     cheapest feasible one (Σ electoral weight ≥ target, minimize
//     Σ margin+1 voters).
//   - MaxVoterSubset is a memoized 0/1 knapsack: maximize Σ margin+1 over
//     subsets whose combined electoral weight stays within a bound.
//   - MinVoters derives the minimal swing set from MaxVoterSubset by
//     complementation: the states *excluded* from the maximum-value bounded
//     selection (bound = total winner-held weight − target) are exactly a
//     minimal-voter swing set.
//
// Why two solvers:
//
//   - BruteForce is the oracle: obviously correct, exponentially priced,
//     refused above a configured pool ceiling.
//   - MinVoters answers the same question in O(n·W) and is the production
//     path; the pair cross-check each other on VotersRequired.
//
// Tie-breaking (documented, arbitrary, deterministic):
//
//   - BruteForce keeps the first minimizer in powerset enumeration order.
//   - MaxVoterSubset includes a state only when inclusion is strictly
//     better — ties favor exclusion. Either policy affects which exact set
//     is returned, never its voter count.
//
// Errors:
//
//   - ErrTooManyStates: the brute-force pool exceeds Options ceiling.
//   - ErrUnattainable: the target exceeds what the pool can supply; this is
//     distinct from a target ≤ 0, which short-circuits to an empty
//     Selection with no error ("no flip needed").
//
// All operations are pure with respect to the records: solvers never mutate
// vote totals. The memo table lives inside a single invocation — there is
// no process-wide cache to collide across unrelated problem instances.
package swing
