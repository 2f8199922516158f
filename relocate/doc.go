// Package relocate plans the voter transportation that realizes a chosen
// swing-state flip: which loser-held states give up residents, which swing
// states receive them, and how many move along each edge.
//
// What:
//
//   - PlanReallocation walks the swing states in the given order and
//     greedily satisfies each one's demand (margin+1 voters) from donor
//     states — the states not held by the overall winner — scanned in
//     record order.
//   - A donor can spare only margin−1 voters: it must stay won by its
//     original local winner after every transfer. Protected donors and
//     donors already at a 1-voter margin never give anyone up.
//
// Partial-failure semantics:
//
//   - If any swing state's demand cannot be fully met, the whole plan is
//     infeasible. Planning is two-phase: all arithmetic runs against a
//     scratch capacity table and the records are mutated only once every
//     swing state has cleared, so an infeasible attempt leaves the caller's
//     records untouched. The returned *InfeasibleError (errors.Is
//     ErrInfeasible) still carries the starved state, its shortfall, and
//     the transfers that would have been committed, for diagnostics.
//
// On success the input records are mutated in place — donors lose voters
// from their winning side, swing states gain voters for their trailing
// side — and the returned Plan must be read together with the mutated
// records as one consistent pair. Callers must not run concurrent planning
// passes over the same records.
//
// Errors:
//
//   - ErrInfeasible: donor capacity cannot cover some swing state's demand.
//     Expected and recoverable; branch on it, don't crash.
//   - election.ErrNoStates: no records to derive the overall winner from.
package relocate
