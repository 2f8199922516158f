// Package ecflip analyzes a simplified U.S.-style two-party election and
// computes minimal-disruption ways to flip its outcome by relocating voters
// between states.
//
// 🚀 What is ecflip?
//
//	A small, deterministic optimization library that brings together:
//		• Election model: per-state popular votes + Electoral-College weights
//		• Powerset search: exhaustive minimal-voter swing-state selection
//		• Knapsack selection: memoized weight-bounded 0/1 selector with a
//		  complement trick that derives minimal swing sets efficiently
//		• Reallocation planning: constrained greedy voter transportation
//		  from loser-held donor states into the chosen swing states
//
// ✨ Why choose ecflip?
//
//   - Deterministic – identical inputs yield identical answers (tie-break
//     policies are documented, arbitrary, and stable)
//   - Honest failure – unattainable targets and infeasible reallocations are
//     reported as sentinel errors, never silently approximated
//   - Pure core – the algorithm packages do no I/O and hold no global state
//
// Everything is organized under four subpackages plus a CLI:
//
//	election/   — StateRecord model, winner/loser, votes-to-flip, TSV loader
//	subset/     — generic powerset enumeration
//	swing/      — brute-force and knapsack swing-state solvers
//	relocate/   — donor→swing voter transportation planner
//	cmd/ecflip/ — end-to-end analysis driver (TOML config, logrus, color)
//
// Quick pipeline:
//
//	states  → election.WinnerAndLoser / election.VotesToFlip
//	        → swing.MinVoters (or swing.BruteForce cross-check)
//	        → relocate.PlanReallocation
//	        → Plan{TotalMoved, Transfers, ElectoralVotesGained}
//
//	go get github.com/katalvlaran/ecflip
package ecflip
