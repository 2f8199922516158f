// Package swing defines the shared solver output type, options, and
// sentinel errors.
package swing

import (
	"errors"

	"github.com/katalvlaran/ecflip/election"
)

// Sentinel errors for swing-state solvers.
var (
	// ErrTooManyStates indicates the winner-held pool exceeds the
	// brute-force ceiling; the exponential scan is refused, not attempted.
	ErrTooManyStates = errors.New("swing: state pool exceeds brute-force ceiling")
	// ErrUnattainable indicates the electoral-vote target exceeds what the
	// state pool can supply even if every state flipped.
	ErrUnattainable = errors.New("swing: electoral-vote target unattainable from state pool")
)

// DefaultMaxBruteForceStates caps the brute-force pool at 2^20 subsets.
const DefaultMaxBruteForceStates = 20

// Selection is the shared output of both solvers: a chosen subset of
// winner-held states annotated with its combined electoral weight and the
// voters required to flip every member (Σ margin+1). The zero value is the
// empty selection.
type Selection struct {
	// States are the chosen records, in input order, aliasing the caller's
	// records (never copies).
	States []*election.State
	// ElectoralVotes is Σ ElectoralVotes over States.
	ElectoralVotes int
	// VotersRequired is Σ (Margin+1) over States: the relocated voters
	// needed to flip every chosen state.
	VotersRequired int
}

// Options tunes solver behavior.
type Options struct {
	// MaxBruteForceStates is the largest winner-held pool BruteForce will
	// accept before refusing with ErrTooManyStates. Values ≤ 0 fall back
	// to DefaultMaxBruteForceStates.
	MaxBruteForceStates int
}

// DefaultOptions returns the stock solver configuration.
func DefaultOptions() Options {
	return Options{MaxBruteForceStates: DefaultMaxBruteForceStates}
}

// add folds one state into the selection.
func (sel *Selection) add(s *election.State) {
	sel.States = append(sel.States, s)
	sel.ElectoralVotes += s.ElectoralVotes()
	sel.VotersRequired += s.Margin() + 1
}
