// Package relocate defines the plan types, options, and failure values of
// the voter-transportation planner.
package relocate

import (
	"errors"
	"fmt"
)

// ErrInfeasible indicates donor capacity cannot cover every swing state's
// demand under the current constraints. Returned wrapped inside
// *InfeasibleError; match it with errors.Is.
var ErrInfeasible = errors.New("relocate: donor capacity cannot satisfy swing-state demand")

// Transfer is one directed edge of a plan: voters leaving donor From for
// swing state To.
type Transfer struct {
	From string
	To   string
}

// Plan is a feasible reallocation. Immutable once returned; the records it
// was planned against are mutated in place by the same call, so a Plan and
// the post-plan records form one consistent pair.
type Plan struct {
	// TotalMoved is the sum of all transfer amounts.
	TotalMoved int
	// Transfers maps each (donor, recipient) edge to its voters moved;
	// every amount is > 0.
	Transfers map[Transfer]int
	// ElectoralVotesGained is Σ electoral weight over the flipped swing states.
	ElectoralVotesGained int
}

// InfeasibleError reports how far planning got before a swing state
// starved. The transfers it carries were computed but never applied: the
// caller's records are untouched.
type InfeasibleError struct {
	// StarvedState is the first swing state whose demand could not be met.
	StarvedState string
	// Shortfall is the demand left uncovered after every eligible donor.
	Shortfall int
	// Transfers holds the would-be transfers up to and including the
	// starved state's partial coverage.
	Transfers map[Transfer]int
}

// Error implements error.
func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("relocate: %d voters short of flipping %s", e.Shortfall, e.StarvedState)
}

// Unwrap lets errors.Is(err, ErrInfeasible) match.
func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }

// Options tunes the planner.
type Options struct {
	// ProtectedDonors lists state names that may never give up voters,
	// regardless of slack.
	ProtectedDonors []string
}

// DefaultOptions returns the stock configuration: the traditional
// do-not-touch donor list AL, AZ, CA, TX.
func DefaultOptions() Options {
	return Options{ProtectedDonors: []string{"AL", "AZ", "CA", "TX"}}
}
