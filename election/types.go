// Package election defines core types and sentinel errors for the election
// model shared by every solver in github.com/katalvlaran/ecflip.
package election

import "errors"

// Sentinel errors for election operations.
var (
	// ErrNoStates indicates an operation was invoked on zero records.
	ErrNoStates = errors.New("election: at least one state record is required")
	// ErrBadRecord indicates invalid constructor input or a malformed results line.
	ErrBadRecord = errors.New("election: invalid state record")
	// ErrBadTransfer indicates a voter mutation that would corrupt a vote total.
	ErrBadTransfer = errors.New("election: transfer would corrupt vote totals")
)

// DefaultTotalElectoralVotes is the conventional Electoral-College size.
const DefaultTotalElectoralVotes = 538

// Party identifies one of the two sides of the race.
type Party uint8

const (
	// Democrat is side A of the race.
	Democrat Party = iota
	// Republican is side B of the race.
	Republican
)

// String returns the short party label ("dem" or "rep").
func (p Party) String() string {
	if p == Democrat {
		return "dem"
	}
	return "rep"
}

// Opponent returns the other party.
func (p Party) Opponent() Party {
	if p == Democrat {
		return Republican
	}
	return Democrat
}

// State is one per-state record: popular-vote totals for both parties and a
// fixed Electoral-College weight. Vote totals are mutable only through
// RemoveWinningVoters and AddLosingVoters; the weight is fixed for the
// record's lifetime.
type State struct {
	name     string
	demVotes int
	repVotes int
	ecVotes  int
}

// NewState validates and builds a record. The name must be non-empty, both
// vote totals non-negative, and the electoral weight positive; violations
// return ErrBadRecord.
func NewState(name string, demVotes, repVotes, ecVotes int) (*State, error) {
	if name == "" || demVotes < 0 || repVotes < 0 || ecVotes < 1 {
		return nil, ErrBadRecord
	}
	return &State{name: name, demVotes: demVotes, repVotes: repVotes, ecVotes: ecVotes}, nil
}

// Name returns the state's short identifier (2-letter code in the stock data).
func (s *State) Name() string { return s.name }

// ElectoralVotes returns the state's fixed Electoral-College weight.
func (s *State) ElectoralVotes() int { return s.ecVotes }

// PopularVotes returns the current popular-vote total for p.
func (s *State) PopularVotes(p Party) int {
	if p == Democrat {
		return s.demVotes
	}
	return s.repVotes
}

// Winner returns the party with strictly more popular votes in this state.
// Exact ties are not modeled; a tied state reports Republican.
func (s *State) Winner() Party {
	if s.demVotes > s.repVotes {
		return Democrat
	}
	return Republican
}

// Margin returns the absolute popular-vote difference between the parties.
// It is recomputed on every call, so it is always consistent with the
// current totals. Flipping the state requires Margin()+1 new voters.
func (s *State) Margin() int {
	if s.demVotes > s.repVotes {
		return s.demVotes - s.repVotes
	}
	return s.repVotes - s.demVotes
}

// RemoveWinningVoters subtracts n voters from the side currently winning
// this state. Used on donor states, whose residents leave the local
// majority. Returns ErrBadTransfer if n is negative or exceeds the winning
// side's total.
func (s *State) RemoveWinningVoters(n int) error {
	if n < 0 {
		return ErrBadTransfer
	}
	if s.Winner() == Democrat {
		if n > s.demVotes {
			return ErrBadTransfer
		}
		s.demVotes -= n
		return nil
	}
	if n > s.repVotes {
		return ErrBadTransfer
	}
	s.repVotes -= n
	return nil
}

// AddLosingVoters adds n voters to the side currently trailing in this
// state. Used on swing states, where arriving voters register for the local
// loser. Returns ErrBadTransfer if n is negative.
func (s *State) AddLosingVoters(n int) error {
	if n < 0 {
		return ErrBadTransfer
	}
	if s.Winner() == Democrat {
		s.repVotes += n
		return nil
	}
	s.demVotes += n
	return nil
}
