package swing_test

import (
	"testing"

	"github.com/katalvlaran/ecflip/election"
	"github.com/stretchr/testify/require"
)

// demState builds a Democrat-won record with the given margin and weight;
// solver fixtures only care about Margin and ElectoralVotes.
func demState(t *testing.T, name string, margin, weight int) *election.State {
	t.Helper()
	s, err := election.NewState(name, 100+margin, 100, weight)
	require.NoError(t, err, "fixture state %s must be valid", name)
	return s
}

// names projects a selection's states to their identifiers for assertions.
func names(states []*election.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.Name()
	}
	return out
}
