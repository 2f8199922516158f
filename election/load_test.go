package election_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ecflip/election"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResults = "State\tDemocrat\tRepublican\tEC\n" +
	"MA\t1995196\t1188314\t11\n" +
	"TX\t3308124\t4685047\t38\n" +
	"\n" +
	"WI\t1382536\t1407028\t10\n"

// TestLoadResults_WellFormed parses a small results file, skipping blanks.
func TestLoadResults_WellFormed(t *testing.T) {
	states, err := election.LoadResults(strings.NewReader(sampleResults))
	require.NoError(t, err)
	require.Len(t, states, 3)

	assert.Equal(t, "MA", states[0].Name())
	assert.Equal(t, 1995196, states[0].PopularVotes(election.Democrat))
	assert.Equal(t, 1188314, states[0].PopularVotes(election.Republican))
	assert.Equal(t, 11, states[0].ElectoralVotes())
	assert.Equal(t, election.Democrat, states[0].Winner())

	assert.Equal(t, election.Republican, states[1].Winner())
	assert.Equal(t, 24492, states[2].Margin())
}

// TestLoadResults_HeaderOnly yields an empty, valid record list.
func TestLoadResults_HeaderOnly(t *testing.T) {
	states, err := election.LoadResults(strings.NewReader("State\tDem\tRep\tEC\n"))
	require.NoError(t, err)
	assert.Empty(t, states)
}

// TestLoadResults_Malformed covers missing header, short lines, and
// non-numeric fields; every failure wraps ErrBadRecord.
func TestLoadResults_Malformed(t *testing.T) {
	_, err := election.LoadResults(strings.NewReader(""))
	assert.ErrorIs(t, err, election.ErrBadRecord, "empty input has no header")

	_, err = election.LoadResults(strings.NewReader("header\nMA\t10\t20\n"))
	assert.ErrorIs(t, err, election.ErrBadRecord, "three fields is one short")

	_, err = election.LoadResults(strings.NewReader("header\nMA\t10\ttwenty\t5\n"))
	assert.ErrorIs(t, err, election.ErrBadRecord, "non-numeric vote count")

	_, err = election.LoadResults(strings.NewReader("header\nMA\t10\t20\t0\n"))
	assert.ErrorIs(t, err, election.ErrBadRecord, "zero electoral weight")

	_, err = election.LoadResults(strings.NewReader("header\nMA\t10\t20\t5\tstray\n"))
	assert.ErrorIs(t, err, election.ErrBadRecord,
		"a fifth column rides along in the weight field and fails the parse")
}

// TestLoadResultsFile_Missing surfaces the underlying open error.
func TestLoadResultsFile_Missing(t *testing.T) {
	_, err := election.LoadResultsFile(t.TempDir() + "/absent.txt")
	assert.Error(t, err)
}
