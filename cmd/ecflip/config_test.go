package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ecflip/election"
	"github.com/katalvlaran/ecflip/swing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Full decodes every field.
func TestLoadConfig_Full(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "ecflip.toml"))
	require.NoError(t, err)

	assert.Equal(t, "2012_results.txt", cfg.ResultsFile)
	assert.Equal(t, election.DefaultTotalElectoralVotes, cfg.TotalElectoralVotes)
	assert.Equal(t, []string{"AL", "AZ", "CA", "TX"}, cfg.ProtectedDonors)
	assert.Equal(t, 16, cfg.MaxBruteForceStates)
	assert.True(t, cfg.CrossCheck)
}

// TestLoadConfig_PartialKeepsDefaults: unnamed keys keep library defaults.
func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "partial.toml"))
	require.NoError(t, err)

	assert.Equal(t, "toy_results.txt", cfg.ResultsFile)
	assert.False(t, cfg.CrossCheck)
	assert.Equal(t, election.DefaultTotalElectoralVotes, cfg.TotalElectoralVotes)
	assert.Equal(t, swing.DefaultMaxBruteForceStates, cfg.MaxBruteForceStates)
	assert.Equal(t, []string{"AL", "AZ", "CA", "TX"}, cfg.ProtectedDonors)
}

// TestLoadConfig_Invalid rejects missing files and bad values.
func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("results_file = \"\"\n"), 0o644))
	_, err = loadConfig(bad)
	assert.ErrorContains(t, err, "results_file")

	bad2 := filepath.Join(dir, "bad2.toml")
	require.NoError(t, os.WriteFile(bad2,
		[]byte("results_file = \"r.txt\"\ntotal_electoral_votes = 0\n"), 0o644))
	_, err = loadConfig(bad2)
	assert.ErrorContains(t, err, "total_electoral_votes")
}
