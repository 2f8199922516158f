package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/ecflip/election"
	"github.com/katalvlaran/ecflip/relocate"
	"github.com/katalvlaran/ecflip/swing"
)

// Config is the TOML-backed runtime configuration of the analysis driver.
type Config struct {
	// ResultsFile is the tab-separated per-state results file to analyze.
	ResultsFile string `toml:"results_file"`
	// TotalElectoralVotes is the size of the Electoral College (538 by convention).
	TotalElectoralVotes int `toml:"total_electoral_votes"`
	// ProtectedDonors lists states that may never give up voters.
	ProtectedDonors []string `toml:"protected_donors"`
	// MaxBruteForceStates bounds the optional brute-force cross-check.
	MaxBruteForceStates int `toml:"max_brute_force_states"`
	// CrossCheck re-solves with the exhaustive oracle and compares voter counts.
	CrossCheck bool `toml:"cross_check"`
}

// defaultConfig mirrors the library defaults.
func defaultConfig() Config {
	return Config{
		ResultsFile:         "results.txt",
		TotalElectoralVotes: election.DefaultTotalElectoralVotes,
		ProtectedDonors:     relocate.DefaultOptions().ProtectedDonors,
		MaxBruteForceStates: swing.DefaultMaxBruteForceStates,
		CrossCheck:          true,
	}
}

// loadConfig decodes path over the defaults, so a partial file only
// overrides what it names.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.ResultsFile == "" {
		return Config{}, fmt.Errorf("config %s: results_file must be set", path)
	}
	if cfg.TotalElectoralVotes < 1 {
		return Config{}, fmt.Errorf("config %s: total_electoral_votes must be positive", path)
	}
	return cfg, nil
}
