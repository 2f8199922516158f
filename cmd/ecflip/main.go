// Command ecflip loads a per-state results file, determines the election
// outcome, selects a minimal swing-state set, and plans the voter
// reallocation that would flip the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"sort"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/ecflip/election"
	"github.com/katalvlaran/ecflip/relocate"
	"github.com/katalvlaran/ecflip/swing"
)

func main() {
	cfgPath := flag.String("config", "ecflip.toml", "path to the TOML configuration file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("configuration")
	}
	if err = run(cfg); err != nil {
		log.WithError(err).Fatal("analysis failed")
	}
}

func run(cfg Config) error {
	states, err := election.LoadResultsFile(cfg.ResultsFile)
	if err != nil {
		return err
	}

	winner, loser, err := election.WinnerAndLoser(states)
	if err != nil {
		return err
	}
	need, err := election.VotesToFlip(states, cfg.TotalElectoralVotes)
	if err != nil {
		return err
	}
	held, err := election.WinnerHeldStates(states)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"states":      len(states),
		"winner":      winner.String(),
		"loser":       loser.String(),
		"winner_held": len(held),
		"ec_needed":   need,
	}).Info("election loaded")

	color.Cyan("winner: %s  loser: %s", winner, loser)
	if need <= 0 {
		color.Green("the %s side already meets the majority threshold; no flip needed", loser)
		return nil
	}

	sel, err := swing.MinVoters(held, need)
	if errors.Is(err, swing.ErrUnattainable) {
		color.Red("flipping %d electoral votes is unattainable from the winner-held pool", need)
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.CrossCheck {
		if err = crossCheck(held, need, cfg, sel); err != nil {
			return err
		}
	}

	color.Yellow("swing states (%d voters for %d electoral votes):",
		sel.VotersRequired, sel.ElectoralVotes)
	for _, s := range sel.States {
		fmt.Printf("  %s  weight=%d  voters=%d\n", s.Name(), s.ElectoralVotes(), s.Margin()+1)
	}

	plan, err := relocate.PlanReallocation(states, sel.States, relocate.Options{
		ProtectedDonors: cfg.ProtectedDonors,
	})
	var infeasible *relocate.InfeasibleError
	if errors.As(err, &infeasible) {
		color.Red("reallocation infeasible: %d voters short of flipping %s",
			infeasible.Shortfall, infeasible.StarvedState)
		printTransfers(infeasible.Transfers, "would-be transfers")
		return nil
	}
	if err != nil {
		return err
	}

	color.Green("flip succeeds: %d voters moved, %d electoral votes gained",
		plan.TotalMoved, plan.ElectoralVotesGained)
	printTransfers(plan.Transfers, "transfers")

	newWinner, _, err := election.WinnerAndLoser(states)
	if err != nil {
		return err
	}
	color.Green("post-reallocation winner: %s", newWinner)
	return nil
}

// crossCheck re-solves with the exhaustive oracle; the exact sets may
// differ under ties, but the voter counts must agree.
func crossCheck(held []*election.State, need int, cfg Config, sel swing.Selection) error {
	brute, err := swing.BruteForce(held, need, swing.Options{
		MaxBruteForceStates: cfg.MaxBruteForceStates,
	})
	switch {
	case errors.Is(err, swing.ErrTooManyStates):
		log.WithField("winner_held", len(held)).Warn("pool too large; skipping brute-force cross-check")
		return nil
	case err != nil:
		return err
	case brute.VotersRequired != sel.VotersRequired:
		return fmt.Errorf("solver disagreement: brute-force wants %d voters, knapsack wants %d",
			brute.VotersRequired, sel.VotersRequired)
	}
	log.WithField("voters", brute.VotersRequired).Debug("brute-force cross-check agrees")
	return nil
}

// printTransfers renders a transfer map in a stable order.
func printTransfers(transfers map[relocate.Transfer]int, label string) {
	edges := make([]relocate.Transfer, 0, len(transfers))
	for tr := range transfers {
		edges = append(edges, tr)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}
		return edges[i].From < edges[j].From
	})
	fmt.Printf("%s:\n", label)
	for _, tr := range edges {
		fmt.Printf("  %s -> %s: %d\n", tr.From, tr.To, transfers[tr])
	}
}
