package election_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ecflip/election"
)

// ExampleVotesToFlip walks the model end to end: load a toy results file,
// name the outcome, and compute the loser's electoral-vote deficit.
func ExampleVotesToFlip() {
	results := "State\tDem\tRep\tEC\n" +
		"AA\t60\t40\t8\n" +
		"BB\t45\t55\t5\n" +
		"CC\t70\t30\t3\n" +
		"DD\t20\t80\t4\n"

	states, err := election.LoadResults(strings.NewReader(results))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	winner, loser, _ := election.WinnerAndLoser(states)
	need, _ := election.VotesToFlip(states, 20)
	held, _ := election.WinnerHeldStates(states)

	fmt.Printf("winner=%s loser=%s\n", winner, loser)
	fmt.Printf("winner-held states=%d\n", len(held))
	fmt.Printf("electoral votes to flip=%d\n", need)
	// Output:
	// winner=dem loser=rep
	// winner-held states=2
	// electoral votes to flip=2
}
