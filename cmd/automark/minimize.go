package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automark/pkg/dfa"
	"github.com/spf13/cobra"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize <spec.yaml>",
	Short: "Report the automaton's minimal state count",
	Long:  `Computes the number of Myhill-Nerode equivalence classes: the state count of the automaton's canonical minimal form. The automaton itself is left untouched.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		automaton := dfa.New()
		if res := automaton.LoadFile(args[0]); !res.Success {
			printJSON(res)
			os.Exit(1)
		}

		minimal, err := automaton.MinimalStateCount()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("states: %d\n", automaton.StateCount())
		fmt.Printf("minimal states: %d\n", minimal)
	},
}

func init() {
	rootCmd.AddCommand(minimizeCmd)
}
