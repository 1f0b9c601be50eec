package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automark/pkg/dfa"
	"github.com/spf13/cobra"
)

var witnessCmd = &cobra.Command{
	Use:   "witness <spec.yaml>",
	Short: "Find an example string the automaton accepts",
	Long:  `Breadth-first searches the automaton for the first reachable accepting state and prints the string that gets there. With --reject, searches for a rejected string instead.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reject, _ := cmd.Flags().GetBool("reject")

		automaton := dfa.New()
		if res := automaton.LoadFile(args[0]); !res.Success {
			printJSON(res)
			os.Exit(1)
		}

		example, found, err := automaton.FindExample(!reject)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if !found {
			if reject {
				fmt.Println("No rejected string exists: the automaton accepts everything.")
			} else {
				fmt.Println("No accepted string exists: the language is empty.")
			}
			os.Exit(1)
		}

		fmt.Printf("%q\n", example)
	},
}

func init() {
	rootCmd.AddCommand(witnessCmd)
	witnessCmd.Flags().Bool("reject", false, "Search for a rejected string instead of an accepted one")
}
