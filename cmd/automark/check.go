package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/automark/pkg/dfa"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <spec.yaml> <string>",
	Short: "Evaluate a string against an automaton specification",
	Long:  `Loads the specification, reports any validation errors, and otherwise prints whether the automaton accepts the given string.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		automaton := dfa.New()
		if res := automaton.LoadFile(args[0]); !res.Success {
			printJSON(res)
			os.Exit(1)
		}

		result, err := automaton.Accepts(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		printJSON(result)
		if !result.Success {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
