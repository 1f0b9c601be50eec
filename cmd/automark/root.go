package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automark",
	Short: "automark is a DFA engine for grading automaton exercises",
	Long:  `automark loads, checks and grades deterministic finite automatons described in simple YAML specifications.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("challenges", "", "Directory containing stored challenge manifests")
}
