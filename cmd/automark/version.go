package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/automark"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of automark",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("automark version %s\n", strings.TrimSpace(automark.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
