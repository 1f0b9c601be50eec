package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/automark/internal/adapters/file"
	"github.com/aretw0/automark/pkg/dfa"
	"github.com/aretw0/automark/pkg/grader"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Manage stored challenge manifests",
}

var challengeAddCmd = &cobra.Command{
	Use:   "add <manifest.yaml>",
	Short: "Store a challenge manifest",
	Long:  `Reads a challenge manifest (id, title, description, reference) and stores it in the challenge directory. The reference solution is validated before storing.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runChallengeAdd(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var challengeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored challenges",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("challenges")
		store := file.New(dir)

		ids, err := store.List(context.Background())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(challengeCmd)
	challengeCmd.AddCommand(challengeAddCmd)
	challengeCmd.AddCommand(challengeListCmd)
}

func runChallengeAdd(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var challenge grader.Challenge
	if err := yaml.Unmarshal(data, &challenge); err != nil {
		return fmt.Errorf("failed to parse manifest: %w", err)
	}
	if challenge.ID == "" {
		return fmt.Errorf("manifest is missing an id")
	}

	// Refuse manifests whose reference solution would fail every grade run.
	reference := dfa.New()
	if res := reference.Load(challenge.Reference); !res.Success {
		return fmt.Errorf("reference solution is invalid: %v", res.Errors)
	}

	dir, _ := cmd.Flags().GetString("challenges")
	store := file.New(dir)
	if err := store.Save(context.Background(), &challenge); err != nil {
		return err
	}

	fmt.Printf("Stored challenge %q\n", challenge.ID)
	return nil
}
