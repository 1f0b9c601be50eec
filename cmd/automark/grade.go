package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/automark/internal/presentation/tui"
	"github.com/aretw0/automark/pkg/dfa"
	"github.com/aretw0/automark/pkg/grader"
	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <reference.yaml> <submission.yaml>",
	Short: "Grade a submitted automaton against a reference solution",
	Long:  `Checks the two automatons for language equivalence. When the languages differ, prints a counterexample string accepted by exactly one of them.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		pretty, _ := cmd.Flags().GetBool("pretty")

		reference := dfa.New()
		if res := reference.LoadFile(args[0]); !res.Success {
			fmt.Printf("Reference solution %s is invalid:\n", args[0])
			for _, msg := range res.Errors {
				fmt.Printf("  - %s\n", msg)
			}
			os.Exit(1)
		}

		submission := dfa.New()
		subResult := submission.LoadFile(args[1])

		var result grader.GradeResult
		if !subResult.Success {
			result = grader.GradeResult{Success: false, Errors: subResult.Errors}
		} else {
			eq, err := grader.Compare(reference, submission)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			result = grader.GradeResult{Success: eq.Success, Example: eq.Example, Errors: []string{}}
		}

		if pretty {
			tui.PrintBanner()
			render := tui.NewRenderer()
			out, err := render(gradeReport(args[1], result))
			if err != nil {
				// Fall back to plain output if the terminal renderer fails.
				printJSON(result)
			} else {
				fmt.Print(out)
			}
		} else {
			printJSON(result)
		}

		if !result.Success {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(gradeCmd)
	gradeCmd.Flags().Bool("pretty", false, "Render the report as formatted markdown")
}

func gradeReport(submission string, result grader.GradeResult) string {
	var b strings.Builder
	b.WriteString("# Grade Report\n\n")
	b.WriteString(fmt.Sprintf("Submission: `%s`\n\n", submission))

	switch {
	case len(result.Errors) > 0:
		b.WriteString("**Result: invalid specification**\n\n")
		for _, msg := range result.Errors {
			b.WriteString(fmt.Sprintf("- %s\n", msg))
		}
	case result.Success:
		b.WriteString("**Result: correct.** The submitted automaton recognizes the reference language.\n")
	default:
		b.WriteString("**Result: incorrect.** The languages differ.\n\n")
		b.WriteString(fmt.Sprintf("Counterexample: `%q` is accepted by exactly one of the two automatons.\n", *result.Example))
	}

	return b.String()
}
