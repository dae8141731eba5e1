package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-evaluator/internal/observability"
	"github.com/jonathan/project-evaluator/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Evaluate two projects and declare a winner",
	Long: `Evaluates two projects concurrently, picks a winner by overall score and
produces a combined markdown report with a comparative analysis narrative.`,
	RunE: runCompare,
}

var (
	compareFlags     providerFlags
	compareNameA     string
	compareSynopsisA string
	compareFileA     string
	compareNameB     string
	compareSynopsisB string
	compareFileB     string
	compareOutput    string
)

func init() {
	compareFlags.register(compareCmd)
	compareCmd.Flags().StringVar(&compareNameA, "name-a", "", "Name of the first project")
	compareCmd.Flags().StringVar(&compareSynopsisA, "synopsis-a", "", "Synopsis of the first project")
	compareCmd.Flags().StringVar(&compareFileA, "synopsis-file-a", "", "Path to a file containing the first project's synopsis")
	compareCmd.Flags().StringVar(&compareNameB, "name-b", "", "Name of the second project")
	compareCmd.Flags().StringVar(&compareSynopsisB, "synopsis-b", "", "Synopsis of the second project")
	compareCmd.Flags().StringVar(&compareFileB, "synopsis-file-b", "", "Path to a file containing the second project's synopsis")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "Write the markdown report to a file instead of stdout")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	inputA, err := buildProjectInput(compareNameA, compareSynopsisA, compareFileA, "")
	if err != nil {
		return fmt.Errorf("project A: %w", err)
	}
	inputB, err := buildProjectInput(compareNameB, compareSynopsisB, compareFileB, "")
	if err != nil {
		return fmt.Errorf("project B: %w", err)
	}

	cfg, err := compareFlags.resolveConfig(cmd)
	if err != nil {
		return err
	}

	evaluator, client, err := newEvaluator(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := evaluator.Compare(ctx, inputA, inputB)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintComparison(result)
	}

	return writeOutput(compareOutput, report.Comparison(result))
}
