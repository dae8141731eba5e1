package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-evaluator/internal/observability"
	"github.com/jonathan/project-evaluator/internal/report"
	"github.com/jonathan/project-evaluator/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate multiple projects concurrently",
	Long: `Reads a JSON array of projects from a file and evaluates them concurrently,
producing a combined markdown report. Failures of individual projects are
recorded in the report without aborting the rest of the batch.

Input format:
  [{"name": "Project A", "synopsis": "..."}, {"name": "Project B", "synopsis": "..."}]`,
	RunE: runBatch,
}

var (
	batchFlags  providerFlags
	batchFile   string
	batchOutput string
)

func init() {
	batchFlags.register(batchCmd)
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to a JSON file with the projects to evaluate (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write the markdown report to a file instead of stdout")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	inputs, err := loadBatchFile(batchFile)
	if err != nil {
		return err
	}

	cfg, err := batchFlags.resolveConfig(cmd)
	if err != nil {
		return err
	}

	evaluator, client, err := newEvaluator(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	summary, err := evaluator.EvaluateBatch(ctx, inputs)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBatchSummary(summary)
	}

	return writeOutput(batchOutput, report.Batch(summary))
}

func loadBatchFile(path string) ([]types.ProjectInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var inputs []types.ProjectInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("batch file contains no projects")
	}

	return inputs, nil
}
