package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-evaluator/internal/observability"
	"github.com/jonathan/project-evaluator/internal/report"
	"github.com/jonathan/project-evaluator/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a single project for innovation and novelty",
	Long: `Sends a project synopsis to the analysis provider and produces a scored
markdown report with strengths, weaknesses and recommendations.

Modes: single (default), code (requires --code-context), patentability.`,
	RunE: runEvaluate,
}

var (
	evalFlags       providerFlags
	evalName        string
	evalSynopsis    string
	evalSynopsisPath string
	evalCodePath    string
	evalMode        string
	evalOutput      string
)

func init() {
	evalFlags.register(evaluateCmd)
	evaluateCmd.Flags().StringVarP(&evalName, "name", "n", "", "Project name")
	evaluateCmd.Flags().StringVarP(&evalSynopsis, "synopsis", "s", "", "Project synopsis (mutually exclusive with --synopsis-file)")
	evaluateCmd.Flags().StringVar(&evalSynopsisPath, "synopsis-file", "", "Path to a file containing the project synopsis")
	evaluateCmd.Flags().StringVar(&evalCodePath, "code-context", "", "Path to a file with code context for code-quality mode")
	evaluateCmd.Flags().StringVarP(&evalMode, "mode", "m", string(types.ModeSingle), "Evaluation mode: single, code or patentability")
	evaluateCmd.Flags().StringVarP(&evalOutput, "output", "o", "", "Write the markdown report to a file instead of stdout")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	input, err := buildProjectInput(evalName, evalSynopsis, evalSynopsisPath, evalCodePath)
	if err != nil {
		return err
	}

	mode := types.EvaluationMode(evalMode)
	if !mode.Valid() || mode == types.ModeComparison {
		return fmt.Errorf("invalid mode %q: must be single, code or patentability", evalMode)
	}

	cfg, err := evalFlags.resolveConfig(cmd)
	if err != nil {
		return err
	}

	evaluator, client, err := newEvaluator(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	rep, err := evaluator.Evaluate(ctx, input, mode)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintReport(rep)
	}

	return writeOutput(evalOutput, report.Single(rep))
}

// buildProjectInput assembles a ProjectInput from CLI flags, reading synopsis
// and code context from files when paths were given.
func buildProjectInput(name, synopsis, synopsisPath, codePath string) (types.ProjectInput, error) {
	var input types.ProjectInput
	input.Name = name

	if synopsis != "" && synopsisPath != "" {
		return input, fmt.Errorf("--synopsis and --synopsis-file are mutually exclusive; provide only one")
	}
	input.Synopsis = synopsis
	if synopsisPath != "" {
		data, err := os.ReadFile(synopsisPath)
		if err != nil {
			return input, fmt.Errorf("failed to read synopsis file: %w", err)
		}
		input.Synopsis = string(data)
	}
	if input.Synopsis == "" {
		return input, fmt.Errorf("a project synopsis is required: set --synopsis or --synopsis-file")
	}

	if codePath != "" {
		data, err := os.ReadFile(codePath)
		if err != nil {
			return input, fmt.Errorf("failed to read code context file: %w", err)
		}
		input.CodeContext = string(data)
	}

	return input, nil
}
