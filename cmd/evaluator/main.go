// Package main provides the entry point for the Project Evaluator CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "evaluator",
	Short: "Project Evaluator CLI and HTTP API Server",
	Long:  "Project Evaluator analyzes project ideas for innovation and novelty using an AI analysis provider, producing scored markdown reports for single projects, batches and head-to-head comparisons.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
