package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/batch"
	"github.com/jonathan/career-compass/internal/dataset"
	"github.com/jonathan/career-compass/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a generated occupation dataset",
	Long:  "Print record counts, cluster distribution, fallback usage, and keyword coverage for an occupation dataset file.",
	RunE:  runStats,
}

var statsInputFile string

func init() {
	statsCmd.Flags().StringVarP(&statsInputFile, "in", "i", "", "Path to occupation dataset JSON file (required)")
	_ = statsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	records, err := dataset.NewStore().Load(statsInputFile)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSummary(batch.Summarize(records))
	return nil
}
