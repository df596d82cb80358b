package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/batch"
	"github.com/jonathan/career-compass/internal/dataset"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate metadata for every occupation in a dataset",
	Long:  "Generate career cluster, skill, work style, and outlook metadata for every record of a SOC-coded occupation dataset, overwriting any metadata already present.",
	RunE:  runGenerate,
}

var (
	generateInputFile  string
	generateOutputFile string
	generateWorkers    int
	generateRegion     string
	generateDBURL      string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateInputFile, "in", "i", "", "Path to occupation dataset JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to output JSON file (defaults to --in)")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", batch.DefaultWorkers, "Number of concurrent generation workers")
	generateCmd.Flags().StringVar(&generateRegion, "region", "", "Region tag applied to every record")
	generateCmd.Flags().StringVar(&generateDBURL, "db-url", "", "PostgreSQL URL to also store the generated dataset (or DATABASE_URL env var)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print a dataset summary after generation")
	_ = generateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	outputFile := generateOutputFile
	if outputFile == "" {
		outputFile = generateInputFile
	}

	store := dataset.NewStore()
	records, err := store.Load(generateInputFile)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	ctx := context.Background()
	generated, err := batch.NewRunner(generateWorkers).Run(ctx, records)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if generateRegion != "" {
		for i := range generated {
			generated[i].Region = generateRegion
		}
	}

	if err := store.Save(outputFile, generated); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	// Validate against schema (if schema file exists)
	if err := store.ValidateFile(outputFile); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}

	dbURL := generateDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL != "" {
		if err := storeInDatabase(ctx, dbURL, generated); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Stored %d occupations in database\n", len(generated))
	}

	_, _ = fmt.Fprintf(os.Stdout, "Generated metadata for %d occupations\n", len(generated))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputFile)

	if generateVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSummary(batch.Summarize(generated))
	}

	return nil
}

func storeInDatabase(ctx context.Context, dbURL string, records []types.OccupationRecord) error {
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := database.ReplaceOccupations(ctx, records); err != nil {
		return fmt.Errorf("failed to store dataset: %w", err)
	}
	return nil
}
