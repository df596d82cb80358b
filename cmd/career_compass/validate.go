package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/dataset"
	"github.com/jonathan/career-compass/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an occupation dataset file",
	Long:  "Check that every record of a dataset file parses, carries a well-formed SOC code, and conforms to the occupation dataset JSON Schema.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to occupation dataset JSON file (required)")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	store := dataset.NewStore()

	records, err := store.Load(validateInputFile)
	if err != nil {
		return fmt.Errorf("dataset is invalid: %w", err)
	}

	if err := store.ValidateFile(validateInputFile); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("dataset does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate against schema: %v\n", err)
	}

	withMetadata := 0
	for _, rec := range records {
		if rec.Metadata != nil {
			withMetadata++
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Dataset is valid: %d records, %d with metadata\n", len(records), withMetadata)
	return nil
}
