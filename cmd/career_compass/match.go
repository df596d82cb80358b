package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/dataset"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank occupations against an assessment profile",
	Long:  "Score every occupation of a generated dataset against a user assessment profile and print the best matches.",
	RunE:  runMatch,
}

var (
	matchInputFile   string
	matchProfileFile string
	matchTopN        int
	matchCluster     string
	matchJSONOutput  bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchInputFile, "in", "i", "", "Path to generated occupation dataset JSON file (required)")
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to assessment profile JSON file (required)")
	matchCmd.Flags().IntVar(&matchTopN, "top", 10, "Number of matches to show")
	matchCmd.Flags().StringVar(&matchCluster, "cluster", "", "Restrict matches to one career cluster")
	matchCmd.Flags().BoolVar(&matchJSONOutput, "json", false, "Print results as JSON instead of formatted output")
	_ = matchCmd.MarkFlagRequired("in")
	_ = matchCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(matchProfileFile)
	if err != nil {
		return err
	}

	records, err := dataset.NewStore().Load(matchInputFile)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	results := matching.Rank(profile, records)
	if matchCluster != "" {
		results = matching.FilterByCluster(results, matchCluster)
	}

	page := matching.Page(results, 1, matchTopN)

	if matchJSONOutput {
		jsonBytes, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatches(page.Results)
	_, _ = fmt.Fprintf(os.Stdout, "Scored %d occupations\n", page.TotalCount)
	return nil
}

func loadProfile(path string) (*types.AssessmentProfile, error) {
	// Validate against schema first so errors name the offending field
	schemaPath := schemas.ResolveSchemaPath("schemas/assessment_profile.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, fmt.Errorf("invalid assessment profile: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate profile against schema: %v\n", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile types.AssessmentProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}
