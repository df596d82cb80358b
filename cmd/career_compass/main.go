// Package main provides the entry point for the Career Compass CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_compass",
	Short: "Occupation metadata generator and career matcher",
	Long:  "Career Compass enriches SOC-coded occupation datasets with career cluster, skill, and outlook metadata, and matches user assessment profiles against the result.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
