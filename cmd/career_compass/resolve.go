package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/soc"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <soc-code>...",
	Short: "Show the template sub-group for SOC codes",
	Long:  "Resolve one or more SOC codes to the sub-group template that would seed their generated metadata.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, args []string) error {
	for _, code := range args {
		key := soc.ResolveSubGroup(code)
		if key == "" {
			_, _ = fmt.Fprintf(os.Stdout, "%s -> (fallback)\n", code)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s -> %s\n", code, key)
	}
	return nil
}
