// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/batch"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMetadata outputs a human-readable summary of one occupation's
// generated metadata.
func (p *Printer) PrintMetadata(rec *types.OccupationRecord) {
	if rec == nil || rec.Metadata == nil {
		return
	}
	md := rec.Metadata

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Code:     %s\n", rec.SOCCode))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", rec.Title))
	sb.WriteString(fmt.Sprintf("Cluster:  %s", md.CareerCluster))
	if len(md.SecondaryClusters) > 0 {
		sb.WriteString(fmt.Sprintf(" (+%s)", strings.Join(md.SecondaryClusters, ", ")))
	}
	sb.WriteString("\n\n")

	sb.WriteString("Skills:\n")
	sb.WriteString(fmt.Sprintf("  analytical %d  creative %d  social %d\n",
		md.Skills.Analytical, md.Skills.Creative, md.Skills.Social))
	sb.WriteString(fmt.Sprintf("  technical %d  leadership %d  physical %d  detail %d\n",
		md.Skills.Technical, md.Skills.Leadership, md.Skills.Physical, md.Skills.Detail))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Outlook:  %s, automation risk %s\n",
		md.Outlook.Growth, md.Outlook.AutomationRisk))

	if len(md.Keywords) > 0 {
		keywords := strings.Join(md.Keywords, ", ")
		if len(keywords) > 50 {
			keywords = keywords[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", keywords))
	}
	if len(md.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certs:    %s\n", strings.Join(md.Certifications, ", ")))
	}

	p.printBox("OCCUPATION METADATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs aggregate statistics for a generated dataset.
func (p *Printer) PrintSummary(s batch.Summary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records:        %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("With metadata:  %d\n", s.WithMetadata))
	sb.WriteString(fmt.Sprintf("Fallback used:  %d\n", s.FallbackCount))
	sb.WriteString(fmt.Sprintf("Avg keywords:   %.1f\n", s.AvgKeywords))
	sb.WriteString(fmt.Sprintf("With certs:     %d\n", s.WithCertifications))

	if len(s.ClusterCounts) > 0 {
		sb.WriteString("\nClusters:\n")

		clusters := make([]string, 0, len(s.ClusterCounts))
		for cluster := range s.ClusterCounts {
			clusters = append(clusters, cluster)
		}
		sort.Slice(clusters, func(i, j int) bool {
			ci, cj := clusters[i], clusters[j]
			if s.ClusterCounts[ci] != s.ClusterCounts[cj] {
				return s.ClusterCounts[ci] > s.ClusterCounts[cj]
			}
			return ci < cj
		})

		for _, cluster := range clusters {
			sb.WriteString(fmt.Sprintf("  %-16s %d\n", cluster, s.ClusterCounts[cluster]))
		}
	}

	p.printBox("DATASET SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top ranked matches with scores and reasons.
func (p *Printer) PrintMatches(results []types.MatchResult) {
	if len(results) == 0 {
		p.printBox("CAREER MATCHES", "No matches found")
		return
	}

	var sb strings.Builder
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, r.Title, r.SOCCode))
		sb.WriteString(fmt.Sprintf("    Score: %.2f  Cluster: %s\n", r.Score, r.CareerCluster))
		for _, reason := range r.Reasons {
			if len(reason) > 48 {
				reason = reason[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    - %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(results)-maxItemsToShow))
	}

	p.printBox("CAREER MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}
