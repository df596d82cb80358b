package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/batch"
	"github.com/jonathan/career-compass/internal/types"
)

func TestPrintMetadata(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.OccupationRecord{
		SOCCode: "15-1252",
		Title:   "Software Developers",
		Metadata: &types.OccupationMetadata{
			CareerCluster:     types.ClusterStem,
			SecondaryClusters: []string{types.ClusterBusiness},
			Skills: types.SkillVector{
				Analytical: 9, Creative: 6, Social: 4, Technical: 10,
				Leadership: 4, Physical: 1, Detail: 8,
			},
			Outlook:        types.Outlook{Growth: types.GrowthMuchFaster, AutomationRisk: types.AutomationLow},
			Keywords:       []string{"software", "programming"},
			Certifications: []string{"AWS Certified Developer"},
		},
	}

	p.PrintMetadata(rec)
	output := buf.String()

	assert.Contains(t, output, "OCCUPATION METADATA")
	assert.Contains(t, output, "15-1252")
	assert.Contains(t, output, "Software Developers")
	assert.Contains(t, output, "stem")
	assert.Contains(t, output, "business")
	assert.Contains(t, output, "software, programming")
}

func TestPrintMetadata_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMetadata(nil)
	p.PrintMetadata(&types.OccupationRecord{SOCCode: "15-1252"})

	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(batch.Summary{
		Total:         120,
		WithMetadata:  118,
		FallbackCount: 2,
		AvgKeywords:   7.5,
		ClusterCounts: map[string]int{
			types.ClusterStem:       40,
			types.ClusterHealthcare: 30,
			types.ClusterBusiness:   48,
		},
	})
	output := buf.String()

	assert.Contains(t, output, "DATASET SUMMARY")
	assert.Contains(t, output, "120")
	assert.Contains(t, output, "7.5")
	assert.Contains(t, output, "stem")

	// Clusters are listed by descending count
	assert.Less(t, strings.Index(output, "business"), strings.Index(output, "stem"))
	assert.Less(t, strings.Index(output, "stem"), strings.Index(output, "healthcare"))
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.MatchResult{
		{
			SOCCode:       "15-1252",
			Title:         "Software Developers",
			CareerCluster: types.ClusterStem,
			Score:         0.93,
			Reasons:       []string{"Strong skill alignment: analytical, technical"},
		},
		{
			SOCCode:       "15-2051",
			Title:         "Data Scientists",
			CareerCluster: types.ClusterStem,
			Score:         0.88,
		},
	}

	p.PrintMatches(results)
	output := buf.String()

	assert.Contains(t, output, "CAREER MATCHES")
	assert.Contains(t, output, "#1  Software Developers (15-1252)")
	assert.Contains(t, output, "0.93")
	assert.Contains(t, output, "#2  Data Scientists (15-2051)")
	assert.Contains(t, output, "Strong skill alignment")
}

func TestPrintMatches_Overflow(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.MatchResult, 8)
	for i := range results {
		results[i] = types.MatchResult{SOCCode: "11-1021", Title: "General and Operations Managers"}
	}

	p.PrintMatches(results)
	output := buf.String()

	assert.Contains(t, output, "... and 3 more matches")
	assert.NotContains(t, output, "#6")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches(nil)

	assert.Contains(t, buf.String(), "No matches found")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))
	output := buf.String()

	assert.Contains(t, output, "...")
}
