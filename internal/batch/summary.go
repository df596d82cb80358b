package batch

import (
	"github.com/jonathan/career-compass/internal/soc"
	"github.com/jonathan/career-compass/internal/types"
)

// Summary aggregates facts about a generated dataset for reporting.
type Summary struct {
	Total              int
	WithMetadata       int
	FallbackCount      int
	ClusterCounts      map[string]int
	AvgKeywords        float64
	WithCertifications int
}

// Summarize walks a dataset and tallies cluster distribution, fallback
// usage, and keyword coverage. Records without metadata count toward Total
// only.
func Summarize(records []types.OccupationRecord) Summary {
	s := Summary{
		Total:         len(records),
		ClusterCounts: make(map[string]int),
	}

	keywordTotal := 0
	for _, rec := range records {
		if soc.ResolveSubGroup(rec.SOCCode) == "" {
			s.FallbackCount++
		}
		if rec.Metadata == nil {
			continue
		}
		s.WithMetadata++
		s.ClusterCounts[rec.Metadata.CareerCluster]++
		keywordTotal += len(rec.Metadata.Keywords)
		if len(rec.Metadata.Certifications) > 0 {
			s.WithCertifications++
		}
	}

	if s.WithMetadata > 0 {
		s.AvgKeywords = float64(keywordTotal) / float64(s.WithMetadata)
	}
	return s
}
