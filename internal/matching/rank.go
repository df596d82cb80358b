package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Rank scores every occupation with generated metadata against the profile
// and returns results sorted by score descending, SOC code ascending on
// ties. Records without metadata are skipped; the generator is expected to
// have run first.
func Rank(profile *types.AssessmentProfile, records []types.OccupationRecord) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(records))
	for i := range records {
		rec := &records[i]
		if rec.Metadata == nil {
			continue
		}

		score, reasons := Score(profile, rec.Metadata)
		results = append(results, types.MatchResult{
			SOCCode:       rec.SOCCode,
			Title:         rec.Title,
			CareerCluster: rec.Metadata.CareerCluster,
			MedianWage:    rec.MedianWage,
			Score:         score,
			Reasons:       reasons,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].SOCCode < results[j].SOCCode
	})

	return results
}

// FilterByCluster keeps results whose primary cluster equals cluster.
// An empty cluster returns the input unchanged.
func FilterByCluster(results []types.MatchResult, cluster string) []types.MatchResult {
	if cluster == "" {
		return results
	}
	filtered := make([]types.MatchResult, 0, len(results))
	for _, r := range results {
		if r.CareerCluster == cluster {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterByQuery keeps results whose title contains the query,
// case-insensitive. An empty query returns the input unchanged.
func FilterByQuery(results []types.MatchResult, query string) []types.MatchResult {
	if query == "" {
		return results
	}
	q := strings.ToLower(query)
	filtered := make([]types.MatchResult, 0, len(results))
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Title), q) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Page slices one page out of ranked results. Pages are 1-based; out-of-range
// pages return an empty result list with the paging metadata intact.
func Page(results []types.MatchResult, page, perPage int) types.MatchPage {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	total := len(results)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return types.MatchPage{
		Results:    results[start:end],
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		TotalPages: totalPages,
	}
}
