package matching

import (
	"testing"

	"github.com/jonathan/career-compass/internal/soc"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture(t *testing.T) []types.MatchResult {
	t.Helper()
	records := []types.OccupationRecord{
		{SOCCode: "15-1252", Title: "Software Developers", EducationLevel: "BD"},
		{SOCCode: "29-1141", Title: "Registered Nurses", EducationLevel: "BD"},
		{SOCCode: "47-2031", Title: "Carpenters", EducationLevel: "HS"},
		{SOCCode: "11-1021", Title: "General and Operations Managers", EducationLevel: "BD"},
	}
	for i := range records {
		md := soc.Generate(records[i].SOCCode, records[i].Title, records[i].EducationLevel)
		records[i].Metadata = &md
	}
	return Rank(techProfile(), records)
}

func TestRank_SortsByScoreDescending(t *testing.T) {
	results := rankedFixture(t)

	require.Len(t, results, 4)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	// A technical profile should put the developer role first.
	assert.Equal(t, "15-1252", results[0].SOCCode)
}

func TestRank_SkipsRecordsWithoutMetadata(t *testing.T) {
	records := []types.OccupationRecord{
		{SOCCode: "15-1252", Title: "Software Developers"},
	}

	results := Rank(techProfile(), records)

	assert.Empty(t, results)
}

func TestRank_TieBreaksBySOCCode(t *testing.T) {
	md := soc.Generate("43-4051", "Customer Service Representatives", "HS")
	records := []types.OccupationRecord{
		{SOCCode: "43-4199", Title: "Customer Service Representatives", Metadata: &md},
		{SOCCode: "43-4051", Title: "Customer Service Representatives", Metadata: &md},
	}

	results := Rank(techProfile(), records)

	require.Len(t, results, 2)
	assert.Equal(t, "43-4051", results[0].SOCCode)
}

func TestFilterByCluster(t *testing.T) {
	results := rankedFixture(t)

	stem := FilterByCluster(results, types.ClusterStem)
	for _, r := range stem {
		assert.Equal(t, types.ClusterStem, r.CareerCluster)
	}
	assert.NotEmpty(t, stem)

	assert.Equal(t, results, FilterByCluster(results, ""))
}

func TestFilterByQuery(t *testing.T) {
	results := rankedFixture(t)

	nurses := FilterByQuery(results, "nurse")
	require.Len(t, nurses, 1)
	assert.Equal(t, "29-1141", nurses[0].SOCCode)

	assert.Empty(t, FilterByQuery(results, "astronaut"))
}

func TestPage_Boundaries(t *testing.T) {
	results := rankedFixture(t)

	first := Page(results, 1, 3)
	assert.Len(t, first.Results, 3)
	assert.Equal(t, 4, first.TotalCount)
	assert.Equal(t, 2, first.TotalPages)

	second := Page(results, 2, 3)
	assert.Len(t, second.Results, 1)

	beyond := Page(results, 9, 3)
	assert.Empty(t, beyond.Results)
	assert.Equal(t, 4, beyond.TotalCount)
}

func TestPage_DefaultsForInvalidInput(t *testing.T) {
	results := rankedFixture(t)

	page := Page(results, 0, 0)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PerPage)
	assert.Len(t, page.Results, 4)
}
