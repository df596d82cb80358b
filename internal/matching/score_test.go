package matching

import (
	"strings"
	"testing"

	"github.com/jonathan/career-compass/internal/soc"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func techProfile() *types.AssessmentProfile {
	return &types.AssessmentProfile{
		Skills:    types.SkillVector{Analytical: 9, Creative: 6, Social: 4, Technical: 10, Leadership: 4, Physical: 2, Detail: 8},
		Values:    []string{"innovation", "problem_solving"},
		Settings:  []string{"remote", "office"},
		Schedules: []string{"flexible"},
	}
}

func TestScore_CloseProfileScoresHigh(t *testing.T) {
	md := soc.Generate("15-1252", "Software Developers", "BD")

	score, reasons := Score(techProfile(), &md)

	assert.Greater(t, score, 0.7)
	assert.NotEmpty(t, reasons)
}

func TestScore_DistantProfileScoresLower(t *testing.T) {
	physical := &types.AssessmentProfile{
		Skills: types.SkillVector{Analytical: 1, Creative: 1, Social: 1, Technical: 1, Leadership: 1, Physical: 10, Detail: 1},
		Values: []string{"creativity"},
	}
	developers := soc.Generate("15-1252", "Software Developers", "BD")

	high, _ := Score(techProfile(), &developers)
	low, _ := Score(physical, &developers)

	assert.Less(t, low, high)
}

func TestScore_ValuesReasonNamesMatchedTags(t *testing.T) {
	md := soc.Generate("15-1252", "Software Developers", "BD")

	_, reasons := Score(techProfile(), &md)

	found := false
	for _, r := range reasons {
		if strings.Contains(r, "innovation") {
			found = true
		}
	}
	assert.True(t, found, "expected a values reason naming innovation, got %v", reasons)
}

func TestScore_NoPreferencesIsNeutralNotZero(t *testing.T) {
	profile := &types.AssessmentProfile{
		Skills: types.SkillVector{Analytical: 5, Creative: 5, Social: 5, Technical: 5, Leadership: 5, Physical: 5, Detail: 5},
	}
	md := soc.Generate("43-4051", "Customer Service Representatives", "HS")

	score, _ := Score(profile, &md)

	require.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}

func TestScore_GrowthReasonForFastGrowingFields(t *testing.T) {
	md := soc.Generate("29-1141", "Registered Nurses", "BD")

	_, reasons := Score(techProfile(), &md)

	found := false
	for _, r := range reasons {
		if strings.Contains(r, "much faster than average") {
			found = true
		}
	}
	assert.True(t, found, "expected a growth reason, got %v", reasons)
}

func TestScore_Deterministic(t *testing.T) {
	md := soc.Generate("29-1141", "Registered Nurses", "BD")
	profile := techProfile()

	s1, r1 := Score(profile, &md)
	s2, r2 := Score(profile, &md)

	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

func TestComputeSkillFit_IdenticalVectorsScorePerfect(t *testing.T) {
	v := types.SkillVector{Analytical: 7, Creative: 7, Social: 7, Technical: 7, Leadership: 7, Physical: 7, Detail: 7}

	score, strengths := computeSkillFitScore(&v, &v)

	assert.Equal(t, 1.0, score)
	assert.Len(t, strengths, 7)
}

func TestComputeSkillFit_MaxDistanceScoresZero(t *testing.T) {
	lo := types.SkillVector{Analytical: 1, Creative: 1, Social: 1, Technical: 1, Leadership: 1, Physical: 1, Detail: 1}
	hi := types.SkillVector{Analytical: 10, Creative: 10, Social: 10, Technical: 10, Leadership: 10, Physical: 10, Detail: 10}

	score, strengths := computeSkillFitScore(&lo, &hi)

	assert.Equal(t, 0.0, score)
	assert.Empty(t, strengths)
}
