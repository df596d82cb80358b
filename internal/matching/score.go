// Package matching scores generated occupation metadata against a user's
// assessment profile and produces ranked, pageable results.
package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Default weights for scoring components
const (
	skillFitWeight    = 0.5
	valuesWeight      = 0.2
	environmentWeight = 0.2
	outlookWeight     = 0.1
)

// maxSkillDistance is the largest possible L1 distance between two skill
// vectors: seven dimensions, each off by at most 9.
const maxSkillDistance = 7 * 9

// computeSkillFitScore measures how closely the occupation's skill demands
// track the user's self-assessed strengths. Returns the score (0-1) and the
// dimensions where both sides are high (>= 7), which become match reasons.
func computeSkillFitScore(user, occ *types.SkillVector) (float64, []string) {
	dims := []struct {
		name      string
		user, occ int
	}{
		{"analytical", user.Analytical, occ.Analytical},
		{"creative", user.Creative, occ.Creative},
		{"social", user.Social, occ.Social},
		{"technical", user.Technical, occ.Technical},
		{"leadership", user.Leadership, occ.Leadership},
		{"physical", user.Physical, occ.Physical},
		{"detail", user.Detail, occ.Detail},
	}

	distance := 0
	strengths := make([]string, 0, len(dims))
	for _, d := range dims {
		diff := d.user - d.occ
		if diff < 0 {
			diff = -diff
		}
		distance += diff
		if d.user >= 7 && d.occ >= 7 {
			strengths = append(strengths, d.name)
		}
	}

	score := 1.0 - float64(distance)/float64(maxSkillDistance)
	if score < 0 {
		score = 0
	}
	return score, strengths
}

// computeValuesScore returns the fraction of the user's stated values the
// occupation satisfies, plus the matched value tags.
func computeValuesScore(userValues, occValues []string) (float64, []string) {
	if len(userValues) == 0 {
		return 0.5, nil // Neutral when the user expressed no preference
	}

	occSet := make(map[string]bool, len(occValues))
	for _, v := range occValues {
		occSet[v] = true
	}

	matched := make([]string, 0, len(userValues))
	for _, v := range userValues {
		if occSet[v] {
			matched = append(matched, v)
		}
	}

	return float64(len(matched)) / float64(len(userValues)), matched
}

// computeEnvironmentScore blends setting and schedule preference overlap.
// Each half is the fraction of the user's preferred tags the occupation
// offers; a side with no stated preference scores neutral.
func computeEnvironmentScore(profile *types.AssessmentProfile, env *types.WorkEnvironment) float64 {
	settingScore := overlapFraction(profile.Settings, env.Setting)
	scheduleScore := overlapFraction(profile.Schedules, env.Schedule)
	return (settingScore + scheduleScore) / 2
}

func overlapFraction(preferred, offered []string) float64 {
	if len(preferred) == 0 {
		return 0.5
	}
	offeredSet := make(map[string]bool, len(offered))
	for _, o := range offered {
		offeredSet[o] = true
	}
	matches := 0
	for _, p := range preferred {
		if offeredSet[p] {
			matches++
		}
	}
	return float64(matches) / float64(len(preferred))
}

// computeOutlookScore rewards growing fields and penalizes automation
// exposure; purely a function of the generated outlook.
func computeOutlookScore(outlook *types.Outlook) float64 {
	score := 0.5
	switch outlook.Growth {
	case types.GrowthMuchFaster:
		score = 1.0
	case types.GrowthGrowing:
		score = 0.8
	case types.GrowthStable:
		score = 0.5
	case types.GrowthDeclining:
		score = 0.2
	}

	switch outlook.AutomationRisk {
	case types.AutomationHigh:
		score -= 0.2
	case types.AutomationLow:
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Score computes the overall match score (0-1) and human-readable reasons
// for one occupation. Metadata is read-only here; the generator guarantees
// every field group is populated, so no sub-field nil checks are needed.
func Score(profile *types.AssessmentProfile, md *types.OccupationMetadata) (float64, []string) {
	skillFit, strengths := computeSkillFitScore(&profile.Skills, &md.Skills)
	valuesFit, matchedValues := computeValuesScore(profile.Values, md.Values)
	envFit := computeEnvironmentScore(profile, &md.WorkEnvironment)
	outlookFit := computeOutlookScore(&md.Outlook)

	score := skillFitWeight*skillFit +
		valuesWeight*valuesFit +
		environmentWeight*envFit +
		outlookWeight*outlookFit

	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}

	return score, buildReasons(skillFit, strengths, matchedValues, envFit, md)
}

// buildReasons produces the explanation strings shown next to each match.
func buildReasons(skillFit float64, strengths, matchedValues []string, envFit float64, md *types.OccupationMetadata) []string {
	var reasons []string

	switch {
	case len(strengths) > 0:
		reasons = append(reasons, fmt.Sprintf("Your strengths align: %s", strings.Join(strengths, ", ")))
	case skillFit >= 0.8:
		reasons = append(reasons, "Skill demands closely match your profile")
	}

	if len(matchedValues) > 0 {
		reasons = append(reasons, fmt.Sprintf("Matches what you value: %s", strings.Join(matchedValues, ", ")))
	}

	if envFit >= 0.75 {
		reasons = append(reasons, "Work environment fits your preferences")
	}

	switch md.Outlook.Growth {
	case types.GrowthMuchFaster:
		reasons = append(reasons, "Employment growing much faster than average")
	case types.GrowthGrowing:
		reasons = append(reasons, "Growing field")
	}

	return reasons
}
