// Package soc generates descriptive career metadata for SOC-coded
// occupations. Generation is a pure function of the occupation's code,
// title, and education level plus the package's static rule tables: resolve
// a sub-group template, seed from it, merge every matching title override in
// table order, derive keywords from the title, then apply education and
// title-shape heuristics.
package soc

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Education level tiers the analytical-skill heuristic keys on.
var (
	doctoralLevels = map[string]bool{"DD": true, "DOCT": true}
	degreeLevels   = map[string]bool{"BD": true, "BD+": true, "MD": true, "MD+": true}
)

// Generate produces the complete metadata record for one occupation. It
// never fails: unrecognized codes seed from a neutral fallback template and
// still pass through the full override/keyword/heuristic pipeline.
func Generate(code, title, educationLevel string) types.OccupationMetadata {
	key := ResolveSubGroup(code)
	tmpl := &fallbackTemplate
	if key != "" {
		tmpl = templateIndex[key]
	}

	md := seedFromTemplate(tmpl)

	keywords := make([]string, 0, len(tmpl.Keywords)+8)
	keywords = append(keywords, tmpl.Keywords...)
	if key != "" {
		keywords = append(keywords, subGroupBaseKeywords[key]...)
	}

	var certifications []string
	lower := strings.ToLower(title)
	for i, entry := range titleOverrides {
		if !overrideMatchers[i].MatchString(lower) {
			continue
		}
		applyOverride(&md, &entry.override)
		keywords = append(keywords, entry.override.Keywords...)
		certifications = append(certifications, entry.override.Certifications...)
	}

	keywords = append(keywords, titleTokens(title)...)
	md.Keywords = dedupe(keywords)
	if md.Keywords == nil {
		md.Keywords = []string{}
	}
	md.Certifications = dedupe(certifications)

	applyEducationHeuristics(&md, educationLevel)
	applyTitleHeuristics(&md, lower)
	clampSkills(&md.Skills)

	return md
}

// seedFromTemplate deep-copies the template into a fresh working record so
// override merges never mutate the shared tables.
func seedFromTemplate(tmpl *SubGroupTemplate) types.OccupationMetadata {
	md := types.OccupationMetadata{
		CareerCluster: tmpl.CareerCluster,
		Skills:        tmpl.Skills,
		WorkStyle:     tmpl.Style,
		Outlook:       tmpl.Outlook,
	}
	md.SecondaryClusters = append(md.SecondaryClusters, tmpl.SecondaryClusters...)
	md.WorkEnvironment = types.WorkEnvironment{
		Setting:         append([]string(nil), tmpl.Environment.Setting...),
		Schedule:        append([]string(nil), tmpl.Environment.Schedule...),
		PhysicalDemands: tmpl.Environment.PhysicalDemands,
		TravelRequired:  tmpl.Environment.TravelRequired,
	}
	md.Values = append([]string(nil), tmpl.Values...)
	return md
}

// applyOverride merges one matched override into the working record.
// Cluster fields replace wholesale; skills, outlook, environment, and style
// patch only the sub-fields they name. Keywords and certifications are
// collected by the caller.
func applyOverride(md *types.OccupationMetadata, o *TitleOverride) {
	if o.CareerCluster != "" {
		md.CareerCluster = o.CareerCluster
	}
	if o.SecondaryClusters != nil {
		md.SecondaryClusters = append([]string(nil), o.SecondaryClusters...)
	}
	mergeSkills(&md.Skills, o.Skills)
	mergeOutlook(&md.Outlook, o.Outlook)
	mergeEnvironment(&md.WorkEnvironment, o.Environment)
	mergeStyle(&md.WorkStyle, o.Style)
}

// applyEducationHeuristics floors analytical demand by education tier.
// Floors only raise; a template that already authored a higher value keeps
// it.
func applyEducationHeuristics(md *types.OccupationMetadata, level string) {
	switch {
	case doctoralLevels[level]:
		md.Skills.Analytical = max(md.Skills.Analytical, 8)
		md.Values = appendMissing(md.Values, "prestige")
	case degreeLevels[level]:
		md.Skills.Analytical = max(md.Skills.Analytical, 7)
	}
}

// applyTitleHeuristics adjusts for title shapes that reliably signal a role's
// position in a hierarchy. Each rule is independent; all that apply, apply.
func applyTitleHeuristics(md *types.OccupationMetadata, lowerTitle string) {
	if containsAny(lowerTitle, "supervisor", "manager", "director") {
		md.Skills.Leadership = max(md.Skills.Leadership, 8)
		md.WorkStyle.PeopleInteraction = types.InteractionExtensive
		md.Values = appendMissing(md.Values, "leadership")
	}

	if containsAny(lowerTitle, "helper", "aide", "assistant") {
		md.Skills.Leadership = min(md.Skills.Leadership, 3)
		md.WorkStyle.Independence = types.IndependenceTeam
		md.WorkStyle.Structure = types.StructureHigh
	}

	// "all other" marks a residual grab-bag category; widen its variety so
	// matching tolerates the heterogeneous titles underneath.
	if strings.Contains(lowerTitle, "all other") {
		md.WorkStyle.Variety = types.VarietyHigh
	}
}

// clampSkills enforces the [1,10] invariant after all merges and heuristics.
func clampSkills(s *types.SkillVector) {
	for _, v := range []*int{&s.Analytical, &s.Creative, &s.Social, &s.Technical, &s.Leadership, &s.Physical, &s.Detail} {
		if *v < 1 {
			*v = 1
		}
		if *v > 10 {
			*v = 10
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func appendMissing(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
