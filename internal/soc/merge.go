package soc

import "github.com/jonathan/career-compass/internal/types"

// SkillPatch is a partial skill vector. Nil fields are left untouched by
// mergeSkills; set fields replace the base value outright.
type SkillPatch struct {
	Analytical *int
	Creative   *int
	Social     *int
	Technical  *int
	Leadership *int
	Physical   *int
	Detail     *int
}

// OutlookPatch is a partial outlook. Empty strings are left untouched.
type OutlookPatch struct {
	Growth         string
	AutomationRisk string
}

// EnvPatch is a partial work environment. Nil slices and empty strings are
// left untouched.
type EnvPatch struct {
	Setting         []string
	Schedule        []string
	PhysicalDemands string
	TravelRequired  string
}

// StylePatch is a partial work style. Empty strings are left untouched.
type StylePatch struct {
	Independence      string
	Structure         string
	Variety           string
	Pace              string
	PeopleInteraction string
}

func mergeSkills(base *types.SkillVector, patch *SkillPatch) {
	if patch == nil {
		return
	}
	if patch.Analytical != nil {
		base.Analytical = *patch.Analytical
	}
	if patch.Creative != nil {
		base.Creative = *patch.Creative
	}
	if patch.Social != nil {
		base.Social = *patch.Social
	}
	if patch.Technical != nil {
		base.Technical = *patch.Technical
	}
	if patch.Leadership != nil {
		base.Leadership = *patch.Leadership
	}
	if patch.Physical != nil {
		base.Physical = *patch.Physical
	}
	if patch.Detail != nil {
		base.Detail = *patch.Detail
	}
}

func mergeOutlook(base *types.Outlook, patch *OutlookPatch) {
	if patch == nil {
		return
	}
	if patch.Growth != "" {
		base.Growth = patch.Growth
	}
	if patch.AutomationRisk != "" {
		base.AutomationRisk = patch.AutomationRisk
	}
}

func mergeEnvironment(base *types.WorkEnvironment, patch *EnvPatch) {
	if patch == nil {
		return
	}
	if patch.Setting != nil {
		base.Setting = append([]string(nil), patch.Setting...)
	}
	if patch.Schedule != nil {
		base.Schedule = append([]string(nil), patch.Schedule...)
	}
	if patch.PhysicalDemands != "" {
		base.PhysicalDemands = patch.PhysicalDemands
	}
	if patch.TravelRequired != "" {
		base.TravelRequired = patch.TravelRequired
	}
}

func mergeStyle(base *types.WorkStyle, patch *StylePatch) {
	if patch == nil {
		return
	}
	if patch.Independence != "" {
		base.Independence = patch.Independence
	}
	if patch.Structure != "" {
		base.Structure = patch.Structure
	}
	if patch.Variety != "" {
		base.Variety = patch.Variety
	}
	if patch.Pace != "" {
		base.Pace = patch.Pace
	}
	if patch.PeopleInteraction != "" {
		base.PeopleInteraction = patch.PeopleInteraction
	}
}

// ip returns a pointer to v, for authoring SkillPatch literals.
func ip(v int) *int {
	return &v
}
