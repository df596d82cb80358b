package soc

import (
	"regexp"

	"github.com/jonathan/career-compass/internal/types"
)

// TitleOverride is the authored adjustment applied when its pattern matches
// an occupation title. Keywords are always appended; every other field is
// optional and merges by shallow patch, so an override touches only the
// sub-fields it names.
type TitleOverride struct {
	Keywords          []string
	Certifications    []string
	CareerCluster     string
	SecondaryClusters []string
	Skills            *SkillPatch
	Outlook           *OutlookPatch
	Environment       *EnvPatch
	Style             *StylePatch
}

// overrideEntry pairs a lowercase title pattern with its override. The slice
// order is load-bearing: overrides merge sequentially, so later entries win
// on overlapping scalar fields.
type overrideEntry struct {
	pattern  string
	override TitleOverride
}

// titleOverrides is scanned top to bottom against each lowercased title.
// Patterns may be word fragments ("logist" matches "logistics"); matching is
// anchored so a fragment never fires mid-word ("technologist" does not
// contain a boundary-anchored "logist").
var titleOverrides = []overrideEntry{
	{"software", TitleOverride{
		Keywords:      []string{"software", "programming", "coding", "development"},
		CareerCluster: types.ClusterStem,
		Skills:        &SkillPatch{Technical: ip(10), Analytical: ip(9)},
		Outlook:       &OutlookPatch{Growth: types.GrowthMuchFaster, AutomationRisk: types.AutomationLow},
	}},
	{"developer", TitleOverride{
		Keywords:      []string{"development", "engineering", "problem solving"},
		CareerCluster: types.ClusterStem,
		Skills:        &SkillPatch{Technical: ip(10), Creative: ip(7)},
		Environment:   &EnvPatch{Setting: []string{"office", "remote"}, Schedule: []string{"standard", "flexible"}},
	}},
	{"web", TitleOverride{
		Keywords:      []string{"web", "frontend", "user experience"},
		CareerCluster: types.ClusterStem,
		Skills:        &SkillPatch{Technical: ip(9), Creative: ip(8)},
	}},
	{"data", TitleOverride{
		Keywords: []string{"data", "analytics", "databases", "visualization"},
		Skills:   &SkillPatch{Analytical: ip(9), Detail: ip(9)},
		Outlook:  &OutlookPatch{Growth: types.GrowthMuchFaster},
	}},
	{"cybersecurity", TitleOverride{
		Keywords:       []string{"security", "threat analysis", "incident response"},
		Certifications: []string{"Security+", "CISSP"},
		CareerCluster:  types.ClusterStem,
		Skills:         &SkillPatch{Analytical: ip(9), Technical: ip(9), Detail: ip(10)},
		Outlook:        &OutlookPatch{Growth: types.GrowthMuchFaster, AutomationRisk: types.AutomationLow},
	}},
	{"network", TitleOverride{
		Keywords:       []string{"networks", "infrastructure", "administration"},
		Certifications: []string{"CCNA"},
		CareerCluster:  types.ClusterStem,
		Skills:         &SkillPatch{Technical: ip(9)},
	}},
	{"engineer", TitleOverride{
		Keywords:      []string{"engineering", "design", "specifications"},
		CareerCluster: types.ClusterStem,
		Skills:        &SkillPatch{Analytical: ip(9), Technical: ip(9)},
	}},
	{"scientist", TitleOverride{
		Keywords:      []string{"research", "experiments", "publication"},
		CareerCluster: types.ClusterStem,
		Skills:        &SkillPatch{Analytical: ip(10)},
		Environment:   &EnvPatch{Setting: []string{"laboratory", "office"}},
	}},
	{"statist", TitleOverride{
		Keywords: []string{"statistics", "modeling", "sampling"},
		Skills:   &SkillPatch{Analytical: ip(10), Detail: ip(9)},
	}},
	{"actuar", TitleOverride{
		Keywords:       []string{"risk analysis", "insurance", "probability"},
		Certifications: []string{"ASA", "FSA"},
		CareerCluster:  types.ClusterBusiness,
		Skills:         &SkillPatch{Analytical: ip(10), Detail: ip(10)},
	}},
	{"analyst", TitleOverride{
		Keywords: []string{"analysis", "research", "reporting"},
		Skills:   &SkillPatch{Analytical: ip(9)},
	}},
	{"nurs", TitleOverride{
		Keywords:       []string{"nursing", "patient care", "clinical"},
		Certifications: []string{"RN License"},
		CareerCluster:  types.ClusterHealthcare,
		Skills:         &SkillPatch{Social: ip(9), Detail: ip(9)},
		Environment:    &EnvPatch{Setting: []string{"hospital"}, Schedule: []string{"shift", "weekend"}},
		Outlook:        &OutlookPatch{Growth: types.GrowthMuchFaster},
	}},
	{"physician", TitleOverride{
		Keywords:       []string{"medicine", "diagnosis", "treatment"},
		Certifications: []string{"MD License", "Board Certification"},
		CareerCluster:  types.ClusterHealthcare,
		Skills:         &SkillPatch{Analytical: ip(10), Detail: ip(10)},
	}},
	{"surgeon", TitleOverride{
		Keywords:       []string{"surgery", "operating room", "precision"},
		Certifications: []string{"Board Certification"},
		CareerCluster:  types.ClusterHealthcare,
		Skills:         &SkillPatch{Analytical: ip(10), Detail: ip(10), Physical: ip(6)},
		Style:          &StylePatch{Structure: "highly_structured", Pace: "fast_paced"},
	}},
	{"dental", TitleOverride{
		Keywords:      []string{"dental", "oral health", "patients"},
		CareerCluster: types.ClusterHealthcare,
		Environment:   &EnvPatch{Setting: []string{"office"}, Schedule: []string{"standard"}},
	}},
	{"pharmac", TitleOverride{
		Keywords:       []string{"pharmacy", "medications", "dosage"},
		Certifications: []string{"Pharmacist License"},
		CareerCluster:  types.ClusterHealthcare,
		Skills:         &SkillPatch{Detail: ip(10)},
	}},
	{"therap", TitleOverride{
		Keywords:      []string{"therapy", "rehabilitation", "treatment plans"},
		CareerCluster: types.ClusterHealthcare,
		Skills:        &SkillPatch{Social: ip(9)},
		Style:         &StylePatch{PeopleInteraction: "extensive"},
	}},
	{"veterinar", TitleOverride{
		Keywords:      []string{"animal health", "veterinary", "clinical"},
		CareerCluster: types.ClusterHealthcare,
		Skills:        &SkillPatch{Social: ip(7), Detail: ip(9)},
	}},
	{"teacher", TitleOverride{
		Keywords:       []string{"teaching", "instruction", "curriculum"},
		Certifications: []string{"Teaching License"},
		CareerCluster:  types.ClusterEducation,
		Skills:         &SkillPatch{Social: ip(9)},
		Style:          &StylePatch{PeopleInteraction: "extensive"},
		Environment:    &EnvPatch{Setting: []string{"school"}},
	}},
	{"professor", TitleOverride{
		Keywords:      []string{"higher education", "research", "lectures"},
		CareerCluster: types.ClusterEducation,
		Skills:        &SkillPatch{Analytical: ip(9)},
	}},
	{"librar", TitleOverride{
		Keywords:      []string{"library", "information services", "collections"},
		CareerCluster: types.ClusterEducation,
		Skills:        &SkillPatch{Detail: ip(9)},
	}},
	{"counsel", TitleOverride{
		Keywords:      []string{"counseling", "guidance", "support"},
		CareerCluster: types.ClusterSocialServices,
		Skills:        &SkillPatch{Social: ip(10)},
		Style:         &StylePatch{PeopleInteraction: "extensive"},
	}},
	{"social worker", TitleOverride{
		Keywords:       []string{"social services", "casework", "advocacy"},
		Certifications: []string{"LCSW"},
		CareerCluster:  types.ClusterSocialServices,
		Skills:         &SkillPatch{Social: ip(10)},
	}},
	{"lawyer", TitleOverride{
		Keywords:       []string{"legal", "litigation", "counsel"},
		Certifications: []string{"Bar Admission"},
		CareerCluster:  types.ClusterLaw,
		Skills:         &SkillPatch{Analytical: ip(10)},
	}},
	{"attorney", TitleOverride{
		Keywords:       []string{"legal", "litigation", "counsel"},
		Certifications: []string{"Bar Admission"},
		CareerCluster:  types.ClusterLaw,
		Skills:         &SkillPatch{Analytical: ip(10)},
	}},
	{"paralegal", TitleOverride{
		Keywords:      []string{"legal research", "case preparation", "documentation"},
		CareerCluster: types.ClusterLaw,
		Skills:        &SkillPatch{Detail: ip(10)},
	}},
	{"police", TitleOverride{
		Keywords:      []string{"law enforcement", "public safety", "patrol"},
		CareerCluster: types.ClusterLaw,
		Environment:   &EnvPatch{Setting: []string{"field"}, Schedule: []string{"shift", "oncall"}},
		Skills:        &SkillPatch{Physical: ip(8)},
	}},
	{"firefight", TitleOverride{
		Keywords:      []string{"emergency response", "fire suppression", "rescue"},
		CareerCluster: types.ClusterLaw,
		Skills:        &SkillPatch{Physical: ip(10)},
		Environment:   &EnvPatch{Schedule: []string{"shift", "oncall"}, PhysicalDemands: types.DemandVeryHeavy},
	}},
	{"accountant", TitleOverride{
		Keywords:       []string{"accounting", "financial statements", "reconciliation"},
		Certifications: []string{"CPA"},
		CareerCluster:  types.ClusterBusiness,
		Skills:         &SkillPatch{Analytical: ip(9), Detail: ip(10)},
	}},
	{"audit", TitleOverride{
		Keywords:       []string{"auditing", "compliance", "controls"},
		Certifications: []string{"CPA", "CIA"},
		Skills:         &SkillPatch{Detail: ip(10)},
	}},
	{"financ", TitleOverride{
		Keywords:      []string{"finance", "investment", "portfolio"},
		CareerCluster: types.ClusterBusiness,
		Skills:        &SkillPatch{Analytical: ip(9)},
	}},
	{"market", TitleOverride{
		Keywords:          []string{"marketing", "advertising", "branding"},
		CareerCluster:     types.ClusterBusiness,
		SecondaryClusters: []string{types.ClusterCommunication},
		Skills:            &SkillPatch{Creative: ip(8), Social: ip(8)},
	}},
	{"logist", TitleOverride{
		Keywords:      []string{"logistics", "supply chain", "distribution"},
		CareerCluster: types.ClusterBusiness,
		Skills:        &SkillPatch{Analytical: ip(8), Detail: ip(8)},
	}},
	{"purchas", TitleOverride{
		Keywords:      []string{"purchasing", "procurement", "vendors"},
		CareerCluster: types.ClusterBusiness,
		Skills:        &SkillPatch{Detail: ip(8)},
	}},
	{"economist", TitleOverride{
		Keywords: []string{"economics", "forecasting", "policy analysis"},
		Skills:   &SkillPatch{Analytical: ip(10)},
	}},
	{"design", TitleOverride{
		Keywords:      []string{"design", "visual", "concepts"},
		CareerCluster: types.ClusterArts,
		Skills:        &SkillPatch{Creative: ip(9)},
	}},
	{"artist", TitleOverride{
		Keywords:      []string{"art", "creative expression", "composition"},
		CareerCluster: types.ClusterArts,
		Skills:        &SkillPatch{Creative: ip(10)},
		Style:         &StylePatch{Independence: "independent", Structure: "flexible"},
	}},
	{"writer", TitleOverride{
		Keywords:      []string{"writing", "content", "publishing"},
		CareerCluster: types.ClusterCommunication,
		Skills:        &SkillPatch{Creative: ip(9)},
		Environment:   &EnvPatch{Setting: []string{"remote", "home", "office"}},
	}},
	{"editor", TitleOverride{
		Keywords:      []string{"editing", "publishing", "review"},
		CareerCluster: types.ClusterCommunication,
		Skills:        &SkillPatch{Detail: ip(9)},
	}},
	{"journal", TitleOverride{
		Keywords:      []string{"journalism", "reporting", "interviews"},
		CareerCluster: types.ClusterCommunication,
		Style:         &StylePatch{Pace: "fast_paced", Variety: "high_variety"},
	}},
	{"photograph", TitleOverride{
		Keywords:      []string{"photography", "imaging", "composition"},
		CareerCluster: types.ClusterArts,
		Skills:        &SkillPatch{Creative: ip(9), Technical: ip(7)},
	}},
	{"chef", TitleOverride{
		Keywords:      []string{"culinary", "menu development", "kitchen"},
		CareerCluster: types.ClusterService,
		Skills:        &SkillPatch{Creative: ip(8), Leadership: ip(7)},
		Style:         &StylePatch{Pace: "fast_paced"},
	}},
	{"cook", TitleOverride{
		Keywords:      []string{"cooking", "food preparation", "kitchen"},
		CareerCluster: types.ClusterService,
	}},
	{"driver", TitleOverride{
		Keywords:       []string{"driving", "transportation", "delivery"},
		Certifications: []string{"CDL"},
		CareerCluster:  types.ClusterTrades,
		Environment:    &EnvPatch{TravelRequired: types.TravelConstant},
		Style:          &StylePatch{Independence: "independent"},
	}},
	{"pilot", TitleOverride{
		Keywords:       []string{"aviation", "flight operations", "navigation"},
		Certifications: []string{"FAA Certificate"},
		Skills:         &SkillPatch{Technical: ip(9), Detail: ip(10)},
		Environment:    &EnvPatch{TravelRequired: types.TravelConstant},
	}},
	{"electric", TitleOverride{
		Keywords:       []string{"electrical", "wiring", "circuits"},
		Certifications: []string{"Electrician License"},
		CareerCluster:  types.ClusterTrades,
		Skills:         &SkillPatch{Technical: ip(9)},
	}},
	{"plumb", TitleOverride{
		Keywords:       []string{"plumbing", "pipefitting", "fixtures"},
		Certifications: []string{"Plumbing License"},
		CareerCluster:  types.ClusterTrades,
	}},
	{"carpent", TitleOverride{
		Keywords:      []string{"carpentry", "woodworking", "framing"},
		CareerCluster: types.ClusterTrades,
		Skills:        &SkillPatch{Physical: ip(8), Creative: ip(6)},
	}},
	{"weld", TitleOverride{
		Keywords:       []string{"welding", "fabrication", "metalwork"},
		Certifications: []string{"AWS Certification"},
		CareerCluster:  types.ClusterTrades,
		Skills:         &SkillPatch{Physical: ip(8), Detail: ip(9)},
	}},
	{"mechanic", TitleOverride{
		Keywords:      []string{"repair", "diagnostics", "maintenance"},
		CareerCluster: types.ClusterTrades,
		Skills:        &SkillPatch{Technical: ip(9)},
	}},
	{"machinist", TitleOverride{
		Keywords:      []string{"machining", "precision", "tooling"},
		CareerCluster: types.ClusterTrades,
		Skills:        &SkillPatch{Technical: ip(8), Detail: ip(10)},
	}},
	{"farm", TitleOverride{
		Keywords:      []string{"agriculture", "crops", "livestock"},
		CareerCluster: types.ClusterTrades,
		Environment:   &EnvPatch{Setting: []string{"outdoor", "field"}},
		Skills:        &SkillPatch{Physical: ip(8)},
	}},
}

// overrideMatchers holds one compiled matcher per titleOverrides entry, same
// index order. A pattern matches only when preceded by start-of-string or a
// non-word character; nothing is required after the pattern, so fragments
// extend forward into compound words.
var overrideMatchers = compileOverrideMatchers()

func compileOverrideMatchers() []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, len(titleOverrides))
	for i, entry := range titleOverrides {
		matchers[i] = regexp.MustCompile(`(?:^|[^a-z0-9_])` + regexp.QuoteMeta(entry.pattern))
	}
	return matchers
}
