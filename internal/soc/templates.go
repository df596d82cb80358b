package soc

import "github.com/jonathan/career-compass/internal/types"

// SubGroupTemplate is the authored partial metadata for one SOC sub-group.
// Keywords and SecondaryClusters may be omitted; every other field group is
// fully populated so a seeded record never has undefined sub-fields.
type SubGroupTemplate struct {
	CareerCluster     string
	SecondaryClusters []string
	Environment       types.WorkEnvironment
	Skills            types.SkillVector
	Style             types.WorkStyle
	Values            []string
	Outlook           types.Outlook
	Keywords          []string
}

// fallbackTemplate is the degenerate template used when ResolveSubGroup
// finds nothing: neutral mid-range skills and generic everything, so the
// generator's main path needs no special case for unknown codes.
var fallbackTemplate = SubGroupTemplate{
	CareerCluster: types.ClusterBusiness,
	Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
	Skills:        types.SkillVector{Analytical: 5, Creative: 5, Social: 5, Technical: 5, Leadership: 5, Physical: 5, Detail: 5},
	Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
	Values:        []string{"stability"},
	Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
}

// templateIndex maps SOC sub-group keys ("NN-N0", plus a few finer "NN-NN"
// groups) to their authored templates. Keys follow the 2018 SOC structure:
// "-10" sub-groups are each major group's leading category and double as the
// catch-all the resolver cascades to.
var templateIndex = map[string]*SubGroupTemplate{
	// 11 Management
	"11-10": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard", "oncall"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelFrequent},
		Skills:        types.SkillVector{Analytical: 8, Creative: 6, Social: 8, Technical: 5, Leadership: 10, Physical: 2, Detail: 7},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "high_variety", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"leadership", "financial_security", "prestige"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"management", "executive", "strategy", "operations"},
	},
	"11-20": {
		CareerCluster:     types.ClusterBusiness,
		SecondaryClusters: []string{types.ClusterCommunication},
		Environment:       types.WorkEnvironment{Setting: []string{"office", "remote"}, Schedule: []string{"standard", "flexible"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelOccasional},
		Skills:            types.SkillVector{Analytical: 7, Creative: 8, Social: 9, Technical: 5, Leadership: 9, Physical: 2, Detail: 6},
		Style:             types.WorkStyle{Independence: "team", Structure: "moderate", Variety: "high_variety", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:            []string{"leadership", "creativity", "variety"},
		Outlook:           types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:          []string{"marketing", "advertising", "public relations", "sales management"},
	},
	"11-30": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 9, Creative: 4, Social: 7, Technical: 6, Leadership: 9, Physical: 2, Detail: 9},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "highly_structured", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"leadership", "financial_security", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"finance", "human resources", "administration", "budgeting"},
	},
	"11-90": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "field"}, Schedule: []string{"standard", "oncall"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 7, Creative: 5, Social: 8, Technical: 5, Leadership: 9, Physical: 3, Detail: 7},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "high_variety", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"leadership", "variety", "problem_solving"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
	},

	// 13 Business and Financial Operations
	"13-10": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "remote"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 8, Creative: 4, Social: 7, Technical: 6, Leadership: 6, Physical: 1, Detail: 8},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"financial_security", "stability", "problem_solving"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"business", "operations", "analysis", "consulting"},
	},
	"13-20": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "remote"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 9, Creative: 3, Social: 5, Technical: 7, Leadership: 4, Physical: 1, Detail: 10},
		Style:         types.WorkStyle{Independence: "independent", Structure: "highly_structured", Variety: "routine", Pace: "methodical", PeopleInteraction: "moderate"},
		Values:        []string{"financial_security", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"finance", "accounting", "auditing", "tax"},
	},

	// 15 Computer and Mathematical
	"15-10": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "remote"}, Schedule: []string{"standard", "flexible"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 9, Creative: 6, Social: 4, Technical: 9, Leadership: 4, Physical: 1, Detail: 8},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"innovation", "problem_solving", "financial_security"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"computer", "technology", "systems"},
	},
	"15-12": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "remote"}, Schedule: []string{"standard", "flexible"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 9, Creative: 7, Social: 4, Technical: 10, Leadership: 4, Physical: 1, Detail: 9},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "moderate"},
		Values:        []string{"innovation", "problem_solving", "financial_security", "work_life_balance"},
		Outlook:       types.Outlook{Growth: types.GrowthMuchFaster, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"computer", "software", "systems", "information technology"},
	},
	"15-13": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "remote"}, Schedule: []string{"standard", "flexible"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 9, Creative: 7, Social: 4, Technical: 10, Leadership: 4, Physical: 1, Detail: 9},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "moderate"},
		Values:        []string{"innovation", "problem_solving", "financial_security"},
		Outlook:       types.Outlook{Growth: types.GrowthMuchFaster, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"software", "development", "applications", "systems analysis"},
	},
	"15-20": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "remote"}, Schedule: []string{"standard", "flexible"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 10, Creative: 5, Social: 3, Technical: 8, Leadership: 3, Physical: 1, Detail: 9},
		Style:         types.WorkStyle{Independence: "independent", Structure: "moderate", Variety: "moderate", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"problem_solving", "innovation", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthMuchFaster, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"mathematics", "statistics", "modeling", "data"},
	},

	// 17 Architecture and Engineering
	"17-10": {
		CareerCluster:     types.ClusterStem,
		SecondaryClusters: []string{types.ClusterArts},
		Environment:       types.WorkEnvironment{Setting: []string{"office", "field"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:            types.SkillVector{Analytical: 8, Creative: 9, Social: 6, Technical: 8, Leadership: 5, Physical: 3, Detail: 9},
		Style:             types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:            []string{"creativity", "prestige", "problem_solving"},
		Outlook:           types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:          []string{"architecture", "design", "surveying", "planning"},
	},
	"17-20": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "field", "laboratory"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 10, Creative: 7, Social: 5, Technical: 10, Leadership: 5, Physical: 3, Detail: 9},
		Style:         types.WorkStyle{Independence: "team", Structure: "moderate", Variety: "moderate", Pace: "methodical", PeopleInteraction: "moderate"},
		Values:        []string{"innovation", "problem_solving", "prestige", "financial_security"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"engineering", "design", "analysis"},
	},
	"17-30": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "field"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 7, Creative: 5, Social: 4, Technical: 8, Leadership: 3, Physical: 5, Detail: 9},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "methodical", PeopleInteraction: "moderate"},
		Values:        []string{"stability", "problem_solving"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"drafting", "engineering technology", "mapping"},
	},

	// 19 Life, Physical, and Social Science
	"19-10": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"laboratory", "field", "office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 10, Creative: 6, Social: 4, Technical: 8, Leadership: 4, Physical: 3, Detail: 10},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"innovation", "problem_solving", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"research", "biology", "life science", "laboratory"},
	},
	"19-20": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"laboratory", "field", "office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 10, Creative: 6, Social: 3, Technical: 9, Leadership: 4, Physical: 3, Detail: 10},
		Style:         types.WorkStyle{Independence: "independent", Structure: "moderate", Variety: "moderate", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"innovation", "problem_solving", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"research", "physics", "chemistry", "earth science"},
	},
	"19-30": {
		CareerCluster:     types.ClusterStem,
		SecondaryClusters: []string{types.ClusterSocialServices},
		Environment:       types.WorkEnvironment{Setting: []string{"office", "field"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelOccasional},
		Skills:            types.SkillVector{Analytical: 9, Creative: 5, Social: 7, Technical: 5, Leadership: 4, Physical: 1, Detail: 8},
		Style:             types.WorkStyle{Independence: "independent", Structure: "flexible", Variety: "moderate", Pace: "methodical", PeopleInteraction: "moderate"},
		Values:            []string{"problem_solving", "independence", "helping_others"},
		Outlook:           types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:          []string{"research", "social science", "survey", "policy"},
	},
	"19-40": {
		CareerCluster: types.ClusterStem,
		Environment:   types.WorkEnvironment{Setting: []string{"laboratory", "field"}, Schedule: []string{"standard", "shift"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 7, Creative: 3, Social: 4, Technical: 7, Leadership: 2, Physical: 5, Detail: 9},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"stability", "problem_solving"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"laboratory", "testing", "sampling", "technician"},
	},

	// 21 Community and Social Service
	"21-10": {
		CareerCluster: types.ClusterSocialServices,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "school", "field"}, Schedule: []string{"standard", "evening"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 6, Creative: 5, Social: 10, Technical: 3, Leadership: 6, Physical: 2, Detail: 6},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "high_variety", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "service", "work_life_balance"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"counseling", "social services", "community", "advocacy"},
	},
	"21-20": {
		CareerCluster: types.ClusterSocialServices,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "field"}, Schedule: []string{"flexible", "weekend"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 5, Creative: 6, Social: 10, Technical: 2, Leadership: 8, Physical: 2, Detail: 4},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "flexible", Variety: "high_variety", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "service", "leadership"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"religious", "community", "outreach"},
	},

	// 23 Legal
	"23-10": {
		CareerCluster: types.ClusterLaw,
		Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard", "evening"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 10, Creative: 5, Social: 8, Technical: 3, Leadership: 7, Physical: 1, Detail: 10},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "highly_structured", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"prestige", "financial_security", "problem_solving"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"legal", "law", "litigation", "court"},
	},
	"23-20": {
		CareerCluster: types.ClusterLaw,
		Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 8, Creative: 3, Social: 5, Technical: 5, Leadership: 3, Physical: 1, Detail: 10},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "methodical", PeopleInteraction: "moderate"},
		Values:        []string{"stability", "financial_security"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"legal", "paralegal", "research", "documentation"},
	},

	// 25 Educational Instruction and Library
	"25-10": {
		CareerCluster: types.ClusterEducation,
		Environment:   types.WorkEnvironment{Setting: []string{"school", "office"}, Schedule: []string{"standard", "flexible"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 9, Creative: 6, Social: 8, Technical: 4, Leadership: 6, Physical: 1, Detail: 7},
		Style:         types.WorkStyle{Independence: "independent", Structure: "flexible", Variety: "moderate", Pace: "methodical", PeopleInteraction: "extensive"},
		Values:        []string{"prestige", "helping_others", "independence", "work_life_balance"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"teaching", "postsecondary", "research", "education"},
	},
	"25-20": {
		CareerCluster: types.ClusterEducation,
		Environment:   types.WorkEnvironment{Setting: []string{"school"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 6, Creative: 7, Social: 9, Technical: 3, Leadership: 7, Physical: 3, Detail: 6},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "highly_structured", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "service", "stability", "work_life_balance"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"teaching", "education", "classroom", "curriculum"},
	},
	"25-30": {
		CareerCluster: types.ClusterEducation,
		Environment:   types.WorkEnvironment{Setting: []string{"school", "office", "remote"}, Schedule: []string{"flexible", "evening"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 6, Creative: 6, Social: 8, Technical: 4, Leadership: 5, Physical: 2, Detail: 6},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "variety", "work_life_balance"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"teaching", "tutoring", "instruction", "adult education"},
	},
	"25-40": {
		CareerCluster: types.ClusterEducation,
		Environment:   types.WorkEnvironment{Setting: []string{"school", "office"}, Schedule: []string{"standard", "weekend"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 7, Creative: 4, Social: 6, Technical: 6, Leadership: 4, Physical: 2, Detail: 9},
		Style:         types.WorkStyle{Independence: "independent", Structure: "highly_structured", Variety: "routine", Pace: "methodical", PeopleInteraction: "moderate"},
		Values:        []string{"stability", "service", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"library", "archives", "curation", "information"},
	},
	"25-90": {
		CareerCluster: types.ClusterEducation,
		Environment:   types.WorkEnvironment{Setting: []string{"school"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 5, Creative: 5, Social: 8, Technical: 3, Leadership: 4, Physical: 3, Detail: 6},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
	},

	// 27 Arts, Design, Entertainment, Sports, and Media
	"27-10": {
		CareerCluster: types.ClusterArts,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "remote", "home"}, Schedule: []string{"flexible"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 5, Creative: 10, Social: 5, Technical: 7, Leadership: 3, Physical: 2, Detail: 8},
		Style:         types.WorkStyle{Independence: "independent", Structure: "flexible", Variety: "high_variety", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"creativity", "independence", "variety"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"design", "art", "visual", "graphics"},
	},
	"27-20": {
		CareerCluster: types.ClusterArts,
		Environment:   types.WorkEnvironment{Setting: []string{"field"}, Schedule: []string{"evening", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelFrequent},
		Skills:        types.SkillVector{Analytical: 3, Creative: 10, Social: 7, Technical: 4, Leadership: 3, Physical: 7, Detail: 6},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "flexible", Variety: "high_variety", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"creativity", "variety", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"performing", "entertainment", "athletics", "production"},
	},
	"27-30": {
		CareerCluster:     types.ClusterCommunication,
		SecondaryClusters: []string{types.ClusterArts},
		Environment:       types.WorkEnvironment{Setting: []string{"office", "remote", "field"}, Schedule: []string{"flexible", "evening"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelOccasional},
		Skills:            types.SkillVector{Analytical: 7, Creative: 9, Social: 7, Technical: 5, Leadership: 4, Physical: 2, Detail: 8},
		Style:             types.WorkStyle{Independence: "independent", Structure: "flexible", Variety: "high_variety", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:            []string{"creativity", "variety", "independence"},
		Outlook:           types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationMedium},
		Keywords:          []string{"writing", "media", "journalism", "communication"},
	},
	"27-40": {
		CareerCluster:     types.ClusterCommunication,
		SecondaryClusters: []string{types.ClusterStem},
		Environment:       types.WorkEnvironment{Setting: []string{"field", "office"}, Schedule: []string{"flexible", "evening", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelFrequent},
		Skills:            types.SkillVector{Analytical: 5, Creative: 8, Social: 5, Technical: 8, Leadership: 3, Physical: 5, Detail: 8},
		Style:             types.WorkStyle{Independence: "team", Structure: "moderate", Variety: "high_variety", Pace: "fast_paced", PeopleInteraction: "moderate"},
		Values:            []string{"creativity", "variety"},
		Outlook:           types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:          []string{"broadcast", "audio", "video", "photography"},
	},

	// 29 Healthcare Practitioners and Technical
	"29-10": {
		CareerCluster: types.ClusterHealthcare,
		Environment:   types.WorkEnvironment{Setting: []string{"hospital", "office"}, Schedule: []string{"standard", "oncall"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 9, Creative: 4, Social: 9, Technical: 8, Leadership: 6, Physical: 4, Detail: 10},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "highly_structured", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "prestige", "financial_security", "service"},
		Outlook:       types.Outlook{Growth: types.GrowthMuchFaster, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"healthcare", "clinical", "patient care", "diagnosis"},
	},
	"29-20": {
		CareerCluster: types.ClusterHealthcare,
		Environment:   types.WorkEnvironment{Setting: []string{"hospital", "laboratory"}, Schedule: []string{"shift", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 7, Creative: 3, Social: 6, Technical: 8, Leadership: 3, Physical: 5, Detail: 10},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"helping_others", "stability", "service"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"healthcare", "medical technology", "diagnostics", "imaging"},
	},
	"29-90": {
		CareerCluster: types.ClusterHealthcare,
		Environment:   types.WorkEnvironment{Setting: []string{"hospital", "office", "field"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 7, Creative: 3, Social: 7, Technical: 6, Leadership: 4, Physical: 4, Detail: 9},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "highly_structured", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"helping_others", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
	},

	// 31 Healthcare Support
	"31-10": {
		CareerCluster: types.ClusterHealthcare,
		Environment:   types.WorkEnvironment{Setting: []string{"hospital", "home"}, Schedule: []string{"shift", "weekend", "evening"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 9, Technical: 4, Leadership: 2, Physical: 8, Detail: 7},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "service", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthMuchFaster, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"patient care", "caregiving", "nursing support"},
	},
	"31-90": {
		CareerCluster: types.ClusterHealthcare,
		Environment:   types.WorkEnvironment{Setting: []string{"hospital", "office"}, Schedule: []string{"standard", "shift"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 8, Technical: 5, Leadership: 2, Physical: 6, Detail: 8},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "service", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
	},

	// 33 Protective Service
	"33-10": {
		CareerCluster: types.ClusterLaw,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "office"}, Schedule: []string{"shift", "oncall"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 6, Creative: 3, Social: 8, Technical: 4, Leadership: 9, Physical: 7, Detail: 7},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"service", "leadership", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"public safety", "supervision", "protective services"},
	},
	"33-20": {
		CareerCluster: types.ClusterLaw,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "outdoor"}, Schedule: []string{"shift", "oncall", "weekend"}, PhysicalDemands: types.DemandVeryHeavy, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 5, Creative: 3, Social: 7, Technical: 6, Leadership: 6, Physical: 10, Detail: 6},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"service", "helping_others", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"firefighting", "emergency", "rescue", "prevention"},
	},
	"33-30": {
		CareerCluster: types.ClusterLaw,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "office"}, Schedule: []string{"shift", "oncall", "weekend"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 7, Creative: 3, Social: 8, Technical: 5, Leadership: 6, Physical: 8, Detail: 8},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "high_variety", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"service", "stability", "helping_others"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"law enforcement", "investigation", "public safety", "patrol"},
	},
	"33-90": {
		CareerCluster: types.ClusterLaw,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "retail", "office"}, Schedule: []string{"shift", "evening", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 6, Technical: 3, Leadership: 3, Physical: 6, Detail: 7},
		Style:         types.WorkStyle{Independence: "independent", Structure: "highly_structured", Variety: "routine", Pace: "methodical", PeopleInteraction: "moderate"},
		Values:        []string{"stability", "service"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"security", "monitoring", "protective services"},
	},

	// 35 Food Preparation and Serving Related
	"35-10": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"retail"}, Schedule: []string{"shift", "evening", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 4, Creative: 6, Social: 8, Technical: 3, Leadership: 8, Physical: 7, Detail: 6},
		Style:         types.WorkStyle{Independence: "team", Structure: "moderate", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"leadership", "variety", "service"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"food service", "culinary", "kitchen management"},
	},
	"35-20": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"retail"}, Schedule: []string{"shift", "evening", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 3, Creative: 6, Social: 5, Technical: 4, Leadership: 3, Physical: 7, Detail: 7},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "fast_paced", PeopleInteraction: "moderate"},
		Values:        []string{"stability", "creativity"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"cooking", "food preparation", "culinary"},
	},
	"35-30": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"retail"}, Schedule: []string{"shift", "evening", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 2, Creative: 3, Social: 8, Technical: 2, Leadership: 2, Physical: 7, Detail: 5},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"service", "variety"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"serving", "hospitality", "customer service"},
	},
	"35-90": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"retail"}, Schedule: []string{"shift", "evening", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 2, Creative: 2, Social: 6, Technical: 2, Leadership: 2, Physical: 7, Detail: 5},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "fast_paced", PeopleInteraction: "moderate"},
		Values:        []string{"stability", "service"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationHigh},
	},

	// 37 Building and Grounds Cleaning and Maintenance
	"37-10": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "office"}, Schedule: []string{"standard", "evening"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 6, Technical: 4, Leadership: 8, Physical: 6, Detail: 6},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"leadership", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"supervision", "maintenance", "facilities"},
	},
	"37-20": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "school", "hospital"}, Schedule: []string{"evening", "shift"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 2, Creative: 1, Social: 3, Technical: 3, Leadership: 1, Physical: 8, Detail: 6},
		Style:         types.WorkStyle{Independence: "independent", Structure: "highly_structured", Variety: "routine", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"stability", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"cleaning", "janitorial", "housekeeping"},
	},
	"37-30": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"outdoor"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 3, Creative: 4, Social: 3, Technical: 5, Leadership: 2, Physical: 9, Detail: 5},
		Style:         types.WorkStyle{Independence: "team", Structure: "moderate", Variety: "moderate", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"independence", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"landscaping", "grounds", "outdoor work"},
	},

	// 39 Personal Care and Service
	"39-10": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"retail", "field"}, Schedule: []string{"standard", "weekend"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 4, Creative: 4, Social: 8, Technical: 3, Leadership: 8, Physical: 4, Detail: 6},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"leadership", "service"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
	},
	"39-20": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "outdoor", "home"}, Schedule: []string{"flexible", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 3, Creative: 3, Social: 6, Technical: 3, Leadership: 2, Physical: 7, Detail: 6},
		Style:         types.WorkStyle{Independence: "independent", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"helping_others", "independence", "variety"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"animal care", "grooming", "training"},
	},
	"39-50": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"retail"}, Schedule: []string{"flexible", "weekend", "evening"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 3, Creative: 8, Social: 8, Technical: 4, Leadership: 3, Physical: 5, Detail: 8},
		Style:         types.WorkStyle{Independence: "independent", Structure: "flexible", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"creativity", "independence", "service"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"personal appearance", "styling", "cosmetology"},
	},
	"39-90": {
		CareerCluster: types.ClusterService,
		Environment:   types.WorkEnvironment{Setting: []string{"home", "school", "field"}, Schedule: []string{"flexible", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 3, Creative: 4, Social: 9, Technical: 2, Leadership: 3, Physical: 6, Detail: 5},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"helping_others", "service", "work_life_balance"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"personal care", "childcare", "recreation"},
	},

	// 41 Sales and Related
	"41-10": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"retail", "office"}, Schedule: []string{"standard", "weekend"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 5, Creative: 4, Social: 9, Technical: 3, Leadership: 8, Physical: 4, Detail: 6},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"leadership", "financial_security"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"sales", "retail management", "supervision"},
	},
	"41-20": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"retail"}, Schedule: []string{"shift", "evening", "weekend"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 3, Creative: 3, Social: 8, Technical: 3, Leadership: 2, Physical: 5, Detail: 5},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"service", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"retail", "sales", "customer service", "cashier"},
	},
	"41-30": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "remote"}, Schedule: []string{"standard", "flexible"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelFrequent},
		Skills:        types.SkillVector{Analytical: 6, Creative: 5, Social: 10, Technical: 4, Leadership: 5, Physical: 2, Detail: 7},
		Style:         types.WorkStyle{Independence: "independent", Structure: "flexible", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"financial_security", "independence", "variety"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"sales", "insurance", "financial services", "negotiation"},
	},
	"41-40": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office", "field"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelConstant},
		Skills:        types.SkillVector{Analytical: 6, Creative: 5, Social: 9, Technical: 6, Leadership: 4, Physical: 3, Detail: 6},
		Style:         types.WorkStyle{Independence: "independent", Structure: "flexible", Variety: "high_variety", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"financial_security", "independence", "variety"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"sales", "wholesale", "manufacturing", "territory"},
	},
	"41-90": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"retail", "field"}, Schedule: []string{"flexible", "weekend"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 4, Creative: 4, Social: 8, Technical: 3, Leadership: 3, Physical: 4, Detail: 5},
		Style:         types.WorkStyle{Independence: "independent", Structure: "flexible", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"independence", "variety"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
	},

	// 43 Office and Administrative Support
	"43-10": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 5, Creative: 3, Social: 7, Technical: 5, Leadership: 8, Physical: 2, Detail: 8},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "highly_structured", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"leadership", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"office management", "administrative supervision"},
	},
	"43-40": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 6, Technical: 5, Leadership: 2, Physical: 2, Detail: 9},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"stability", "work_life_balance"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"records", "clerical", "data entry", "filing"},
	},
	"43-60": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 5, Creative: 3, Social: 8, Technical: 5, Leadership: 3, Physical: 2, Detail: 9},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "moderate", Pace: "moderate", PeopleInteraction: "extensive"},
		Values:        []string{"stability", "service"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"administrative", "scheduling", "correspondence", "office support"},
	},
	"43-90": {
		CareerCluster: types.ClusterBusiness,
		Environment:   types.WorkEnvironment{Setting: []string{"office"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandSedentary, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 5, Technical: 5, Leadership: 2, Physical: 3, Detail: 8},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"stability"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationHigh},
	},

	// 45 Farming, Fishing, and Forestry
	"45-10": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"outdoor", "field"}, Schedule: []string{"standard", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 5, Creative: 3, Social: 6, Technical: 4, Leadership: 8, Physical: 6, Detail: 6},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"leadership", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
	},
	"45-20": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"outdoor"}, Schedule: []string{"standard", "weekend"}, PhysicalDemands: types.DemandVeryHeavy, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 3, Creative: 2, Social: 3, Technical: 5, Leadership: 2, Physical: 10, Detail: 5},
		Style:         types.WorkStyle{Independence: "team", Structure: "moderate", Variety: "routine", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"independence", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"agriculture", "farming", "harvesting"},
	},

	// 47 Construction and Extraction
	"47-10": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"outdoor", "field"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelFrequent},
		Skills:        types.SkillVector{Analytical: 6, Creative: 4, Social: 7, Technical: 7, Leadership: 9, Physical: 6, Detail: 7},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "fast_paced", PeopleInteraction: "extensive"},
		Values:        []string{"leadership", "financial_security"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"construction", "supervision", "project management"},
	},
	"47-20": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"outdoor", "field"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelFrequent},
		Skills:        types.SkillVector{Analytical: 5, Creative: 4, Social: 4, Technical: 8, Leadership: 3, Physical: 9, Detail: 8},
		Style:         types.WorkStyle{Independence: "team", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"financial_security", "stability", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"construction", "trades", "building"},
	},
	"47-30": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"outdoor", "field"}, Schedule: []string{"standard"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelFrequent},
		Skills:        types.SkillVector{Analytical: 3, Creative: 2, Social: 4, Technical: 5, Leadership: 1, Physical: 9, Detail: 6},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"construction", "helper", "labor"},
	},
	"47-50": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"outdoor", "field"}, Schedule: []string{"shift", "oncall"}, PhysicalDemands: types.DemandVeryHeavy, TravelRequired: types.TravelConstant},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 3, Technical: 7, Leadership: 3, Physical: 10, Detail: 7},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "minimal"},
		Values:        []string{"financial_security", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationMedium},
		Keywords:      []string{"extraction", "drilling", "mining"},
	},

	// 49 Installation, Maintenance, and Repair
	"49-10": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "warehouse"}, Schedule: []string{"standard", "oncall"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 6, Creative: 3, Social: 6, Technical: 7, Leadership: 8, Physical: 6, Detail: 7},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"leadership", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
	},
	"49-20": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "office", "home"}, Schedule: []string{"standard", "oncall"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelFrequent},
		Skills:        types.SkillVector{Analytical: 6, Creative: 3, Social: 5, Technical: 9, Leadership: 2, Physical: 7, Detail: 8},
		Style:         types.WorkStyle{Independence: "independent", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"problem_solving", "independence", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"repair", "installation", "electronics", "equipment"},
	},
	"49-30": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"warehouse", "field"}, Schedule: []string{"standard", "shift"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 6, Creative: 3, Social: 4, Technical: 9, Leadership: 2, Physical: 8, Detail: 8},
		Style:         types.WorkStyle{Independence: "independent", Structure: "moderate", Variety: "moderate", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"problem_solving", "stability", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
		Keywords:      []string{"mechanic", "repair", "maintenance", "vehicles"},
	},
	"49-90": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "warehouse"}, Schedule: []string{"standard", "oncall"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 5, Creative: 3, Social: 4, Technical: 7, Leadership: 2, Physical: 8, Detail: 7},
		Style:         types.WorkStyle{Independence: "independent", Structure: "moderate", Variety: "moderate", Pace: "moderate", PeopleInteraction: "minimal"},
		Values:        []string{"stability", "independence"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationLow},
	},

	// 51 Production
	"51-10": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"warehouse"}, Schedule: []string{"shift"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 5, Creative: 3, Social: 6, Technical: 6, Leadership: 8, Physical: 5, Detail: 7},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "fast_paced", PeopleInteraction: "moderate"},
		Values:        []string{"leadership", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"production", "manufacturing", "supervision"},
	},
	"51-40": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"warehouse"}, Schedule: []string{"shift"}, PhysicalDemands: types.DemandHeavy, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 5, Creative: 3, Social: 3, Technical: 8, Leadership: 2, Physical: 7, Detail: 9},
		Style:         types.WorkStyle{Independence: "independent", Structure: "highly_structured", Variety: "routine", Pace: "methodical", PeopleInteraction: "minimal"},
		Values:        []string{"stability", "financial_security"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"metalworking", "machining", "fabrication"},
	},
	"51-90": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"warehouse"}, Schedule: []string{"shift"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 3, Technical: 6, Leadership: 2, Physical: 6, Detail: 8},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "minimal"},
		Values:        []string{"stability"},
		Outlook:       types.Outlook{Growth: types.GrowthDeclining, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"production", "assembly", "operators"},
	},

	// 53 Transportation and Material Moving
	"53-10": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"warehouse", "office"}, Schedule: []string{"shift"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelOccasional},
		Skills:        types.SkillVector{Analytical: 5, Creative: 2, Social: 6, Technical: 5, Leadership: 8, Physical: 5, Detail: 7},
		Style:         types.WorkStyle{Independence: "mixed", Structure: "highly_structured", Variety: "routine", Pace: "fast_paced", PeopleInteraction: "moderate"},
		Values:        []string{"leadership", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
	},
	"53-20": {
		CareerCluster: types.ClusterTrades, SecondaryClusters: []string{types.ClusterStem},
		Environment: types.WorkEnvironment{Setting: []string{"field"}, Schedule: []string{"shift", "weekend", "oncall"}, PhysicalDemands: types.DemandLight, TravelRequired: types.TravelConstant},
		Skills:      types.SkillVector{Analytical: 8, Creative: 2, Social: 6, Technical: 9, Leadership: 6, Physical: 4, Detail: 10},
		Style:       types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:      []string{"prestige", "financial_security", "variety"},
		Outlook:     types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationLow},
		Keywords:    []string{"aviation", "flight", "aircraft"},
	},
	"53-30": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"field"}, Schedule: []string{"shift", "weekend"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelConstant},
		Skills:        types.SkillVector{Analytical: 3, Creative: 1, Social: 4, Technical: 5, Leadership: 2, Physical: 6, Detail: 7},
		Style:         types.WorkStyle{Independence: "independent", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "minimal"},
		Values:        []string{"independence", "stability"},
		Outlook:       types.Outlook{Growth: types.GrowthGrowing, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"driving", "transportation", "delivery"},
	},
	"53-60": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"field", "outdoor"}, Schedule: []string{"shift"}, PhysicalDemands: types.DemandMedium, TravelRequired: types.TravelFrequent},
		Skills:        types.SkillVector{Analytical: 4, Creative: 2, Social: 4, Technical: 6, Leadership: 3, Physical: 6, Detail: 7},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "moderate", PeopleInteraction: "moderate"},
		Values:        []string{"stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationMedium},
	},
	"53-70": {
		CareerCluster: types.ClusterTrades,
		Environment:   types.WorkEnvironment{Setting: []string{"warehouse"}, Schedule: []string{"shift", "evening"}, PhysicalDemands: types.DemandVeryHeavy, TravelRequired: types.TravelNone},
		Skills:        types.SkillVector{Analytical: 2, Creative: 1, Social: 3, Technical: 4, Leadership: 1, Physical: 10, Detail: 5},
		Style:         types.WorkStyle{Independence: "team", Structure: "highly_structured", Variety: "routine", Pace: "fast_paced", PeopleInteraction: "minimal"},
		Values:        []string{"stability"},
		Outlook:       types.Outlook{Growth: types.GrowthStable, AutomationRisk: types.AutomationHigh},
		Keywords:      []string{"warehouse", "material handling", "loading"},
	},
}
