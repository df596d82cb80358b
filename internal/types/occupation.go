// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Career cluster identifiers assigned to occupations.
const (
	ClusterBusiness       = "business"
	ClusterStem           = "stem"
	ClusterHealthcare     = "healthcare"
	ClusterLaw            = "law"
	ClusterTrades         = "trades"
	ClusterArts           = "arts"
	ClusterCommunication  = "communication"
	ClusterEducation      = "education"
	ClusterSocialServices = "socialServices"
	ClusterService        = "service"
)

// Physical demand levels, lowest to highest.
const (
	DemandSedentary = "sedentary"
	DemandLight     = "light"
	DemandMedium    = "medium"
	DemandHeavy     = "heavy"
	DemandVeryHeavy = "veryHeavy"
)

// Travel requirement levels, lowest to highest.
const (
	TravelNone       = "none"
	TravelOccasional = "occasional"
	TravelFrequent   = "frequent"
	TravelConstant   = "constant"
)

// Employment growth outlook levels.
const (
	GrowthDeclining  = "declining"
	GrowthStable     = "stable"
	GrowthGrowing    = "growing"
	GrowthMuchFaster = "much_faster_than_average"
)

// Automation risk levels.
const (
	AutomationLow    = "low"
	AutomationMedium = "medium"
	AutomationHigh   = "high"
)

// Work style enumerations.
const (
	IndependenceIndependent = "independent"
	IndependenceTeam        = "team"
	IndependenceMixed       = "mixed"

	StructureFlexible = "flexible"
	StructureModerate = "moderate"
	StructureHigh     = "highly_structured"

	VarietyRoutine  = "routine"
	VarietyModerate = "moderate"
	VarietyHigh     = "high_variety"

	PaceMethodical = "methodical"
	PaceModerate   = "moderate"
	PaceFast       = "fast_paced"

	InteractionMinimal   = "minimal"
	InteractionModerate  = "moderate"
	InteractionExtensive = "extensive"
)

// SkillVector is a seven-dimension skill demand profile. Each dimension
// ranges 1-10 and is relative to other occupations in the dataset, not an
// absolute measurement.
type SkillVector struct {
	Analytical int `json:"analytical"`
	Creative   int `json:"creative"`
	Social     int `json:"social"`
	Technical  int `json:"technical"`
	Leadership int `json:"leadership"`
	Physical   int `json:"physical"`
	Detail     int `json:"detail"`
}

// WorkEnvironment describes where and when an occupation is performed.
type WorkEnvironment struct {
	Setting         []string `json:"setting"`
	Schedule        []string `json:"schedule"`
	PhysicalDemands string   `json:"physicalDemands"`
	TravelRequired  string   `json:"travelRequired"`
}

// WorkStyle describes how work is organized and performed.
type WorkStyle struct {
	Independence      string `json:"independence"`      // independent | team | mixed
	Structure         string `json:"structure"`         // flexible | moderate | highly_structured
	Variety           string `json:"variety"`           // routine | moderate | high_variety
	Pace              string `json:"pace"`              // methodical | moderate | fast_paced
	PeopleInteraction string `json:"peopleInteraction"` // minimal | moderate | extensive
}

// Outlook captures employment growth and automation exposure.
type Outlook struct {
	Growth         string `json:"growth"`
	AutomationRisk string `json:"automationRisk"`
}

// OccupationMetadata is the generated descriptive profile for one occupation.
// Every field group is fully populated after generation; downstream consumers
// never need per-field nil checks.
type OccupationMetadata struct {
	CareerCluster     string          `json:"careerCluster"`
	SecondaryClusters []string        `json:"secondaryClusters,omitempty"`
	WorkEnvironment   WorkEnvironment `json:"workEnvironment"`
	Skills            SkillVector     `json:"skills"`
	WorkStyle         WorkStyle       `json:"workStyle"`
	Values            []string        `json:"values"`
	Outlook           Outlook         `json:"outlook"`
	Keywords          []string        `json:"keywords"`
	Certifications    []string        `json:"certifications,omitempty"`
}

// Clone returns a deep copy of the metadata. Slice fields are copied so the
// clone can be mutated without aliasing the original.
func (m *OccupationMetadata) Clone() *OccupationMetadata {
	if m == nil {
		return nil
	}
	out := *m
	out.SecondaryClusters = copyStrings(m.SecondaryClusters)
	out.WorkEnvironment.Setting = copyStrings(m.WorkEnvironment.Setting)
	out.WorkEnvironment.Schedule = copyStrings(m.WorkEnvironment.Schedule)
	out.Values = copyStrings(m.Values)
	out.Keywords = copyStrings(m.Keywords)
	out.Certifications = copyStrings(m.Certifications)
	return &out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// OccupationRecord is one entry of the occupation dataset. Wage and
// employment figures pass through generation untouched; Metadata is
// overwritten wholesale on each run.
type OccupationRecord struct {
	SOCCode         string              `json:"socCode" validate:"required"`
	Title           string              `json:"title" validate:"required"`
	EducationLevel  string              `json:"educationLevel"`
	MedianWage      float64             `json:"medianWage,omitempty"`
	TotalEmployment int                 `json:"totalEmployment,omitempty"`
	Region          string              `json:"region,omitempty"`
	Metadata        *OccupationMetadata `json:"metadata,omitempty"`
}

// Education level codes used by the dataset, ordered by increasing
// attainment. OJT codes denote on-the-job training durations.
var EducationLevels = []string{
	"ND", "HS", "ST OJT", "MT OJT", "LT OJT", "WK EXP",
	"PS", "PS+", "SC", "AD", "AD+", "BD", "BD+", "MD", "MD+",
	"DD", "DOCT",
}

// ValidEducationLevel reports whether code is a known education level code.
func ValidEducationLevel(code string) bool {
	for _, l := range EducationLevels {
		if l == code {
			return true
		}
	}
	return false
}
