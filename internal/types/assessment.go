package types

// AssessmentProfile is a user's self-assessment, shaped to be directly
// comparable against generated occupation metadata.
type AssessmentProfile struct {
	Skills    SkillVector `json:"skills"`
	Values    []string    `json:"values"`
	Settings  []string    `json:"settings"`  // preferred work settings (office, remote, field, ...)
	Schedules []string    `json:"schedules"` // preferred schedule tags (standard, flexible, ...)
}

// MatchResult is one scored occupation for a given assessment profile.
type MatchResult struct {
	SOCCode       string   `json:"socCode"`
	Title         string   `json:"title"`
	CareerCluster string   `json:"careerCluster"`
	MedianWage    float64  `json:"medianWage,omitempty"`
	Score         float64  `json:"score"`
	Reasons       []string `json:"reasons"`
}

// MatchPage is one page of ranked match results.
type MatchPage struct {
	Results    []MatchResult `json:"results"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalCount int           `json:"total_count"`
	TotalPages int           `json:"total_pages"`
}
