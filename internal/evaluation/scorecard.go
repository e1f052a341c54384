package evaluation

// Scorecard is the structured result of evaluating a resume against a
// job description. Fields absent from the model response decode to
// their zero values, which downstream decision logic treats as zero
// scores.
type Scorecard struct {
	SkillsMatch     float64  `json:"skills_match"`
	ExperienceYears int      `json:"experience_years"`
	DomainRelevance float64  `json:"domain_relevance"`
	RedFlags        []string `json:"red_flags"`
	Confidence      float64  `json:"confidence"`
	Summary         string   `json:"summary"`
}
