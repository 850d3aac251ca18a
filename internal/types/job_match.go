// Package types provides type definitions for structured data used throughout the evidence-vault system.
package types

import "time"

// JobPosting represents the raw job data handed to the matcher
type JobPosting struct {
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Salary      string `json:"salary,omitempty"`
}

// WorkExperience is one role in a candidate's history
type WorkExperience struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Education is one degree in a candidate's history
type Education struct {
	DegreeType  string `json:"degree_type"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// SalaryExpectation is the candidate's desired compensation range
type SalaryExpectation struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

// UserProfile represents the candidate side of a job match
type UserProfile struct {
	UserID            string             `json:"user_id"`
	Skills            []string           `json:"skills"`
	Experience        []WorkExperience   `json:"experience,omitempty"`
	ExperienceYears   float64            `json:"experience_years,omitempty"`
	Education         []Education        `json:"education,omitempty"`
	Location          string             `json:"location,omitempty"`
	WillingToRelocate bool               `json:"willing_to_relocate,omitempty"`
	SalaryExpectation *SalaryExpectation `json:"salary_expectation,omitempty"`
}

// SkillMatch is the result of matching one required skill against the candidate
type SkillMatch struct {
	Skill           string   `json:"skill"`
	UserHas         bool     `json:"user_has"`
	Proficiency     string   `json:"proficiency_level,omitempty"` // beginner, intermediate, advanced, expert
	Importance      string   `json:"importance"`                  // low, medium, high, critical
	MatchConfidence float64  `json:"match_confidence"`
	SynonymsMatched []string `json:"synonyms_matched,omitempty"`
}

// ExperienceMatch summarizes experience-level compatibility
type ExperienceMatch struct {
	MatchScore         int     `json:"match_score"`
	RequiredLevel      string  `json:"required_level"`
	UserTotalYears     float64 `json:"user_total_years"`
	UserRelevantYears  float64 `json:"user_relevant_years"`
	RequiredYearsRange [2]int  `json:"required_years_range"`
	MeetsMinimum       bool    `json:"meets_minimum"`
	Overqualified      bool    `json:"overqualified"`
}

// EducationMatch summarizes education-requirement compatibility
type EducationMatch struct {
	MatchScore           int    `json:"match_score"`
	Required             bool   `json:"required"`
	UserMeetsRequirement bool   `json:"user_meets_requirement"`
	HighestDegree        string `json:"highest_degree"`
}

// LocationMatch summarizes location compatibility
type LocationMatch struct {
	MatchScore         int     `json:"match_score"`
	RemoteAvailable    bool    `json:"remote_available"`
	RelocationRequired bool    `json:"relocation_required"`
	WillingToRelocate  bool    `json:"user_willing_to_relocate"`
	LocationSimilarity float64 `json:"location_similarity"`
}

// SalaryMatch summarizes salary compatibility
type SalaryMatch struct {
	MatchScore           int     `json:"match_score"`
	SalaryDisclosed      bool    `json:"salary_disclosed"`
	ExpectationMet       bool    `json:"expectation_met"`
	PercentageDifference float64 `json:"percentage_difference"`
}

// JobMatchAnalysis is the complete match result between one job and one candidate
type JobMatchAnalysis struct {
	JobID              string          `json:"job_id"`
	UserID             string          `json:"user_id"`
	OverallMatchScore  int             `json:"overall_match_score"` // 0-100
	SkillMatches       []SkillMatch    `json:"skill_matches"`
	ExperienceMatch    ExperienceMatch `json:"experience_match"`
	EducationMatch     EducationMatch  `json:"education_match"`
	LocationMatch      LocationMatch   `json:"location_match"`
	SalaryMatch        SalaryMatch     `json:"salary_match"`
	MustHaveCoverage   map[string]bool `json:"must_have_coverage"`
	NiceToHaveCoverage map[string]bool `json:"nice_to_have_coverage"`
	SkillGaps          []string        `json:"skill_gaps"`
	Recommendations    []string        `json:"recommendations"`
	CreatedAt          time.Time       `json:"created_at"`
}

// JobRequirements is the rule-extracted requirement set for a posting
type JobRequirements struct {
	RequiredSkills    []string `json:"required_skills"`
	NiceToHave        []string `json:"nice_to_have"`
	ExperienceLevel   string   `json:"experience_level"`
	EducationRequired bool     `json:"education_required"`
	SeniorityLevel    string   `json:"seniority_level"`
}
