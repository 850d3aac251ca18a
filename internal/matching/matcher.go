package matching

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/evidence-vault/internal/types"
)

// Fixed weights for the location and salary components; the remaining
// weights are configurable.
const (
	locationWeight = 0.15
	salaryWeight   = 0.05
)

// Weights are the configurable component weights for the overall score
type Weights struct {
	Skills     float64
	Experience float64
	Education  float64
}

// DefaultWeights returns the standard component weighting
func DefaultWeights() Weights {
	return Weights{Skills: 0.4, Experience: 0.4, Education: 0.2}
}

// Matcher computes job/candidate compatibility analyses
type Matcher struct {
	weights Weights
	logger  *zap.Logger
}

// NewMatcher creates a matcher with the given component weights
func NewMatcher(weights Weights, logger *zap.Logger) *Matcher {
	return &Matcher{weights: weights, logger: logger}
}

// AnalyzeJobMatch runs the full compatibility analysis for one posting and
// one candidate profile.
func (m *Matcher) AnalyzeJobMatch(job types.JobPosting, profile types.UserProfile) types.JobMatchAnalysis {
	requirements := ExtractRequirements(job)

	skillMatches := analyzeSkillMatches(requirements, profile)
	experienceMatch := analyzeExperienceMatch(requirements, profile)
	educationMatch := analyzeEducationMatch(requirements, profile)
	locationMatch := analyzeLocationMatch(job, profile)
	salaryMatch := analyzeSalaryMatch(job, profile)

	overall := m.overallScore(skillMatches, experienceMatch, educationMatch, locationMatch, salaryMatch)
	gaps := skillGaps(skillMatches)

	m.logger.Info("job match analysis completed",
		zap.String("job_id", job.JobID),
		zap.String("user_id", profile.UserID),
		zap.Int("overall_score", overall),
		zap.Int("skill_gaps", len(gaps)),
	)

	return types.JobMatchAnalysis{
		JobID:              job.JobID,
		UserID:             profile.UserID,
		OverallMatchScore:  overall,
		SkillMatches:       skillMatches,
		ExperienceMatch:    experienceMatch,
		EducationMatch:     educationMatch,
		LocationMatch:      locationMatch,
		SalaryMatch:        salaryMatch,
		MustHaveCoverage:   coverage(skillMatches, requirements.RequiredSkills),
		NiceToHaveCoverage: coverage(skillMatches, requirements.NiceToHave),
		SkillGaps:          gaps,
		Recommendations:    recommendations(experienceMatch, gaps, overall),
		CreatedAt:          time.Now().UTC(),
	}
}

// overallScore combines component scores using the configured weights,
// capped at 100.
func (m *Matcher) overallScore(
	skillMatches []types.SkillMatch,
	experience types.ExperienceMatch,
	education types.EducationMatch,
	location types.LocationMatch,
	salary types.SalaryMatch,
) int {
	overall := skillsComponentScore(skillMatches)*m.weights.Skills +
		float64(experience.MatchScore)*m.weights.Experience +
		float64(education.MatchScore)*m.weights.Education +
		float64(location.MatchScore)*locationWeight +
		float64(salary.MatchScore)*salaryWeight

	if overall > 100 {
		return 100
	}
	return int(overall)
}

// coverage maps each listed skill to whether the candidate has it
func coverage(matches []types.SkillMatch, skills []string) map[string]bool {
	result := make(map[string]bool, len(skills))
	for _, skill := range skills {
		result[skill] = false
		for _, match := range matches {
			if match.Skill == skill {
				result[skill] = match.UserHas
				break
			}
		}
	}
	return result
}

// skillGaps lists missing skills of high or critical importance
func skillGaps(matches []types.SkillMatch) []string {
	var gaps []string
	for _, match := range matches {
		if !match.UserHas && (match.Importance == "critical" || match.Importance == "high") {
			gaps = append(gaps, match.Skill)
		}
	}
	return gaps
}

// recommendations produces advisory text for the candidate. It never affects
// any score.
func recommendations(experience types.ExperienceMatch, gaps []string, overall int) []string {
	var result []string

	if len(gaps) > 0 {
		if len(gaps) <= 2 {
			result = append(result, fmt.Sprintf(
				"Consider developing skills in %s to significantly improve your match.", strings.Join(gaps, ", ")))
		} else {
			result = append(result, fmt.Sprintf(
				"Focus on building %s skills first - these appear most critical for this role.", strings.Join(gaps[:3], ", ")))
		}
	}

	if experience.MatchScore < 70 {
		if !experience.MeetsMinimum {
			result = append(result, "Consider gaining more experience in relevant technologies or highlighting transferable skills from other domains.")
		} else if experience.Overqualified {
			result = append(result, "You may be overqualified for this role. Consider highlighting leadership or mentoring aspects of your experience.")
		}
	}

	switch {
	case overall >= 85:
		result = append(result, "Excellent match! Ensure your resume highlights the key skills and experience that align with this role.")
	case overall >= 70:
		result = append(result, "Good match. Focus your application on demonstrating the skills and experience most relevant to this position.")
	case overall >= 50:
		result = append(result, "Moderate match. Consider gaining additional experience or skills before applying, or focus heavily on transferable skills.")
	default:
		result = append(result, "Low match. This role may require significant skill development or might not be the right fit at this time.")
	}

	return result
}
