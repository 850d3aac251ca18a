package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/evidence-vault/internal/types"
)

func TestDefaultWeights(t *testing.T) {
	weights := DefaultWeights()

	assert.Equal(t, 0.4, weights.Skills)
	assert.Equal(t, 0.4, weights.Experience)
	assert.Equal(t, 0.2, weights.Education)
}

func TestAnalyzeJobMatch_StrongCandidate(t *testing.T) {
	matcher := NewMatcher(DefaultWeights(), zap.NewNop())

	job := types.JobPosting{
		JobID:       "job-1",
		Title:       "Senior Backend Engineer",
		Description: "Python is required for this role.",
		Location:    "Remote",
	}
	profile := types.UserProfile{
		UserID:          "user-1",
		Skills:          []string{"Python"},
		ExperienceYears: 7,
		Experience: []types.WorkExperience{
			{Description: "Built Python data services", StartDate: "2019-01-01", EndDate: "2023-01-01"},
		},
	}

	analysis := matcher.AnalyzeJobMatch(job, profile)

	assert.Equal(t, "job-1", analysis.JobID)
	assert.Equal(t, "user-1", analysis.UserID)
	assert.Equal(t, 100, analysis.OverallMatchScore)
	assert.True(t, analysis.MustHaveCoverage["Python"])
	assert.Empty(t, analysis.SkillGaps)
	require.NotEmpty(t, analysis.Recommendations)
	assert.Contains(t, analysis.Recommendations[len(analysis.Recommendations)-1], "Excellent match")
}

func TestAnalyzeJobMatch_ReportsSkillGaps(t *testing.T) {
	matcher := NewMatcher(DefaultWeights(), zap.NewNop())

	job := types.JobPosting{
		JobID:       "job-2",
		Title:       "Platform Engineer",
		Description: "Python is required. Kubernetes is required.",
	}
	profile := types.UserProfile{
		UserID: "user-1",
		Skills: []string{"Python"},
	}

	analysis := matcher.AnalyzeJobMatch(job, profile)

	assert.Equal(t, []string{"Kubernetes"}, analysis.SkillGaps)
	assert.True(t, analysis.MustHaveCoverage["Python"])
	assert.False(t, analysis.MustHaveCoverage["Kubernetes"])
	require.NotEmpty(t, analysis.Recommendations)
	assert.Contains(t, analysis.Recommendations[0], "Kubernetes")
}

func TestOverallScore_CappedAt100(t *testing.T) {
	matcher := NewMatcher(DefaultWeights(), zap.NewNop())

	matches := []types.SkillMatch{
		{Skill: "Go", UserHas: true, MatchConfidence: 1.0, Importance: "high"},
	}
	score := matcher.overallScore(
		matches,
		types.ExperienceMatch{MatchScore: 100},
		types.EducationMatch{MatchScore: 100},
		types.LocationMatch{MatchScore: 100},
		types.SalaryMatch{MatchScore: 100},
	)

	assert.Equal(t, 100, score)
}

func TestOverallScore_WeightsComponents(t *testing.T) {
	matcher := NewMatcher(DefaultWeights(), zap.NewNop())

	score := matcher.overallScore(
		nil,
		types.ExperienceMatch{MatchScore: 50},
		types.EducationMatch{MatchScore: 100},
		types.LocationMatch{MatchScore: 100},
		types.SalaryMatch{MatchScore: 100},
	)

	// 0*0.4 + 50*0.4 + 100*0.2 + 100*0.15 + 100*0.05
	assert.Equal(t, 60, score)
}

func TestCoverage_MapsSkillsToPossession(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "Go", UserHas: true},
		{Skill: "AWS", UserHas: false},
	}

	result := coverage(matches, []string{"Go", "AWS", "SQL"})

	assert.True(t, result["Go"])
	assert.False(t, result["AWS"])
	assert.False(t, result["SQL"])
}

func TestSkillGaps_OnlyImportantMisses(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "Go", UserHas: false, Importance: "critical"},
		{Skill: "AWS", UserHas: false, Importance: "high"},
		{Skill: "SQL", UserHas: false, Importance: "medium"},
		{Skill: "Python", UserHas: true, Importance: "critical"},
	}

	assert.Equal(t, []string{"Go", "AWS"}, skillGaps(matches))
}

func TestRecommendations_ExperienceShortfall(t *testing.T) {
	result := recommendations(
		types.ExperienceMatch{MatchScore: 40, MeetsMinimum: false},
		nil,
		55,
	)

	require.Len(t, result, 2)
	assert.Contains(t, result[0], "gaining more experience")
	assert.Contains(t, result[1], "Moderate match")
}

func TestRecommendations_ManyGapsNamesTopThree(t *testing.T) {
	result := recommendations(
		types.ExperienceMatch{MatchScore: 90},
		[]string{"Go", "AWS", "SQL", "React"},
		45,
	)

	require.NotEmpty(t, result)
	assert.Contains(t, result[0], "Go, AWS, SQL")
	assert.NotContains(t, result[0], "React")
}
