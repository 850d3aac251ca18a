package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/evidence-vault/internal/types"
)

func TestAnalyzeEducationMatch_NotRequired(t *testing.T) {
	requirements := types.JobRequirements{EducationRequired: false}
	profile := types.UserProfile{
		Education: []types.Education{{DegreeType: "Master of Science"}},
	}

	match := analyzeEducationMatch(requirements, profile)

	assert.Equal(t, 100, match.MatchScore)
	assert.False(t, match.Required)
	assert.True(t, match.UserMeetsRequirement)
	assert.Equal(t, "master", match.HighestDegree)
}

func TestAnalyzeEducationMatch_BachelorMeetsRequirement(t *testing.T) {
	requirements := types.JobRequirements{EducationRequired: true}
	profile := types.UserProfile{
		Education: []types.Education{{DegreeType: "Bachelor of Arts"}},
	}

	match := analyzeEducationMatch(requirements, profile)

	assert.Equal(t, 100, match.MatchScore)
	assert.True(t, match.UserMeetsRequirement)
}

func TestAnalyzeEducationMatch_PhdCappedAt100(t *testing.T) {
	requirements := types.JobRequirements{EducationRequired: true}
	profile := types.UserProfile{
		Education: []types.Education{{DegreeType: "PhD in Physics"}},
	}

	match := analyzeEducationMatch(requirements, profile)

	assert.Equal(t, 100, match.MatchScore)
	assert.True(t, match.UserMeetsRequirement)
	assert.Equal(t, "phd", match.HighestDegree)
}

func TestAnalyzeEducationMatch_AssociateFallsShort(t *testing.T) {
	requirements := types.JobRequirements{EducationRequired: true}
	profile := types.UserProfile{
		Education: []types.Education{{DegreeType: "Associate Degree"}},
	}

	match := analyzeEducationMatch(requirements, profile)

	assert.Equal(t, 66, match.MatchScore)
	assert.False(t, match.UserMeetsRequirement)
}

func TestAnalyzeEducationMatch_NoEducationDefaultsToHighSchool(t *testing.T) {
	requirements := types.JobRequirements{EducationRequired: true}

	match := analyzeEducationMatch(requirements, types.UserProfile{})

	assert.Equal(t, "high_school", match.HighestDegree)
	assert.False(t, match.UserMeetsRequirement)
	assert.Equal(t, 33, match.MatchScore)
}

func TestHighestDegree_PicksHighest(t *testing.T) {
	education := []types.Education{
		{DegreeType: "Bachelor of Science"},
		{DegreeType: "PhD in Biology"},
	}

	assert.Equal(t, "phd", highestDegree(education))
}
