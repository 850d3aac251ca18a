package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/evidence-vault/internal/types"
)

func TestMatchSkill_ExactMatch(t *testing.T) {
	profile := types.UserProfile{Skills: []string{"python"}}

	match := matchSkill("Python", profile, "high")

	assert.True(t, match.UserHas)
	assert.Equal(t, 1.0, match.MatchConfidence)
	assert.Equal(t, "high", match.Importance)
	assert.Empty(t, match.SynonymsMatched)
}

func TestMatchSkill_SynonymMatch(t *testing.T) {
	profile := types.UserProfile{Skills: []string{"Golang"}}

	match := matchSkill("Go", profile, "high")

	assert.True(t, match.UserHas)
	assert.Equal(t, 0.8, match.MatchConfidence)
	assert.Equal(t, []string{"Golang"}, match.SynonymsMatched)
}

func TestMatchSkill_NoMatch(t *testing.T) {
	profile := types.UserProfile{Skills: []string{"Rust"}}

	match := matchSkill("Python", profile, "medium")

	assert.False(t, match.UserHas)
	assert.Equal(t, 0.0, match.MatchConfidence)
}

func TestInferProficiency_YearsThresholds(t *testing.T) {
	role := func(start, end string) types.WorkExperience {
		return types.WorkExperience{
			Description: "Built services in Go",
			StartDate:   start,
			EndDate:     end,
		}
	}

	assert.Equal(t, "expert", inferProficiency("Go", []types.WorkExperience{role("2015-01-01", "2021-01-01")}))
	assert.Equal(t, "advanced", inferProficiency("Go", []types.WorkExperience{role("2018-01-01", "2021-01-01")}))
	assert.Equal(t, "intermediate", inferProficiency("Go", []types.WorkExperience{role("2020-01-01", "2021-01-01")}))
}

func TestInferProficiency_RepeatedMentionsWithoutYears(t *testing.T) {
	experience := []types.WorkExperience{
		{Description: "Go tooling", StartDate: "2020-01-01", EndDate: "2020-06-01"},
		{Description: "Go services", StartDate: "2021-01-01", EndDate: "2021-06-01"},
	}

	assert.Equal(t, "intermediate", inferProficiency("Go", experience))
}

func TestInferProficiency_NoMentions(t *testing.T) {
	experience := []types.WorkExperience{
		{Description: "Maintained billing spreadsheets", StartDate: "2015-01-01", EndDate: "2021-01-01"},
	}

	assert.Equal(t, "beginner", inferProficiency("Go", experience))
}

func TestSkillsComponentScore_WeightsByImportance(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "Python", UserHas: true, MatchConfidence: 1.0, Importance: "high"},
		{Skill: "AWS", UserHas: false, Importance: "medium"},
	}

	// (100*0.8 + 0*0.6) / (0.8 + 0.6)
	assert.InDelta(t, 57.14, skillsComponentScore(matches), 0.01)
}

func TestSkillsComponentScore_ScalesByConfidence(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "Go", UserHas: true, MatchConfidence: 0.8, Importance: "high"},
	}

	assert.InDelta(t, 80.0, skillsComponentScore(matches), 0.001)
}

func TestSkillsComponentScore_UnknownImportanceDefaultsToMedium(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "Go", UserHas: true, MatchConfidence: 1.0, Importance: "unusual"},
	}

	assert.InDelta(t, 100.0, skillsComponentScore(matches), 0.001)
}

func TestSkillsComponentScore_Empty(t *testing.T) {
	assert.Equal(t, 0.0, skillsComponentScore(nil))
}
