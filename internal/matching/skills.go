package matching

import (
	"strings"

	"github.com/jonathan/evidence-vault/internal/taxonomy"
	"github.com/jonathan/evidence-vault/internal/types"
)

// importanceWeights weight skill matches by how critical the skill is
var importanceWeights = map[string]float64{
	"critical": 1.0,
	"high":     0.8,
	"medium":   0.6,
	"low":      0.4,
}

// analyzeSkillMatches matches every required and nice-to-have skill against
// the candidate: exact first, then taxonomy synonyms.
func analyzeSkillMatches(requirements types.JobRequirements, profile types.UserProfile) []types.SkillMatch {
	matches := make([]types.SkillMatch, 0, len(requirements.RequiredSkills)+len(requirements.NiceToHave))

	for _, skill := range requirements.RequiredSkills {
		matches = append(matches, matchSkill(skill, profile, "high"))
	}
	for _, skill := range requirements.NiceToHave {
		matches = append(matches, matchSkill(skill, profile, "medium"))
	}

	return matches
}

// matchSkill matches one required skill against the candidate's skills
func matchSkill(requiredSkill string, profile types.UserProfile, importance string) types.SkillMatch {
	for _, userSkill := range profile.Skills {
		if strings.EqualFold(userSkill, requiredSkill) {
			return types.SkillMatch{
				Skill:           requiredSkill,
				UserHas:         true,
				Proficiency:     inferProficiency(requiredSkill, profile.Experience),
				Importance:      importance,
				MatchConfidence: 1.0,
			}
		}
	}

	var matchedSynonyms []string
	for _, synonym := range taxonomy.Synonyms(requiredSkill) {
		for _, userSkill := range profile.Skills {
			if strings.Contains(strings.ToLower(userSkill), strings.ToLower(synonym)) {
				matchedSynonyms = append(matchedSynonyms, synonym)
				break
			}
		}
	}
	if len(matchedSynonyms) > 0 {
		return types.SkillMatch{
			Skill:           requiredSkill,
			UserHas:         true,
			Proficiency:     inferProficiency(requiredSkill, profile.Experience),
			Importance:      importance,
			MatchConfidence: 0.8,
			SynonymsMatched: matchedSynonyms,
		}
	}

	return types.SkillMatch{
		Skill:           requiredSkill,
		UserHas:         false,
		Importance:      importance,
		MatchConfidence: 0.0,
	}
}

// inferProficiency estimates skill proficiency from how often and how long
// the skill appears across the candidate's roles.
func inferProficiency(skill string, experience []types.WorkExperience) string {
	terms := append([]string{strings.ToLower(skill)}, lowered(taxonomy.Synonyms(skill))...)

	mentions := 0
	totalYears := 0.0
	for _, role := range experience {
		text := strings.ToLower(role.Description + " " + strings.Join(role.Responsibilities, " "))
		if containsAnyWord(text, terms) {
			mentions++
			totalYears += yearsBetween(role.StartDate, role.EndDate)
		}
	}

	switch {
	case totalYears >= 5:
		return "expert"
	case totalYears >= 3:
		return "advanced"
	case totalYears >= 1 || mentions >= 2:
		return "intermediate"
	default:
		return "beginner"
	}
}

// skillsComponentScore aggregates skill matches into one 0-100 score,
// weighted by importance and scaled by match confidence.
func skillsComponentScore(matches []types.SkillMatch) float64 {
	if len(matches) == 0 {
		return 0.0
	}

	totalScore := 0.0
	totalWeight := 0.0
	for _, match := range matches {
		weight, ok := importanceWeights[match.Importance]
		if !ok {
			weight = importanceWeights["medium"]
		}

		score := 0.0
		if match.UserHas {
			score = 100.0 * match.MatchConfidence
		}

		totalScore += score * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0.0
	}
	return totalScore / totalWeight
}
