// Package matching scores job/candidate compatibility by aggregating skill,
// experience, education, location, and salary sub-scores.
package matching

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/evidence-vault/internal/taxonomy"
	"github.com/jonathan/evidence-vault/internal/types"
)

const (
	maxRequiredSkills   = 15
	maxNiceToHaveSkills = 10
)

var requirementWords = []string{"required", "must", "essential", "mandatory", "minimum"}

// ExtractRequirements derives a requirement set from a posting using the
// skill taxonomy and simple context rules. It is the deterministic rule-based
// path; no external calls.
func ExtractRequirements(job types.JobPosting) types.JobRequirements {
	description := strings.ToLower(job.Description)
	title := strings.ToLower(job.Title)

	var required, niceToHave []string
	for skill, info := range taxonomy.SkillTaxonomy() {
		skillLower := strings.ToLower(skill)

		mentioned := strings.Contains(description, skillLower) || strings.Contains(title, skillLower)
		if !mentioned {
			for _, synonym := range info.Synonyms {
				if strings.Contains(description, strings.ToLower(synonym)) {
					mentioned = true
					break
				}
			}
		}
		if !mentioned {
			continue
		}

		contextWindow := contextAroundSkill(description, skillLower, info.Synonyms)
		if containsAnyWord(contextWindow, requirementWords) {
			required = append(required, skill)
		} else {
			niceToHave = append(niceToHave, skill)
		}
	}

	// Map iteration order is random; sort for deterministic output
	sort.Strings(required)
	sort.Strings(niceToHave)
	if len(required) > maxRequiredSkills {
		required = required[:maxRequiredSkills]
	}
	if len(niceToHave) > maxNiceToHaveSkills {
		niceToHave = niceToHave[:maxNiceToHaveSkills]
	}

	experienceLevel := "mid_level"
	for _, pattern := range taxonomy.ExperiencePatterns() {
		if containsAnyWord(description, lowered(pattern.Keywords)) {
			experienceLevel = pattern.Level
			break
		}
	}

	educationWords := []string{"bachelor", "master", "phd", "degree", "diploma"}

	return types.JobRequirements{
		RequiredSkills:    required,
		NiceToHave:        niceToHave,
		ExperienceLevel:   experienceLevel,
		EducationRequired: containsAnyWord(description, educationWords),
		SeniorityLevel:    inferSeniorityFromTitle(title),
	}
}

// contextAroundSkill collects up to 50 characters before and after every
// mention of the skill or a synonym, for required/nice-to-have classification.
func contextAroundSkill(text, skill string, synonyms []string) string {
	terms := append([]string{skill}, lowered(synonyms)...)

	var contexts []string
	for _, term := range terms {
		pattern, err := regexp.Compile(`.{0,50}\b` + regexp.QuoteMeta(term) + `\b.{0,50}`)
		if err != nil {
			continue
		}
		contexts = append(contexts, pattern.FindAllString(text, -1)...)
	}
	return strings.Join(contexts, " ")
}

// inferSeniorityFromTitle maps title words to a seniority bucket
func inferSeniorityFromTitle(title string) string {
	switch {
	case containsAnyWord(title, []string{"senior", "sr", "lead", "principal", "architect"}):
		return "senior"
	case containsAnyWord(title, []string{"junior", "jr", "entry", "associate", "trainee"}):
		return "junior"
	default:
		return "mid"
	}
}

func containsAnyWord(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

func lowered(values []string) []string {
	result := make([]string, len(values))
	for i, value := range values {
		result[i] = strings.ToLower(value)
	}
	return result
}
