package matching

import (
	"strings"

	"github.com/jonathan/evidence-vault/internal/types"
)

// degreeLevels ranks degree types for requirement comparison
var degreeLevels = map[string]int{
	"high_school": 1,
	"associate":   2,
	"bachelor":    3,
	"master":      4,
	"phd":         5,
}

// degreeHierarchy is checked highest-first when resolving a candidate's top degree
var degreeHierarchy = []string{"phd", "master", "bachelor", "associate", "high_school"}

// analyzeEducationMatch scores the candidate's education against the posting.
// When no education is required the score is a full 100.
func analyzeEducationMatch(requirements types.JobRequirements, profile types.UserProfile) types.EducationMatch {
	highest := highestDegree(profile.Education)

	if !requirements.EducationRequired {
		return types.EducationMatch{
			MatchScore:           100,
			Required:             false,
			UserMeetsRequirement: true,
			HighestDegree:        highest,
		}
	}

	// A bachelor's degree is assumed when the posting just says "degree"
	requiredLevel := degreeLevels["bachelor"]
	userLevel := degreeLevels[highest]

	score := float64(userLevel) / float64(requiredLevel) * 100
	if score > 100 {
		score = 100
	}

	return types.EducationMatch{
		MatchScore:           int(score),
		Required:             true,
		UserMeetsRequirement: userLevel >= requiredLevel,
		HighestDegree:        highest,
	}
}

// highestDegree finds the candidate's highest degree by substring match on
// the degree type, defaulting to high school.
func highestDegree(education []types.Education) string {
	for _, degree := range degreeHierarchy {
		for _, entry := range education {
			if strings.Contains(strings.ToLower(entry.DegreeType), degree) {
				return degree
			}
		}
	}
	return "high_school"
}
