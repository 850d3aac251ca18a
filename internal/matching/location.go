package matching

import (
	"strings"

	"github.com/jonathan/evidence-vault/internal/types"
)

// analyzeLocationMatch scores location compatibility. Remote roles always
// score 100; otherwise similarity is a token-overlap ratio of the two
// location strings, with relocation willingness softening a mismatch.
func analyzeLocationMatch(job types.JobPosting, profile types.UserProfile) types.LocationMatch {
	jobLocation := strings.ToLower(job.Location)
	remote := strings.Contains(jobLocation, "remote") ||
		strings.Contains(strings.ToLower(job.Description), "work from home")

	if remote {
		return types.LocationMatch{
			MatchScore:        100,
			RemoteAvailable:   true,
			WillingToRelocate: profile.WillingToRelocate,
		}
	}

	similarity := locationSimilarity(jobLocation, strings.ToLower(profile.Location))

	var score int
	var relocationRequired bool
	switch {
	case similarity > 0.8:
		score = 100
	case similarity > 0.5:
		score = 90
	case profile.WillingToRelocate:
		score = 70
		relocationRequired = true
	default:
		score = 30
		relocationRequired = true
	}

	return types.LocationMatch{
		MatchScore:         score,
		RelocationRequired: relocationRequired,
		WillingToRelocate:  profile.WillingToRelocate,
		LocationSimilarity: similarity,
	}
}

// locationSimilarity is the Jaccard overlap of location word tokens
func locationSimilarity(jobLocation, userLocation string) float64 {
	if jobLocation == "" || userLocation == "" {
		return 0.0
	}

	jobParts := tokenSet(jobLocation)
	userParts := tokenSet(userLocation)

	intersection := 0
	for part := range jobParts {
		if _, ok := userParts[part]; ok {
			intersection++
		}
	}
	if intersection == 0 {
		return 0.0
	}

	union := len(jobParts) + len(userParts) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(location string) map[string]struct{} {
	tokens := strings.Fields(strings.ReplaceAll(location, ",", " "))
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
