package matching

import (
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/evidence-vault/internal/taxonomy"
	"github.com/jonathan/evidence-vault/internal/types"
)

// relevantExperienceWeight favors relevant years over total years
const (
	relevantExperienceWeight = 0.6
	totalExperienceWeight    = 0.4
)

// analyzeExperienceMatch scores the candidate's experience against the
// posting's inferred level band.
func analyzeExperienceMatch(requirements types.JobRequirements, profile types.UserProfile) types.ExperienceMatch {
	pattern := taxonomy.ExperiencePatternFor(requirements.ExperienceLevel)
	yearsRange := pattern.YearsRange

	totalYears := profile.ExperienceYears
	if totalYears == 0 {
		for _, role := range profile.Experience {
			totalYears += yearsBetween(role.StartDate, role.EndDate)
		}
	}
	relevantYears := relevantExperienceYears(profile, requirements)

	score := yearsMatchScore(totalYears, yearsRange)*totalExperienceWeight +
		yearsMatchScore(relevantYears, yearsRange)*relevantExperienceWeight

	return types.ExperienceMatch{
		MatchScore:         int(score),
		RequiredLevel:      requirements.ExperienceLevel,
		UserTotalYears:     totalYears,
		UserRelevantYears:  relevantYears,
		RequiredYearsRange: yearsRange,
		MeetsMinimum:       totalYears >= float64(yearsRange[0]),
		Overqualified:      totalYears > float64(yearsRange[1])*1.5,
	}
}

// relevantExperienceYears counts years in roles whose text overlaps the
// required skills, weighted by the degree of overlap.
func relevantExperienceYears(profile types.UserProfile, requirements types.JobRequirements) float64 {
	if len(requirements.RequiredSkills) == 0 {
		return 0.0
	}

	relevant := 0.0
	for _, role := range profile.Experience {
		text := strings.ToLower(role.Description + " " + strings.Join(role.Responsibilities, " "))

		mentions := 0
		for _, skill := range requirements.RequiredSkills {
			if strings.Contains(text, strings.ToLower(skill)) {
				mentions++
			}
		}

		relevance := float64(mentions) / float64(len(requirements.RequiredSkills))
		if relevance > 1.0 {
			relevance = 1.0
		}
		if relevance > 0.3 {
			relevant += yearsBetween(role.StartDate, role.EndDate) * relevance
		}
	}

	return relevant
}

// yearsMatchScore scores how well a year count fits a required range:
// inside is 100, under-qualified scales down, over-qualified takes a capped penalty.
func yearsMatchScore(years float64, yearsRange [2]int) float64 {
	minYears, maxYears := float64(yearsRange[0]), float64(yearsRange[1])

	switch {
	case years >= minYears && years <= maxYears:
		return 100.0
	case years < minYears:
		if minYears == 0 {
			return 100.0
		}
		score := (years / minYears) * 80
		if score < 0 {
			return 0
		}
		return score
	default:
		penalty := (years - maxYears) * 5
		if penalty > 30 {
			penalty = 30
		}
		score := 100 - penalty
		if score < 70 {
			return 70
		}
		return score
	}
}

// yearsBetween calculates whole years between two YYYY-MM-DD dates.
// An empty or "present" end date means now.
func yearsBetween(startDate, endDate string) float64 {
	startYear := yearOf(startDate, 0)
	if startYear == 0 {
		return 0
	}

	endYear := yearOf(endDate, time.Now().Year())
	if endYear < startYear {
		return 0
	}
	return float64(endYear - startYear)
}

func yearOf(date string, fallback int) int {
	switch strings.ToLower(date) {
	case "", "present", "current":
		return fallback
	}
	parts := strings.SplitN(date, "-", 2)
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fallback
	}
	return year
}
