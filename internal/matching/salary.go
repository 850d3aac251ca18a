package matching

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/evidence-vault/internal/types"
)

// salaryRange is a parsed min/max compensation pair
type salaryRange struct {
	Min float64
	Max float64
}

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$([\d,]+)\s*-\s*\$?([\d,]+)`), // $50,000 - $70,000
	regexp.MustCompile(`\$(\d+)k\s*-\s*\$?(\d+)k`),     // $50k - $70k
	regexp.MustCompile(`([\d,]+)\s*-\s*([\d,]+)`),      // 50,000 - 70,000
}

// analyzeSalaryMatch scores the posting's salary range against the
// candidate's expectation. Missing information on either side scores 100:
// no disclosed conflict is no conflict.
func analyzeSalaryMatch(job types.JobPosting, profile types.UserProfile) types.SalaryMatch {
	jobSalary := extractSalaryRange(job.Salary)

	if jobSalary == nil || profile.SalaryExpectation == nil {
		return types.SalaryMatch{
			MatchScore:      100,
			SalaryDisclosed: jobSalary != nil,
			ExpectationMet:  true,
		}
	}

	jobMidpoint := (jobSalary.Min + jobSalary.Max) / 2
	userMin := profile.SalaryExpectation.Min
	if userMin == 0 {
		userMin = jobMidpoint
	}
	userMax := profile.SalaryExpectation.Max
	if userMax == 0 {
		userMax = jobMidpoint * 1.2
	}
	userMidpoint := (userMin + userMax) / 2

	var score float64
	if jobSalary.Max >= userMin && jobSalary.Min <= userMax {
		overlap := math.Min(jobSalary.Max, userMax) - math.Max(jobSalary.Min, userMin)
		totalRange := math.Max(jobSalary.Max, userMax) - math.Min(jobSalary.Min, userMin)
		if totalRange > 0 {
			score = overlap / totalRange * 100
		} else {
			score = 100
		}
	} else if jobMidpoint < userMin {
		score = math.Max(0, jobMidpoint/userMin*60)
	} else {
		score = math.Max(0, userMax/jobMidpoint*60)
	}

	percentageDiff := 0.0
	if jobMidpoint != 0 {
		percentageDiff = math.Round((userMidpoint-jobMidpoint)/jobMidpoint*1000) / 10
	}

	return types.SalaryMatch{
		MatchScore:           int(score),
		SalaryDisclosed:      true,
		ExpectationMet:       score >= 80,
		PercentageDifference: percentageDiff,
	}
}

// extractSalaryRange parses a salary range out of free text, handling
// $50k-$70k and comma-grouped dollar forms. Small numbers are assumed to be
// in thousands.
func extractSalaryRange(salaryText string) *salaryRange {
	if salaryText == "" {
		return nil
	}

	for _, pattern := range salaryPatterns {
		match := pattern.FindStringSubmatch(salaryText)
		if match == nil {
			continue
		}

		minVal, errMin := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
		maxVal, errMax := strconv.ParseFloat(strings.ReplaceAll(match[2], ",", ""), 64)
		if errMin != nil || errMax != nil {
			continue
		}

		if strings.Contains(strings.ToLower(salaryText), "k") || minVal < 1000 {
			minVal *= 1000
			maxVal *= 1000
		}

		return &salaryRange{Min: minVal, Max: maxVal}
	}

	return nil
}
