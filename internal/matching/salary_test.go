package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/evidence-vault/internal/types"
)

func TestExtractSalaryRange_DollarForm(t *testing.T) {
	parsed := extractSalaryRange("$50,000 - $70,000 per year")

	require.NotNil(t, parsed)
	assert.Equal(t, 50000.0, parsed.Min)
	assert.Equal(t, 70000.0, parsed.Max)
}

func TestExtractSalaryRange_KNotation(t *testing.T) {
	parsed := extractSalaryRange("$50k - $70k")

	require.NotNil(t, parsed)
	assert.Equal(t, 50000.0, parsed.Min)
	assert.Equal(t, 70000.0, parsed.Max)
}

func TestExtractSalaryRange_BareNumbers(t *testing.T) {
	parsed := extractSalaryRange("120,000 - 150,000")

	require.NotNil(t, parsed)
	assert.Equal(t, 120000.0, parsed.Min)
	assert.Equal(t, 150000.0, parsed.Max)
}

func TestExtractSalaryRange_SmallNumbersAssumedThousands(t *testing.T) {
	parsed := extractSalaryRange("50 - 70")

	require.NotNil(t, parsed)
	assert.Equal(t, 50000.0, parsed.Min)
	assert.Equal(t, 70000.0, parsed.Max)
}

func TestExtractSalaryRange_Unparseable(t *testing.T) {
	assert.Nil(t, extractSalaryRange(""))
	assert.Nil(t, extractSalaryRange("competitive compensation"))
}

func TestAnalyzeSalaryMatch_UndisclosedSalary(t *testing.T) {
	job := types.JobPosting{Salary: ""}
	profile := types.UserProfile{
		SalaryExpectation: &types.SalaryExpectation{Min: 100000, Max: 120000},
	}

	match := analyzeSalaryMatch(job, profile)

	assert.Equal(t, 100, match.MatchScore)
	assert.False(t, match.SalaryDisclosed)
	assert.True(t, match.ExpectationMet)
}

func TestAnalyzeSalaryMatch_NoExpectation(t *testing.T) {
	job := types.JobPosting{Salary: "$100,000 - $120,000"}

	match := analyzeSalaryMatch(job, types.UserProfile{})

	assert.Equal(t, 100, match.MatchScore)
	assert.True(t, match.SalaryDisclosed)
}

func TestAnalyzeSalaryMatch_IdenticalRanges(t *testing.T) {
	job := types.JobPosting{Salary: "$100,000 - $120,000"}
	profile := types.UserProfile{
		SalaryExpectation: &types.SalaryExpectation{Min: 100000, Max: 120000},
	}

	match := analyzeSalaryMatch(job, profile)

	assert.Equal(t, 100, match.MatchScore)
	assert.True(t, match.ExpectationMet)
	assert.Equal(t, 0.0, match.PercentageDifference)
}

func TestAnalyzeSalaryMatch_PartialOverlap(t *testing.T) {
	job := types.JobPosting{Salary: "$100,000 - $140,000"}
	profile := types.UserProfile{
		SalaryExpectation: &types.SalaryExpectation{Min: 120000, Max: 160000},
	}

	match := analyzeSalaryMatch(job, profile)

	// 20k of overlap across a 60k combined span
	assert.Equal(t, 33, match.MatchScore)
	assert.False(t, match.ExpectationMet)
	assert.InDelta(t, 16.7, match.PercentageDifference, 0.001)
}

func TestAnalyzeSalaryMatch_JobPaysBelowExpectation(t *testing.T) {
	job := types.JobPosting{Salary: "$50,000 - $60,000"}
	profile := types.UserProfile{
		SalaryExpectation: &types.SalaryExpectation{Min: 80000, Max: 100000},
	}

	match := analyzeSalaryMatch(job, profile)

	assert.Equal(t, 41, match.MatchScore)
	assert.False(t, match.ExpectationMet)
}
