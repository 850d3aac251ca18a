package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperiencePatternFor_KnownLevel(t *testing.T) {
	pattern := ExperiencePatternFor("senior_level")
	assert.Equal(t, "senior_level", pattern.Level)
	assert.Equal(t, [2]int{5, 10}, pattern.YearsRange)
}

func TestExperiencePatternFor_UnknownLevelDefaultsToMid(t *testing.T) {
	pattern := ExperiencePatternFor("wizard_level")
	assert.Equal(t, "mid_level", pattern.Level)
}
