package taxonomy

// ExperiencePattern describes one experience-level band
type ExperiencePattern struct {
	Level         string
	YearsRange    [2]int
	Keywords      []string
	TypicalTitles []string
}

// ExperiencePatterns returns the experience-level bands used for job analysis,
// ordered from junior to executive.
func ExperiencePatterns() []ExperiencePattern {
	return []ExperiencePattern{
		{
			Level:         "entry_level",
			YearsRange:    [2]int{0, 2},
			Keywords:      []string{"entry", "junior", "graduate", "new grad", "associate"},
			TypicalTitles: []string{"junior", "associate", "entry-level", "trainee"},
		},
		{
			Level:         "mid_level",
			YearsRange:    [2]int{2, 5},
			Keywords:      []string{"mid-level", "intermediate", "experienced"},
			TypicalTitles: []string{"developer", "analyst", "specialist", "coordinator"},
		},
		{
			Level:         "senior_level",
			YearsRange:    [2]int{5, 10},
			Keywords:      []string{"senior", "lead", "principal"},
			TypicalTitles: []string{"senior", "lead", "principal", "architect"},
		},
		{
			Level:         "executive_level",
			YearsRange:    [2]int{10, 100},
			Keywords:      []string{"director", "manager", "head", "VP", "CTO", "executive"},
			TypicalTitles: []string{"director", "manager", "VP", "head", "chief"},
		},
	}
}

// ExperiencePatternFor returns the pattern for a level name, or the mid-level
// pattern when the level is unknown.
func ExperiencePatternFor(level string) ExperiencePattern {
	for _, pattern := range ExperiencePatterns() {
		if pattern.Level == level {
			return pattern
		}
	}
	return ExperiencePatterns()[1]
}
