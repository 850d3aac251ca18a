// Package taxonomy provides static reference data for skill matching and
// achievement quantification: pattern tables, synonym maps, and word lists.
package taxonomy

import "strings"

// MetricRange is a typical numeric range for one metric type
type MetricRange struct {
	Min  int
	Max  int
	Unit string // "%", "x", or a noun like "people"
}

// QuantificationPattern maps achievement verbs to typical numeric ranges.
// Ranges are deliberately conservative intervals, never exact claims.
type QuantificationPattern struct {
	Name              string
	Keywords          []string
	TypicalRanges     map[string]MetricRange
	ContextIndicators []string
}

// QuantificationPatterns returns the fixed pattern table for achievement quantification
func QuantificationPatterns() []QuantificationPattern {
	return []QuantificationPattern{
		{
			Name:     "performance_improvement",
			Keywords: []string{"improved", "optimized", "enhanced", "increased"},
			TypicalRanges: map[string]MetricRange{
				"code_performance":   {10, 40, "%"},
				"process_efficiency": {15, 35, "%"},
				"user_experience":    {20, 50, "%"},
				"system_reliability": {5, 25, "%"},
			},
			ContextIndicators: []string{"performance", "speed", "efficiency", "throughput"},
		},
		{
			Name:     "cost_reduction",
			Keywords: []string{"reduced", "saved", "cut", "decreased"},
			TypicalRanges: map[string]MetricRange{
				"operational_costs":  {10, 30, "%"},
				"development_time":   {20, 40, "%"},
				"maintenance_effort": {15, 35, "%"},
				"resource_usage":     {10, 25, "%"},
			},
			ContextIndicators: []string{"cost", "expense", "budget", "resource", "time"},
		},
		{
			Name:     "scale_achievements",
			Keywords: []string{"scaled", "expanded", "grew", "increased"},
			TypicalRanges: map[string]MetricRange{
				"user_base":   {2, 10, "x"},
				"traffic":     {50, 200, "%"},
				"data_volume": {100, 500, "%"},
				"team_size":   {2, 5, "people"},
			},
			ContextIndicators: []string{"users", "traffic", "volume", "scale", "growth"},
		},
		{
			Name:     "quality_improvements",
			Keywords: []string{"improved", "enhanced", "upgraded", "refined"},
			TypicalRanges: map[string]MetricRange{
				"bug_reduction":     {30, 70, "%"},
				"test_coverage":     {20, 40, "%"},
				"code_quality":      {15, 35, "%"},
				"user_satisfaction": {10, 30, "%"},
			},
			ContextIndicators: []string{"quality", "bugs", "errors", "satisfaction", "reliability"},
		},
	}
}

// QuantifiableVerbs returns the union of keywords across all quantification patterns
func QuantifiableVerbs() []string {
	seen := make(map[string]struct{})
	var verbs []string
	for _, pattern := range QuantificationPatterns() {
		for _, keyword := range pattern.Keywords {
			if _, ok := seen[keyword]; !ok {
				seen[keyword] = struct{}{}
				verbs = append(verbs, keyword)
			}
		}
	}
	return verbs
}

// ContainsQuantifiableVerb reports whether the text contains any verb from the
// quantification pattern table
func ContainsQuantifiableVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, verb := range QuantifiableVerbs() {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

// VerbReplacements maps weak resume verbs to stronger alternatives.
// Keys are matched as case-insensitive substrings.
func VerbReplacements() map[string]string {
	return map[string]string{
		"worked on":           "developed",
		"helped":              "collaborated to",
		"did":                 "executed",
		"made":                "created",
		"used":                "leveraged",
		"was responsible for": "managed",
		"was involved in":     "contributed to",
	}
}
