package synthesis

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/evidence-vault/internal/taxonomy"
	"github.com/jonathan/evidence-vault/internal/types"
)

var (
	percentRangePattern    = regexp.MustCompile(`(\d+)-(\d+)%`)
	multiplierRangePattern = regexp.MustCompile(`(\d+)-(\d+) times`)
)

// addQuantification appends an interval-phrased quantification to the bullet
// when a quantifiable verb is present and the bullet carries no number yet.
// Intervals come from evidence metrics when available (the recorded value
// widened by 20% and snapped outward to multiples of five, so an exact figure
// is never claimed), otherwise from the pattern's typical range.
func addQuantification(bulletText string, evidence []types.EvidenceItem) string {
	if strings.ContainsAny(bulletText, "0123456789") {
		return bulletText
	}

	lower := strings.ToLower(bulletText)
	for _, pattern := range taxonomy.QuantificationPatterns() {
		if !containsAnyKeyword(lower, pattern.Keywords) {
			continue
		}

		for _, item := range evidence {
			if value, unit, ok := metricValueFor(pattern, item.Metrics); ok {
				return bulletText + " " + phraseInterval(evidenceInterval(value), unit)
			}
		}

		if metricRange, ok := defaultRange(pattern); ok {
			return bulletText + " " + phraseInterval([2]int{metricRange.Min, metricRange.Max}, metricRange.Unit)
		}
	}

	return bulletText
}

func containsAnyKeyword(lowerText string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowerText, keyword) {
			return true
		}
	}
	return false
}

// metricValueFor finds an evidence metric usable for the pattern: an exact
// metric-type key first, then any percentage-style metric for % patterns.
func metricValueFor(pattern taxonomy.QuantificationPattern, metrics map[string]float64) (float64, string, bool) {
	if len(metrics) == 0 {
		return 0, "", false
	}

	for metricType, metricRange := range pattern.TypicalRanges {
		if value, ok := metrics[metricType]; ok {
			return value, metricRange.Unit, true
		}
	}

	keys := make([]string, 0, len(metrics))
	for key := range metrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(key, "percentage") || strings.Contains(key, "percent") || strings.Contains(key, "improvement") {
			return metrics[key], "%", true
		}
	}

	return 0, "", false
}

// evidenceInterval widens a recorded value by 20% in both directions and
// snaps the bounds outward to multiples of five.
func evidenceInterval(value float64) [2]int {
	low := int(math.Floor(value*0.8/5.0)) * 5
	high := int(math.Ceil(value*1.2/5.0)) * 5
	if low < 0 {
		low = 0
	}
	return [2]int{low, high}
}

// defaultRange picks the pattern's fallback range deterministically by the
// first metric type in sorted order.
func defaultRange(pattern taxonomy.QuantificationPattern) (taxonomy.MetricRange, bool) {
	if len(pattern.TypicalRanges) == 0 {
		return taxonomy.MetricRange{}, false
	}
	keys := make([]string, 0, len(pattern.TypicalRanges))
	for key := range pattern.TypicalRanges {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return pattern.TypicalRanges[keys[0]], true
}

// phraseInterval renders an interval with approximation language so the
// claim reads as an estimate, never an exact figure.
func phraseInterval(interval [2]int, unit string) string {
	switch unit {
	case "%":
		return fmt.Sprintf("by approximately %d-%d%%", interval[0], interval[1])
	case "x":
		return fmt.Sprintf("by %d-%d times", interval[0], interval[1])
	default:
		return fmt.Sprintf("by approximately %d-%d %s", interval[0], interval[1], unit)
	}
}

// extractQuantification pulls the structured numeric claim back out of the
// final enhanced text, if one is present.
func extractQuantification(enhancedText string) *types.Quantification {
	if match := percentRangePattern.FindStringSubmatch(enhancedText); match != nil {
		return &types.Quantification{
			Type:  "percentage",
			Range: [2]int{atoi(match[1]), atoi(match[2])},
			Unit:  "%",
		}
	}

	if match := multiplierRangePattern.FindStringSubmatch(enhancedText); match != nil {
		return &types.Quantification{
			Type:  "multiplier",
			Range: [2]int{atoi(match[1]), atoi(match[2])},
			Unit:  "x",
		}
	}

	return nil
}

// atoi converts regexp-captured digits; the pattern guarantees valid input
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
