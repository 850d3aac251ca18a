package retrieval

import (
	"strings"
	"time"

	"github.com/jonathan/evidence-vault/internal/types"
)

// DefaultConfidenceThreshold is the minimum evidence confidence for an item
// to support a bullet
const DefaultConfidenceThreshold = 0.7

// Filter applies the temporal and organizational constraints that decide
// whether a piece of evidence may ethically support a bullet.
type Filter struct {
	// ConfidenceThreshold rejects evidence below this confidence
	ConfidenceThreshold float64
	// Now overrides the current time for open-ended ranges; nil uses time.Now
	Now func() time.Time
}

// NewFilter creates a filter with the given confidence threshold.
// A non-positive threshold uses the default.
func NewFilter(confidenceThreshold float64) Filter {
	if confidenceThreshold <= 0 {
		confidenceThreshold = DefaultConfidenceThreshold
	}
	return Filter{ConfidenceThreshold: confidenceThreshold}
}

// IsApplicable reports whether the evidence may support a bullet in the given
// context. Company mismatch, non-overlapping timeframes, or low confidence
// all reject.
func (f Filter) IsApplicable(evidence types.EvidenceItem, matchContext types.MatchContext) bool {
	if matchContext.Company != "" && !strings.EqualFold(evidence.Company, matchContext.Company) {
		return false
	}

	if !f.TimeframesOverlap(evidence, matchContext) {
		return false
	}

	if evidence.Confidence < f.ConfidenceThreshold {
		return false
	}

	return true
}

// TimeframesOverlap reports whether the evidence and context date ranges
// overlap. Missing end dates on either side mean "ongoing" and default to
// now. Missing or unparseable start dates on either side reject: the check
// fails closed rather than guessing.
func (f Filter) TimeframesOverlap(evidence types.EvidenceItem, matchContext types.MatchContext) bool {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}

	contextStart, ok := parseStart(matchContext.StartDate)
	if !ok {
		return false
	}
	evidenceStart, ok := parseStart(evidence.StartDate)
	if !ok {
		return false
	}

	contextEnd := parseEnd(matchContext.EndDate, now)
	evidenceEnd := parseEnd(evidence.EndDate, now)

	return !contextStart.After(evidenceEnd) && !contextEnd.Before(evidenceStart)
}

func parseStart(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	parsed, err := types.ParseDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func parseEnd(s string, now time.Time) time.Time {
	if s == "" {
		return now
	}
	parsed, err := types.ParseDate(s)
	if err != nil {
		return now
	}
	return parsed
}
