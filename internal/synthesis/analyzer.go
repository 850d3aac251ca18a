// Package synthesis implements the Reasoning Synthesis engine: deciding
// whether an evidence-backed enhancement is justified for a resume bullet,
// and applying it with full attribution when it is.
package synthesis

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/evidence-vault/internal/retrieval"
	"github.com/jonathan/evidence-vault/internal/taxonomy"
	"github.com/jonathan/evidence-vault/internal/types"
)

// Weights for the evidence-strength components
const (
	quantityWeight     = 0.2
	confidenceWeight   = 0.3
	verificationWeight = 0.3
	recencyWeight      = 0.2
)

const (
	// strengthThreshold is the minimum evidence strength for synthesis
	strengthThreshold = 0.6
	// recencyFloor is the lowest recency score old evidence can decay to
	recencyFloor = 0.5
	// recencyDecayMonths is the linear decay horizon for evidence recency
	recencyDecayMonths = 24.0
	// quantityCap is the evidence count at which the quantity factor saturates
	quantityCap = 3.0
	// limitationPenalty reduces confidence per identified limitation
	limitationPenalty = 0.2
)

// Analyzer scores whether synthesis is statistically and ethically justified
// for a bullet given its supporting evidence.
type Analyzer struct {
	filter retrieval.Filter
	now    func() time.Time
}

// NewAnalyzer creates an analyzer that re-checks temporal constraints with
// the same applicability policy as retrieval.
func NewAnalyzer(filter retrieval.Filter) *Analyzer {
	return &Analyzer{filter: filter, now: time.Now}
}

// Analyze produces the synthesis verdict for one bullet and its evidence set
func (a *Analyzer) Analyze(bulletText string, evidence []types.EvidenceItem, matchContext types.MatchContext) types.RSAnalysis {
	strength := a.evidenceStrength(evidence)
	risk := a.assessRisk(evidence, matchContext)

	canApply := len(evidence) > 0 &&
		strength >= strengthThreshold &&
		risk != types.RiskCritical

	var recommendations []string
	if taxonomy.ContainsQuantifiableVerb(bulletText) && strength >= 0.7 {
		recommendations = append(recommendations, "Add quantification based on similar achievements")
	}
	if anyHasSkills(evidence) {
		recommendations = append(recommendations, "Include relevant technical skills")
	}
	if risk == types.RiskLow {
		recommendations = append(recommendations, "Safe to apply moderate enhancements")
	}

	var limitations []string
	if strength < strengthThreshold {
		limitations = append(limitations, "insufficient evidence strength")
	}
	if risk == types.RiskHigh {
		limitations = append(limitations, "high risk of misrepresentation")
	}
	if !a.meetsTemporalConstraints(evidence, matchContext) {
		limitations = append(limitations, "evidence outside temporal constraints")
	}

	confidence := strength*0.7 + (1.0 - limitationPenalty*float64(len(limitations)))
	confidence = math.Max(0.0, math.Min(confidence, 1.0))

	ids := make([]string, len(evidence))
	for i, item := range evidence {
		ids[i] = item.ID
	}

	return types.RSAnalysis{
		CanApplyRS:              canApply,
		EvidenceStrength:        strength,
		RiskAssessment:          risk,
		RecommendedEnhancements: recommendations,
		SupportingEvidence:      ids,
		Limitations:             limitations,
		ConfidenceScore:         confidence,
	}
}

// evidenceStrength is the weighted average of quantity, confidence,
// verification, and recency factors, each in [0,1].
func (a *Analyzer) evidenceStrength(evidence []types.EvidenceItem) float64 {
	if len(evidence) == 0 {
		return 0.0
	}

	count := float64(len(evidence))
	quantity := math.Min(count/quantityCap, 1.0)

	var confidenceSum, verificationSum, recencySum float64
	for _, item := range evidence {
		confidenceSum += item.Confidence
		verificationSum += item.VerificationStatus.Score()
		recencySum += a.recencyScore(item)
	}

	strength := quantity*quantityWeight +
		(confidenceSum/count)*confidenceWeight +
		(verificationSum/count)*verificationWeight +
		(recencySum/count)*recencyWeight

	return math.Min(strength, 1.0)
}

// recencyScore decays linearly from 1.0 to the floor over the decay horizon,
// measured from the evidence's end date. Ongoing evidence scores 1.0; an
// unparseable end date scores a neutral 0.7.
func (a *Analyzer) recencyScore(item types.EvidenceItem) float64 {
	endDate := a.now()
	if item.EndDate != "" {
		parsed, err := types.ParseDate(item.EndDate)
		if err != nil {
			return 0.7
		}
		endDate = parsed
	}

	monthsSince := a.now().Sub(endDate).Hours() / 24 / 30
	return math.Max(recencyFloor, 1.0-monthsSince/recencyDecayMonths)
}

// assessRisk accumulates risk factors. No evidence or a temporal mismatch is
// critical outright; otherwise the factor count maps to low/medium/high.
func (a *Analyzer) assessRisk(evidence []types.EvidenceItem, matchContext types.MatchContext) types.RiskLevel {
	if len(evidence) == 0 {
		return types.RiskCritical
	}
	if !a.meetsTemporalConstraints(evidence, matchContext) {
		return types.RiskCritical
	}

	factors := 0
	if len(evidence) == 1 {
		factors++
	}

	minConfidence := evidence[0].Confidence
	for _, item := range evidence[1:] {
		if item.Confidence < minConfidence {
			minConfidence = item.Confidence
		}
	}
	if minConfidence < 0.5 {
		factors++
	} else if minConfidence < 0.7 {
		factors++
	}

	if matchContext.Company != "" && !allFromCompany(evidence, matchContext.Company) {
		factors++
	}

	switch {
	case factors >= 3:
		return types.RiskHigh
	case factors >= 1:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// meetsTemporalConstraints reports whether every evidence item's timeframe
// overlaps the context timeframe.
func (a *Analyzer) meetsTemporalConstraints(evidence []types.EvidenceItem, matchContext types.MatchContext) bool {
	for _, item := range evidence {
		if !a.filter.TimeframesOverlap(item, matchContext) {
			return false
		}
	}
	return true
}

func anyHasSkills(evidence []types.EvidenceItem) bool {
	for _, item := range evidence {
		if len(item.Skills) > 0 {
			return true
		}
	}
	return false
}

func allFromCompany(evidence []types.EvidenceItem, company string) bool {
	for _, item := range evidence {
		if !strings.EqualFold(item.Company, company) {
			return false
		}
	}
	return true
}
