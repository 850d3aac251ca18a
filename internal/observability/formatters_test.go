package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/evidence-vault/internal/types"
)

func TestPrintEvidence_ShowsItems(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintEvidence([]types.EvidenceItem{
		{
			Title:              "Deployment speedup",
			Type:               types.EvidenceAchievement,
			Company:            "Acme Corp",
			Confidence:         0.9,
			VerificationStatus: types.VerificationVerified,
			Skills:             []string{"Go", "Docker"},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "SUPPORTING EVIDENCE")
	assert.Contains(t, output, "Deployment speedup")
	assert.Contains(t, output, "achievement @ Acme Corp")
	assert.Contains(t, output, "Confidence: 0.90 (verified)")
	assert.Contains(t, output, "Skills: Go, Docker")
}

func TestPrintEvidence_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintEvidence(nil)

	assert.Empty(t, buf.String())
}

func TestPrintEvidence_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	items := make([]types.EvidenceItem, 8)
	for i := range items {
		items[i] = types.EvidenceItem{Title: "Item", Type: types.EvidenceProject}
	}
	printer.PrintEvidence(items)

	assert.Contains(t, buf.String(), "... and 3 more items")
}

func TestPrintRSBullets_ShowsEnhancementChecks(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRSBullets([]types.RSBullet{
		{
			EnhancedText:   "Improved deployment speed by 15-25%",
			RSApplied:      true,
			Quantification: &types.Quantification{Type: "percentage", Range: [2]int{15, 25}, Unit: "%"},
			ATSKeywords:    []string{"kubernetes"},
			RiskLevel:      types.RiskMedium,
		},
	})

	output := buf.String()
	assert.Contains(t, output, "SYNTHESIZED BULLETS")
	assert.Contains(t, output, "✓enhanced")
	assert.Contains(t, output, "✓metrics")
	assert.Contains(t, output, "✓keywords")
	assert.Contains(t, output, "risk:medium")
}

func TestPrintRSBullets_UnenhancedBulletOmitsChecks(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRSBullets([]types.RSBullet{
		{EnhancedText: "Worked on the billing system", RiskLevel: types.RiskLow},
	})

	output := buf.String()
	assert.NotContains(t, output, "✓enhanced")
	assert.NotContains(t, output, "✓metrics")
	assert.Contains(t, output, "risk:low")
}

func TestPrintMatchAnalysis_ShowsScoresAndGaps(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchAnalysis(&types.JobMatchAnalysis{
		OverallMatchScore: 82,
		ExperienceMatch:   types.ExperienceMatch{MatchScore: 90},
		EducationMatch:    types.EducationMatch{MatchScore: 100},
		SkillGaps:         []string{"Kubernetes"},
		Recommendations:   []string{"Good match."},
	})

	output := buf.String()
	assert.Contains(t, output, "JOB MATCH ANALYSIS")
	assert.Contains(t, output, "Overall:     82/100")
	assert.Contains(t, output, "Kubernetes")
	assert.Contains(t, output, "Good match.")
}

func TestPrintMatchAnalysis_NilPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintValidation_Passed(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintValidation(&types.BulletValidation{Valid: true})

	assert.Contains(t, buf.String(), "✅ BULLET PASSED VALIDATION")
}

func TestPrintValidation_Issues(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintValidation(&types.BulletValidation{
		Valid:  false,
		Issues: []string{"confidence below threshold"},
	})

	output := buf.String()
	assert.Contains(t, output, "VALIDATION ISSUES")
	assert.Contains(t, output, "confidence below threshold")
}
