package synthesis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/evidence-vault/internal/taxonomy"
	"github.com/jonathan/evidence-vault/internal/types"
)

// maxInjectedSkills caps how many evidence-backed skills one enhancement adds
const maxInjectedSkills = 2

// maxCitedEvidence caps how many evidence items the basis text cites
const maxCitedEvidence = 2

// Enhancer applies the text transformations of an approved synthesis:
// quantification insertion, skill injection, verb strengthening, and
// best-effort ATS keyword grafting.
type Enhancer struct {
	newID func() string
	now   func() time.Time
}

// NewEnhancer creates an enhancer with default ID and clock sources
func NewEnhancer() *Enhancer {
	return &Enhancer{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Unenhanced returns the bullet untouched, used when no evidence exists
func (e *Enhancer) Unenhanced(bulletText string, jobKeywords []string) types.RSBullet {
	return types.RSBullet{
		ID:                    e.newID(),
		OriginalText:          bulletText,
		EnhancedText:          bulletText,
		RSApplied:             false,
		SupportingEvidenceIDs: []string{},
		Confidence:            1.0,
		RiskLevel:             types.RiskLow,
		ATSKeywords:           jobKeywords,
		CreatedAt:             e.now(),
	}
}

// Failed returns the fail-safe terminal bullet: unenhanced, critical risk,
// zero confidence, with an explanation. The engine never fabricates silently.
func (e *Enhancer) Failed(bulletText, reason string) types.RSBullet {
	return types.RSBullet{
		ID:                    e.newID(),
		OriginalText:          bulletText,
		EnhancedText:          bulletText,
		RSApplied:             false,
		RSBasis:               "RS failed: " + reason,
		SupportingEvidenceIDs: []string{},
		Confidence:            0.0,
		RiskLevel:             types.RiskCritical,
		ATSKeywords:           []string{},
		CreatedAt:             e.now(),
	}
}

// Enhance produces the synthesized bullet for an analyzed evidence set.
// An ineligible analysis yields the original text with the limitations
// recorded in the basis.
func (e *Enhancer) Enhance(bulletText string, evidence []types.EvidenceItem, analysis types.RSAnalysis, jobKeywords []string) types.RSBullet {
	if len(evidence) == 0 {
		return e.Unenhanced(bulletText, jobKeywords)
	}

	if !analysis.CanApplyRS {
		return types.RSBullet{
			ID:                    e.newID(),
			OriginalText:          bulletText,
			EnhancedText:          bulletText,
			RSApplied:             false,
			RSBasis:               "RS not applicable: " + strings.Join(analysis.Limitations, "; "),
			SupportingEvidenceIDs: []string{},
			Confidence:            analysis.ConfidenceScore,
			RiskLevel:             analysis.RiskAssessment,
			ATSKeywords:           jobKeywords,
			CreatedAt:             e.now(),
		}
	}

	enhanced := addQuantification(bulletText, evidence)
	enhanced = addRelevantSkills(enhanced, evidence, jobKeywords)
	enhanced = strengthenVerbs(enhanced)
	enhanced = graftATSKeywords(enhanced, jobKeywords)

	ids := make([]string, len(evidence))
	for i, item := range evidence {
		ids[i] = item.ID
	}

	return types.RSBullet{
		ID:                    e.newID(),
		OriginalText:          bulletText,
		EnhancedText:          enhanced,
		RSApplied:             true,
		RSBasis:               synthesisBasis(evidence, analysis),
		SupportingEvidenceIDs: ids,
		Confidence:            analysis.ConfidenceScore,
		RiskLevel:             analysis.RiskAssessment,
		Quantification:        extractQuantification(enhanced),
		ATSKeywords:           jobKeywords,
		CreatedAt:             e.now(),
	}
}

// addRelevantSkills appends up to two evidence-backed skills that the job
// asks for and the bullet does not already mention.
func addRelevantSkills(bulletText string, evidence []types.EvidenceItem, jobKeywords []string) string {
	evidenceSkills := make(map[string]struct{})
	for _, item := range evidence {
		for _, skill := range item.Skills {
			evidenceSkills[strings.ToLower(skill)] = struct{}{}
		}
	}
	if len(evidenceSkills) == 0 {
		return bulletText
	}

	jobSkills := make(map[string]struct{}, len(jobKeywords))
	for _, keyword := range jobKeywords {
		jobSkills[strings.ToLower(keyword)] = struct{}{}
	}

	bulletLower := strings.ToLower(bulletText)
	var newSkills []string
	for skill := range evidenceSkills {
		if _, wanted := jobSkills[skill]; !wanted {
			continue
		}
		if strings.Contains(bulletLower, skill) {
			continue
		}
		newSkills = append(newSkills, skill)
	}
	if len(newSkills) == 0 {
		return bulletText
	}

	sort.Strings(newSkills)
	if len(newSkills) > maxInjectedSkills {
		newSkills = newSkills[:maxInjectedSkills]
	}

	return bulletText + " using " + strings.Join(newSkills, ", ")
}

// strengthenVerbs replaces weak verbs with stronger alternatives from the
// fixed replacement table. Longer phrases are replaced first so that
// "was responsible for" never partially matches on "was".
func strengthenVerbs(bulletText string) string {
	replacements := taxonomy.VerbReplacements()

	weak := make([]string, 0, len(replacements))
	for phrase := range replacements {
		weak = append(weak, phrase)
	}
	sort.Slice(weak, func(i, j int) bool {
		if len(weak[i]) != len(weak[j]) {
			return len(weak[i]) > len(weak[j])
		}
		return weak[i] < weak[j]
	})

	enhanced := bulletText
	for _, phrase := range weak {
		enhanced = strings.ReplaceAll(enhanced, phrase, replacements[phrase])
	}
	return enhanced
}

// atsGraftableKeywords are the keywords that read naturally after "developed"
var atsGraftableKeywords = map[string]struct{}{
	"python":     {},
	"javascript": {},
	"react":      {},
}

// graftATSKeywords inserts at most one of the first three missing job
// keywords, and only where it grafts onto an existing "developed" phrase.
// Best effort; frequently a no-op.
func graftATSKeywords(bulletText string, jobKeywords []string) string {
	lower := strings.ToLower(bulletText)
	if !strings.Contains(lower, "developed") {
		return bulletText
	}

	limit := len(jobKeywords)
	if limit > 3 {
		limit = 3
	}
	for _, keyword := range jobKeywords[:limit] {
		keywordLower := strings.ToLower(keyword)
		if strings.Contains(lower, keywordLower) {
			continue
		}
		if _, ok := atsGraftableKeywords[keywordLower]; !ok {
			continue
		}
		return strings.Replace(bulletText, "developed", fmt.Sprintf("developed %s-based", keyword), 1)
	}

	return bulletText
}

// synthesisBasis builds the human-readable attribution: evidence type,
// employer, and start date for the first cited items, with the confidence
// score appended when it is not strong.
func synthesisBasis(evidence []types.EvidenceItem, analysis types.RSAnalysis) string {
	cited := evidence
	if len(cited) > maxCitedEvidence {
		cited = cited[:maxCitedEvidence]
	}

	summaries := make([]string, len(cited))
	for i, item := range cited {
		summaries[i] = fmt.Sprintf("%s from %s (%s)", item.Type, item.Company, item.StartDate)
	}

	basis := "Enhancement based on " + strings.Join(summaries, ", ")
	if analysis.ConfidenceScore < 0.8 {
		basis += fmt.Sprintf(" (confidence: %.1f)", analysis.ConfidenceScore)
	}
	return basis
}
