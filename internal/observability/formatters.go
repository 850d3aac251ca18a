// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/evidence-vault/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEvidence outputs the retrieved supporting evidence with confidence
// and verification status per item.
func (p *Printer) PrintEvidence(items []types.EvidenceItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d supporting items:\n\n", len(items)))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		title := item.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    %s @ %s\n", item.Type, item.Company))
		sb.WriteString(fmt.Sprintf("    Confidence: %.2f (%s)\n", item.Confidence, item.VerificationStatus))
		if len(item.Skills) > 0 {
			skills := strings.Join(item.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more items", len(items)-maxItemsToShow))
	}

	p.printBox("SUPPORTING EVIDENCE", sb.String())
}

// PrintRSBullets outputs synthesized bullets with enhancement indicators.
func (p *Printer) PrintRSBullets(bullets []types.RSBullet) {
	if len(bullets) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Synthesized %d bullets:\n\n", len(bullets)))

	count := min(len(bullets), maxItemsToShow)
	for i := 0; i < count; i++ {
		bullet := bullets[i]
		text := bullet.EnhancedText
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))

		checks := []string{}
		if bullet.RSApplied {
			checks = append(checks, "✓enhanced")
		}
		if bullet.Quantification != nil {
			checks = append(checks, "✓metrics")
		}
		if len(bullet.ATSKeywords) > 0 {
			checks = append(checks, "✓keywords")
		}
		checks = append(checks, fmt.Sprintf("risk:%s", bullet.RiskLevel))
		sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(checks, " ")))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(bullets) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more bullets", len(bullets)-maxItemsToShow))
	}

	p.printBox("SYNTHESIZED BULLETS", sb.String())
}

// PrintMatchAnalysis outputs the weighted job match summary.
func (p *Printer) PrintMatchAnalysis(analysis *types.JobMatchAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %d/100\n", analysis.OverallMatchScore))
	sb.WriteString(fmt.Sprintf("Experience:  %d/100\n", analysis.ExperienceMatch.MatchScore))
	sb.WriteString(fmt.Sprintf("Education:   %d/100\n", analysis.EducationMatch.MatchScore))
	sb.WriteString("\n")

	if len(analysis.SkillGaps) > 0 {
		sb.WriteString("Skill Gaps:\n")
		count := min(len(analysis.SkillGaps), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.SkillGaps[i]))
		}
		if len(analysis.SkillGaps) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.SkillGaps)-3))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(analysis.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := analysis.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("JOB MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs a bullet validation result.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(result *types.BulletValidation) {
	if result == nil {
		return
	}
	if result.Valid {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ BULLET PASSED VALIDATION")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(result.Issues)))

	for i, issue := range result.Issues {
		if len(issue) > 45 {
			issue = issue[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue))
		if i < len(result.Issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION ISSUES", sb.String())
}
