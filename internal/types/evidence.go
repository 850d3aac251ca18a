// Package types provides type definitions for structured data used throughout the evidence-vault system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// EvidenceType categorizes what kind of work-history fact an evidence item records
type EvidenceType string

// Supported evidence types
const (
	EvidenceProject            EvidenceType = "project"
	EvidenceAchievement        EvidenceType = "achievement"
	EvidenceResponsibility     EvidenceType = "responsibility"
	EvidenceMetric             EvidenceType = "metric"
	EvidenceSkillUsage         EvidenceType = "skill_usage"
	EvidenceLeadership         EvidenceType = "leadership"
	EvidenceCollaboration      EvidenceType = "collaboration"
	EvidenceProcessImprovement EvidenceType = "process_improvement"
)

// IsValid reports whether the evidence type is one of the supported values
func (t EvidenceType) IsValid() bool {
	switch t {
	case EvidenceProject, EvidenceAchievement, EvidenceResponsibility, EvidenceMetric,
		EvidenceSkillUsage, EvidenceLeadership, EvidenceCollaboration, EvidenceProcessImprovement:
		return true
	}
	return false
}

// VerificationStatus tracks how trustworthy an evidence item is
type VerificationStatus string

// Supported verification statuses
const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
	VerificationDisputed   VerificationStatus = "disputed"
)

// Score maps a verification status to its contribution in evidence-strength scoring
func (s VerificationStatus) Score() float64 {
	switch s {
	case VerificationVerified:
		return 1.0
	case VerificationDisputed:
		return 0.3
	default:
		return 0.8
	}
}

// IsValid reports whether the verification status is one of the supported values
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationUnverified, VerificationVerified, VerificationDisputed:
		return true
	}
	return false
}

// EvidenceItem represents one verifiable fact about a user's work history.
// Items are immutable once stored; there is no update or delete path.
type EvidenceItem struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	Type               EvidenceType       `json:"type"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Company            string             `json:"company"`
	Role               string             `json:"role"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date,omitempty"` // empty means ongoing
	Skills             []string           `json:"skills"`
	Metrics            map[string]float64 `json:"metrics,omitempty"`
	Confidence         float64            `json:"confidence"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Tags               []string           `json:"tags,omitempty"`
	SourceDocuments    []string           `json:"source_documents,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// EvidenceInput represents the payload for adding a new evidence item.
// Confidence is a pointer so that an unset value can default to 1.0.
type EvidenceInput struct {
	Type               string             `json:"type,omitempty"`
	Title              string             `json:"title" validate:"required,min=1"`
	Description        string             `json:"description" validate:"required,min=1"`
	Company            string             `json:"company,omitempty"`
	Role               string             `json:"role,omitempty"`
	StartDate          string             `json:"start_date,omitempty"`
	EndDate            string             `json:"end_date,omitempty"`
	Skills             []string           `json:"skills,omitempty"`
	Metrics            map[string]float64 `json:"metrics,omitempty"`
	Confidence         *float64           `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	VerificationStatus string             `json:"verification_status,omitempty"`
	Tags               []string           `json:"tags,omitempty"`
	SourceDocuments    []string           `json:"source_documents,omitempty"`
}

// Validate validates the EvidenceInput using the validator.
func (r *EvidenceInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// MatchContext carries the temporal/organizational constraints a bullet is
// being enhanced under. End date defaults to "now" when empty.
type MatchContext struct {
	Company   string `json:"company,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// DateLayout is the date format used for all evidence and context dates
const DateLayout = "2006-01-02"

// ParseDate parses a date in the canonical YYYY-MM-DD layout
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
