// Package types provides type definitions for structured data used throughout the evidence-vault system.
package types

import "time"

// RiskLevel classifies how risky a synthesized enhancement is
type RiskLevel string

// Supported risk levels
const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Quantification is the structured numeric claim extracted from an enhanced bullet
type Quantification struct {
	Type  string `json:"type"` // "percentage" or "multiplier"
	Range [2]int `json:"range"`
	Unit  string `json:"unit"`
}

// RSBullet is the synthesized output for one resume line with full attribution.
// If RSApplied is true, RSBasis is non-empty and SupportingEvidenceIDs has at
// least one entry. A critical risk level always means RSApplied is false.
type RSBullet struct {
	ID                    string          `json:"id"`
	OriginalText          string          `json:"original_text"`
	EnhancedText          string          `json:"enhanced_text"`
	RSApplied             bool            `json:"rs_applied"`
	RSBasis               string          `json:"rs_basis,omitempty"`
	SupportingEvidenceIDs []string        `json:"supporting_evidence_ids"`
	Confidence            float64         `json:"confidence"`
	RiskLevel             RiskLevel       `json:"risk_level"`
	Quantification        *Quantification `json:"quantification,omitempty"`
	ATSKeywords           []string        `json:"ats_keywords"`
	CreatedAt             time.Time       `json:"created_at"`
}

// RSAnalysis is the transient verdict on whether synthesis is justified for a
// bullet given its supporting evidence. It is never persisted.
type RSAnalysis struct {
	CanApplyRS              bool      `json:"can_apply_rs"`
	EvidenceStrength        float64   `json:"evidence_strength"`
	RiskAssessment          RiskLevel `json:"risk_assessment"`
	RecommendedEnhancements []string  `json:"recommended_enhancements"`
	SupportingEvidence      []string  `json:"supporting_evidence"`
	Limitations             []string  `json:"limitations"`
	ConfidenceScore         float64   `json:"confidence_score"`
}

// BulletValidation is the result of checking an RSBullet against the
// caller-facing compliance rules.
type BulletValidation struct {
	Valid           bool     `json:"valid"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}
