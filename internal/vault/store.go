package vault

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jonathan/evidence-vault/internal/types"
)

// Store is the evidence repository. Items are append-only: there is no
// update or delete operation. Implementations must make each append visible
// to subsequent reads and must serialize concurrent appends for the same user
// so that identifiers never collide.
type Store interface {
	// AddEvidence validates the input, assigns a unique identifier, and
	// stores the item under the user. Returns a ValidationError when the
	// input is malformed.
	AddEvidence(ctx context.Context, userID string, input *types.EvidenceInput) (string, error)
	// EvidenceForUser returns all evidence for a user, newest first by
	// creation timestamp.
	EvidenceForUser(ctx context.Context, userID string) ([]types.EvidenceItem, error)
}

// newEvidenceItem validates the input and builds the immutable item both
// store implementations persist. Defaults: type "achievement", confidence
// 1.0, verification status "unverified".
func newEvidenceItem(userID string, input *types.EvidenceInput, now time.Time) (*types.EvidenceItem, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "user_id", Message: "must not be empty"}
	}
	if input == nil {
		return nil, &ValidationError{Field: "evidence", Message: "must not be nil"}
	}

	if err := input.Validate(); err != nil {
		return nil, &ValidationError{Field: "evidence", Message: "missing or invalid required fields", Cause: err}
	}

	evidenceType := types.EvidenceType(input.Type)
	if input.Type == "" {
		evidenceType = types.EvidenceAchievement
	}
	if !evidenceType.IsValid() {
		return nil, &ValidationError{Field: "type", Message: fmt.Sprintf("unknown evidence type %q", input.Type)}
	}

	status := types.VerificationStatus(input.VerificationStatus)
	if input.VerificationStatus == "" {
		status = types.VerificationUnverified
	}
	if !status.IsValid() {
		return nil, &ValidationError{Field: "verification_status", Message: fmt.Sprintf("unknown verification status %q", input.VerificationStatus)}
	}

	confidence := 1.0
	if input.Confidence != nil {
		confidence = *input.Confidence
	}
	if confidence < 0.0 || confidence > 1.0 {
		return nil, &ValidationError{Field: "confidence", Message: "must be between 0.0 and 1.0"}
	}

	var startDate time.Time
	if input.StartDate != "" {
		parsed, err := types.ParseDate(input.StartDate)
		if err != nil {
			return nil, &ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD", Cause: err}
		}
		startDate = parsed
	}
	if input.EndDate != "" {
		endDate, err := types.ParseDate(input.EndDate)
		if err != nil {
			return nil, &ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD", Cause: err}
		}
		if input.StartDate != "" && endDate.Before(startDate) {
			return nil, &ValidationError{Field: "end_date", Message: "must not be earlier than start_date"}
		}
	}

	return &types.EvidenceItem{
		ID:                 generateEvidenceID(userID, input.Title, input.Company, now),
		UserID:             userID,
		Type:               evidenceType,
		Title:              input.Title,
		Description:        input.Description,
		Company:            input.Company,
		Role:               input.Role,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		Skills:             input.Skills,
		Metrics:            input.Metrics,
		Confidence:         confidence,
		VerificationStatus: status,
		Tags:               input.Tags,
		SourceDocuments:    input.SourceDocuments,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// generateEvidenceID derives a collision-resistant identifier from the user,
// title, company, and insertion timestamp.
func generateEvidenceID(userID, title, company string, now time.Time) string {
	content := fmt.Sprintf("%s_%s_%s_%s", userID, title, company, now.Format(time.RFC3339Nano))
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:16]
}
