package synthesis

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/evidence-vault/internal/retrieval"
	"github.com/jonathan/evidence-vault/internal/types"
	"github.com/jonathan/evidence-vault/internal/vault"
)

// Service is the boundary of the Reasoning Synthesis engine. Dependencies
// are injected at construction; there are no package-level singletons.
type Service struct {
	store     vault.Store
	retriever *retrieval.Retriever
	analyzer  *Analyzer
	enhancer  *Enhancer
	logger    *zap.Logger
}

// NewService wires the store, retriever, analyzer, and enhancer together
func NewService(store vault.Store, retriever *retrieval.Retriever, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		retriever: retriever,
		analyzer:  NewAnalyzer(retriever.Filter()),
		enhancer:  NewEnhancer(),
		logger:    logger,
	}
}

// AddEvidence stores a new evidence item for the user. Malformed input
// surfaces as a vault.ValidationError; this is the only error the subsystem
// raises to callers.
func (s *Service) AddEvidence(ctx context.Context, userID string, input *types.EvidenceInput) (string, error) {
	id, err := s.store.AddEvidence(ctx, userID, input)
	if err != nil {
		return "", err
	}

	s.logger.Info("evidence item added",
		zap.String("evidence_id", id),
		zap.String("user_id", userID),
	)
	return id, nil
}

// FindSupportingEvidence returns the ranked evidence applicable to a bullet
func (s *Service) FindSupportingEvidence(ctx context.Context, userID, bulletText string, matchContext types.MatchContext) ([]types.EvidenceItem, error) {
	return s.retriever.FindSupportingEvidence(ctx, userID, bulletText, matchContext)
}

// ApplyReasoningSynthesis runs the full pipeline for one bullet: retrieve
// evidence, analyze eligibility, and enhance when justified. It never returns
// an error: every internal failure degrades to a terminal fail-safe bullet
// with critical risk and zero confidence.
func (s *Service) ApplyReasoningSynthesis(ctx context.Context, userID, bulletText string, matchContext types.MatchContext, jobRequirements []string) (bullet types.RSBullet) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("reasoning synthesis panicked",
				zap.String("user_id", userID),
				zap.Any("panic", r),
			)
			bullet = s.enhancer.Failed(bulletText, fmt.Sprintf("internal error: %v", r))
		}
	}()

	evidence, err := s.retriever.FindSupportingEvidence(ctx, userID, bulletText, matchContext)
	if err != nil {
		s.logger.Error("evidence retrieval failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return s.enhancer.Failed(bulletText, err.Error())
	}

	if len(evidence) == 0 {
		return s.enhancer.Unenhanced(bulletText, jobRequirements)
	}

	analysis := s.analyzer.Analyze(bulletText, evidence, matchContext)
	result := s.enhancer.Enhance(bulletText, evidence, analysis, jobRequirements)

	s.logger.Info("reasoning synthesis completed",
		zap.String("user_id", userID),
		zap.Bool("rs_applied", result.RSApplied),
		zap.String("risk_level", string(result.RiskLevel)),
		zap.Float64("confidence", result.Confidence),
	)
	return result
}

// ValidateBullet checks an RSBullet against the compliance rules: confidence
// at or above the threshold, risk level below high, and attribution present
// whenever synthesis was applied.
func (s *Service) ValidateBullet(bullet types.RSBullet, confidenceThreshold float64) types.BulletValidation {
	return ValidateRSBullet(bullet, confidenceThreshold)
}

// ValidateRSBullet applies the compliance rules without requiring a Service.
func ValidateRSBullet(bullet types.RSBullet, confidenceThreshold float64) types.BulletValidation {
	result := types.BulletValidation{Valid: true, Issues: []string{}, Recommendations: []string{}}

	if bullet.Confidence < confidenceThreshold {
		result.Issues = append(result.Issues, "confidence below threshold")
		result.Valid = false
	}

	if bullet.RiskLevel == types.RiskHigh || bullet.RiskLevel == types.RiskCritical {
		result.Issues = append(result.Issues, fmt.Sprintf("risk level too high: %s", bullet.RiskLevel))
		result.Valid = false
	}

	if bullet.RSApplied && bullet.RSBasis == "" {
		result.Issues = append(result.Issues, "missing synthesis basis attribution")
		result.Valid = false
	}

	if !result.Valid {
		result.Recommendations = append(result.Recommendations, "Consider using the original bullet without synthesis")
		if bullet.Confidence < confidenceThreshold {
			result.Recommendations = append(result.Recommendations, "Gather more evidence to support the enhancement")
		}
	}

	return result
}
