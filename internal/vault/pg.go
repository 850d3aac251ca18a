package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/evidence-vault/internal/types"
)

// PGStore is a PostgreSQL-backed Store. Uniqueness of same-user appends is
// enforced by the primary key on the evidence table rather than a process
// lock, so concurrent writers across processes remain safe.
type PGStore struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool and returns a PostgreSQL evidence store
func ConnectPG(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PGStore{pool: pool}, nil
}

// NewPGStore wraps an existing pool, used by tests and callers that manage
// their own pool lifecycle
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Close closes the connection pool
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// AddEvidence validates and inserts a new evidence item for the user
func (s *PGStore) AddEvidence(ctx context.Context, userID string, input *types.EvidenceInput) (string, error) {
	item, err := newEvidenceItem(userID, input, time.Now().UTC())
	if err != nil {
		return "", err
	}

	metricsJSON, err := json.Marshal(item.Metrics)
	if err != nil {
		return "", &StoreError{Message: "failed to marshal metrics", Cause: err}
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO evidence_items
		   (id, user_id, evidence_type, title, description, company, role,
		    start_date, end_date, skills, metrics, confidence,
		    verification_status, tags, source_documents, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		item.ID, item.UserID, string(item.Type), item.Title, item.Description,
		item.Company, item.Role, item.StartDate, item.EndDate, item.Skills,
		metricsJSON, item.Confidence, string(item.VerificationStatus),
		item.Tags, item.SourceDocuments, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return "", &StoreError{Message: "failed to insert evidence item", Cause: err}
	}

	return item.ID, nil
}

// EvidenceForUser returns the user's evidence, newest first
func (s *PGStore) EvidenceForUser(ctx context.Context, userID string) ([]types.EvidenceItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, evidence_type, title, description, company, role,
		        start_date, end_date, skills, metrics, confidence,
		        verification_status, tags, source_documents, created_at, updated_at
		 FROM evidence_items
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, &StoreError{Message: "failed to query evidence items", Cause: err}
	}
	defer rows.Close()

	var items []types.EvidenceItem
	for rows.Next() {
		var item types.EvidenceItem
		var evidenceType, status string
		var metricsJSON []byte

		if err := rows.Scan(
			&item.ID, &item.UserID, &evidenceType, &item.Title, &item.Description,
			&item.Company, &item.Role, &item.StartDate, &item.EndDate, &item.Skills,
			&metricsJSON, &item.Confidence, &status, &item.Tags,
			&item.SourceDocuments, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, &StoreError{Message: "failed to scan evidence item", Cause: err}
		}

		item.Type = types.EvidenceType(evidenceType)
		item.VerificationStatus = types.VerificationStatus(status)
		if len(metricsJSON) > 0 {
			if err := json.Unmarshal(metricsJSON, &item.Metrics); err != nil {
				return nil, &StoreError{Message: "failed to unmarshal metrics", Cause: err}
			}
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Message: "failed to read evidence rows", Cause: err}
	}

	return items, nil
}
