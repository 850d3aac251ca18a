package vault

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonathan/evidence-vault/internal/types"
)

// MemoryStore is an in-process Store. The items map is the single source of
// truth; the per-user index is derived from it and rebuilt on every append.
// A single RWMutex serializes appends, which also serializes same-user
// appends as the identifier scheme requires.
type MemoryStore struct {
	mu         sync.RWMutex
	items      map[string]types.EvidenceItem
	userIndex  map[string][]string
	maxPerUser int
	now        func() time.Time
}

// MemoryStoreOption configures a MemoryStore
type MemoryStoreOption func(*MemoryStore)

// WithMaxItemsPerUser caps how many evidence items one user may hold.
// Zero means unlimited.
func WithMaxItemsPerUser(max int) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.maxPerUser = max
	}
}

// WithClock overrides the time source, used by tests for deterministic IDs
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an empty in-memory evidence store
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		items:     make(map[string]types.EvidenceItem),
		userIndex: make(map[string][]string),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddEvidence validates and stores a new evidence item for the user
func (s *MemoryStore) AddEvidence(_ context.Context, userID string, input *types.EvidenceInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxPerUser > 0 && len(s.userIndex[userID]) >= s.maxPerUser {
		return "", &StoreError{Message: "evidence limit reached for user"}
	}

	item, err := newEvidenceItem(userID, input, s.now().UTC())
	if err != nil {
		return "", err
	}

	s.items[item.ID] = *item
	s.userIndex[userID] = append(s.userIndex[userID], item.ID)

	return item.ID, nil
}

// EvidenceForUser returns the user's evidence, newest first
func (s *MemoryStore) EvidenceForUser(_ context.Context, userID string) ([]types.EvidenceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userIndex[userID]
	items := make([]types.EvidenceItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}
