package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/domain/labeling"
	"github.com/sellerdesk/backend/internal/domain/shared"
	"github.com/sellerdesk/backend/internal/infrastructure/kv"
)

// CleanupRuleRepository implements labeling.CleanupRuleRepository on the
// key-value store. List order is application order and is preserved.
type CleanupRuleRepository struct {
	store  kv.Store
	logger *zap.Logger

	mu    sync.RWMutex
	rules []labeling.CleanupRule
}

// NewCleanupRuleRepository hydrates the rule list from the store
func NewCleanupRuleRepository(ctx context.Context, store kv.Store, logger *zap.Logger, seed []labeling.CleanupRule) *CleanupRuleRepository {
	return &CleanupRuleRepository{
		store:  store,
		logger: logger.Named("cleanup_rules"),
		rules:  loadDocument(ctx, store, kv.KeyCleanupRules, logger, seed),
	}
}

// FindByID finds a rule by ID
func (r *CleanupRuleRepository) FindByID(_ context.Context, id uuid.UUID) (*labeling.CleanupRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.rules {
		if r.rules[i].ID == id {
			copied := r.rules[i]
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns all rules in application order
func (r *CleanupRuleRepository) FindAll(_ context.Context) ([]labeling.CleanupRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]labeling.CleanupRule, len(r.rules))
	copy(out, r.rules)
	return out, nil
}

// Append adds a rule to the end of the list
func (r *CleanupRuleRepository) Append(ctx context.Context, rule *labeling.CleanupRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, *rule)
	persistDocument(ctx, r.store, kv.KeyCleanupRules, r.logger, r.rules)
	return nil
}

// Save updates an existing rule in place
func (r *CleanupRuleRepository) Save(ctx context.Context, rule *labeling.CleanupRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rules {
		if r.rules[i].ID == rule.ID {
			r.rules[i] = *rule
			persistDocument(ctx, r.store, kv.KeyCleanupRules, r.logger, r.rules)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Delete removes a rule by ID
func (r *CleanupRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rules {
		if r.rules[i].ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			persistDocument(ctx, r.store, kv.KeyCleanupRules, r.logger, r.rules)
			return nil
		}
	}
	return shared.ErrNotFound
}
