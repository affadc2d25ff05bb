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

// QueueRepository implements labeling.QueueRepository on the key-value
// store. Queue order is insertion order.
type QueueRepository struct {
	store  kv.Store
	logger *zap.Logger

	mu    sync.RWMutex
	items []labeling.QueueItem
}

// NewQueueRepository hydrates the queue from the store
func NewQueueRepository(ctx context.Context, store kv.Store, logger *zap.Logger, seed []labeling.QueueItem) *QueueRepository {
	return &QueueRepository{
		store:  store,
		logger: logger.Named("queue"),
		items:  loadDocument(ctx, store, kv.KeyQueue, logger, seed),
	}
}

// FindByID finds a queue item by ID
func (r *QueueRepository) FindByID(_ context.Context, id uuid.UUID) (*labeling.QueueItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			copied := r.items[i]
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns the whole queue in insertion order
func (r *QueueRepository) FindAll(_ context.Context) ([]labeling.QueueItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]labeling.QueueItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Append adds items to the end of the queue
func (r *QueueRepository) Append(ctx context.Context, items []labeling.QueueItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, items...)
	persistDocument(ctx, r.store, kv.KeyQueue, r.logger, r.items)
	return nil
}

// Save updates an existing item in place
func (r *QueueRepository) Save(ctx context.Context, item *labeling.QueueItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			persistDocument(ctx, r.store, kv.KeyQueue, r.logger, r.items)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Remove deletes the given items, returning how many existed
func (r *QueueRepository) Remove(ctx context.Context, ids []uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	selected := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	kept := r.items[:0]
	removed := 0
	for _, item := range r.items {
		if selected[item.ID] {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept

	if removed > 0 {
		persistDocument(ctx, r.store, kv.KeyQueue, r.logger, r.items)
	}
	return removed, nil
}

// Clear empties the whole queue
func (r *QueueRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = []labeling.QueueItem{}
	persistDocument(ctx, r.store, kv.KeyQueue, r.logger, r.items)
	return nil
}
