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

// CodeFormatRepository implements labeling.CodeFormatRepository on the
// key-value store. Saving a format persists its advanced sequence, which
// keeps the increment and the write together under one lock.
type CodeFormatRepository struct {
	store  kv.Store
	logger *zap.Logger

	mu      sync.RWMutex
	formats []labeling.CodeFormat
}

// NewCodeFormatRepository hydrates the format collection from the store
func NewCodeFormatRepository(ctx context.Context, store kv.Store, logger *zap.Logger, seed []labeling.CodeFormat) *CodeFormatRepository {
	return &CodeFormatRepository{
		store:   store,
		logger:  logger.Named("code_formats"),
		formats: loadDocument(ctx, store, kv.KeyCodeFormats, logger, seed),
	}
}

// FindByID finds a format by ID
func (r *CodeFormatRepository) FindByID(_ context.Context, id uuid.UUID) (*labeling.CodeFormat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.formats {
		if r.formats[i].ID == id {
			copied := r.formats[i]
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns all formats
func (r *CodeFormatRepository) FindAll(_ context.Context) ([]labeling.CodeFormat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]labeling.CodeFormat, len(r.formats))
	copy(out, r.formats)
	return out, nil
}

// Append adds a format to the collection
func (r *CodeFormatRepository) Append(ctx context.Context, format *labeling.CodeFormat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.formats = append(r.formats, *format)
	persistDocument(ctx, r.store, kv.KeyCodeFormats, r.logger, r.formats)
	return nil
}

// Save updates an existing format in place
func (r *CodeFormatRepository) Save(ctx context.Context, format *labeling.CodeFormat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.formats {
		if r.formats[i].ID == format.ID {
			r.formats[i] = *format
			persistDocument(ctx, r.store, kv.KeyCodeFormats, r.logger, r.formats)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Delete removes a format by ID
func (r *CodeFormatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.formats {
		if r.formats[i].ID == id {
			r.formats = append(r.formats[:i], r.formats[i+1:]...)
			persistDocument(ctx, r.store, kv.KeyCodeFormats, r.logger, r.formats)
			return nil
		}
	}
	return shared.ErrNotFound
}
