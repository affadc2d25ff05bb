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

// TemplateRepository implements labeling.TemplateRepository on the
// key-value store. Collection order is newest-first: Insert prepends.
type TemplateRepository struct {
	store  kv.Store
	logger *zap.Logger

	mu        sync.RWMutex
	templates []labeling.LabelTemplate
}

// NewTemplateRepository hydrates the template collection from the store
func NewTemplateRepository(ctx context.Context, store kv.Store, logger *zap.Logger, seed []labeling.LabelTemplate) *TemplateRepository {
	return &TemplateRepository{
		store:     store,
		logger:    logger.Named("templates"),
		templates: loadDocument(ctx, store, kv.KeyTemplates, logger, seed),
	}
}

// FindByID finds a template by ID
func (r *TemplateRepository) FindByID(_ context.Context, id uuid.UUID) (*labeling.LabelTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.templates {
		if r.templates[i].ID == id {
			copied := r.templates[i]
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns all templates in collection order
func (r *TemplateRepository) FindAll(_ context.Context) ([]labeling.LabelTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]labeling.LabelTemplate, len(r.templates))
	copy(out, r.templates)
	return out, nil
}

// FindDefault returns the default template
func (r *TemplateRepository) FindDefault(_ context.Context) (*labeling.LabelTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.templates {
		if r.templates[i].IsDefault {
			copied := r.templates[i]
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Insert prepends a new template to the collection
func (r *TemplateRepository) Insert(ctx context.Context, template *labeling.LabelTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = append([]labeling.LabelTemplate{*template}, r.templates...)
	persistDocument(ctx, r.store, kv.KeyTemplates, r.logger, r.templates)
	return nil
}

// Save updates an existing template in place
func (r *TemplateRepository) Save(ctx context.Context, template *labeling.LabelTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.templates {
		if r.templates[i].ID == template.ID {
			r.templates[i] = *template
			persistDocument(ctx, r.store, kv.KeyTemplates, r.logger, r.templates)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Delete removes a template by ID
func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.templates {
		if r.templates[i].ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			persistDocument(ctx, r.store, kv.KeyTemplates, r.logger, r.templates)
			return nil
		}
	}
	return shared.ErrNotFound
}

// SetDefault marks one template as default and clears every other flag.
// This is the single enforcement point of the single-default invariant.
func (r *TemplateRepository) SetDefault(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for i := range r.templates {
		if r.templates[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return shared.ErrNotFound
	}

	for i := range r.templates {
		if r.templates[i].ID == id {
			r.templates[i].SetAsDefault()
		} else {
			r.templates[i].UnsetDefault()
		}
	}

	persistDocument(ctx, r.store, kv.KeyTemplates, r.logger, r.templates)
	return nil
}
