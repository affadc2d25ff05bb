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

// ElementRepository implements labeling.ElementRepository on the
// key-value store. The whole map (template ID -> elements) is one
// document.
type ElementRepository struct {
	store  kv.Store
	logger *zap.Logger

	mu       sync.RWMutex
	elements map[uuid.UUID][]labeling.LabelElement
}

// NewElementRepository hydrates the element map from the store
func NewElementRepository(ctx context.Context, store kv.Store, logger *zap.Logger, seed map[uuid.UUID][]labeling.LabelElement) *ElementRepository {
	elements := loadDocument(ctx, store, kv.KeyTemplateElements, logger, seed)
	if elements == nil {
		elements = make(map[uuid.UUID][]labeling.LabelElement)
	}
	return &ElementRepository{
		store:    store,
		logger:   logger.Named("elements"),
		elements: elements,
	}
}

// FindByTemplate returns all elements placed on a template
func (r *ElementRepository) FindByTemplate(_ context.Context, templateID uuid.UUID) ([]labeling.LabelElement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]labeling.LabelElement, len(r.elements[templateID]))
	copy(out, r.elements[templateID])
	return out, nil
}

// FindByID finds an element anywhere in the map
func (r *ElementRepository) FindByID(_ context.Context, elementID uuid.UUID) (*labeling.LabelElement, uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for templateID, elements := range r.elements {
		for i := range elements {
			if elements[i].ID == elementID {
				copied := elements[i]
				return &copied, templateID, nil
			}
		}
	}
	return nil, uuid.Nil, shared.ErrNotFound
}

// Save inserts or updates an element under a template
func (r *ElementRepository) Save(ctx context.Context, templateID uuid.UUID, element *labeling.LabelElement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	elements := r.elements[templateID]
	for i := range elements {
		if elements[i].ID == element.ID {
			elements[i] = *element
			r.persist(ctx)
			return nil
		}
	}
	r.elements[templateID] = append(elements, *element)
	r.persist(ctx)
	return nil
}

// Delete removes an element by ID
func (r *ElementRepository) Delete(ctx context.Context, elementID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for templateID, elements := range r.elements {
		for i := range elements {
			if elements[i].ID == elementID {
				r.elements[templateID] = append(elements[:i], elements[i+1:]...)
				r.persist(ctx)
				return nil
			}
		}
	}
	return shared.ErrNotFound
}

// DeleteByTemplate removes a template's whole element set
func (r *ElementRepository) DeleteByTemplate(ctx context.Context, templateID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.elements, templateID)
	r.persist(ctx)
	return nil
}

// CopyTemplate duplicates one template's element set under another
// template ID with fresh element IDs.
func (r *ElementRepository) CopyTemplate(ctx context.Context, fromTemplateID, toTemplateID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := r.elements[fromTemplateID]
	if len(source) == 0 {
		return nil
	}

	copied := make([]labeling.LabelElement, len(source))
	for i, element := range source {
		element.ID = uuid.New()
		copied[i] = element
	}
	r.elements[toTemplateID] = copied
	r.persist(ctx)
	return nil
}

func (r *ElementRepository) persist(ctx context.Context) {
	persistDocument(ctx, r.store, kv.KeyTemplateElements, r.logger, r.elements)
}
