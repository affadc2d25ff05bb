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

// ShipperRepository implements labeling.ShipperRepository on the
// key-value store. Barcode rules travel inside their shipper document.
type ShipperRepository struct {
	store  kv.Store
	logger *zap.Logger

	mu       sync.RWMutex
	shippers []labeling.Shipper
}

// NewShipperRepository hydrates the shipper collection from the store
func NewShipperRepository(ctx context.Context, store kv.Store, logger *zap.Logger, seed []labeling.Shipper) *ShipperRepository {
	return &ShipperRepository{
		store:    store,
		logger:   logger.Named("shippers"),
		shippers: loadDocument(ctx, store, kv.KeyShippers, logger, seed),
	}
}

// FindByID finds a shipper by ID
func (r *ShipperRepository) FindByID(_ context.Context, id uuid.UUID) (*labeling.Shipper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.shippers {
		if r.shippers[i].ID == id {
			return copyShipper(&r.shippers[i]), nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns all shippers
func (r *ShipperRepository) FindAll(_ context.Context) ([]labeling.Shipper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]labeling.Shipper, len(r.shippers))
	for i := range r.shippers {
		out[i] = *copyShipper(&r.shippers[i])
	}
	return out, nil
}

// Append adds a shipper to the collection
func (r *ShipperRepository) Append(ctx context.Context, shipper *labeling.Shipper) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shippers = append(r.shippers, *copyShipper(shipper))
	persistDocument(ctx, r.store, kv.KeyShippers, r.logger, r.shippers)
	return nil
}

// Save updates an existing shipper in place, rules included
func (r *ShipperRepository) Save(ctx context.Context, shipper *labeling.Shipper) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.shippers {
		if r.shippers[i].ID == shipper.ID {
			r.shippers[i] = *copyShipper(shipper)
			persistDocument(ctx, r.store, kv.KeyShippers, r.logger, r.shippers)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Delete removes a shipper by ID
func (r *ShipperRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.shippers {
		if r.shippers[i].ID == id {
			r.shippers = append(r.shippers[:i], r.shippers[i+1:]...)
			persistDocument(ctx, r.store, kv.KeyShippers, r.logger, r.shippers)
			return nil
		}
	}
	return shared.ErrNotFound
}

// copyShipper deep-copies a shipper so callers never alias the stored
// rule slice.
func copyShipper(s *labeling.Shipper) *labeling.Shipper {
	copied := *s
	copied.BarcodeRules = make([]labeling.BarcodeRule, len(s.BarcodeRules))
	copy(copied.BarcodeRules, s.BarcodeRules)
	return &copied
}
