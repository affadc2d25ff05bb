package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/infrastructure/kv"
)

// Repositories bundles every labeling repository hydrated from one store.
// Collections missing from the store start from the default seed data.
type Repositories struct {
	Templates    *TemplateRepository
	Elements     *ElementRepository
	Queue        *QueueRepository
	CleanupRules *CleanupRuleRepository
	CodeFormats  *CodeFormatRepository
	Shippers     *ShipperRepository
	Products     *ProductRepository
}

// NewRepositories hydrates all repositories from the store
func NewRepositories(ctx context.Context, store kv.Store, logger *zap.Logger) *Repositories {
	seed := defaultSeed()
	return &Repositories{
		Templates:    NewTemplateRepository(ctx, store, logger, seed.templates),
		Elements:     NewElementRepository(ctx, store, logger, seed.elements),
		Queue:        NewQueueRepository(ctx, store, logger, seed.queue),
		CleanupRules: NewCleanupRuleRepository(ctx, store, logger, seed.cleanupRules),
		CodeFormats:  NewCodeFormatRepository(ctx, store, logger, seed.codeFormats),
		Shippers:     NewShipperRepository(ctx, store, logger, seed.shippers),
		Products:     NewSeededProductRepository(),
	}
}
