// Package persistence implements the labeling repositories on the
// abstract key-value store. Each repository hydrates its whole collection
// at startup, falls back to seed data when the stored document is absent
// or unreadable, keeps the collection in memory as the source of truth,
// and rewrites the whole document on every mutation. Write failures are
// logged and otherwise ignored; the session continues on in-memory state.
package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/infrastructure/kv"
)

// loadDocument reads and decodes the document under key, substituting
// seed when the key is missing or the stored JSON does not parse.
func loadDocument[T any](ctx context.Context, store kv.Store, key string, logger *zap.Logger, seed T) T {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			logger.Warn("failed to read stored document, using seed data",
				zap.String("key", key),
				zap.Error(err))
		}
		return seed
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		logger.Warn("stored document is unreadable, using seed data",
			zap.String("key", key),
			zap.Error(err))
		return seed
	}
	return decoded
}

// persistDocument encodes and writes the document under key. Failures
// are logged, never propagated: in-memory state stays authoritative for
// the rest of the session.
func persistDocument(ctx context.Context, store kv.Store, key string, logger *zap.Logger, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Error("failed to encode document",
			zap.String("key", key),
			zap.Error(err))
		return
	}
	if err := store.Set(ctx, key, raw); err != nil {
		logger.Warn("failed to persist document, keeping in-memory state",
			zap.String("key", key),
			zap.Error(err))
	}
}
