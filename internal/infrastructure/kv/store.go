// Package kv provides the persisted key-value document store the labeling
// aggregates hydrate from and write back to. Each key holds one whole
// collection as a JSON document; mutation is always replace-on-write.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored document
var ErrKeyNotFound = errors.New("kv: key not found")

// Store is the abstract persisted key-value store
type Store interface {
	// Get returns the document stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the document under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases the backend connection
	Close() error
}

// Document keys for the labeling aggregates
const (
	KeyTemplates        = "templates"
	KeyQueue            = "queue"
	KeyCleanupRules     = "cleanupRules"
	KeyTemplateElements = "templateElements"
	KeyCodeFormats      = "codeFormats"
	KeyShippers         = "shippers"
)
