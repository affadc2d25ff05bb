package labeling

import (
	"context"

	"github.com/google/uuid"
)

// TemplateRepository defines the interface for label template persistence.
// Implementations hold the whole collection and rewrite it on mutation.
type TemplateRepository interface {
	// FindByID finds a template by ID
	FindByID(ctx context.Context, id uuid.UUID) (*LabelTemplate, error)

	// FindAll returns all templates in collection order (newest first)
	FindAll(ctx context.Context) ([]LabelTemplate, error)

	// FindDefault returns the default template, or ErrNotFound when the
	// collection is empty
	FindDefault(ctx context.Context) (*LabelTemplate, error)

	// Insert prepends a new template to the collection
	Insert(ctx context.Context, template *LabelTemplate) error

	// Save updates an existing template in place
	Save(ctx context.Context, template *LabelTemplate) error

	// Delete removes a template by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// SetDefault marks one template as default and clears the flag on
	// every other template. This is the only operation that enforces the
	// single-default invariant.
	SetDefault(ctx context.Context, id uuid.UUID) error
}

// ElementRepository defines the interface for the element map
// (template ID -> positioned elements).
type ElementRepository interface {
	// FindByTemplate returns all elements placed on a template
	FindByTemplate(ctx context.Context, templateID uuid.UUID) ([]LabelElement, error)

	// FindByID finds an element anywhere in the map, returning the owning
	// template ID alongside it
	FindByID(ctx context.Context, elementID uuid.UUID) (*LabelElement, uuid.UUID, error)

	// Save inserts or updates an element under a template
	Save(ctx context.Context, templateID uuid.UUID, element *LabelElement) error

	// Delete removes an element by ID
	Delete(ctx context.Context, elementID uuid.UUID) error

	// DeleteByTemplate removes a template's whole element set
	DeleteByTemplate(ctx context.Context, templateID uuid.UUID) error

	// CopyTemplate duplicates one template's element set under another
	// template ID, assigning fresh element IDs
	CopyTemplate(ctx context.Context, fromTemplateID, toTemplateID uuid.UUID) error
}

// QueueRepository defines the interface for the print queue
type QueueRepository interface {
	// FindByID finds a queue item by ID
	FindByID(ctx context.Context, id uuid.UUID) (*QueueItem, error)

	// FindAll returns the whole queue in insertion order
	FindAll(ctx context.Context) ([]QueueItem, error)

	// Append adds items to the end of the queue
	Append(ctx context.Context, items []QueueItem) error

	// Save updates an existing item in place
	Save(ctx context.Context, item *QueueItem) error

	// Remove deletes the given items, returning how many existed
	Remove(ctx context.Context, ids []uuid.UUID) (int, error)

	// Clear empties the whole queue
	Clear(ctx context.Context) error
}

// CleanupRuleRepository defines the interface for cleanup rules. List
// order is application order, so implementations must preserve it.
type CleanupRuleRepository interface {
	// FindByID finds a rule by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CleanupRule, error)

	// FindAll returns all rules in application order
	FindAll(ctx context.Context) ([]CleanupRule, error)

	// Append adds a rule to the end of the list
	Append(ctx context.Context, rule *CleanupRule) error

	// Save updates an existing rule in place
	Save(ctx context.Context, rule *CleanupRule) error

	// Delete removes a rule by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// CodeFormatRepository defines the interface for code formats
type CodeFormatRepository interface {
	// FindByID finds a format by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CodeFormat, error)

	// FindAll returns all formats
	FindAll(ctx context.Context) ([]CodeFormat, error)

	// Append adds a format to the collection
	Append(ctx context.Context, format *CodeFormat) error

	// Save updates an existing format in place, including its sequence
	Save(ctx context.Context, format *CodeFormat) error

	// Delete removes a format by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShipperRepository defines the interface for shippers and their rules
type ShipperRepository interface {
	// FindByID finds a shipper by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Shipper, error)

	// FindAll returns all shippers
	FindAll(ctx context.Context) ([]Shipper, error)

	// Append adds a shipper to the collection
	Append(ctx context.Context, shipper *Shipper) error

	// Save updates an existing shipper in place, rules included
	Save(ctx context.Context, shipper *Shipper) error

	// Delete removes a shipper by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
