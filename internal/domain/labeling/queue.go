package labeling

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sellerdesk/backend/internal/domain/shared"
)

// QueueItem is one unit of print work referencing a template and a
// sanitized product name, tracked through a status lifecycle.
type QueueItem struct {
	shared.BaseEntity
	ProductName   string      `json:"productName"`
	SanitizedName string      `json:"sanitizedName"`
	SKU           string      `json:"sku"`
	Quantity      int         `json:"quantity"`
	TemplateID    uuid.UUID   `json:"templateId"`
	Status        QueueStatus `json:"status"`
}

// NewQueueItem creates a pending queue item with quantity 1
func NewQueueItem(productName, sanitizedName, sku string, templateID uuid.UUID) (*QueueItem, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	return &QueueItem{
		BaseEntity:    shared.NewBaseEntity(),
		ProductName:   productName,
		SanitizedName: sanitizedName,
		SKU:           sku,
		Quantity:      1,
		TemplateID:    templateID,
		Status:        QueueStatusPending,
	}, nil
}

// SetQuantity updates the number of labels to print
func (q *QueueItem) SetQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	q.Quantity = quantity
	q.Touch()
	return nil
}

// SetStatus moves the item to the given status. The intended progression
// is PENDING -> PRINTING -> COMPLETED, but batch updates from the console
// may set any status, including backward moves to re-print an item.
func (q *QueueItem) SetStatus(status QueueStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown queue status: "+status.String())
	}
	q.Status = status
	q.Touch()
	return nil
}

// IsPending returns true if the item is waiting to print
func (q *QueueItem) IsPending() bool {
	return q.Status == QueueStatusPending
}

// IsPrinting returns true if the item is being printed
func (q *QueueItem) IsPrinting() bool {
	return q.Status == QueueStatusPrinting
}

// IsCompleted returns true if the item finished printing
func (q *QueueItem) IsCompleted() bool {
	return q.Status == QueueStatusCompleted
}
