package catalog

import (
	"strings"

	"github.com/sellerdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is the catalog read model consumed by the labeling context.
// The catalog itself is maintained upstream; labeling only reads product
// attributes when matching barcode rules and enqueuing print work.
type Product struct {
	shared.BaseEntity
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Supplier string          `json:"supplier"`
	Barcode  string          `json:"barcode"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"isActive"`
}

// NewProduct creates a product read model entry
func NewProduct(sku, name string, price decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        strings.TrimSpace(sku),
		Name:       strings.TrimSpace(name),
		Price:      price,
		IsActive:   true,
	}, nil
}

// Attribute returns the product attribute named by field as a string.
// The second return is false for unknown fields.
func (p *Product) Attribute(field ConditionField) (string, bool) {
	switch field {
	case FieldSKU:
		return p.SKU, true
	case FieldName:
		return p.Name, true
	case FieldCategory:
		return p.Category, true
	case FieldBrand:
		return p.Brand, true
	case FieldSupplier:
		return p.Supplier, true
	case FieldBarcode:
		return p.Barcode, true
	case FieldPrice:
		return p.Price.String(), true
	}
	return "", false
}
