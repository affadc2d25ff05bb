package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sellerdesk/backend/internal/domain/catalog"
	"github.com/sellerdesk/backend/internal/domain/shared"
)

// ProductRepository is the in-memory catalog read model backing rule
// selection and queue enqueue. The catalog is maintained upstream; this
// service only needs a readable snapshot, so it is seeded at startup and
// never persisted.
type ProductRepository struct {
	mu       sync.RWMutex
	products []catalog.Product
}

// NewProductRepository builds a catalog snapshot from the given products
func NewProductRepository(products []catalog.Product) *ProductRepository {
	copied := make([]catalog.Product, len(products))
	copy(copied, products)
	return &ProductRepository{products: copied}
}

// NewSeededProductRepository builds the default sample catalog
func NewSeededProductRepository() *ProductRepository {
	return NewProductRepository(seedProducts())
}

// FindByID finds a product by ID
func (r *ProductRepository) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			copied := r.products[i]
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindBySKU finds a product by SKU
func (r *ProductRepository) FindBySKU(_ context.Context, sku string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].SKU == sku {
			copied := r.products[i]
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns the full catalog
func (r *ProductRepository) FindAll(_ context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func seedProducts() []catalog.Product {
	type row struct {
		sku, name, category, brand, supplier, barcode string
		price                                         string
	}
	rows := []row{
		{"TS-001", "[샘플] 면 반팔 티셔츠", "의류", "베이직웨어", "동대문상사", "8801234000017", "12900"},
		{"BG-014", "무료배송 캔버스 에코백", "잡화", "그린백", "한양유통", "8801234000144", "8900"},
		{"TB-102", "(1+1) 스테인리스 텀블러", "주방", "써모쿡", "한양유통", "8801234001028", "15900"},
		{"BX-201", "이사용 대형 박스 5매", "박스", "팩스타", "대한포장", "8801234002018", "9900"},
		{"SK-330", "무지 양말 3족 세트", "의류", "베이직웨어", "동대문상사", "8801234003305", "5900"},
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, r := range rows {
		p, err := catalog.NewProduct(r.sku, r.name, decimal.RequireFromString(r.price))
		mustSeed(err)
		p.Category = r.category
		p.Brand = r.brand
		p.Supplier = r.supplier
		p.Barcode = r.barcode
		products = append(products, *p)
	}
	return products
}
