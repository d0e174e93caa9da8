package repo

import (
	"errors"

	"github.com/warehousr/inventory-api/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	GetAll(filter ProductFilter) ([]models.ProductWithCategory, error)
	GetByID(id int) (models.ProductWithCategory, error)
	Create(product models.Product) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
}

// ProductFilter carries the optional numeric bounds for product listings.
// A nil bound contributes no predicate.
type ProductFilter struct {
	MinPrice *float64
	MaxPrice *float64
	MinQty   *int
	MaxQty   *int
}

// ErrProductNotFound is returned when an update or delete matched zero rows,
// or a lookup found no product. Computed from the affected-row count, never
// from the absence of a store error.
var ErrProductNotFound = errors.New("product not found")
