package repo

import (
	"sort"
	"sync"

	"github.com/warehousr/inventory-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler tests. It shares its lock with the
// in-memory transfer repository so transfers observe consistent state.
type InMemoryProductRepository struct {
	mu         sync.Mutex
	products   []models.Product
	categories *InMemoryCategoryRepository
	nextID     int
}

func NewInMemoryProductRepository(categories *InMemoryCategoryRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{categories: categories, nextID: 1}
}

func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

func (r *InMemoryProductRepository) GetAll(f ProductFilter) ([]models.ProductWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ProductWithCategory
	for _, p := range r.products {
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.MinQty != nil && p.Quantity < *f.MinQty {
			continue
		}
		if f.MaxQty != nil && p.Quantity > *f.MaxQty {
			continue
		}
		out = append(out, r.withCategory(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryProductRepository) GetByID(id int) (models.ProductWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			return r.withCategory(p), nil
		}
	}
	return models.ProductWithCategory{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Clear removes all products.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = nil
	r.nextID = 1
}

func (r *InMemoryProductRepository) withCategory(p models.Product) models.ProductWithCategory {
	pc := models.ProductWithCategory{Product: p}
	if p.CategoryID == nil || r.categories == nil {
		return pc
	}
	r.categories.mu.Lock()
	defer r.categories.mu.Unlock()
	for _, c := range r.categories.categories {
		if c.ID == *p.CategoryID {
			name := c.Name
			pc.CategoryName = &name
			break
		}
	}
	return pc
}
