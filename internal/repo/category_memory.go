package repo

import (
	"sort"
	"sync"

	"github.com/warehousr/inventory-api/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository, used by the handler tests.
type InMemoryCategoryRepository struct {
	mu         sync.Mutex
	categories []models.Category
	nextID     int
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{nextID: 1}
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryCategoryRepository) Create(name string) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == name {
			return models.Category{}, ErrCategoryExists
		}
	}
	c := models.Category{ID: r.nextID, Name: name}
	r.nextID++
	r.categories = append(r.categories, c)
	return c, nil
}

// Clear removes all categories.
func (r *InMemoryCategoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = nil
	r.nextID = 1
}
