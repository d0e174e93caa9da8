package repo

import (
	"errors"

	"github.com/warehousr/inventory-api/internal/models"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(name string) (models.Category, error)
}

// ErrCategoryExists is returned when a category with the same name is already
// stored. Mapped from the store's unique-constraint violation.
var ErrCategoryExists = errors.New("category name already exists")
