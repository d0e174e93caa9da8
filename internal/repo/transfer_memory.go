package repo

import (
	"context"

	"github.com/warehousr/inventory-api/internal/models"
)

// InMemoryTransferRepository mirrors the coordinator semantics over an
// in-memory product repository: conditional debit, credit guarded by
// existence, all-or-nothing effect. The product repository's lock serializes
// conflicting transfers the way row locking does in the store.
type InMemoryTransferRepository struct {
	products *InMemoryProductRepository
}

func NewInMemoryTransferRepository(products *InMemoryProductRepository) *InMemoryTransferRepository {
	return &InMemoryTransferRepository{products: products}
}

func (r *InMemoryTransferRepository) Transfer(_ context.Context, fromID, toID, quantity int) (models.Transfer, error) {
	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	from := -1
	for i, p := range r.products.products {
		if p.ID == fromID {
			from = i
			break
		}
	}
	if from < 0 || r.products.products[from].Quantity < quantity {
		return models.Transfer{}, ErrInsufficientStock
	}
	r.products.products[from].Quantity -= quantity

	to := -1
	for i, p := range r.products.products {
		if p.ID == toID {
			to = i
			break
		}
	}
	if to < 0 {
		// Roll the debit back so the failed transfer leaves no trace.
		r.products.products[from].Quantity += quantity
		return models.Transfer{}, ErrDestinationNotFound
	}
	r.products.products[to].Quantity += quantity

	return models.Transfer{FromProductID: fromID, ToProductID: toID, Quantity: quantity}, nil
}
