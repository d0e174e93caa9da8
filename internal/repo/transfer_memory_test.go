package repo

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehousr/inventory-api/internal/models"
)

func newTransferFixture(t *testing.T, stocks map[int]int) (*InMemoryProductRepository, *InMemoryTransferRepository) {
	t.Helper()
	products := NewInMemoryProductRepository(nil)
	for id := 1; ; id++ {
		stock, ok := stocks[id]
		if !ok {
			break
		}
		_, err := products.Create(models.Product{Name: "p", Price: 1, Quantity: stock})
		require.NoError(t, err)
	}
	return products, NewInMemoryTransferRepository(products)
}

func stockOf(t *testing.T, products *InMemoryProductRepository, id int) int {
	t.Helper()
	p, err := products.GetByID(id)
	require.NoError(t, err)
	return p.Quantity
}

func TestTransfer_MovesStockAndConservesTotal(t *testing.T) {
	products, transfers := newTransferFixture(t, map[int]int{1: 10, 2: 5})

	result, err := transfers.Transfer(context.Background(), 1, 2, 10)

	require.NoError(t, err)
	assert.Equal(t, models.Transfer{FromProductID: 1, ToProductID: 2, Quantity: 10}, result)
	assert.Equal(t, 0, stockOf(t, products, 1))
	assert.Equal(t, 15, stockOf(t, products, 2))
}

func TestTransfer_InsufficientStockLeavesBothUnchanged(t *testing.T) {
	products, transfers := newTransferFixture(t, map[int]int{1: 10, 2: 5})

	_, err := transfers.Transfer(context.Background(), 1, 2, 10)
	require.NoError(t, err)

	_, err = transfers.Transfer(context.Background(), 1, 2, 1)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 0, stockOf(t, products, 1))
	assert.Equal(t, 15, stockOf(t, products, 2))
}

func TestTransfer_MissingSourceReportsInsufficientStock(t *testing.T) {
	_, transfers := newTransferFixture(t, map[int]int{1: 10})

	_, err := transfers.Transfer(context.Background(), 999, 1, 1)

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestTransfer_MissingDestinationRollsBackDebit(t *testing.T) {
	products, transfers := newTransferFixture(t, map[int]int{1: 10})

	_, err := transfers.Transfer(context.Background(), 1, 999, 1)

	assert.ErrorIs(t, err, ErrDestinationNotFound)
	assert.Equal(t, 10, stockOf(t, products, 1))
}

func TestTransfer_SameSourceAndDestinationIsNetNoop(t *testing.T) {
	products, transfers := newTransferFixture(t, map[int]int{1: 10})

	_, err := transfers.Transfer(context.Background(), 1, 1, 7)

	require.NoError(t, err)
	assert.Equal(t, 10, stockOf(t, products, 1))
}

func TestTransfer_SameSourceStillRequiresSufficientStock(t *testing.T) {
	products, transfers := newTransferFixture(t, map[int]int{1: 10})

	_, err := transfers.Transfer(context.Background(), 1, 1, 11)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 10, stockOf(t, products, 1))
}

func TestTransfer_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	products, transfers := newTransferFixture(t, map[int]int{1: 10, 2: 0})

	const attempts = 25
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = transfers.Transfer(context.Background(), 1, 2, 1)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientStock)
		}
	}

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 0, stockOf(t, products, 1))
	assert.Equal(t, 10, stockOf(t, products, 2))
}
