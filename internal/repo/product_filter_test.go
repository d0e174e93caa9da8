package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFilterConditions_NoBounds(t *testing.T) {
	clause, args := filterConditions(ProductFilter{})

	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestFilterConditions_AllBounds(t *testing.T) {
	clause, args := filterConditions(ProductFilter{
		MinPrice: floatPtr(1.5),
		MaxPrice: floatPtr(99.99),
		MinQty:   intPtr(1),
		MaxQty:   intPtr(10),
	})

	assert.Equal(t, " AND p.price >= $1 AND p.price <= $2 AND p.stock_quantity >= $3 AND p.stock_quantity <= $4", clause)
	assert.Equal(t, []any{1.5, 99.99, 1, 10}, args)
}

func TestFilterConditions_SubsetKeepsPlaceholdersDense(t *testing.T) {
	clause, args := filterConditions(ProductFilter{
		MaxPrice: floatPtr(50),
		MinQty:   intPtr(5),
	})

	assert.Equal(t, " AND p.price <= $1 AND p.stock_quantity >= $2", clause)
	assert.Equal(t, []any{50.0, 5}, args)
}
