package models

// Product represents a product entity in the inventory system. CategoryID is
// nil for uncategorized products.
type Product struct {
	ID         int     `json:"product_id"`
	Name       string  `json:"product_name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"stock_quantity"`
	CategoryID *int    `json:"category_id,omitempty"`
}

// ProductWithCategory is a Product joined with its category name, as returned
// by listings. CategoryName is nil when the product is uncategorized.
type ProductWithCategory struct {
	Product
	CategoryName *string `json:"category_name"`
}
