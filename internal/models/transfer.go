package models

// Transfer reports a completed stock movement between two products.
type Transfer struct {
	FromProductID int `json:"from_product_id"`
	ToProductID   int `json:"to_product_id"`
	Quantity      int `json:"quantity"`
}
