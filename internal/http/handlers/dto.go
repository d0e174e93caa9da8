package handlers

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type CategoryCreatedResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ProductRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	CategoryID *int    `json:"category_id"`
}

type ProductResponse struct {
	ProductID     int     `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryName  *string `json:"category_name"`
}

type ProductCreatedResponse struct {
	ID int `json:"id"`
}

// MutationResult reports the outcome of an update or delete along with the
// number of rows changed.
type MutationResult struct {
	Message string `json:"message"`
	Changes int    `json:"changes"`
}

type TransferRequest struct {
	FromProductID int `json:"from_product_id"`
	ToProductID   int `json:"to_product_id"`
	Quantity      int `json:"quantity"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
