package models

// Category groups zero or more products. Names are unique.
type Category struct {
	ID   int    `json:"category_id"`
	Name string `json:"category_name"`
}
