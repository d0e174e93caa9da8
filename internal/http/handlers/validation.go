package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price < 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	return errs
}

func validateTransfer(t TransferRequest) []ValidationError {
	errs := []ValidationError{}
	if t.FromProductID <= 0 {
		errs = append(errs, ValidationError{Field: "FromProductID", Description: "from_product_id is required"})
	}
	if t.ToProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ToProductID", Description: "to_product_id is required"})
	}
	if t.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	return errs
}
