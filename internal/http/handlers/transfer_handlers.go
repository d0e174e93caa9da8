package handlers

import (
	"errors"
	"fmt"
	"net/http"

	repo "github.com/warehousr/inventory-api/internal/repo"
)

// TransferStockHandler godoc
// @Summary Atomically move stock from one product to another
// @Description Debits the source and credits the destination in a single
// @Description transaction. The whole transfer is rolled back when the source
// @Description has insufficient stock or the destination does not exist.
// @Tags inventory
// @Accept json
// @Produce json
// @Param transfer body TransferRequest true "Transfer to perform"
// @Success 200 {object} MessageResponse
// @Failure 400 {string} string "Insufficient stock, missing product, or invalid quantity"
// @Failure 500 {string} string "Transaction failure"
// @Router /api/inventory/adjust [post]
func TransferStockHandler(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateTransfer(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	result, err := transferRepo.Transfer(r.Context(), req.FromProductID, req.ToProductID, req.Quantity)
	if err != nil {
		var fault *repo.TransferFault
		var consistency *repo.ConsistencyError
		switch {
		case errors.Is(err, repo.ErrInsufficientStock):
			http.Error(w, "insufficient stock or source product not found", http.StatusBadRequest)
		case errors.Is(err, repo.ErrDestinationNotFound):
			http.Error(w, "destination product not found", http.StatusBadRequest)
		case errors.As(err, &fault):
			// Rolled-back statement failure: same fault class as the
			// zero-rows outcomes, with the store's diagnostic text.
			http.Error(w, fault.Error(), http.StatusBadRequest)
		case errors.As(err, &consistency):
			http.Error(w, consistency.Error(), http.StatusInternalServerError)
		default:
			http.Error(w, fmt.Sprintf("could not transfer stock: %v", err), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("moved %d units from product %d to product %d",
			result.Quantity, result.FromProductID, result.ToProductID),
	})
}
