package handlers

import (
	"errors"
	"net/http"
	"strings"

	repo "github.com/warehousr/inventory-api/internal/repo"
)

// GetCategoriesHandler godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{CategoryID: c.ID, CategoryName: c.Name}
	}
	writeJSON(w, http.StatusOK, response)
}

// CreateCategoryHandler godoc
// @Summary Create a new category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} CategoryCreatedResponse
// @Failure 400 {string} string "Missing name"
// @Failure 409 {string} string "Duplicate name"
// @Failure 500 {string} string "Internal error"
// @Router /api/categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "category name is required", http.StatusBadRequest)
		return
	}

	created, err := categoryRepo.Create(req.Name)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryExists) {
			http.Error(w, "category name already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, CategoryCreatedResponse{ID: created.ID, Name: created.Name})
}
