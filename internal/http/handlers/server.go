package handlers

import (
	repo "github.com/warehousr/inventory-api/internal/repo"
)

var (
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
	transferRepo repo.TransferRepository
)

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetTransferRepo(r repo.TransferRepository) {
	transferRepo = r
}
