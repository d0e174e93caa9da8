package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	api "github.com/warehousr/inventory-api/internal/http"
	handler "github.com/warehousr/inventory-api/internal/http/handlers"
	rl "github.com/warehousr/inventory-api/internal/http/rate_limiter"
	"github.com/warehousr/inventory-api/internal/repo"
)

var (
	categoryRepo *repo.InMemoryCategoryRepository
	productRepo  *repo.InMemoryProductRepository
)

func init() {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	productRepo = repo.NewInMemoryProductRepository(categoryRepo)

	handler.SetCategoryRepo(categoryRepo)
	handler.SetProductRepo(productRepo)
	handler.SetTransferRepo(repo.NewInMemoryTransferRepository(productRepo))

	// The suite fires many requests from one recorded client address.
	api.SetRateLimiter(rl.NewMemoryLimiter(1_000_000, 1_000_000))
}

func clearAll() {
	productRepo.Clear()
	categoryRepo.Clear()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(r http.Handler, name string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/categories", handler.CategoryRequest{Name: name})
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/products", p)
}

func transferStock(r http.Handler, t handler.TransferRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/inventory/adjust", t)
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) int {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("failed to create fixture product: status %d", w.Code))
	}
	var resp handler.ProductCreatedResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("error decoding create response: %v", err))
	}
	return resp.ID
}

func getProduct(r http.Handler, id int) (handler.ProductResponse, int) {
	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil)
	var resp handler.ProductResponse
	_ = json.NewDecoder(w.Body).Decode(&resp)
	return resp, w.Code
}
