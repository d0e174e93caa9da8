package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/warehousr/inventory-api/internal/http"
	handler "github.com/warehousr/inventory-api/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Quantity: 3})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductCreatedResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ID == 0 {
		t.Errorf("expected a generated id, got 0")
	}
}

func TestCreateProductHandler_WithCategory(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createCategory(r, "Electronics")
	var cat handler.CategoryCreatedResponse
	if err := json.NewDecoder(w.Body).Decode(&cat); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	id := mustCreateProduct(r, handler.ProductRequest{Name: "Monitor", Price: 300, Quantity: 4, CategoryID: &cat.ID})

	product, code := getProduct(r, id)
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if product.CategoryName == nil || *product.CategoryName != "Electronics" {
		t.Errorf("expected category name 'Electronics', got %v", product.CategoryName)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name",
			payload:        handler.ProductRequest{Name: "", Price: 100.0},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Negative price",
			payload:        handler.ProductRequest{Name: "Mouse", Price: -5.0},
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.ProductRequest{Name: "Keyboard", Price: 50.0, Quantity: -1},
			expectedErrors: []string{"Quantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	badJSON := `{name: "Invalid" price: 100 "}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestGetProductsHandler_OrderedByName(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "Zip ties", Price: 3, Quantity: 100})
	mustCreateProduct(r, handler.ProductRequest{Name: "Anvil", Price: 120, Quantity: 2})
	mustCreateProduct(r, handler.ProductRequest{Name: "Mallet", Price: 25, Quantity: 7})

	w := doJSON(r, http.MethodGet, "/api/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	want := []string{"Anvil", "Mallet", "Zip ties"}
	if len(resp) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(resp))
	}
	for i, name := range want {
		if resp[i].ProductName != name {
			t.Errorf("position %d: expected %q, got %q", i, name, resp[i].ProductName)
		}
	}
}

func TestGetProductsHandler_RangeFilters(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "Cheap", Price: 5, Quantity: 50})
	mustCreateProduct(r, handler.ProductRequest{Name: "Mid", Price: 50, Quantity: 5})
	mustCreateProduct(r, handler.ProductRequest{Name: "Pricey", Price: 500, Quantity: 1})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"min price", "minPrice=10", []string{"Mid", "Pricey"}},
		{"price range", "minPrice=10&maxPrice=100", []string{"Mid"}},
		{"quantity range", "minQty=2&maxQty=10", []string{"Mid"}},
		{"combined", "maxPrice=100&minQty=40", []string{"Cheap"}},
		{"malformed bound treated as absent", "minPrice=abc&maxQty=1", []string{"Pricey"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, "/api/products?"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}

			var resp []handler.ProductResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if len(resp) != len(tt.want) {
				t.Fatalf("expected %d products, got %d", len(tt.want), len(resp))
			}
			for i, name := range tt.want {
				if resp[i].ProductName != name {
					t.Errorf("position %d: expected %q, got %q", i, name, resp[i].ProductName)
				}
			}
		})
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	id := mustCreateProduct(r, handler.ProductRequest{Name: "Lamp", Price: 20, Quantity: 5})

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/products/%d", id),
		handler.ProductRequest{Name: "Desk lamp", Price: 25, Quantity: 4})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.MutationResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Changes != 1 {
		t.Errorf("expected 1 change, got %d", result.Changes)
	}

	product, _ := getProduct(r, id)
	if product.ProductName != "Desk lamp" || product.Price != 25 || product.StockQuantity != 4 {
		t.Errorf("update not applied: %+v", product)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/api/products/12345",
		handler.ProductRequest{Name: "Ghost", Price: 1, Quantity: 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	id := mustCreateProduct(r, handler.ProductRequest{Name: "Old stock", Price: 1, Quantity: 0})

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.MutationResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Changes != 1 {
		t.Errorf("expected 1 change, got %d", result.Changes)
	}

	if _, code := getProduct(r, id); code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", code)
	}
}

func TestDeleteProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodDelete, "/api/products/12345", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
