package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/storefront/internal/http"
	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Id == "" {
		t.Error("expected a generated id")
	}
	if resp.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got %v", resp.Name)
	}
	if resp.Price != 1500.0 {
		t.Errorf("expected price 1500.0, got %v", resp.Price)
	}
	if resp.Stock != 5 {
		t.Errorf("expected stock 5, got %v", resp.Stock)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectCode     int
		expectedErrors []string
	}{
		{
			name:           "Empty name and price",
			payload:        handler.ProductRequest{Name: "", Price: 0.0},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Name", "Price"},
		},
		{
			name:           "Empty name only",
			payload:        handler.ProductRequest{Name: "", Price: 100.0},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Invalid price only",
			payload:        handler.ProductRequest{Name: "Mouse", Price: -5.0},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative stock",
			payload:        handler.ProductRequest{Name: "Keyboard", Price: 50.0, Stock: -1},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"Stock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
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
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	badJSON := `{Name: "Invalid" Price: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}

	expectedBody := "invalid input\n"
	if w.Body.String() != expectedBody {
		t.Errorf("expected response body %q, got %q", expectedBody, w.Body.String())
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "Phone", Price: 999.99, Stock: 1})
	mustCreateProduct(r, handler.ProductRequest{Name: "Tablet", Price: 499.99, Stock: 0})

	w := doJSON(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var products []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].OutOfStock {
		t.Error("in-stock product flagged as out of stock")
	}
	if !products[1].OutOfStock {
		t.Error("expected the zero-stock product to be flagged")
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	created := mustCreateProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})

	stock := 9
	w := doJSON(r, http.MethodPut, "/products/"+created.Id, handler.ProductUpdateRequest{Stock: &stock})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Stock != 9 {
		t.Errorf("expected stock 9, got %d", resp.Stock)
	}
	if resp.Name != "Laptop" || resp.Price != 1500.0 {
		t.Errorf("omitted fields changed: %+v", resp)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	name := "Ghost"
	w := doJSON(r, http.MethodPut, "/products/missing", handler.ProductUpdateRequest{Name: &name})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler_SilentForUnknownID(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	w := doJSON(r, http.MethodDelete, "/products/missing", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content for an unknown id, got %d", w.Code)
	}
}

func TestGetProductsByCategoryHandler(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	p1 := mustCreateProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})
	mustCreateProduct(r, handler.ProductRequest{Name: "Desk", Price: 200.0, Stock: 1})

	wCat := createCategory(r, handler.CategoryRequest{
		Name:        "Electronics",
		Description: "Devices",
		ProductIDs:  []string{p1.Id},
	})
	if wCat.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", wCat.Code)
	}
	var cat struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(wCat.Body).Decode(&cat); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/products/category/%s", cat.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var products []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 1 || products[0].Id != p1.Id {
		t.Errorf("expected only the linked product, got %+v", products)
	}
}
