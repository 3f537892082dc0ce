package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/storefront/internal/http"
	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	p1 := mustCreateProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})
	mustCreateProduct(r, handler.ProductRequest{Name: "Phone", Price: 900.0, Stock: 0})
	createCategory(r, handler.CategoryRequest{Name: "Electronics", Description: "Devices"})
	mustCreateCart(t, r, handler.CreateCartRequest{
		Items: []handler.CartItemRequest{{ProductID: p1.Id, Quantity: 2}},
	})

	w := doJSON(r, http.MethodGet, "/metrics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if m.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", m.TotalProducts)
	}
	if m.TotalCategories != 1 {
		t.Errorf("expected 1 category, got %d", m.TotalCategories)
	}
	if m.TotalCarts != 1 {
		t.Errorf("expected 1 cart, got %d", m.TotalCarts)
	}
	if m.OutOfStockCount != 1 {
		t.Errorf("expected 1 out-of-stock product, got %d", m.OutOfStockCount)
	}
	if m.OpenCartValue != 3000.0 {
		t.Errorf("expected open cart value 3000, got %v", m.OpenCartValue)
	}
}
