package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/storefront/internal/http"
	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
)

func importCSV(r http.Handler, csvContent, mode string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvContent, "products.csv")

	path := "/products/import"
	if mode != "" {
		path += "?mode=" + mode
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportProductsHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	csvContent := "name,price,stock\nLaptop,1500.00,5\nPhone,900.00,3\n"
	w := importCSV(r, csvContent, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported products, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %+v", result.Errors)
	}
}

func TestImportProductsHandler_InvalidRows(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	csvContent := "name,price,stock\n,1500.00,5\nPhone,-1,3\nDesk,200.00,1\n"
	w := importCSV(r, csvContent, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 1 {
		t.Errorf("expected 1 imported product, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %+v", result.Errors)
	}
}

func TestImportProductsHandler_SkipMode(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})

	csvContent := "name,price,stock\nLaptop,999.00,1\n"
	w := importCSV(r, csvContent, "skip")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 0 {
		t.Errorf("expected 0 imports in skip mode, got %d", result.ImportedProductsCount)
	}

	// The existing product must be untouched.
	wList := doJSON(r, http.MethodGet, "/products", nil)
	var products []handler.ProductResponse
	if err := json.NewDecoder(wList.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if products[0].Price != 1500.0 || products[0].Stock != 5 {
		t.Errorf("skip mode changed an existing product: %+v", products[0])
	}
}

func TestImportProductsHandler_UpdateMode(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})

	csvContent := "name,price,stock\nLaptop,999.00,1\n"
	w := importCSV(r, csvContent, "update")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 1 {
		t.Errorf("expected 1 updated product, got %d", result.ImportedProductsCount)
	}

	wList := doJSON(r, http.MethodGet, "/products", nil)
	var products []handler.ProductResponse
	if err := json.NewDecoder(wList.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].Price != 999.0 || products[0].Stock != 1 {
		t.Errorf("update mode did not overwrite: %+v", products[0])
	}
}

func TestImportProductsHandler_MissingFile(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/products/import", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
