package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"

	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/storage"
)

var (
	store        *storage.MemoryStore
	productRepo  *repo.StoreProductRepository
	categoryRepo *repo.StoreCategoryRepository
	cartRepo     *repo.StoreCartRepository
)

func init() {
	// The suite fires requests far faster than any real client would.
	rl.Configure(10000, 10000)
	setupTestRepos()
}

func setupTestRepos() {
	store = storage.NewMemoryStore()
	mu := &sync.Mutex{}

	productRepo = repo.NewStoreProductRepository(store, mu)
	handler.SetProductRepo(productRepo)

	categoryRepo = repo.NewStoreCategoryRepository(store, mu)
	handler.SetCategoryRepo(categoryRepo)

	cartRepo = repo.NewStoreCartRepository(store, mu)
	handler.SetCartRepo(cartRepo)

	metricsRepo := repo.NewStoreMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)
	metricsRepo.SetRepositories(productRepo, categoryRepo, cartRepo)
}

func clearAllCollections() {
	store.Clear()
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

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", p)
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product creation failed with %d: %s", w.Code, w.Body.String()))
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("product decoding failed: %v", err))
	}
	return resp
}

func createCategory(r http.Handler, c handler.CategoryRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/categories", c)
}

func createCart(r http.Handler, c handler.CreateCartRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/carts", c)
}

func addItem(r http.Handler, cartID string, item handler.AddItemRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, fmt.Sprintf("/carts/%s/items", cartID), item)
}

func checkout(r http.Handler, cartID string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, fmt.Sprintf("/carts/%s/checkout", cartID), nil)
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
