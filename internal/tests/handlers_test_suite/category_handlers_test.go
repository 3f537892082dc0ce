package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/storefront/internal/http"
	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/models"
)

func mustCreateCategory(t *testing.T, r http.Handler, c handler.CategoryRequest) models.Category {
	t.Helper()
	w := createCategory(r, c)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var cat models.Category
	if err := json.NewDecoder(w.Body).Decode(&cat); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return cat
}

func TestCreateCategoryHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	cat := mustCreateCategory(t, r, handler.CategoryRequest{Name: "Electronics", Description: "Devices"})
	if cat.ID == "" {
		t.Error("expected a generated id")
	}
	if cat.Name != "Electronics" {
		t.Errorf("expected name 'Electronics', got %v", cat.Name)
	}
	if len(cat.ProductIDs) != 0 {
		t.Errorf("expected empty membership, got %v", cat.ProductIDs)
	}
}

func TestCreateCategoryHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	w := createCategory(r, handler.CategoryRequest{Name: "", Description: ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("expected errors for name and description, got %+v", resp)
	}
}

func TestCreateCategoryHandler_MissingProduct(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	w := createCategory(r, handler.CategoryRequest{
		Name:        "Electronics",
		Description: "Devices",
		ProductIDs:  []string{"ghost-id"},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUpdateCategoryHandler(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	cat := mustCreateCategory(t, r, handler.CategoryRequest{Name: "Electronics", Description: "Devices"})

	name := "Gadgets"
	w := doJSON(r, http.MethodPut, "/categories/"+cat.ID, handler.CategoryUpdateRequest{Name: &name})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var updated models.Category
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Name != "Gadgets" {
		t.Errorf("expected renamed category, got %v", updated.Name)
	}
	if updated.Description != "Devices" {
		t.Errorf("omitted field changed: %v", updated.Description)
	}
}

func TestDeleteCategoryHandler_CascadesOneLevel(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	p := mustCreateProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})
	root := mustCreateCategory(t, r, handler.CategoryRequest{
		Name:        "Electronics",
		Description: "Devices",
		ProductIDs:  []string{p.Id},
	})
	child := mustCreateCategory(t, r, handler.CategoryRequest{
		Name:        "Laptops",
		Description: "Portables",
		ParentID:    &root.ID,
	})
	grandchild := mustCreateCategory(t, r, handler.CategoryRequest{
		Name:        "Ultrabooks",
		Description: "Thin ones",
		ParentID:    &child.ID,
	})

	w := doJSON(r, http.MethodDelete, "/categories/"+root.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	wList := doJSON(r, http.MethodGet, "/categories", nil)
	var remaining []models.Category
	if err := json.NewDecoder(wList.Body).Decode(&remaining); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != grandchild.ID {
		t.Errorf("expected only the grandchild to survive, got %+v", remaining)
	}

	// The linked product must have been released.
	wProducts := doJSON(r, http.MethodGet, "/products", nil)
	var products []handler.ProductResponse
	if err := json.NewDecoder(wProducts.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if products[0].CategoryID != nil {
		t.Errorf("expected unlinked product, got %v", *products[0].CategoryID)
	}
}

func TestLinkProductHandler(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	p := mustCreateProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})
	cat := mustCreateCategory(t, r, handler.CategoryRequest{Name: "Electronics", Description: "Devices"})

	path := fmt.Sprintf("/categories/%s/products/%s/link", cat.ID, p.Id)
	w := doJSON(r, http.MethodPost, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var linked models.Category
	if err := json.NewDecoder(w.Body).Decode(&linked); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !linked.HasProduct(p.Id) {
		t.Errorf("expected membership to include %s, got %v", p.Id, linked.ProductIDs)
	}

	// The second link must be rejected without duplicating the entry.
	w2 := doJSON(r, http.MethodPost, path, nil)
	if w2.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request on duplicate link, got %d", w2.Code)
	}
}

func TestUnlinkProductHandler_NotLinked(t *testing.T) {
	t.Cleanup(clearAllCollections)
	r := api.NewRouter()

	p := mustCreateProduct(r, handler.ProductRequest{Name: "Laptop", Price: 1500.0, Stock: 5})
	cat := mustCreateCategory(t, r, handler.CategoryRequest{Name: "Electronics", Description: "Devices"})

	path := fmt.Sprintf("/categories/%s/products/%s/unlink", cat.ID, p.Id)
	w := doJSON(r, http.MethodPost, path, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
