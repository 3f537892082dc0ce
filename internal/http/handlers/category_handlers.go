package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

// GetCategoriesHandler godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategoryHandler godoc
// @Summary Create a new category
// @Description Every listed product id must exist; listed products are linked to the new category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} models.Category
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "A listed product does not exist"
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCategory(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := categoryRepo.Create(repo.CategoryCreate{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		ProductIDs:  req.ProductIDs,
	})
	if err != nil {
		respondRepoError(w, err, "could not create category")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateCategoryHandler godoc
// @Summary Update a category
// @Description A supplied productIds list replaces the membership and relinks the difference
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body CategoryUpdateRequest true "Fields to update"
// @Success 200 {object} models.Category
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /categories/{id} [put]
func UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req CategoryUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := categoryRepo.Update(id, repo.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		ProductIDs:  req.ProductIDs,
	})
	if err != nil {
		respondRepoError(w, err, "could not update category")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Description Unlinks the category's products and removes direct child categories as well
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := categoryRepo.Delete(id); err != nil {
		respondRepoError(w, err, "could not delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LinkProductHandler godoc
// @Summary Link a product to a category
// @Tags categories
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Category
// @Failure 400 {string} string "Already linked"
// @Failure 404 {string} string "Not found"
// @Router /categories/{categoryId}/products/{productId}/link [post]
func LinkProductHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	productID := chi.URLParam(r, "productId")

	category, err := categoryRepo.LinkProduct(categoryID, productID)
	if err != nil {
		respondRepoError(w, err, "could not link product")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// UnlinkProductHandler godoc
// @Summary Unlink a product from a category
// @Tags categories
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Category
// @Failure 400 {string} string "Not linked"
// @Failure 404 {string} string "Not found"
// @Router /categories/{categoryId}/products/{productId}/unlink [post]
func UnlinkProductHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	productID := chi.URLParam(r, "productId")

	category, err := categoryRepo.UnlinkProduct(categoryID, productID)
	if err != nil {
		respondRepoError(w, err, "could not unlink product")
		return
	}
	writeJSON(w, http.StatusOK, category)
}
