package repo

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/storage"
)

// StoreCategoryRepository is a CollectionStore-backed implementation of
// CategoryRepository. It writes the products collection directly to keep
// the categoryId back-references consistent with the membership lists.
type StoreCategoryRepository struct {
	store storage.CollectionStore
	mu    *sync.Mutex
}

// NewStoreCategoryRepository creates a category repository over store,
// sharing mu with the other store-backed repositories.
func NewStoreCategoryRepository(store storage.CollectionStore, mu *sync.Mutex) *StoreCategoryRepository {
	return &StoreCategoryRepository{store: store, mu: mu}
}

func (r *StoreCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.store.Read(storage.CategoriesCollection, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create validates that every listed product exists, then links them all to
// the new category (rewriting the products collection) before persisting
// the category itself.
func (r *StoreCategoryRepository) Create(dto CategoryCreate) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var categories []models.Category
	if err := r.store.Read(storage.CategoriesCollection, &categories); err != nil {
		return models.Category{}, err
	}

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return models.Category{}, err
	}

	if err := validateProductsExist(products, dto.ProductIDs); err != nil {
		return models.Category{}, err
	}

	productIDs := dto.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}
	category := models.Category{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Description: dto.Description,
		ParentID:    dto.ParentID,
		ProductIDs:  productIDs,
	}

	if len(category.ProductIDs) > 0 {
		for i := range products {
			if category.HasProduct(products[i].ID) {
				products[i].CategoryID = &category.ID
			}
		}
		if err := r.store.Write(storage.ProductsCollection, products); err != nil {
			return models.Category{}, err
		}
	}

	categories = append(categories, category)
	if err := r.store.Write(storage.CategoriesCollection, categories); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// Update applies the patch and reconciles links for the membership
// difference: ids dropped from the list are unlinked only if the product
// still points at this category, ids added are linked unconditionally.
func (r *StoreCategoryRepository) Update(id string, patch CategoryPatch) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var categories []models.Category
	if err := r.store.Read(storage.CategoriesCollection, &categories); err != nil {
		return models.Category{}, err
	}

	index := -1
	for i, c := range categories {
		if c.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Category{}, ErrCategoryNotFound
	}

	oldProductIDs := categories[index].ProductIDs
	newProductIDs := oldProductIDs
	if patch.ProductIDs != nil {
		newProductIDs = *patch.ProductIDs
	}

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return models.Category{}, err
	}
	if err := validateProductsExist(products, newProductIDs); err != nil {
		return models.Category{}, err
	}

	if patch.Name != nil {
		categories[index].Name = *patch.Name
	}
	if patch.Description != nil {
		categories[index].Description = *patch.Description
	}
	if patch.ParentID != nil {
		categories[index].ParentID = patch.ParentID
	}
	categories[index].ProductIDs = newProductIDs

	toUnlink := difference(oldProductIDs, newProductIDs)
	toLink := difference(newProductIDs, oldProductIDs)
	for i := range products {
		if contains(toUnlink, products[i].ID) &&
			products[i].CategoryID != nil && *products[i].CategoryID == id {
			products[i].CategoryID = nil
		}
		if contains(toLink, products[i].ID) {
			categoryID := id
			products[i].CategoryID = &categoryID
		}
	}
	if err := r.store.Write(storage.ProductsCollection, products); err != nil {
		return models.Category{}, err
	}

	if err := r.store.Write(storage.CategoriesCollection, categories); err != nil {
		return models.Category{}, err
	}
	return categories[index], nil
}

// Delete unlinks the category's products and removes the category together
// with its direct children. The cascade stops one level down: grandchildren
// survive, and a removed child's own products keep their now-dangling
// categoryId.
func (r *StoreCategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var categories []models.Category
	if err := r.store.Read(storage.CategoriesCollection, &categories); err != nil {
		return err
	}

	var category *models.Category
	for i := range categories {
		if categories[i].ID == id {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if len(category.ProductIDs) > 0 {
		var products []models.Product
		if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
			return err
		}
		for i := range products {
			if category.HasProduct(products[i].ID) {
				products[i].CategoryID = nil
			}
		}
		if err := r.store.Write(storage.ProductsCollection, products); err != nil {
			return err
		}
	}

	filtered := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.ID == id || (c.ParentID != nil && *c.ParentID == id) {
			continue
		}
		filtered = append(filtered, c)
	}
	return r.store.Write(storage.CategoriesCollection, filtered)
}

func (r *StoreCategoryRepository) LinkProduct(categoryID, productID string) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var categories []models.Category
	if err := r.store.Read(storage.CategoriesCollection, &categories); err != nil {
		return models.Category{}, err
	}

	index := -1
	for i, c := range categories {
		if c.ID == categoryID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Category{}, ErrCategoryNotFound
	}

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return models.Category{}, err
	}

	productIndex := -1
	for i, p := range products {
		if p.ID == productID {
			productIndex = i
			break
		}
	}
	if productIndex == -1 {
		return models.Category{}, ErrProductNotFound
	}

	if categories[index].HasProduct(productID) {
		return models.Category{}, ErrProductAlreadyLinked
	}

	categories[index].ProductIDs = append(categories[index].ProductIDs, productID)
	products[productIndex].CategoryID = &categories[index].ID

	if err := r.store.Write(storage.CategoriesCollection, categories); err != nil {
		return models.Category{}, err
	}
	if err := r.store.Write(storage.ProductsCollection, products); err != nil {
		return models.Category{}, err
	}
	return categories[index], nil
}

func (r *StoreCategoryRepository) UnlinkProduct(categoryID, productID string) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var categories []models.Category
	if err := r.store.Read(storage.CategoriesCollection, &categories); err != nil {
		return models.Category{}, err
	}

	index := -1
	for i, c := range categories {
		if c.ID == categoryID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Category{}, ErrCategoryNotFound
	}

	if !categories[index].HasProduct(productID) {
		return models.Category{}, ErrProductNotLinked
	}

	kept := make([]string, 0, len(categories[index].ProductIDs))
	for _, pid := range categories[index].ProductIDs {
		if pid != productID {
			kept = append(kept, pid)
		}
	}
	categories[index].ProductIDs = kept

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return models.Category{}, err
	}
	// The product side only needs rewriting when it still points here.
	for i := range products {
		if products[i].ID == productID &&
			products[i].CategoryID != nil && *products[i].CategoryID == categoryID {
			products[i].CategoryID = nil
			if err := r.store.Write(storage.ProductsCollection, products); err != nil {
				return models.Category{}, err
			}
			break
		}
	}

	if err := r.store.Write(storage.CategoriesCollection, categories); err != nil {
		return models.Category{}, err
	}
	return categories[index], nil
}

// validateProductsExist fails with a MissingProductError naming the first
// id that does not resolve to a product.
func validateProductsExist(products []models.Product, productIDs []string) error {
	for _, id := range productIDs {
		found := false
		for _, p := range products {
			if p.ID == id {
				found = true
				break
			}
		}
		if !found {
			return &MissingProductError{ProductID: id}
		}
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// difference returns the ids present in a but absent from b.
func difference(a, b []string) []string {
	var diff []string
	for _, id := range a {
		if !contains(b, id) {
			diff = append(diff, id)
		}
	}
	return diff
}
