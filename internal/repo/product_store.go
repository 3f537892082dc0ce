package repo

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/storage"
)

// StoreProductRepository is a CollectionStore-backed implementation of
// ProductRepository. The mutex is shared with the other store-backed
// repositories and held across every read-modify-write window, so writers
// against the same collections are serialized within the process.
type StoreProductRepository struct {
	store storage.CollectionStore
	mu    *sync.Mutex
}

// NewStoreProductRepository creates a product repository over store. All
// repositories coordinating on the same store must share mu.
func NewStoreProductRepository(store storage.CollectionStore, mu *sync.Mutex) *StoreProductRepository {
	return &StoreProductRepository{store: store, mu: mu}
}

func (r *StoreProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *StoreProductRepository) GetByID(id string) (models.Product, error) {
	products, err := r.GetAll()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *StoreProductRepository) GetByName(name string) (models.Product, error) {
	products, err := r.GetAll()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *StoreProductRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	products, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	matched := []models.Product{}
	for _, p := range products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Create appends a new product. The categoryID is stored as given; nothing
// checks that it references an existing category.
func (r *StoreProductRepository) Create(name string, price float64, stock int, categoryID *string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:         uuid.NewString(),
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: categoryID,
	}
	products = append(products, product)

	if err := r.store.Write(storage.ProductsCollection, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update applies the supplied patch fields onto the existing record.
func (r *StoreProductRepository) Update(id string, patch ProductPatch) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return models.Product{}, err
	}

	index := -1
	for i, p := range products {
		if p.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Product{}, ErrProductNotFound
	}

	if patch.Name != nil {
		products[index].Name = *patch.Name
	}
	if patch.Price != nil {
		products[index].Price = *patch.Price
	}
	if patch.Stock != nil {
		products[index].Stock = *patch.Stock
	}
	if patch.CategoryID != nil {
		products[index].CategoryID = patch.CategoryID
	}

	if err := r.store.Write(storage.ProductsCollection, products); err != nil {
		return models.Product{}, err
	}
	return products[index], nil
}

func (r *StoreProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return err
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	return r.store.Write(storage.ProductsCollection, filtered)
}
