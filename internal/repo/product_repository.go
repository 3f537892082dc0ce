package repo

import "github.com/rogerio-castellano/storefront/internal/models"

// ProductPatch enumerates the fields a product update may supply. A nil
// field is left untouched, so a partial payload never clobbers existing
// values. CategoryID cannot be reset to null here; clearing the link is the
// category side's job (unlink).
type ProductPatch struct {
	Name       *string
	Price      *float64
	Stock      *int
	CategoryID *string
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	GetByName(name string) (models.Product, error)
	GetByCategory(categoryID string) ([]models.Product, error)
	Create(name string, price float64, stock int, categoryID *string) (models.Product, error)
	Update(id string, patch ProductPatch) (models.Product, error)
	// Delete is a silent no-op when the id is absent and never cascades into
	// category membership lists; a removed product can leave a dangling id
	// behind in Category.ProductIDs.
	Delete(id string) error
}
