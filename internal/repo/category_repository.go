package repo

import "github.com/rogerio-castellano/storefront/internal/models"

// CategoryCreate carries the fields for a new category.
type CategoryCreate struct {
	Name        string
	Description string
	ParentID    *string
	ProductIDs  []string
}

// CategoryPatch enumerates the fields a category update may supply; nil
// fields keep their current value. A non-nil ProductIDs replaces the whole
// membership list and triggers relinking of the difference.
type CategoryPatch struct {
	Name        *string
	Description *string
	ParentID    *string
	ProductIDs  *[]string
}

// CategoryRepository defines category data operations, including the
// maintenance of the category↔product links recorded on both sides.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(dto CategoryCreate) (models.Category, error)
	Update(id string, patch CategoryPatch) (models.Category, error)
	Delete(id string) error
	LinkProduct(categoryID, productID string) (models.Category, error)
	UnlinkProduct(categoryID, productID string) (models.Category, error)
}
