package repo

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrCartNotFound is returned when a cart is not found.
var ErrCartNotFound = errors.New("cart not found")

// ErrItemNotFound is returned when a cart has no line for the product.
var ErrItemNotFound = errors.New("item not found in cart")

// ErrCartEmpty is returned when checking out a cart with no items.
var ErrCartEmpty = errors.New("cart is empty")

// ErrProductAlreadyLinked is returned when linking a product that is already
// in the category's membership list.
var ErrProductAlreadyLinked = errors.New("product already linked to this category")

// ErrProductNotLinked is returned when unlinking a product that is not in
// the category's membership list.
var ErrProductNotLinked = errors.New("product not linked to this category")

// InsufficientStockError reports a quantity request exceeding the product's
// live stock. ProductName and Requested are only set by checkout, which
// names the failing line; the add/update paths report available stock only.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName == "" {
		return fmt.Sprintf("Insufficient stock. Available: %d", e.Available)
	}
	return fmt.Sprintf("Insufficient stock for %s. Available: %d, Requested: %d",
		e.ProductName, e.Available, e.Requested)
}

// MissingProductError names a referenced product id that no longer resolves.
// It unwraps to ErrProductNotFound so callers can treat it as a not-found.
type MissingProductError struct {
	ProductID string
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("Product with ID %s not found", e.ProductID)
}

func (e *MissingProductError) Unwrap() error {
	return ErrProductNotFound
}
