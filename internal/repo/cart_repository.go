package repo

import "github.com/rogerio-castellano/storefront/internal/models"

// CartItemInput is one requested product/quantity pair for the add and
// update batch operations.
type CartItemInput struct {
	ProductID string
	Quantity  int
}

// CartTotal is the derived summary returned by Total.
type CartTotal struct {
	Total      float64 `json:"total"`
	TotalItems int     `json:"totalItems"`
}

// CheckoutResult is returned by a successful checkout. The order id is
// generated fresh and never persisted; there is no order history.
type CheckoutResult struct {
	Success bool    `json:"success"`
	OrderID string  `json:"orderId"`
	Total   float64 `json:"total"`
}

// CartRepository defines cart data operations. Stock is checked on every
// add/update but only decremented by Checkout.
type CartRepository interface {
	GetAll() ([]models.Cart, error)
	GetByID(id string) (models.Cart, error)
	// GetByUserID returns the first cart whose userId matches, or nil when
	// none does. It deliberately does not collect all of a user's carts.
	GetByUserID(userID string) (*models.Cart, error)
	Create(userID *string, items []CartItemInput) (models.Cart, error)
	AddItem(cartID, productID string, quantity int) (models.Cart, error)
	// AddItems applies AddItem per entry in order; the first failure aborts
	// the remainder and already-applied entries stay persisted.
	AddItems(cartID string, items []CartItemInput) (models.Cart, error)
	UpdateItem(cartID, productID string, quantity int) (models.Cart, error)
	UpdateCart(cartID string, items []CartItemInput) (models.Cart, error)
	RemoveItem(cartID, productID string) (models.Cart, error)
	Clear(cartID string) (models.Cart, error)
	Total(cartID string) (CartTotal, error)
	Checkout(cartID string) (CheckoutResult, error)
}
