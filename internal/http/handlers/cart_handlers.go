package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

func toItemInputs(items []CartItemRequest) []repo.CartItemInput {
	inputs := make([]repo.CartItemInput, len(items))
	for i, item := range items {
		inputs[i] = repo.CartItemInput{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return inputs
}

// GetCartsHandler godoc
// @Summary List all carts
// @Tags carts
// @Produce json
// @Success 200 {array} models.Cart
// @Failure 500 {string} string "Internal error"
// @Router /carts [get]
func GetCartsHandler(w http.ResponseWriter, r *http.Request) {
	carts, err := cartRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch carts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, carts)
}

// GetCartByIDHandler godoc
// @Summary Get cart by ID
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Cart
// @Failure 404 {string} string "Not found"
// @Router /carts/{id} [get]
func GetCartByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cart, err := cartRepo.GetByID(id)
	if err != nil {
		respondRepoError(w, err, "could not fetch cart")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// GetCartByUserIDHandler godoc
// @Summary Get the first cart belonging to a user
// @Description Responds with JSON null when the user has no cart
// @Tags carts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.Cart
// @Failure 500 {string} string "Internal error"
// @Router /carts/user/{userId} [get]
func GetCartByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	cart, err := cartRepo.GetByUserID(userID)
	if err != nil {
		http.Error(w, "could not fetch cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// CreateCartHandler godoc
// @Summary Create a cart
// @Description Supplied items are stock-checked and merged before the cart is first persisted
// @Tags carts
// @Accept json
// @Produce json
// @Param cart body CreateCartRequest true "Cart to create"
// @Success 201 {object} models.Cart
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "A listed product does not exist"
// @Router /carts [post]
func CreateCartHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCartRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCartItems(req.Items)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	cart, err := cartRepo.Create(req.UserID, toItemInputs(req.Items))
	if err != nil {
		respondRepoError(w, err, "could not create cart")
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

// AddItemHandler godoc
// @Summary Add a product line to a cart
// @Description Stock is checked, not decremented; an existing line keeps its price/name snapshot
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param item body AddItemRequest true "Product and quantity (quantity defaults to 1)"
// @Success 200 {object} models.Cart
// @Failure 400 {string} string "Insufficient stock"
// @Failure 404 {string} string "Not found"
// @Router /carts/{id}/items [post]
func AddItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req AddItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	validationErrors := validateCartItems([]CartItemRequest{{ProductID: req.ProductID, Quantity: quantity}})
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	cart, err := cartRepo.AddItem(id, req.ProductID, quantity)
	if err != nil {
		respondRepoError(w, err, "could not add item")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// AddItemsHandler godoc
// @Summary Add several product lines to a cart
// @Description Entries apply in order; the first failure aborts the remainder without rolling back prior entries
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param items body []CartItemRequest true "Products and quantities"
// @Success 200 {object} models.Cart
// @Failure 400 {string} string "Insufficient stock"
// @Failure 404 {string} string "Not found"
// @Router /carts/{id}/items/batch [post]
func AddItemsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var items []CartItemRequest
	if err := readJSON(w, r, &items); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCartItems(items)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	cart, err := cartRepo.AddItems(id, toItemInputs(items))
	if err != nil {
		respondRepoError(w, err, "could not add items")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// UpdateItemHandler godoc
// @Summary Set the quantity of a cart line
// @Description Quantity zero removes the line; the price/name snapshot is preserved otherwise
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Param item body UpdateItemRequest true "New quantity"
// @Success 200 {object} models.Cart
// @Failure 400 {string} string "Insufficient stock"
// @Failure 404 {string} string "Not found"
// @Router /carts/{id}/items/{productId} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	productID := chi.URLParam(r, "productId")

	var req UpdateItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity == nil || *req.Quantity < 0 {
		http.Error(w, "quantity must be zero or positive", http.StatusBadRequest)
		return
	}

	cart, err := cartRepo.UpdateItem(id, productID, *req.Quantity)
	if err != nil {
		respondRepoError(w, err, "could not update item")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// UpdateCartHandler godoc
// @Summary Update several cart lines
// @Description Entries apply in order with the same no-rollback semantics as the batch add
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param cart body UpdateCartRequest true "Lines to update"
// @Success 200 {object} models.Cart
// @Failure 400 {string} string "Insufficient stock"
// @Failure 404 {string} string "Not found"
// @Router /carts/{id} [put]
func UpdateCartHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateCartRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	cart, err := cartRepo.UpdateCart(id, toItemInputs(req.Items))
	if err != nil {
		respondRepoError(w, err, "could not update cart")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// RemoveItemHandler godoc
// @Summary Remove a product line from a cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Cart
// @Failure 404 {string} string "Not found"
// @Router /carts/{id}/items/{productId} [delete]
func RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	productID := chi.URLParam(r, "productId")

	cart, err := cartRepo.RemoveItem(id, productID)
	if err != nil {
		respondRepoError(w, err, "could not remove item")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// ClearCartHandler godoc
// @Summary Remove every line from a cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Cart
// @Failure 404 {string} string "Not found"
// @Router /carts/{id}/clear [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cart, err := cartRepo.Clear(id)
	if err != nil {
		respondRepoError(w, err, "could not clear cart")
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// GetCartTotalHandler godoc
// @Summary Get the derived total and item count of a cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} repo.CartTotal
// @Failure 404 {string} string "Not found"
// @Router /carts/{id}/total [get]
func GetCartTotalHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	total, err := cartRepo.Total(id)
	if err != nil {
		respondRepoError(w, err, "could not compute cart total")
		return
	}
	writeJSON(w, http.StatusOK, total)
}

// CheckoutHandler godoc
// @Summary Check out a cart
// @Description Validates every line against live stock before decrementing anything, then clears the cart; no order record is persisted
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} repo.CheckoutResult
// @Failure 400 {string} string "Empty cart or insufficient stock"
// @Failure 404 {string} string "Not found"
// @Router /carts/{id}/checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := cartRepo.Checkout(id)
	if err != nil {
		respondRepoError(w, err, "could not check out cart")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
