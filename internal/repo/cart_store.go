package repo

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/storage"
)

// StoreCartRepository is a CollectionStore-backed implementation of
// CartRepository. It reads and writes the products collection directly for
// stock checks and the checkout decrement.
type StoreCartRepository struct {
	store storage.CollectionStore
	mu    *sync.Mutex
}

// NewStoreCartRepository creates a cart repository over store, sharing mu
// with the other store-backed repositories.
func NewStoreCartRepository(store storage.CollectionStore, mu *sync.Mutex) *StoreCartRepository {
	return &StoreCartRepository{store: store, mu: mu}
}

func (r *StoreCartRepository) GetAll() ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.store.Read(storage.CartsCollection, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *StoreCartRepository) GetByID(id string) (models.Cart, error) {
	carts, err := r.GetAll()
	if err != nil {
		return models.Cart{}, err
	}
	for _, c := range carts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Cart{}, ErrCartNotFound
}

func (r *StoreCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	carts, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for _, c := range carts {
		if c.UserID != nil && *c.UserID == userID {
			return &c, nil
		}
	}
	return nil, nil
}

// Create allocates a new cart. Supplied items go through the same
// resolve/validate/merge path as AddItem but within a single write: a stock
// or lookup failure on any entry means the cart is never persisted.
func (r *StoreCartRepository) Create(userID *string, items []CartItemInput) (models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var carts []models.Cart
	if err := r.store.Read(storage.CartsCollection, &carts); err != nil {
		return models.Cart{}, err
	}

	now := time.Now().UTC()
	cart := models.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if len(items) > 0 {
		var products []models.Product
		if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
			return models.Cart{}, err
		}
		for _, item := range items {
			product, ok := findProduct(products, item.ProductID)
			if !ok {
				return models.Cart{}, ErrProductNotFound
			}
			if product.Stock < item.Quantity {
				return models.Cart{}, &InsufficientStockError{Available: product.Stock}
			}
			mergeItem(&cart, product, item.Quantity)
		}
	}

	carts = append(carts, cart)
	if err := r.store.Write(storage.CartsCollection, carts); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// AddItem validates quantity against live stock and merges the line into
// the cart. An existing line keeps its original price/name snapshot; stock
// itself is untouched until checkout.
func (r *StoreCartRepository) AddItem(cartID, productID string, quantity int) (models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return models.Cart{}, err
	}
	product, ok := findProduct(products, productID)
	if !ok {
		return models.Cart{}, ErrProductNotFound
	}
	if product.Stock < quantity {
		return models.Cart{}, &InsufficientStockError{Available: product.Stock}
	}

	var carts []models.Cart
	if err := r.store.Read(storage.CartsCollection, &carts); err != nil {
		return models.Cart{}, err
	}
	index := findCart(carts, cartID)
	if index == -1 {
		return models.Cart{}, ErrCartNotFound
	}

	mergeItem(&carts[index], product, quantity)
	carts[index].UpdatedAt = time.Now().UTC()

	if err := r.store.Write(storage.CartsCollection, carts); err != nil {
		return models.Cart{}, err
	}
	return carts[index], nil
}

func (r *StoreCartRepository) AddItems(cartID string, items []CartItemInput) (models.Cart, error) {
	for _, item := range items {
		if _, err := r.AddItem(cartID, item.ProductID, item.Quantity); err != nil {
			// Entries applied before the failure stay persisted.
			return models.Cart{}, err
		}
	}
	return r.GetByID(cartID)
}

// UpdateItem overwrites a line's quantity, keeping its price/name snapshot.
// Quantity zero removes the line.
func (r *StoreCartRepository) UpdateItem(cartID, productID string, quantity int) (models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var carts []models.Cart
	if err := r.store.Read(storage.CartsCollection, &carts); err != nil {
		return models.Cart{}, err
	}
	index := findCart(carts, cartID)
	if index == -1 {
		return models.Cart{}, ErrCartNotFound
	}

	itemIndex := -1
	for i, item := range carts[index].Items {
		if item.ProductID == productID {
			itemIndex = i
			break
		}
	}
	if itemIndex == -1 {
		return models.Cart{}, ErrItemNotFound
	}

	if quantity == 0 {
		carts[index].Items = append(carts[index].Items[:itemIndex], carts[index].Items[itemIndex+1:]...)
	} else {
		var products []models.Product
		if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
			return models.Cart{}, err
		}
		product, ok := findProduct(products, productID)
		if !ok {
			return models.Cart{}, ErrProductNotFound
		}
		if product.Stock < quantity {
			return models.Cart{}, &InsufficientStockError{Available: product.Stock}
		}
		carts[index].Items[itemIndex].Quantity = quantity
	}

	carts[index].UpdatedAt = time.Now().UTC()
	if err := r.store.Write(storage.CartsCollection, carts); err != nil {
		return models.Cart{}, err
	}
	return carts[index], nil
}

func (r *StoreCartRepository) UpdateCart(cartID string, items []CartItemInput) (models.Cart, error) {
	for _, item := range items {
		if _, err := r.UpdateItem(cartID, item.ProductID, item.Quantity); err != nil {
			return models.Cart{}, err
		}
	}
	return r.GetByID(cartID)
}

func (r *StoreCartRepository) RemoveItem(cartID, productID string) (models.Cart, error) {
	return r.UpdateItem(cartID, productID, 0)
}

func (r *StoreCartRepository) Clear(cartID string) (models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearLocked(cartID)
}

func (r *StoreCartRepository) clearLocked(cartID string) (models.Cart, error) {
	var carts []models.Cart
	if err := r.store.Read(storage.CartsCollection, &carts); err != nil {
		return models.Cart{}, err
	}
	index := findCart(carts, cartID)
	if index == -1 {
		return models.Cart{}, ErrCartNotFound
	}

	carts[index].Items = []models.CartItem{}
	carts[index].UpdatedAt = time.Now().UTC()

	if err := r.store.Write(storage.CartsCollection, carts); err != nil {
		return models.Cart{}, err
	}
	return carts[index], nil
}

func (r *StoreCartRepository) Total(cartID string) (CartTotal, error) {
	cart, err := r.GetByID(cartID)
	if err != nil {
		return CartTotal{}, err
	}
	return CartTotal{Total: cart.Total(), TotalItems: cart.TotalItems()}, nil
}

// Checkout validates every line against live stock before touching
// anything, then decrements all stocks in one products write and clears the
// cart. A failure in the validation pass leaves stock and cart untouched.
func (r *StoreCartRepository) Checkout(cartID string) (CheckoutResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var carts []models.Cart
	if err := r.store.Read(storage.CartsCollection, &carts); err != nil {
		return CheckoutResult{}, err
	}
	index := findCart(carts, cartID)
	if index == -1 {
		return CheckoutResult{}, ErrCartNotFound
	}
	cart := carts[index]

	if len(cart.Items) == 0 {
		return CheckoutResult{}, ErrCartEmpty
	}

	var products []models.Product
	if err := r.store.Read(storage.ProductsCollection, &products); err != nil {
		return CheckoutResult{}, err
	}

	for _, item := range cart.Items {
		product, ok := findProduct(products, item.ProductID)
		if !ok {
			return CheckoutResult{}, &MissingProductError{ProductID: item.ProductID}
		}
		if product.Stock < item.Quantity {
			return CheckoutResult{}, &InsufficientStockError{
				ProductName: product.Name,
				Available:   product.Stock,
				Requested:   item.Quantity,
			}
		}
	}

	for _, item := range cart.Items {
		for i := range products {
			if products[i].ID == item.ProductID {
				products[i].Stock -= item.Quantity
				break
			}
		}
	}

	total := cart.Total()

	if err := r.store.Write(storage.ProductsCollection, products); err != nil {
		return CheckoutResult{}, err
	}
	if _, err := r.clearLocked(cartID); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{Success: true, OrderID: uuid.NewString(), Total: total}, nil
}

func findProduct(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func findCart(carts []models.Cart, id string) int {
	for i, c := range carts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// mergeItem increments an existing line for the product or appends a new
// one with a fresh price/name snapshot.
func mergeItem(cart *models.Cart, product models.Product, quantity int) {
	for i, item := range cart.Items {
		if item.ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			return
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
		Name:      product.Name,
	})
}
