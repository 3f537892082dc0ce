package models

import "time"

// CartItem is one product line in a cart. Price and Name are a snapshot
// taken when the line was first added; later catalog changes do not
// refresh them.
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
}

// Cart holds a user's pending order lines. Totals are derived, never stored.
type Cart struct {
	ID        string     `json:"id"`
	UserID    *string    `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Total is the sum of price × quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems is the sum of line quantities.
func (c Cart) TotalItems() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
