package models

// Product represents a catalog item. CategoryID is nil for uncategorized
// products and must match the owning category's ProductIDs list.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	CategoryID *string `json:"categoryId"`
}
