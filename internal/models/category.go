package models

// Category groups products. ProductIDs and each member product's CategoryID
// record the same relationship redundantly; every mutating operation keeps
// both sides in sync.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ParentID    *string  `json:"parentId"`
	ProductIDs  []string `json:"productIds"`
}

// HasProduct reports whether productID is in the membership list.
func (c Category) HasProduct(productID string) bool {
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
