package handlers

type ProductRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	CategoryID *string `json:"categoryId"`
}

// ProductUpdateRequest carries optional fields; absent fields keep their
// current values.
type ProductUpdateRequest struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Stock      *int     `json:"stock"`
	CategoryID *string  `json:"categoryId"`
}

type ProductResponse struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	CategoryID *string `json:"categoryId"`
	OutOfStock bool    `json:"out_of_stock,omitempty"`
}

type CategoryRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ParentID    *string  `json:"parentId"`
	ProductIDs  []string `json:"productIds"`
}

type CategoryUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	ParentID    *string   `json:"parentId"`
	ProductIDs  *[]string `json:"productIds"`
}

type CartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateCartRequest struct {
	UserID *string           `json:"userId"`
	Items  []CartItemRequest `json:"items"`
}

// AddItemRequest defaults quantity to 1 when omitted.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type UpdateItemRequest struct {
	Quantity *int `json:"quantity"`
}

type UpdateCartRequest struct {
	Items []CartItemRequest `json:"items"`
}

type ImportProductsResult struct {
	ImportedProductsCount int               `json:"imported"`
	Errors                []ValidationError `json:"errors"`
}
