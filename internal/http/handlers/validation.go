package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Stock < 0 {
		errs = append(errs, ValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}

func validateProductUpdate(p ProductUpdateRequest) []ValidationError {
	errs := []ValidationError{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name cannot be empty"})
	}
	if p.Price != nil && *p.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Stock != nil && *p.Stock < 0 {
		errs = append(errs, ValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}

func validateCategory(c CategoryRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, ValidationError{Field: "Description", Description: "Description is required"})
	}
	return errs
}

func validateCartItems(items []CartItemRequest) []ValidationError {
	errs := []ValidationError{}
	for _, item := range items {
		if strings.TrimSpace(item.ProductID) == "" {
			errs = append(errs, ValidationError{Field: "ProductId", Description: "Product ID is required"})
		}
		if item.Quantity < 1 {
			errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be at least one"})
		}
	}
	return errs
}
