// Package registry holds the in-memory product registry: the validated store
// that owns every Product in a warehouse session.
package registry

import (
	"fmt"
	"math"
	"strings"

	"warehouse/internal/model"
)

// ProductRegistry is an ordered, in-memory collection of products keyed by
// case-insensitive name. Every mutation validates its input before touching
// state, so a failed call never leaves a partial change behind.
//
// A ProductRegistry is not safe for concurrent use.
type ProductRegistry struct {
	products []model.Product
}

// New creates an empty product registry.
func New() *ProductRegistry {
	return &ProductRegistry{}
}

// Create adds a new product and returns a copy of it.
func (r *ProductRegistry) Create(name string, pricePerKg, quantityKg float64) (model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return model.Product{}, model.NewDomainError(model.ErrCodeInvalidArgument, "Product name must not be empty")
	}
	if r.indexOf(name) >= 0 {
		return model.Product{}, model.NewDomainError(model.ErrCodeDuplicateProduct,
			fmt.Sprintf("Product %s already exists", name))
	}
	if !valid(pricePerKg) || !valid(quantityKg) {
		return model.Product{}, model.ErrInvalidArgument
	}

	p := model.Product{Name: name, PricePerKg: pricePerKg, QuantityKg: quantityKg}
	r.products = append(r.products, p)
	return p, nil
}

// FindByName returns a copy of the product whose name matches ignoring case.
func (r *ProductRegistry) FindByName(name string) (model.Product, error) {
	i := r.indexOf(name)
	if i < 0 {
		return model.Product{}, notFound(name)
	}
	return r.products[i], nil
}

// AddQuantity increases the stock of a product. There is no upper bound.
func (r *ProductRegistry) AddQuantity(name string, amount float64) (model.Product, error) {
	i := r.indexOf(name)
	if i < 0 {
		return model.Product{}, notFound(name)
	}
	if !valid(amount) {
		return model.Product{}, model.NewDomainError(model.ErrCodeInvalidArgument, "Quantity to add must be non-negative")
	}

	r.products[i].QuantityKg += amount
	return r.products[i], nil
}

// RemoveQuantity decreases the stock of a product. Removing more than is on
// hand is declined: the product is returned unchanged together with
// model.ErrInsufficientQuantity, which model.IsSoft recognises.
func (r *ProductRegistry) RemoveQuantity(name string, amount float64) (model.Product, error) {
	i := r.indexOf(name)
	if i < 0 {
		return model.Product{}, notFound(name)
	}
	if !valid(amount) {
		return model.Product{}, model.NewDomainError(model.ErrCodeInvalidArgument, "Quantity to remove must be non-negative")
	}
	if amount > r.products[i].QuantityKg {
		return r.products[i], model.ErrInsufficientQuantity
	}

	r.products[i].QuantityKg -= amount
	return r.products[i], nil
}

// SetPrice overwrites the price per kilogram of a product.
func (r *ProductRegistry) SetPrice(name string, newPrice float64) (model.Product, error) {
	i := r.indexOf(name)
	if i < 0 {
		return model.Product{}, notFound(name)
	}
	if !valid(newPrice) {
		return model.Product{}, model.NewDomainError(model.ErrCodeInvalidArgument, "Price per Kg must be non-negative")
	}

	r.products[i].PricePerKg = newPrice
	return r.products[i], nil
}

// Remove deletes a product, keeping the order of the others.
func (r *ProductRegistry) Remove(name string) error {
	i := r.indexOf(name)
	if i < 0 {
		return notFound(name)
	}

	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// TotalValue sums price times quantity over all products.
func (r *ProductRegistry) TotalValue() float64 {
	total := 0.0
	for _, p := range r.products {
		total += p.TotalValue()
	}
	return total
}

// ListAll returns a snapshot of all products in insertion order.
func (r *ProductRegistry) ListAll() []model.Product {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Len returns the number of products.
func (r *ProductRegistry) Len() int {
	return len(r.products)
}

func (r *ProductRegistry) indexOf(name string) int {
	for i, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

// valid rejects negative numbers, and NaN/Inf which slip past a plain < 0 check.
func valid(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func notFound(name string) error {
	return model.NewDomainError(model.ErrCodeProductNotFound, fmt.Sprintf("Product %s not found", name))
}
