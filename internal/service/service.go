package service

import (
	"context"

	"warehouse/internal/model"
)

// Store is the product registry as seen by the service layer.
type Store interface {
	Create(name string, pricePerKg, quantityKg float64) (model.Product, error)
	FindByName(name string) (model.Product, error)
	AddQuantity(name string, amount float64) (model.Product, error)
	RemoveQuantity(name string, amount float64) (model.Product, error)
	SetPrice(name string, newPrice float64) (model.Product, error)
	Remove(name string) error
	TotalValue() float64
	ListAll() []model.Product
	Len() int
}

// InventoryService defines the commands the interactive shell issues against
// the warehouse stock.
type InventoryService interface {
	// ListAll returns every product in insertion order.
	ListAll(ctx context.Context) []model.Product

	// Find looks a product up by case-insensitive name.
	Find(ctx context.Context, name string) (model.Product, error)

	// Create adds a new product.
	Create(ctx context.Context, name string, pricePerKg, quantityKg float64) (model.Product, error)

	// AddQuantity increases a product's stock.
	AddQuantity(ctx context.Context, name string, quantityKg float64) (model.Product, error)

	// RemoveQuantity decreases a product's stock. Over-removal is reported with
	// model.ErrInsufficientQuantity and leaves the stock unchanged.
	RemoveQuantity(ctx context.Context, name string, quantityKg float64) (model.Product, error)

	// SetPrice updates a product's price per kilogram.
	SetPrice(ctx context.Context, name string, pricePerKg float64) (model.Product, error)

	// Remove deletes a product.
	Remove(ctx context.Context, name string) error

	// TotalValue returns the value of all stock.
	TotalValue(ctx context.Context) float64
}
