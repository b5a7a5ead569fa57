package model

import "fmt"

// Product represents a product in the warehouse, priced and stocked by weight.
type Product struct {
	Name       string  `json:"name" yaml:"name" db:"name"`
	PricePerKg float64 `json:"pricePerKg" yaml:"price_per_kg" db:"price_per_kg"`
	QuantityKg float64 `json:"quantityKg" yaml:"quantity_kg" db:"quantity_kg"`
}

// TotalValue returns the value of the stock on hand.
func (p Product) TotalValue() float64 {
	return p.PricePerKg * p.QuantityKg
}

// String formats the product the way it is printed in listings.
func (p Product) String() string {
	return fmt.Sprintf("Product: %s, Price per Kg: %.2f, Quantity: %.2f kg", p.Name, p.PricePerKg, p.QuantityKg)
}
