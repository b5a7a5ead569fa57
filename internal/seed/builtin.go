package seed

import (
	"context"

	"warehouse/internal/model"
)

// SampleProducts is the stock a fresh warehouse starts with when no other
// seed source is configured.
func SampleProducts() []model.Product {
	return []model.Product{
		{Name: "Apples", PricePerKg: 2.5, QuantityKg: 100},
		{Name: "Bananas", PricePerKg: 1.8, QuantityKg: 150},
		{Name: "Oranges", PricePerKg: 3.0, QuantityKg: 80},
	}
}

type builtinLoader struct{}

// NewBuiltinLoader returns a Loader that ignores its source and yields
// SampleProducts.
func NewBuiltinLoader() Loader {
	return builtinLoader{}
}

func (builtinLoader) Load(ctx context.Context, _ string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SampleProducts(), nil
}

type emptyLoader struct{}

func (emptyLoader) Load(ctx context.Context, _ string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []model.Product{}, nil
}
