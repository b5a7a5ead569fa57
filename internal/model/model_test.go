package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_TotalValue(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected float64
	}{
		{
			name:     "Apples",
			product:  Product{Name: "Apples", PricePerKg: 2.5, QuantityKg: 100},
			expected: 250,
		},
		{
			name:     "Zero quantity",
			product:  Product{Name: "Pears", PricePerKg: 4, QuantityKg: 0},
			expected: 0,
		},
		{
			name:     "Zero price",
			product:  Product{Name: "Samples", PricePerKg: 0, QuantityKg: 12},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.product.TotalValue(), 1e-9)
		})
	}
}

func TestProduct_String(t *testing.T) {
	p := Product{Name: "Bananas", PricePerKg: 1.8, QuantityKg: 150}
	assert.Equal(t, "Product: Bananas, Price per Kg: 1.80, Quantity: 150.00 kg", p.String())
}

func TestDomainError_Is(t *testing.T) {
	detailed := NewDomainError(ErrCodeProductNotFound, `product "Kiwis" not found`)

	assert.True(t, errors.Is(detailed, ErrProductNotFound))
	assert.False(t, errors.Is(detailed, ErrDuplicateProduct))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", detailed), ErrProductNotFound))
	assert.Equal(t, `product "Kiwis" not found`, detailed.Error())
}

func TestIsSoft(t *testing.T) {
	assert.True(t, IsSoft(ErrInsufficientQuantity))
	assert.True(t, IsSoft(NewDomainError(ErrCodeInsufficientQuantity, "only 3.00 kg left")))
	assert.False(t, IsSoft(ErrInvalidArgument))
	assert.False(t, IsSoft(nil))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeDuplicateProduct, CodeOf(ErrDuplicateProduct))
	assert.Equal(t, ErrCodeInvalidArgument, CodeOf(fmt.Errorf("seed: %w", ErrInvalidArgument)))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}
