package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"warehouse/internal/registry"
	"warehouse/internal/seed"
	"warehouse/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runShell runs a shell over the sample stock with the given input lines and
// returns the output together with the registry it worked on.
func runShell(t *testing.T, lines ...string) (string, *registry.ProductRegistry) {
	t.Helper()

	ctx := context.Background()
	r := registry.New()
	_, err := seed.Apply(ctx, r, seed.SampleProducts(), zerolog.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	sh := New(service.NewInventoryService(r, zerolog.Nop()), in, &out, zerolog.Nop())

	require.NoError(t, sh.Run(ctx))

	return out.String(), r
}

func TestShell_ListProducts(t *testing.T) {
	out, _ := runShell(t, "1", "8")

	assert.Contains(t, out, "Product: Apples, Price per Kg: 2.50, Quantity: 100.00 kg")
	assert.Contains(t, out, "Product: Bananas, Price per Kg: 1.80, Quantity: 150.00 kg")
	assert.Contains(t, out, "Product: Oranges, Price per Kg: 3.00, Quantity: 80.00 kg")
	assert.Less(t, strings.Index(out, "Apples"), strings.Index(out, "Oranges"))
	assert.Contains(t, out, "Exiting program.")
}

func TestShell_TotalValue(t *testing.T) {
	out, _ := runShell(t, "5", "8")

	assert.Contains(t, out, "Total value of all products: 760.00")
}

func TestShell_CreateProduct(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
		count    int
	}{
		{
			name:     "Success",
			input:    []string{"2", "Kiwis", "4.2", "10", "8"},
			expected: "Product added successfully.",
			count:    4,
		},
		{
			name:     "Duplicate is caught before numbers are asked",
			input:    []string{"2", "apples", "8"},
			expected: "Product already exists.",
			count:    3,
		},
		{
			name:     "Negative price",
			input:    []string{"2", "Kiwis", "-4", "10", "8"},
			expected: "Invalid input. Price and quantity must be non-negative.",
			count:    3,
		},
		{
			name:     "Malformed number is retried",
			input:    []string{"2", "Kiwis", "cheap", "4.2", "10", "8"},
			expected: "Invalid input. Please enter a valid price.",
			count:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, r := runShell(t, tt.input...)

			assert.Contains(t, out, tt.expected)
			assert.Equal(t, tt.count, r.Len())
		})
	}
}

func TestShell_AddQuantity(t *testing.T) {
	out, r := runShell(t, "3", "bananas", "25", "8")

	assert.Contains(t, out, "Added 25.00kg to Bananas")
	bananas, err := r.FindByName("Bananas")
	require.NoError(t, err)
	assert.InDelta(t, 175, bananas.QuantityKg, 1e-9)
}

func TestShell_RemoveQuantity(t *testing.T) {
	tests := []struct {
		name             string
		input            []string
		expected         string
		expectedQuantity float64
	}{
		{
			name:             "Success",
			input:            []string{"4", "Apples", "30", "8"},
			expected:         "Removed 30.00kg from Apples",
			expectedQuantity: 70,
		},
		{
			name:             "Over-removal is declined",
			input:            []string{"4", "Apples", "150", "8"},
			expected:         "Not enough quantity to remove.",
			expectedQuantity: 100,
		},
		{
			name:             "Negative amount",
			input:            []string{"4", "Apples", "-5", "8"},
			expected:         "Invalid input. Quantity to remove must be non-negative.",
			expectedQuantity: 100,
		},
		{
			name:             "Unknown product",
			input:            []string{"4", "Mangoes", "5", "8"},
			expected:         "Product not found.",
			expectedQuantity: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, r := runShell(t, tt.input...)

			assert.Contains(t, out, tt.expected)
			apples, err := r.FindByName("Apples")
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedQuantity, apples.QuantityKg, 1e-9)
		})
	}
}

func TestShell_RemoveProduct(t *testing.T) {
	out, r := runShell(t, "6", "Oranges", "5", "6", "Oranges", "8")

	assert.Contains(t, out, "Product Oranges has been removed.")
	assert.Contains(t, out, "Total value of all products: 520.00")
	assert.Contains(t, out, "Product not found.")
	assert.Equal(t, 2, r.Len())
}

func TestShell_SetPrice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		out, r := runShell(t, "7", "Bananas", "2", "8")

		assert.Contains(t, out, "Price for Bananas has been updated to 2.00 per kg.")
		bananas, err := r.FindByName("Bananas")
		require.NoError(t, err)
		assert.InDelta(t, 2, bananas.PricePerKg, 1e-9)
	})

	t.Run("Negative price keeps old price", func(t *testing.T) {
		out, r := runShell(t, "7", "Bananas", "-1", "8")

		assert.Contains(t, out, "Invalid input. Price per Kg must be non-negative.")
		bananas, err := r.FindByName("Bananas")
		require.NoError(t, err)
		assert.InDelta(t, 1.8, bananas.PricePerKg, 1e-9)
	})

	t.Run("Unknown product is reported before asking for a price", func(t *testing.T) {
		out, _ := runShell(t, "7", "Mangoes", "8")

		assert.Contains(t, out, "Product not found.")
		assert.NotContains(t, out, "Enter the new price per kilogram")
	})
}

func TestShell_InvalidMenuInput(t *testing.T) {
	out, _ := runShell(t, "abc", "42", "8")

	assert.Contains(t, out, "Invalid input. Please enter a number.")
	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Exiting program.")
}

func TestShell_EndOfInputExits(t *testing.T) {
	out, _ := runShell(t, "1")

	assert.Contains(t, out, "Exiting program.")
}

func TestShell_EndOfInputMidPrompt(t *testing.T) {
	out, r := runShell(t, "2", "Kiwis", "4")

	assert.Contains(t, out, "Exiting program.")
	assert.Equal(t, 3, r.Len())
}

func TestShell_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := New(service.NewInventoryService(registry.New(), zerolog.Nop()), strings.NewReader("1\n"), &out, zerolog.Nop())

	err := sh.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestShell_EmptyRegistryListing(t *testing.T) {
	var out bytes.Buffer
	sh := New(service.NewInventoryService(registry.New(), zerolog.Nop()), strings.NewReader("1\n8\n"), &out, zerolog.Nop())

	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out.String(), "No products in stock.")
}
