package seed

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"warehouse/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `products:
  - name: Apples
    price_per_kg: 2.5
    quantity_kg: 100
  - name: "  Bananas "
    price_per_kg: 1.8
    quantity_kg: 150
  - name: Oranges
    price_per_kg: 3
    quantity_kg: 80
`

// createSeedFile writes content to a temporary file, gzipping it if the name
// ends in .gz.
func createSeedFile(t *testing.T, filename, content string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), filename)

	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()

	if filepath.Ext(filename) == ".gz" {
		gzipWriter := gzip.NewWriter(file)
		_, err = gzipWriter.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, gzipWriter.Close())
		return filePath
	}

	_, err = file.WriteString(content)
	require.NoError(t, err)
	return filePath
}

func TestFileLoader_Load(t *testing.T) {
	expected := SampleProducts()

	tests := []struct {
		name     string
		filename string
	}{
		{name: "Plain YAML", filename: "products.yaml"},
		{name: "Gzipped YAML", filename: "products.yaml.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFileLoader(zerolog.Nop())
			filePath := createSeedFile(t, tt.filename, sampleYAML)

			products, err := loader.Load(context.Background(), filePath)

			require.NoError(t, err)
			assert.Equal(t, expected, products)
		})
	}
}

func TestFileLoader_Load_EmptyFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createSeedFile(t, "empty.yaml", "")

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFileLoader_Load_NoProductsKey(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createSeedFile(t, "other.yaml", "warehouse: main\n")

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	assert.Equal(t, []model.Product{}, products)
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	products, err := loader.Load(context.Background(), "/nonexistent/path/products.yaml")

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to open seed file")
}

func TestFileLoader_Load_InvalidGzip(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := filepath.Join(t.TempDir(), "invalid.yaml.gz")
	require.NoError(t, os.WriteFile(filePath, []byte("not a gzip file"), 0644))

	products, err := loader.Load(context.Background(), filePath)

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to create gzip reader")
}

func TestFileLoader_Load_InvalidYAML(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createSeedFile(t, "broken.yaml", "products:\n  - name: Apples\n    price_per_kg: cheap\n")

	products, err := loader.Load(context.Background(), filePath)

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to parse catalogue")
}

func TestFileLoader_Load_ContextCancellation(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createSeedFile(t, "products.yaml", sampleYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	products, err := loader.Load(ctx, filePath)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, products)
}
