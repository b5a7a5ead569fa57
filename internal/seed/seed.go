// Package seed loads the starting catalogue of a warehouse session and feeds
// it into a product registry.
package seed

import (
	"context"
	"fmt"

	"warehouse/internal/model"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading a seed catalogue.
type Loader interface {
	// Load reads the catalogue identified by source. The meaning of source
	// depends on the loader: a file path, an S3 key or a table name.
	Load(ctx context.Context, source string) ([]model.Product, error)
}

// Creator is the part of the registry that seeding needs.
type Creator interface {
	Create(name string, pricePerKg, quantityKg float64) (model.Product, error)
}

// Catalogue is the YAML document shape shared by file and S3 seeds.
//
//	products:
//	  - name: Apples
//	    price_per_kg: 2.5
//	    quantity_kg: 100
type Catalogue struct {
	Products []model.Product `yaml:"products"`
}

// Apply creates every product in order through the registry's own validation.
// The first rejected entry stops seeding and is reported with its position.
func Apply(ctx context.Context, store Creator, products []model.Product, logger zerolog.Logger) (int, error) {
	logger = logger.With().Str("component", "seed").Logger()

	for i, p := range products {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		if _, err := store.Create(p.Name, p.PricePerKg, p.QuantityKg); err != nil {
			logger.Error().Err(err).
				Int("entry", i).
				Str("product", p.Name).
				Msg("failed to seed product")
			return i, fmt.Errorf("failed to seed entry %d (%s): %w", i, p.Name, err)
		}
	}

	logger.Info().Int("count", len(products)).Msg("seed catalogue applied")

	return len(products), nil
}
