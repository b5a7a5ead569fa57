package service

import (
	"context"

	"warehouse/internal/model"

	"github.com/rs/zerolog"
)

// inventoryService implements InventoryService.
type inventoryService struct {
	store  Store
	logger zerolog.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(store Store, logger zerolog.Logger) InventoryService {
	return &inventoryService{
		store:  store,
		logger: logger.With().Str("service", "inventory").Logger(),
	}
}

// ListAll returns every product in insertion order.
func (s *inventoryService) ListAll(ctx context.Context) []model.Product {
	products := s.store.ListAll()

	s.logger.Debug().Int("count", len(products)).Msg("listed products")

	return products
}

// Find looks a product up by case-insensitive name.
func (s *inventoryService) Find(ctx context.Context, name string) (model.Product, error) {
	product, err := s.store.FindByName(name)
	if err != nil {
		s.logger.Debug().Str("product", name).Msg("product not found")
		return model.Product{}, err
	}

	return product, nil
}

// Create adds a new product.
func (s *inventoryService) Create(ctx context.Context, name string, pricePerKg, quantityKg float64) (model.Product, error) {
	product, err := s.store.Create(name, pricePerKg, quantityKg)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("product", name).
			Float64("price_per_kg", pricePerKg).
			Float64("quantity_kg", quantityKg).
			Str("code", model.CodeOf(err)).
			Msg("failed to create product")
		return model.Product{}, err
	}

	s.logger.Info().
		Str("product", product.Name).
		Float64("price_per_kg", product.PricePerKg).
		Float64("quantity_kg", product.QuantityKg).
		Int("count", s.store.Len()).
		Msg("product created")

	return product, nil
}

// AddQuantity increases a product's stock.
func (s *inventoryService) AddQuantity(ctx context.Context, name string, quantityKg float64) (model.Product, error) {
	product, err := s.store.AddQuantity(name, quantityKg)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("product", name).
			Float64("amount_kg", quantityKg).
			Str("code", model.CodeOf(err)).
			Msg("failed to add quantity")
		return model.Product{}, err
	}

	s.logger.Info().
		Str("product", product.Name).
		Float64("amount_kg", quantityKg).
		Float64("quantity_kg", product.QuantityKg).
		Msg("quantity added")

	return product, nil
}

// RemoveQuantity decreases a product's stock.
func (s *inventoryService) RemoveQuantity(ctx context.Context, name string, quantityKg float64) (model.Product, error) {
	product, err := s.store.RemoveQuantity(name, quantityKg)
	if err != nil {
		if model.IsSoft(err) {
			s.logger.Info().
				Str("product", product.Name).
				Float64("amount_kg", quantityKg).
				Float64("quantity_kg", product.QuantityKg).
				Msg("removal declined, not enough quantity")
			return product, err
		}

		s.logger.Warn().Err(err).
			Str("product", name).
			Float64("amount_kg", quantityKg).
			Str("code", model.CodeOf(err)).
			Msg("failed to remove quantity")
		return model.Product{}, err
	}

	s.logger.Info().
		Str("product", product.Name).
		Float64("amount_kg", quantityKg).
		Float64("quantity_kg", product.QuantityKg).
		Msg("quantity removed")

	return product, nil
}

// SetPrice updates a product's price per kilogram.
func (s *inventoryService) SetPrice(ctx context.Context, name string, pricePerKg float64) (model.Product, error) {
	product, err := s.store.SetPrice(name, pricePerKg)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("product", name).
			Float64("price_per_kg", pricePerKg).
			Str("code", model.CodeOf(err)).
			Msg("failed to update price")
		return model.Product{}, err
	}

	s.logger.Info().
		Str("product", product.Name).
		Float64("price_per_kg", product.PricePerKg).
		Msg("price updated")

	return product, nil
}

// Remove deletes a product.
func (s *inventoryService) Remove(ctx context.Context, name string) error {
	if err := s.store.Remove(name); err != nil {
		s.logger.Warn().Err(err).
			Str("product", name).
			Str("code", model.CodeOf(err)).
			Msg("failed to remove product")
		return err
	}

	s.logger.Info().
		Str("product", name).
		Int("count", s.store.Len()).
		Msg("product removed")

	return nil
}

// TotalValue returns the value of all stock.
func (s *inventoryService) TotalValue(ctx context.Context) float64 {
	total := s.store.TotalValue()

	s.logger.Debug().Float64("total_value", total).Msg("calculated total value")

	return total
}
