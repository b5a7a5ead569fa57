package cli

import (
	"fmt"

	"warehouse/internal/config"
	"warehouse/internal/registry"
	"warehouse/internal/seed"
	"warehouse/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// openInventory loads configuration, seeds a fresh registry and wraps it in
// the inventory service.
func openInventory(cmd *cobra.Command, opts *options) (service.InventoryService, zerolog.Logger, error) {
	cfg, err := config.Load(
		config.WithSeedSource(opts.seedSource),
		config.WithSeedFile(opts.seedFile),
	)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, cmd.ErrOrStderr())
	ctx := cmd.Context()

	src, err := seed.Open(ctx, cfg, logger)
	if err != nil {
		return nil, logger, fmt.Errorf("failed to open seed source: %w", err)
	}
	defer src.Close()

	products, err := src.Load(ctx)
	if err != nil {
		return nil, logger, fmt.Errorf("failed to load seed catalogue: %w", err)
	}

	store := registry.New()
	if _, err := seed.Apply(ctx, store, products, logger); err != nil {
		return nil, logger, err
	}

	logger.Info().
		Str("seed_source", src.Kind).
		Int("products", store.Len()).
		Msg("inventory ready")

	return service.NewInventoryService(store, logger), logger, nil
}
