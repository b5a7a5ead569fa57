package seed

import (
	"context"

	"warehouse/internal/config"
	"warehouse/internal/database"
	"warehouse/internal/model"

	"github.com/rs/zerolog"
)

// Source is a configured loader together with the reference it loads from.
type Source struct {
	Kind   string
	Ref    string
	Loader Loader
	closer func()
}

// Load loads the configured catalogue.
func (s *Source) Load(ctx context.Context) ([]model.Product, error) {
	return s.Loader.Load(ctx, s.Ref)
}

// Close releases anything the source opened, such as a database pool.
func (s *Source) Close() {
	if s.closer != nil {
		s.closer()
		s.closer = nil
	}
}

// Open builds the seed source selected by cfg. File, S3 and Postgres sources
// fall back to the sample stock if they cannot be initialised or read.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Source, error) {
	builtin := NewBuiltinLoader()

	switch cfg.Seed.Source {
	case config.SeedSourceNone:
		return &Source{Kind: cfg.Seed.Source, Loader: emptyLoader{}}, nil

	case config.SeedSourceFile:
		return &Source{
			Kind:   cfg.Seed.Source,
			Ref:    cfg.Seed.File,
			Loader: NewFallbackLoader(NewFileLoader(logger), builtin, logger),
		}, nil

	case config.SeedSourceS3:
		s3Loader, err := NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 seed loader, falling back to sample stock")
			s3Loader = nil
		}
		return &Source{
			Kind:   cfg.Seed.Source,
			Ref:    cfg.S3.Key,
			Loader: NewFallbackLoader(s3Loader, builtin, logger),
		}, nil

	case config.SeedSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to connect to seed database, falling back to sample stock")
			return &Source{
				Kind:   cfg.Seed.Source,
				Ref:    cfg.Database.SeedTable,
				Loader: NewFallbackLoader(nil, builtin, logger),
			}, nil
		}
		return &Source{
			Kind:   cfg.Seed.Source,
			Ref:    cfg.Database.SeedTable,
			Loader: NewFallbackLoader(NewPostgresLoader(pool, logger), builtin, logger),
			closer: pool.Close,
		}, nil

	default:
		return &Source{Kind: config.SeedSourceBuiltin, Loader: builtin}, nil
	}
}
