package seed

import (
	"context"

	"warehouse/internal/model"

	"github.com/rs/zerolog"
)

// fallbackLoader tries a primary loader, then falls back to a secondary one.
type fallbackLoader struct {
	primary   Loader
	secondary Loader
	logger    zerolog.Logger
}

// NewFallbackLoader creates a loader that tries primary first and, on any
// error, loads the same source from secondary. A nil primary goes straight to
// the secondary.
func NewFallbackLoader(primary, secondary Loader, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "seed-fallback-loader").Logger(),
	}
}

// Load attempts the primary loader, then the secondary.
func (l *fallbackLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	if l.primary != nil {
		products, err := l.primary.Load(ctx, source)
		if err == nil {
			return products, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		l.logger.Warn().
			Err(err).
			Str("source", source).
			Msg("failed to load seed catalogue, falling back")
	} else {
		l.logger.Debug().Msg("primary seed loader not configured, using fallback")
	}

	return l.secondary.Load(ctx, source)
}
