package seed

import (
	"context"
	"fmt"

	"warehouse/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresLoader implements Loader by reading a catalogue table. It never
// writes: the registry is not persisted.
type postgresLoader struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresLoader creates a seed loader that reads from PostgreSQL. The
// table must have name, price_per_kg, quantity_kg and position columns.
func NewPostgresLoader(pool *pgxpool.Pool, logger zerolog.Logger) Loader {
	return &postgresLoader{
		pool:   pool,
		logger: logger.With().Str("component", "seed-postgres-loader").Logger(),
	}
}

// Load reads every row of table in catalogue order.
func (l *postgresLoader) Load(ctx context.Context, table string) ([]model.Product, error) {
	ident := pgx.Identifier{table}.Sanitize()

	query := fmt.Sprintf(`
		SELECT name, price_per_kg::float8, quantity_kg::float8
		FROM %s
		ORDER BY position, name
	`, ident)

	l.logger.Info().Str("table", table).Msg("loading seed catalogue from database")

	rows, err := l.pool.Query(ctx, query)
	if err != nil {
		l.logger.Error().Err(err).Str("table", table).Msg("failed to query seed catalogue")
		return nil, fmt.Errorf("failed to query seed catalogue: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.Name, &p.PricePerKg, &p.QuantityKg); err != nil {
			l.logger.Error().Err(err).Msg("failed to scan seed row")
			return nil, fmt.Errorf("failed to scan seed row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		l.logger.Error().Err(err).Msg("error iterating seed rows")
		return nil, fmt.Errorf("error iterating seed rows: %w", err)
	}

	l.logger.Info().
		Str("table", table).
		Int("products_loaded", len(products)).
		Msg("seed catalogue loaded successfully from database")

	return products, nil
}
