package main

import (
	"context"
	"fmt"
	"os"

	"warehouse/internal/config"
	"warehouse/internal/seed"

	"github.com/jackc/pgx/v5"
)

// Creates the seed catalogue table read by SEED_SOURCE=postgres and fills it
// with the sample products. Connection settings come from the DB_* variables.
func main() {
	cfg, err := config.Load(config.WithSeedSource(config.SeedSourcePostgres))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	table := pgx.Identifier{cfg.Database.SeedTable}.Sanitize()

	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			position INT NOT NULL,
			name TEXT NOT NULL,
			price_per_kg NUMERIC(10,2) NOT NULL,
			quantity_kg NUMERIC(12,3) NOT NULL
		)
	`, table)
	if _, err := conn.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "Create table failed: %v\n", err)
		os.Exit(1)
	}

	if _, err := conn.Exec(ctx, fmt.Sprintf("TRUNCATE %s", table)); err != nil {
		fmt.Fprintf(os.Stderr, "Truncate failed: %v\n", err)
		os.Exit(1)
	}

	batch := &pgx.Batch{}
	insert := fmt.Sprintf("INSERT INTO %s (position, name, price_per_kg, quantity_kg) VALUES ($1, $2, $3, $4)", table)
	for i, p := range seed.SampleProducts() {
		batch.Queue(insert, i+1, p.Name, p.PricePerKg, p.QuantityKg)
	}

	if err := conn.SendBatch(ctx, batch).Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Insert failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %s in database %s with %d products\n",
		cfg.Database.SeedTable, cfg.Database.Database, batch.Len())
}
