package seed

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"warehouse/internal/model"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// fileLoader implements Loader for YAML catalogues on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader. Paths ending in .gz are
// gunzipped before parsing.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-file-loader").Logger(),
	}
}

// Load reads a YAML catalogue from filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := decodeCatalogue(ctx, file, strings.HasSuffix(filePath, ".gz"))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed file")
		return nil, fmt.Errorf("failed to read seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("seed file loaded successfully")

	return products, nil
}

// decodeCatalogue parses a YAML catalogue, gunzipping it first if asked.
func decodeCatalogue(ctx context.Context, r io.Reader, gzipped bool) ([]model.Product, error) {
	if gzipped {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var catalogue Catalogue
	if err := yaml.NewDecoder(r).Decode(&catalogue); err != nil {
		if err == io.EOF {
			return []model.Product{}, nil
		}
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}

	products := make([]model.Product, 0, len(catalogue.Products))
	for _, p := range catalogue.Products {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p.Name = strings.TrimSpace(p.Name)
		products = append(products, p)
	}

	return products, nil
}
