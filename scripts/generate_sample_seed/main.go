package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"warehouse/internal/seed"

	"gopkg.in/yaml.v3"
)

// generateSampleSeed writes the sample catalogue twice: as plain YAML and
// gzipped, so both file seed paths can be tried by hand.
//
//	SEED_SOURCE=file SEED_FILE=data/seed/products.yaml.gz go run ./cmd/warehouse
func main() {
	dataDir := "data/seed"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalogue := seed.Catalogue{Products: seed.SampleProducts()}

	for _, name := range []string{"products.yaml", "products.yaml.gz"} {
		path := filepath.Join(dataDir, name)

		if err := writeCatalogue(path, catalogue); err != nil {
			log.Fatalf("Failed to create %s: %v", path, err)
		}

		fmt.Printf("Created %s with %d products\n", path, len(catalogue.Products))
	}
}

func writeCatalogue(path string, catalogue seed.Catalogue) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if filepath.Ext(path) != ".gz" {
		return yaml.NewEncoder(file).Encode(catalogue)
	}

	gzipWriter := gzip.NewWriter(file)
	if err := yaml.NewEncoder(gzipWriter).Encode(catalogue); err != nil {
		gzipWriter.Close()
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}

	return gzipWriter.Close()
}
