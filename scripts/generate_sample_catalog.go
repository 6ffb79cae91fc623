package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"shopzone/internal/seed"
)

// generateSampleCatalog writes the built-in seed catalogue to a JSON
// file usable with SEED_FILE, as a starting point for a custom
// catalogue.
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalog := seed.Default()

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal catalogue: %v", err)
	}

	filePath := filepath.Join(dataDir, "catalog.json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d categories and %d products\n",
		filePath, len(catalog.Categories), len(catalog.Products))
	fmt.Println("\nRun the server against it with:")
	fmt.Printf("  SEED_FILE=%s ./api\n", filePath)
}
