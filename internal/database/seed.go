package database

import (
	"encoding/json"
	"fmt"
	"os"

	"campusmarket/server/internal/models"
)

type seedFile struct {
	Listings        []models.Listing        `json:"listings"`
	CategoryConfigs []models.CategoryConfig `json:"category_configs"`
}

// SeedFromFile loads listings and category configs from a JSON fixture file.
// Used for local development and demos; the engine itself never writes.
func (d *Database) SeedFromFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := d.InsertListings(seed.Listings); err != nil {
		return 0, err
	}
	for _, config := range seed.CategoryConfigs {
		if err := d.UpsertCategoryConfig(config); err != nil {
			return 0, err
		}
	}

	return len(seed.Listings), nil
}
