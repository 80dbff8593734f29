package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromFile(t *testing.T) {
	db := newTestDatabase(t)

	seedPath := filepath.Join(t.TempDir(), "seed.json")
	seed := `{
		"listings": [
			{"title": "Calc Textbook", "price": 40, "category": "Textbooks"},
			{"title": "Physics Textbook", "price": 60, "category": "Textbooks"}
		],
		"category_configs": [
			{"name": "Textbooks", "retention_rate": 0.7, "avg_depreciation_per_month": 0.02, "is_active": true}
		]
	}`
	require.NoError(t, os.WriteFile(seedPath, []byte(seed), 0o644))

	count, err := db.SeedFromFile(seedPath)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	listings, err := db.FindListingsByCategory("Textbooks")
	require.NoError(t, err)
	assert.Len(t, listings, 2)

	config, err := db.FindCategoryConfig("Textbooks")
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, 0.02, config.AvgDepreciationPerMonth)
}

func TestSeedFromFile_MissingFile(t *testing.T) {
	db := newTestDatabase(t)

	_, err := db.SeedFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
