package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmarket/server/internal/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertListings_AssignsIDs(t *testing.T) {
	db := newTestDatabase(t)

	listings := []models.Listing{
		{Title: "Calc Textbook", Price: 40, Category: "Textbooks"},
		{ID: "fixed-id", Title: "Physics Textbook", Price: 60, Category: "Textbooks"},
	}
	require.NoError(t, db.InsertListings(listings))

	found, err := db.FindListingsByCategory("Textbooks")
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, listing := range found {
		assert.NotEmpty(t, listing.ID)
	}

	fixed, err := db.FindListingByID("fixed-id")
	require.NoError(t, err)
	require.NotNil(t, fixed)
	assert.Equal(t, "Physics Textbook", fixed.Title)
}

func TestFindListingsByCategory_SortedByPriceAscending(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(t, db.InsertListings([]models.Listing{
		{Title: "Desk", Price: 150, Category: "Furniture"},
		{Title: "Chair", Price: 40, Category: "Furniture"},
		{Title: "Shelf", Price: 90, Category: "Furniture"},
		{Title: "Laptop", Price: 700, Category: "Electronics"},
	}))

	found, err := db.FindListingsByCategory("Furniture")
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, 40.0, found[0].Price)
	assert.Equal(t, 90.0, found[1].Price)
	assert.Equal(t, 150.0, found[2].Price)
}

func TestFindSimilarListings_TokenMatching(t *testing.T) {
	db := newTestDatabase(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.InsertListings([]models.Listing{
		{Title: "MacBook Air 2022", Price: 800, Category: "Electronics", CreatedAt: base},
		{Title: "Gaming monitor", Description: "Pairs well with a macbook", Price: 150, Category: "Electronics", CreatedAt: base.Add(time.Hour)},
		{Title: "Projector", Price: 120, Category: "Electronics", CreatedAt: base.Add(2 * time.Hour)},
		{Title: "MacBook stand", Price: 30, Category: "Furniture", CreatedAt: base.Add(3 * time.Hour)},
	}))

	// Title match is case-insensitive and the description counts too; the
	// other category never leaks in.
	found, err := db.FindSimilarListings("Electronics", []string{"macbook", "air"}, 10)
	require.NoError(t, err)
	require.Len(t, found, 2)

	// Newest first.
	assert.Equal(t, "Gaming monitor", found[0].Title)
	assert.Equal(t, "MacBook Air 2022", found[1].Title)
}

func TestFindSimilarListings_LimitApplies(t *testing.T) {
	db := newTestDatabase(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var listings []models.Listing
	for i := 0; i < 15; i++ {
		listings = append(listings, models.Listing{
			Title:     "Dell monitor",
			Price:     float64(100 + i),
			Category:  "Electronics",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	require.NoError(t, db.InsertListings(listings))

	found, err := db.FindSimilarListings("Electronics", []string{"dell"}, 10)
	require.NoError(t, err)
	assert.Len(t, found, 10)
}

func TestFindListingByID_NilWhenAbsent(t *testing.T) {
	db := newTestDatabase(t)

	listing, err := db.FindListingByID("nope")
	require.NoError(t, err)
	assert.Nil(t, listing)
}

func TestDistinctCategories(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(t, db.InsertListings([]models.Listing{
		{Title: "Desk", Price: 150, Category: "Furniture"},
		{Title: "Chair", Price: 40, Category: "Furniture"},
		{Title: "Laptop", Price: 700, Category: "Electronics"},
	}))

	categories, err := db.DistinctCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Furniture"}, categories)
}

func TestFindCategoryConfig_ActiveOnly(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(t, db.UpsertCategoryConfig(models.CategoryConfig{
		Name:                    "Electronics",
		SeasonalMultiplier:      map[string]float64{"Fall": 1.0, "Spring": 0.95, "Summer": 0.9},
		RetentionRate:           0.4,
		AvgDepreciationPerMonth: 0.05,
		IsActive:                true,
	}))
	require.NoError(t, db.UpsertCategoryConfig(models.CategoryConfig{
		Name:     "Clothing",
		IsActive: false,
	}))

	config, err := db.FindCategoryConfig("Electronics")
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, 0.05, config.AvgDepreciationPerMonth)
	assert.Equal(t, 0.95, config.SeasonalMultiplier["Spring"])

	// Inactive configs are invisible.
	config, err = db.FindCategoryConfig("Clothing")
	require.NoError(t, err)
	assert.Nil(t, config)

	config, err = db.FindCategoryConfig("Unknown")
	require.NoError(t, err)
	assert.Nil(t, config)
}
