package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusmarket/server/internal/models"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{db: db}, nil
}

func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(&models.Listing{}, &models.CategoryConfig{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// FindListingsByCategory returns every listing in the category, cheapest
// first.
func (d *Database) FindListingsByCategory(category string) ([]models.Listing, error) {
	var listings []models.Listing
	err := d.db.
		Where("category = ?", category).
		Order("price ASC").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query listings for category %q: %w", category, err)
	}
	return listings, nil
}

// FindSimilarListings returns the newest listings in the category whose
// title or description contains any of the given tokens, case-insensitively.
func (d *Database) FindSimilarListings(category string, tokens []string, limit int) ([]models.Listing, error) {
	query := d.db.Where("category = ?", category)

	var clauses []string
	var args []interface{}
	for _, token := range tokens {
		if token == "" {
			continue
		}
		pattern := "%" + strings.ToLower(token) + "%"
		clauses = append(clauses, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if len(clauses) > 0 {
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	var listings []models.Listing
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query similar listings: %w", err)
	}
	return listings, nil
}

func (d *Database) FindListingByID(id string) (*models.Listing, error) {
	var listing models.Listing
	err := d.db.First(&listing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query listing %q: %w", id, err)
	}
	return &listing, nil
}

func (d *Database) DistinctCategories() ([]string, error) {
	var categories []string
	err := d.db.
		Model(&models.Listing{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct categories: %w", err)
	}
	return categories, nil
}

// FindCategoryConfig returns the active config registered under the exact
// name, or nil when none exists.
func (d *Database) FindCategoryConfig(name string) (*models.CategoryConfig, error) {
	var config models.CategoryConfig
	err := d.db.First(&config, "name = ? AND is_active = ?", name, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category config %q: %w", name, err)
	}
	return &config, nil
}

// InsertListings stores a batch of listings, assigning ids where missing.
func (d *Database) InsertListings(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	for i := range listings {
		if listings[i].ID == "" {
			listings[i].ID = uuid.NewString()
		}
	}
	if err := d.db.CreateInBatches(listings, 100).Error; err != nil {
		return fmt.Errorf("failed to insert listings: %w", err)
	}
	return nil
}

func (d *Database) UpsertCategoryConfig(config models.CategoryConfig) error {
	if err := d.db.Save(&config).Error; err != nil {
		return fmt.Errorf("failed to upsert category config %q: %w", config.Name, err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}
