package models

import "time"

type Listing struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryConfig holds the market parameters registered for a category.
// Only active rows are visible to the pricing engine; categories without a
// row fall back to the built-in table or the defaults.
type CategoryConfig struct {
	Name                    string             `json:"name" gorm:"primaryKey"`
	SeasonalMultiplier      map[string]float64 `json:"seasonal_multiplier" gorm:"serializer:json"`
	RetentionRate           float64            `json:"retention_rate"`
	AvgDepreciationPerMonth float64            `json:"avg_depreciation_per_month"`
	IsActive                bool               `json:"is_active"`
}
