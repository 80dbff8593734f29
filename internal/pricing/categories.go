package pricing

import "campusmarket/server/internal/models"

const (
	SeasonFall   = "Fall"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
)

// builtinConfigs is the hand-tuned table for categories that predate the
// config store. Values were calibrated against observed campus sale data and
// must not be changed without re-validating the suggestion output.
var builtinConfigs = map[string]models.CategoryConfig{
	"Textbooks": {
		Name:                    "Textbooks",
		SeasonalMultiplier:      map[string]float64{SeasonFall: 1.2, SeasonSpring: 1.1, SeasonSummer: 0.8},
		RetentionRate:           0.7,
		AvgDepreciationPerMonth: 0.02,
	},
	"Electronics": {
		Name:                    "Electronics",
		SeasonalMultiplier:      map[string]float64{SeasonFall: 1.0, SeasonSpring: 0.95, SeasonSummer: 0.9},
		RetentionRate:           0.4,
		AvgDepreciationPerMonth: 0.05,
	},
	"Furniture": {
		Name:                    "Furniture",
		SeasonalMultiplier:      map[string]float64{SeasonFall: 1.1, SeasonSpring: 0.9, SeasonSummer: 1.0},
		RetentionRate:           0.5,
		AvgDepreciationPerMonth: 0.03,
	},
	"Clothing": {
		Name:                    "Clothing",
		SeasonalMultiplier:      map[string]float64{SeasonFall: 1.0, SeasonSpring: 0.8, SeasonSummer: 0.7},
		RetentionRate:           0.3,
		AvgDepreciationPerMonth: 0.04,
	},
	"Sports": {
		Name:                    "Sports",
		SeasonalMultiplier:      map[string]float64{SeasonFall: 1.0, SeasonSpring: 1.1, SeasonSummer: 1.2},
		RetentionRate:           0.6,
		AvgDepreciationPerMonth: 0.025,
	},
	"Toys": {
		Name:                    "Toys",
		SeasonalMultiplier:      map[string]float64{SeasonFall: 1.1, SeasonSpring: 0.9, SeasonSummer: 1.0},
		RetentionRate:           0.4,
		AvgDepreciationPerMonth: 0.035,
	},
}

// DefaultCategoryConfig is used for categories with neither a stored config
// nor a builtin entry.
func DefaultCategoryConfig(name string) models.CategoryConfig {
	return models.CategoryConfig{
		Name:                    name,
		SeasonalMultiplier:      map[string]float64{SeasonFall: 1.0, SeasonSpring: 1.0, SeasonSummer: 1.0},
		RetentionRate:           0.5,
		AvgDepreciationPerMonth: 0.03,
	}
}
