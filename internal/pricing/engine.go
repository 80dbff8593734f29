package pricing

import (
	"time"

	"github.com/sirupsen/logrus"

	"campusmarket/server/internal/models"
)

// ListingStore is the read surface the engine needs from the listing
// repository. *database.Database satisfies it.
type ListingStore interface {
	FindListingsByCategory(category string) ([]models.Listing, error)
	FindSimilarListings(category string, tokens []string, limit int) ([]models.Listing, error)
	DistinctCategories() ([]string, error)
}

// ConfigStore is the optional read surface for registered category configs.
type ConfigStore interface {
	FindCategoryConfig(name string) (*models.CategoryConfig, error)
}

type Options struct {
	// ConfigCacheTTL bounds how long a resolved category config is reused.
	ConfigCacheTTL time.Duration

	// SimilarItemLimit caps the listings considered for a suggestion.
	SimilarItemLimit int

	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

const (
	defaultConfigCacheTTL   = 5 * time.Minute
	defaultSimilarItemLimit = 10
)

// Engine computes market statistics, anomaly flags, insights and price
// recommendations from the current listing snapshot. All operations are
// synchronous; the only shared state is the config cache.
type Engine struct {
	listings     ListingStore
	configs      ConfigStore
	cache        *configCache
	logger       *logrus.Logger
	now          func() time.Time
	similarLimit int
}

func NewEngine(listings ListingStore, configs ConfigStore, logger *logrus.Logger, opts Options) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	ttl := opts.ConfigCacheTTL
	if ttl <= 0 {
		ttl = defaultConfigCacheTTL
	}
	limit := opts.SimilarItemLimit
	if limit <= 0 {
		limit = defaultSimilarItemLimit
	}

	return &Engine{
		listings:     listings,
		configs:      configs,
		cache:        newConfigCache(ttl, now),
		logger:       logger,
		now:          now,
		similarLimit: limit,
	}
}

// CategoryConfigFor resolves the config for a category: cache, then the
// config store, then the builtin table, then defaults. Store failures are
// absorbed; this never returns an error.
func (e *Engine) CategoryConfigFor(name string) models.CategoryConfig {
	if config, ok := e.cache.get(name); ok {
		return config
	}

	config, ok := e.resolveConfig(name)
	if !ok {
		config = DefaultCategoryConfig(name)
		e.logger.WithField("category", name).Debug("Using default category config")
	}

	e.cache.put(name, config)
	return config
}

func (e *Engine) resolveConfig(name string) (models.CategoryConfig, bool) {
	if e.configs != nil {
		stored, err := e.configs.FindCategoryConfig(name)
		if err != nil {
			e.logger.WithError(err).WithField("category", name).
				Warn("Category config lookup failed, falling back to builtin values")
		} else if stored != nil {
			e.logger.WithField("category", name).Debug("Resolved category config from store")
			return *stored, true
		}
	}

	if builtin, ok := builtinConfigs[name]; ok {
		e.logger.WithField("category", name).Debug("Resolved category config from builtin table")
		return builtin, true
	}

	return models.CategoryConfig{}, false
}
