package models

// Deal score labels, ordered from best to worst for the buyer.
const (
	DealScoreHot            = "hot-deal"
	DealScoreGood           = "good-deal"
	DealScoreFair           = "fair-price"
	DealScoreOverpriced     = "overpriced"
	DealScoreVeryOverpriced = "very-overpriced"
	DealScoreUnknown        = "unknown"
)

// Distribution bucket labels.
const (
	BucketBudget   = "Budget"
	BucketMidRange = "Mid-Range"
	BucketPremium  = "Premium"
	BucketLuxury   = "Luxury"
)

// Insight types.
const (
	InsightMarketOpportunity = "market_opportunity"
	InsightMarketSaturation  = "market_saturation"
	InsightSeasonal          = "seasonal"
	InsightDepreciation      = "depreciation"
)

type PriceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  int     `json:"median"`
	Average int     `json:"average"`
}

type PriceAnomaly struct {
	ListingID       string  `json:"listing_id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	CategoryAverage int     `json:"category_average"`
	DeviationPct    int     `json:"deviation_pct"`
}

type PriceAnomalies struct {
	Overpriced  []PriceAnomaly `json:"overpriced"`
	Underpriced []PriceAnomaly `json:"underpriced"`
}

type Insight struct {
	Type       string  `json:"type"`
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence"`
}

// CategoryAnalysis is computed fresh from the current listing snapshot on
// every call; it is never persisted.
type CategoryAnalysis struct {
	Category          string         `json:"category"`
	TotalListings     int            `json:"total_listings"`
	PriceRange        PriceRange     `json:"price_range"`
	PriceDistribution map[string]int `json:"price_distribution"`
	Anomalies         PriceAnomalies `json:"anomalies"`
	Insights          []Insight      `json:"insights"`
}

type SuggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
	AgeMonths   *int   `json:"age"`
}

type SuggestedRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type MarketContext struct {
	SimilarItems    int    `json:"similar_items"`
	CategoryAverage int    `json:"category_average"`
	MarketPosition  string `json:"market_position"`
}

type PricingSuggestion struct {
	SuggestedPrice *int            `json:"suggested_price"`
	PriceRange     *SuggestedRange `json:"price_range,omitempty"`
	Confidence     float64         `json:"confidence"`
	Reasoning      string          `json:"reasoning"`
	MarketContext  *MarketContext  `json:"market_context,omitempty"`
}

type DealScore struct {
	Score      string  `json:"score"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message,omitempty"`
}

type MarketOverviewEntry struct {
	TotalListings int        `json:"total_listings"`
	AveragePrice  int        `json:"average_price"`
	PriceRange    PriceRange `json:"price_range"`
	Insights      []Insight  `json:"insights"`
}
