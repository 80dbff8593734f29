package pricing

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"campusmarket/server/internal/models"
)

const insufficientDataReasoning = "Insufficient market data for pricing analysis"

// premiumKeywords marks items expected to trade above the generic category
// average. The list was tuned by trial against real listings; keep it
// verbatim.
var premiumKeywords = []string{
	"limited edition", "rare", "vintage", "collector", "signed",
	"jordan", "supreme", "gucci", "louis vuitton", "rolex",
	"first edition", "mint condition", "brand new", "sealed",
	"apple", "iphone 15", "macbook pro", "gaming pc",
}

var conditionMultipliers = map[string]float64{
	"Excellent": 1.0,
	"Like New":  0.95,
	"New":       1.05,
	"Good":      0.85,
	"Fair":      0.70,
	"Poor":      0.50,
}

const (
	defaultConditionMultiplier = 0.85
	premiumItemMultiplier      = 1.6
	premiumAverageInflation    = 1.8
	depreciationFloor          = 0.3
)

// SuggestPrice recommends a price for a prospective listing from the recent
// similar listings in its category.
func (e *Engine) SuggestPrice(req models.SuggestionRequest) (*models.PricingSuggestion, error) {
	tokens := titleTokens(req.Title)
	similar, err := e.listings.FindSimilarListings(req.Category, tokens, e.similarLimit)
	if err != nil {
		return nil, err
	}

	analysis, err := e.AnalyzeCategoryPricing(req.Category)
	if err != nil {
		return nil, err
	}
	if analysis == nil || len(similar) == 0 {
		return &models.PricingSuggestion{
			Confidence: 0,
			Reasoning:  insufficientDataReasoning,
		}, nil
	}

	prices := make([]float64, len(similar))
	for i, listing := range similar {
		prices[i] = listing.Price
	}
	basePrice := stat.Mean(prices, nil)
	adjusted := basePrice

	if isPremiumItem(req.Title + " " + req.Description) {
		adjusted *= premiumItemMultiplier
	}

	multiplier, ok := conditionMultipliers[req.Condition]
	if !ok {
		multiplier = defaultConditionMultiplier
	}
	adjusted *= multiplier

	// Age depreciation applies only to categories in the builtin table; a
	// registered store config does not trigger it. Observed behavior of the
	// original heuristics, kept for parity.
	if req.AgeMonths != nil {
		if builtin, found := builtinConfigs[req.Category]; found {
			factor := 1 - float64(*req.AgeMonths)*builtin.AvgDepreciationPerMonth
			adjusted *= math.Max(depreciationFloor, factor)
		}
	}

	suggested := int(math.Round(adjusted))
	confidence := math.Min(0.95, 0.5+float64(len(similar))*0.1)

	return &models.PricingSuggestion{
		SuggestedPrice: &suggested,
		PriceRange: &models.SuggestedRange{
			Min: int(math.Round(float64(suggested) * 0.85)),
			Max: int(math.Round(float64(suggested) * 1.15)),
		},
		Confidence: confidence,
		Reasoning:  buildReasoning(req, len(similar), basePrice, adjusted),
		MarketContext: &models.MarketContext{
			SimilarItems:    len(similar),
			CategoryAverage: analysis.PriceRange.Average,
			MarketPosition:  marketPosition(adjusted, analysis.PriceRange.Min, analysis.PriceRange.Max),
		},
	}, nil
}

// DealScoreFor rates how a listing's price compares to its category average.
func (e *Engine) DealScoreFor(listing models.Listing) (*models.DealScore, error) {
	analysis, err := e.AnalyzeCategoryPricing(listing.Category)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return &models.DealScore{Score: models.DealScoreUnknown, Confidence: 0}, nil
	}

	average := float64(analysis.PriceRange.Average)
	if isPremiumItem(listing.Title + " " + listing.Description) {
		// Premium items are expected to sit above the generic average.
		average *= premiumAverageInflation
	}

	ratio := listing.Price / average
	pct := int(math.Round(math.Abs(1-ratio) * 100))

	switch {
	case ratio <= 0.80:
		return &models.DealScore{
			Score:      models.DealScoreHot,
			Confidence: 0.9,
			Message:    fmt.Sprintf("%d%% below average", pct),
		}, nil
	case ratio <= 0.95:
		return &models.DealScore{
			Score:      models.DealScoreGood,
			Confidence: 0.85,
			Message:    fmt.Sprintf("%d%% below average", pct),
		}, nil
	case ratio <= 1.15:
		return &models.DealScore{
			Score:      models.DealScoreFair,
			Confidence: 0.8,
			Message:    "Market price",
		}, nil
	case ratio <= 1.50:
		return &models.DealScore{
			Score:      models.DealScoreOverpriced,
			Confidence: 0.85,
			Message:    fmt.Sprintf("%d%% above average", pct),
		}, nil
	default:
		return &models.DealScore{
			Score:      models.DealScoreVeryOverpriced,
			Confidence: 0.9,
			Message:    fmt.Sprintf("%d%% above average", pct),
		}, nil
	}
}

// titleTokens returns the first two whitespace-separated words of the title,
// which drive the similar-listing search.
func titleTokens(title string) []string {
	fields := strings.Fields(title)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return fields
}

func isPremiumItem(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range premiumKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func buildReasoning(req models.SuggestionRequest, similarCount int, basePrice, adjusted float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on %d similar %s listings", similarCount, req.Category)
	if req.Condition != "" {
		fmt.Fprintf(&b, " and %q condition", req.Condition)
	}
	b.WriteString(".")

	// Only mention the adjustment when it moved the price meaningfully.
	delta := math.Abs(adjusted-basePrice) / basePrice
	if delta > 0.05 {
		direction := "Discount"
		if adjusted > basePrice {
			direction = "Premium"
		}
		fmt.Fprintf(&b, " %s of %d%% applied.", direction, int(math.Round(delta*100)))
	}
	return b.String()
}

// marketPosition buckets a price by its position within the category's
// observed min-max range.
func marketPosition(price, min, max float64) string {
	position := 0.5
	if max > min {
		position = (price - min) / (max - min)
	}
	switch {
	case position < 0.25:
		return "Budget-friendly"
	case position < 0.5:
		return "Below average"
	case position < 0.75:
		return "Above average"
	default:
		return "Premium pricing"
	}
}
