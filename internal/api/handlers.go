package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campusmarket/server/internal/database"
	"campusmarket/server/internal/models"
	"campusmarket/server/internal/pricing"
)

type Handler struct {
	db     *database.Database
	engine *pricing.Engine
	logger *logrus.Logger
}

func NewHandler(db *database.Database, engine *pricing.Engine, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:     db,
		engine: engine,
		logger: logger,
	}
}

// GetPricingSuggestion recommends a price for a prospective listing.
func (h *Handler) GetPricingSuggestion(c *gin.Context) {
	var req models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse suggestion request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Category) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and category are required"})
		return
	}

	suggestion, err := h.engine.SuggestPrice(req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate pricing suggestion")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate pricing suggestion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": suggestion})
}

// GetMarketStats returns the category analysis, or null when the category
// has no listings.
func (h *Handler) GetMarketStats(c *gin.Context) {
	category := c.Param("category")

	analysis, err := h.engine.AnalyzeCategoryPricing(category)
	if err != nil {
		h.logger.WithError(err).Error("Failed to analyze category pricing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze category pricing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": analysis})
}

// GetDealScore rates a listing's price against its category market.
func (h *Handler) GetDealScore(c *gin.Context) {
	listingID := c.Param("listingId")

	listing, err := h.db.FindListingByID(listingID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load listing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load listing"})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	score, err := h.engine.DealScoreFor(*listing)
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute deal score")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute deal score"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": score})
}

// GetMarketOverview returns per-category market summaries.
func (h *Handler) GetMarketOverview(c *gin.Context) {
	overview, err := h.engine.MarketOverview()
	if err != nil {
		h.logger.WithError(err).Error("Failed to build market overview")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build market overview"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": overview})
}
