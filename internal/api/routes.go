package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campusmarket/server/internal/database"
	"campusmarket/server/internal/pricing"
)

func SetupRoutes(router *gin.Engine, db *database.Database, engine *pricing.Engine, logger *logrus.Logger) {
	handler := NewHandler(db, engine, logger)

	group := router.Group("/pricing")
	{
		group.POST("/suggestion", handler.GetPricingSuggestion)
		group.GET("/market-stats/:category", handler.GetMarketStats)
		group.GET("/deal-score/:listingId", handler.GetDealScore)
		group.GET("/overview", handler.GetMarketOverview)
	}
}
