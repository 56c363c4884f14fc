package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/itinerary-planner-go/internal/config"
	"github.com/jengzang/itinerary-planner-go/internal/handler"
	"github.com/jengzang/itinerary-planner-go/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Itineraries *handler.ItineraryHandler
	Catalog     *handler.CatalogHandler
}

// SetupRouter builds the gin engine with middleware and routes. Background
// middleware work ends with ctx.
func SetupRouter(ctx context.Context, cfg config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Itinerary Planner API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		api.POST("/itineraries", h.Itineraries.CreateItinerary)

		api.GET("/pois", h.Catalog.GetPOIs)
		api.GET("/options", h.Catalog.GetOptions)
		api.GET("/stations", h.Catalog.GetStations)
		api.GET("/trains/next", h.Catalog.GetNextTrain)
		api.POST("/catalog/reload", h.Catalog.ReloadCatalog)
	}

	return r
}
