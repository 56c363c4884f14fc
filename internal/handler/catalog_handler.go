package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/service"
	"github.com/jengzang/itinerary-planner-go/pkg/response"
)

// CatalogHandler handles HTTP requests for reference data
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetPOIs handles GET /api/v1/pois
func (h *CatalogHandler) GetPOIs(c *gin.Context) {
	pois := h.service.POIs(c.Query("city"))
	response.Success(c, gin.H{
		"data":  pois,
		"total": len(pois),
	})
}

// GetOptions handles GET /api/v1/options
func (h *CatalogHandler) GetOptions(c *gin.Context) {
	response.Success(c, h.service.Options())
}

// GetStations handles GET /api/v1/stations
func (h *CatalogHandler) GetStations(c *gin.Context) {
	stations, err := h.service.Stations(c.Query("city"))
	if err != nil {
		response.NotFound(c, "Station not found", err)
		return
	}

	response.Success(c, gin.H{
		"data":  stations,
		"total": len(stations),
	})
}

// GetNextTrain handles GET /api/v1/trains/next
func (h *CatalogHandler) GetNextTrain(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		response.BadRequest(c, "Both from and to are required", nil)
		return
	}

	trip, err := h.service.NextTrip(from, to, c.DefaultQuery("time", "00:00"))
	switch {
	case errors.Is(err, service.ErrUnknownStation):
		response.NotFound(c, "Station not found", err)
		return
	case errors.Is(err, service.ErrNoTrip):
		response.NotFound(c, "No scheduled train", err)
		return
	case err != nil:
		response.BadRequest(c, "Invalid time, expected HH:MM", err)
		return
	}

	response.Success(c, trip)
}

// ReloadCatalog handles POST /api/v1/catalog/reload
func (h *CatalogHandler) ReloadCatalog(c *gin.Context) {
	cat, err := h.service.Reload(c.Request.Context())
	if errors.Is(err, catalog.ErrNoLoader) {
		response.Error(c, http.StatusConflict, "Catalog has no reload source", err)
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to reload catalog", err)
		return
	}

	response.Success(c, gin.H{
		"pois":     len(cat.POIs()),
		"stations": len(cat.Stations()),
		"cities":   len(cat.Cities()),
	})
}
