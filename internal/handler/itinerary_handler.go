package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/itinerary-planner-go/internal/service"
	"github.com/jengzang/itinerary-planner-go/pkg/response"
)

// ItineraryHandler handles HTTP requests for trip plans
type ItineraryHandler struct {
	service *service.ItineraryService
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(service *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

// CreateItinerary handles POST /api/v1/itineraries
func (h *ItineraryHandler) CreateItinerary(c *gin.Context) {
	var raw service.RawPreferences
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	response.Success(c, h.service.Generate(raw))
}
