package service

import (
	"time"

	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/planner"
)

// ItineraryService turns raw planning requests into trip plans
type ItineraryService struct {
	planner *planner.Planner
	source  planner.Source
	now     func() time.Time
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(p *planner.Planner, source planner.Source) *ItineraryService {
	return &ItineraryService{planner: p, source: source, now: time.Now}
}

// Normalize validates a raw request against the current catalog
func (s *ItineraryService) Normalize(raw RawPreferences) models.Preferences {
	return NormalizePreferences(raw, s.source.Current(), s.now())
}

// Generate normalizes raw and plans the trip
func (s *ItineraryService) Generate(raw RawPreferences) models.TripPlan {
	return s.planner.GenerateItinerary(s.Normalize(raw))
}
