package models

import "time"

// Entry kinds
const (
	EntryVisit          = "visit"
	EntryTransit        = "transit"
	EntryReturnToOrigin = "return_to_origin"
)

// Journey leg kinds
const (
	LegRoad = "road"
	LegRail = "rail"
	LegWait = "wait"
)

// JourneyLeg is one part of a journey
type JourneyLeg struct {
	Kind       string         `json:"kind"` // road, rail, wait
	Mode       TransportMode  `json:"mode,omitempty"`
	From       string         `json:"from,omitempty"`
	To         string         `json:"to,omitempty"`
	DistanceKm float64        `json:"distance_km"`
	Minutes    int            `json:"minutes"`
	Cost       float64        `json:"cost"`
	Trip       *ScheduledTrip `json:"trip,omitempty"`
}

// Journey is the computed movement between two places
type Journey struct {
	Mode         TransportMode `json:"mode"`
	DistanceKm   float64       `json:"distance_km"`
	Minutes      int           `json:"minutes"`
	Cost         float64       `json:"cost"`
	Departure    int           `json:"departure"` // Absolute minutes
	Arrival      int           `json:"arrival"`   // Absolute minutes
	WaitMinutes  int           `json:"wait_minutes,omitempty"`
	RailAssisted bool          `json:"rail_assisted"`
	Fallback     bool          `json:"fallback,omitempty"` // Rail requested but no trip existed
	Legs         []JourneyLeg  `json:"legs,omitempty"`
	Narrative    string        `json:"narrative"`
}

// POISummary is the serialized view of a POI inside a schedule entry
type POISummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Categories  []string `json:"categories"`
	Duration    int      `json:"duration"`
	Cost        float64  `json:"cost"`
	Description string   `json:"description,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
}

// Summarize builds the serialized view of p
func (p POI) Summarize() *POISummary {
	return &POISummary{
		ID:          p.ID,
		Name:        p.Name,
		City:        p.City,
		Lat:         p.Lat,
		Lon:         p.Lon,
		Categories:  p.Categories,
		Duration:    p.Duration,
		Cost:        p.Cost,
		Description: p.Description,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
	}
}

// ScheduleEntry is a visit or a transit/action marker within a day
type ScheduleEntry struct {
	Kind   string      `json:"kind"` // visit, transit, return_to_origin
	POI    *POISummary `json:"poi,omitempty"`
	Action string      `json:"action,omitempty"`

	// Formatted times, relative to the day the entry belongs to
	ArrivalTime string `json:"arrival_time"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`

	// Absolute minutes since midnight of the first trip day
	ArrivalMinute int `json:"arrival_minute"`
	StartMinute   int `json:"start_minute,omitempty"`
	EndMinute     int `json:"end_minute,omitempty"`

	VisitCost        float64  `json:"visit_cost"`
	TravelCost       float64  `json:"travel_cost"`
	TravelTime       int      `json:"travel_time"` // Minutes
	TravelDistanceKm float64  `json:"travel_distance_km"`
	Journey          *Journey `json:"journey,omitempty"`
}

// IsVisit reports whether the entry is a POI visit
func (e ScheduleEntry) IsVisit() bool {
	return e.Kind == EntryVisit && e.POI != nil
}

// Cost is the visit cost plus the travel cost of reaching it
func (e ScheduleEntry) Cost() float64 {
	return e.VisitCost + e.TravelCost
}

// ItineraryDay is one calendar day of a plan
type ItineraryDay struct {
	DayNumber         int             `json:"day_number"`
	Date              string          `json:"date"` // YYYY-MM-DD
	Entries           []ScheduleEntry `json:"pois"`
	TotalCost         float64         `json:"total_cost"`
	TotalTravelTime   int             `json:"total_travel_time"`
	TotalVisitTime    int             `json:"total_visit_time"`
	TransportMode     TransportMode   `json:"transport_mode"`
	OvernightLocation string          `json:"overnight_location"`
	InTransit         bool            `json:"in_transit"`
}

// VisitCount returns the number of POI visits on the day
func (d ItineraryDay) VisitCount() int {
	n := 0
	for _, e := range d.Entries {
		if e.IsVisit() {
			n++
		}
	}
	return n
}

// TripPlan is the result of one planning call
type TripPlan struct {
	ID              string         `json:"id"`
	Days            []ItineraryDay `json:"days"`
	TotalCost       float64        `json:"total_cost"`
	TotalPOIs       int            `json:"total_pois"`
	DroppedPOIs     int            `json:"dropped_pois"`
	Degraded        bool           `json:"degraded,omitempty"` // Soft failure: days are empty
	UserPreferences Preferences    `json:"user_preferences"`
	GeneratedAt     time.Time      `json:"generated_at"`
}
