package models

import (
	"time"

	"github.com/jengzang/itinerary-planner-go/internal/spatial"
)

// POI is a single visitable attraction
type POI struct {
	ID         string   `json:"id" db:"id"`
	Name       string   `json:"name" db:"name"`
	City       string   `json:"city" db:"city"`
	Lat        float64  `json:"lat" db:"lat"`
	Lon        float64  `json:"lon" db:"lon"`
	Categories []string `json:"categories" db:"categories_json"`

	// Visit characteristics
	Duration   int     `json:"duration" db:"duration"`     // Minutes
	Popularity float64 `json:"popularity" db:"popularity"` // 0-1
	OpenTime   int     `json:"open_time" db:"open_time"`   // Minute of day
	CloseTime  int     `json:"close_time" db:"close_time"` // Minute of day, > OpenTime
	Cost       float64 `json:"cost" db:"cost"`

	Description        string   `json:"description,omitempty" db:"description"`
	Rating             float64  `json:"rating" db:"rating"` // 0-5
	ReviewCount        int      `json:"review_count" db:"review_count"`
	AccessibilityScore float64  `json:"accessibility_score" db:"accessibility_score"` // 0-1
	FamilyFriendly     bool     `json:"family_friendly" db:"family_friendly"`
	StationID          string   `json:"station_id,omitempty" db:"station_id"`
	BestMonths         []string `json:"best_time_to_visit,omitempty" db:"best_months_json"` // "Jan".."Dec"
}

// Location returns the POI coordinate
func (p POI) Location() spatial.Point {
	return spatial.Point{Lat: p.Lat, Lon: p.Lon}
}

// Schedulable reports whether the visit can ever fit inside the opening window
func (p POI) Schedulable() bool {
	return p.Duration > 0 && p.OpenTime < p.CloseTime && p.CloseTime-p.OpenTime >= p.Duration
}

// HasCategory reports whether the POI carries the given tag
func (p POI) HasCategory(tag string) bool {
	for _, c := range p.Categories {
		if c == tag {
			return true
		}
	}
	return false
}

// GoodInMonth reports whether m is one of the POI's favorable months
func (p POI) GoodInMonth(m time.Month) bool {
	abbr := m.String()[:3]
	for _, bm := range p.BestMonths {
		if bm == abbr {
			return true
		}
	}
	return false
}

// Station is a rail station in the reference registry
type Station struct {
	ID   string  `json:"id" db:"id"` // Station code
	Name string  `json:"name" db:"name"`
	City string  `json:"city" db:"city"`
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
}

// Location returns the station coordinate
func (s Station) Location() spatial.Point {
	return spatial.Point{Lat: s.Lat, Lon: s.Lon}
}

// NoTime marks a missing arrival (first stop) or departure (last stop)
const NoTime = -1

// TrainStop is one call of a train service
type TrainStop struct {
	StationID string `json:"station_id" db:"station_id"`
	Arrival   int    `json:"arrival" db:"arrival"`     // Minute of day, NoTime at the origin
	Departure int    `json:"departure" db:"departure"` // Minute of day, NoTime at the terminus
	Day       int    `json:"day" db:"day"`             // Days after the service's first departure
}

// TrainService is a raw multi-stop schedule entry
type TrainService struct {
	Number string      `json:"number" db:"number"`
	Name   string      `json:"name" db:"name"`
	Stops  []TrainStop `json:"stops"`
}

// ScheduledTrip is a direct ride between two stops of one service.
// Departure and Arrival are minutes of day in the timetable index; trips
// returned by a next-trip query carry absolute values relative to the
// query day (so a next-day departure is >= 1440).
type ScheduledTrip struct {
	TrainNumber   string `json:"train_number"`
	TrainName     string `json:"train_name"`
	FromStationID string `json:"from_station_id"`
	ToStationID   string `json:"to_station_id"`
	Departure     int    `json:"departure"`
	Arrival       int    `json:"arrival"`
	Duration      int    `json:"duration"` // Minutes, may exceed 1440
}
