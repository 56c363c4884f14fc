package models

import (
	"time"

	"github.com/jengzang/itinerary-planner-go/internal/spatial"
)

// DateLayout is the ISO-8601 calendar date layout used for trip days
const DateLayout = "2006-01-02"

// Preferences is a validated planning request. It is built once at the
// boundary and only read by the planner.
type Preferences struct {
	NumDays            int           `json:"num_days"`
	Budget             float64       `json:"budget"`
	TransportMode      TransportMode `json:"transport_mode"`
	Pace               Pace          `json:"pace"`
	Origin             spatial.Point `json:"base_location"`
	HomeCity           string        `json:"home_city,omitempty"`
	DestinationCity    string        `json:"destination_city,omitempty"`
	Interests          []string      `json:"interests"`
	AccessibilityNeeds bool          `json:"accessibility_needs"`
	FamilyTrip         bool          `json:"family_trip"`
	StartDate          string        `json:"start_date"` // YYYY-MM-DD
	MustVisit          []string      `json:"must_visit"`
}

// StartDay parses StartDate, falling back to today
func (p Preferences) StartDay(now time.Time) time.Time {
	if d, err := time.Parse(DateLayout, p.StartDate); err == nil {
		return d
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsMustVisit reports whether id was requested as must-visit
func (p Preferences) IsMustVisit(id string) bool {
	for _, m := range p.MustVisit {
		if m == id {
			return true
		}
	}
	return false
}

// MultiCity reports whether a destination city drives the plan
func (p Preferences) MultiCity() bool {
	return p.DestinationCity != ""
}
