package service

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
)

// Request defaults and bounds
const (
	DefaultNumDays = 5
	MinNumDays     = 1
	MaxNumDays     = 15
	DefaultBudget  = 15000.0
	MinBudget      = 1000.0
)

// DefaultOrigin is used when the request carries no usable base location
var DefaultOrigin = spatial.Point{Lat: 23.36, Lon: 85.33}

// RawPreferences is the planning request as sent by clients. Loosely typed
// fields are coerced, never rejected.
type RawPreferences struct {
	NumDays            any      `json:"num_days"`
	Budget             any      `json:"budget"`
	TransportMode      string   `json:"transport_mode"`
	Pace               string   `json:"pace"`
	BaseLocation       any      `json:"base_location"` // [lat, lon]
	HomeCity           string   `json:"home_city"`
	DestinationCity    string   `json:"destination_city"`
	Interests          []string `json:"interests"`
	AccessibilityNeeds any      `json:"accessibility_needs"`
	FamilyTrip         any      `json:"family_trip"`
	StartDate          string   `json:"start_date"`
	MustVisit          []string `json:"must_visit"`
}

// NormalizePreferences clamps and defaults a raw request against the catalog
func NormalizePreferences(raw RawPreferences, cat *catalog.Catalog, now time.Time) models.Preferences {
	prefs := models.Preferences{
		NumDays:            clampDays(raw.NumDays),
		Budget:             budgetOf(raw.Budget),
		TransportMode:      models.TransportMode(strings.ToLower(strings.TrimSpace(raw.TransportMode))),
		Pace:               models.Pace(strings.ToLower(strings.TrimSpace(raw.Pace))),
		Origin:             originOf(raw.BaseLocation),
		Interests:          interestsOf(raw.Interests),
		AccessibilityNeeds: truthy(raw.AccessibilityNeeds),
		FamilyTrip:         truthy(raw.FamilyTrip),
		StartDate:          startDateOf(raw.StartDate, now),
		MustVisit:          []string{},
	}

	if !prefs.TransportMode.Valid() {
		prefs.TransportMode = models.ModeCar
	}
	if !prefs.Pace.Valid() {
		prefs.Pace = models.PaceModerate
	}

	if cat == nil {
		return prefs
	}

	if city, ok := cat.CanonicalCity(raw.HomeCity); ok {
		prefs.HomeCity = city
	}
	if city, ok := cat.CanonicalCity(raw.DestinationCity); ok {
		prefs.DestinationCity = city
	}
	for _, id := range raw.MustVisit {
		if _, ok := cat.POI(id); ok && !prefs.IsMustVisit(id) {
			prefs.MustVisit = append(prefs.MustVisit, id)
		}
	}

	return prefs
}

func clampDays(v any) int {
	n, ok := toFloat(v)
	if !ok {
		return DefaultNumDays
	}
	return int(math.Max(MinNumDays, math.Min(MaxNumDays, n)))
}

func budgetOf(v any) float64 {
	b, ok := toFloat(v)
	if !ok {
		return DefaultBudget
	}
	return math.Max(MinBudget, b)
}

func originOf(v any) spatial.Point {
	coords, ok := v.([]any)
	if !ok || len(coords) != 2 {
		return DefaultOrigin
	}
	lat, okLat := toFloat(coords[0])
	lon, okLon := toFloat(coords[1])
	p := spatial.Point{Lat: lat, Lon: lon}
	if !okLat || !okLon || !p.Valid() {
		return DefaultOrigin
	}
	return p
}

func interestsOf(raw []string) []string {
	known := make(map[string]bool, len(models.Categories))
	for _, c := range models.Categories {
		known[c] = true
	}

	out := []string{}
	seen := map[string]bool{}
	for _, i := range raw {
		i = strings.ToLower(strings.TrimSpace(i))
		if known[i] && !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}

func startDateOf(s string, now time.Time) string {
	if _, err := time.Parse(models.DateLayout, s); err == nil {
		return s
	}
	return now.Format(models.DateLayout)
}

// toFloat accepts JSON numbers and numeric strings. Missing and non-finite
// values are rejected so the caller falls back to its default.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if str, ok := v.(string); ok {
		v = strings.TrimSpace(str)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func truthy(v any) bool {
	if str, ok := v.(string); ok {
		v = strings.TrimSpace(str)
	}
	b, err := cast.ToBoolE(v)
	return err == nil && b
}
