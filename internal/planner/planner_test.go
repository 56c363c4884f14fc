package planner

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

func testPOI(id, city string, lat, lon float64, duration int, cost float64, categories ...string) models.POI {
	if len(categories) == 0 {
		categories = []string{"culture"}
	}
	return models.POI{
		ID:                 id,
		Name:               id,
		City:               city,
		Lat:                lat,
		Lon:                lon,
		Categories:         categories,
		Duration:           duration,
		Popularity:         0.5,
		OpenTime:           0,
		CloseTime:          timeofday.MinutesPerDay,
		Cost:               cost,
		Rating:             4,
		AccessibilityScore: 0.5,
	}
}

func ids(pois []models.POI) []string {
	out := make([]string, len(pois))
	for i, p := range pois {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func poiByID(pois []models.POI, id string) models.POI {
	for _, p := range pois {
		if p.ID == id {
			return p
		}
	}
	return models.POI{}
}

type staticSource struct {
	cat *catalog.Catalog
}

func (s staticSource) Current() *catalog.Catalog { return s.cat }

type panicSource struct{}

func (panicSource) Current() *catalog.Catalog { panic("catalog unavailable") }

var fixedNow = time.Date(2025, time.August, 10, 9, 0, 0, 0, time.UTC)

func newTestPlanner(t *testing.T, cat *catalog.Catalog) *Planner {
	t.Helper()
	cache, err := spatial.NewDistanceCache(100)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	p := New(staticSource{cat: cat}, cache, DefaultOptions())
	p.SetClock(func() time.Time { return fixedNow })
	return p
}

// checkPlan asserts the properties every plan must hold
func checkPlan(t *testing.T, cat *catalog.Catalog, plan models.TripPlan, prefs models.Preferences) {
	t.Helper()

	if len(plan.Days) != prefs.NumDays {
		t.Fatalf("plan has %d days, want %d", len(plan.Days), prefs.NumDays)
	}
	if plan.ID == "" {
		t.Fatalf("plan id not set")
	}

	seen := map[string]bool{}
	sum := 0.0
	visits := 0
	for i, day := range plan.Days {
		if day.DayNumber != i+1 {
			t.Fatalf("day %d numbered %d", i+1, day.DayNumber)
		}
		sum += day.TotalCost

		base := timeofday.StartOfDay(i)
		dayCost := 0.0
		for _, e := range day.Entries {
			dayCost += e.Cost()
			if !e.IsVisit() {
				continue
			}
			visits++
			if seen[e.POI.ID] {
				t.Fatalf("poi %s scheduled twice", e.POI.ID)
			}
			seen[e.POI.ID] = true

			poi, ok := cat.POI(e.POI.ID)
			if !ok {
				t.Fatalf("unknown poi %s", e.POI.ID)
			}
			if e.StartMinute < base+poi.OpenTime || e.EndMinute > base+poi.CloseTime {
				t.Fatalf("day %d: %s visited %s-%s outside %s-%s", i+1, poi.ID,
					e.StartTime, e.EndTime, timeofday.Format(poi.OpenTime), timeofday.Format(poi.CloseTime))
			}
			if timeofday.OfDay(e.StartMinute) < poi.OpenTime || timeofday.OfDay(e.EndMinute) > poi.CloseTime {
				t.Fatalf("%s visit outside its opening hours", poi.ID)
			}
		}
		if math.Abs(dayCost-day.TotalCost) > 1e-6 {
			t.Fatalf("day %d total %v does not match its entries %v", i+1, day.TotalCost, dayCost)
		}
	}

	if math.Abs(sum-plan.TotalCost) > 1e-6 {
		t.Fatalf("day totals %v != plan total %v", sum, plan.TotalCost)
	}
	if plan.TotalPOIs != visits {
		t.Fatalf("total_pois %d, counted %d visits", plan.TotalPOIs, visits)
	}
	if plan.TotalPOIs > 0 && plan.TotalCost > prefs.Budget+1e-6 {
		t.Fatalf("plan cost %v over budget %v", plan.TotalCost, prefs.Budget)
	}
}

func TestGenerateItineraryWaterfallScenario(t *testing.T) {
	cat := catalog.Default()
	p := newTestPlanner(t, cat)

	prefs := models.Preferences{
		NumDays:       3,
		Budget:        10000,
		TransportMode: models.ModeCar,
		Pace:          models.PaceRelaxed,
		Origin:        spatial.Point{Lat: 23.36, Lon: 85.33},
		Interests:     []string{"waterfall"},
	}

	plan := p.GenerateItinerary(prefs)
	if plan.Degraded {
		t.Fatalf("unexpected degraded plan")
	}
	checkPlan(t, cat, plan, prefs)

	target := prefs.Pace.TargetPOIsPerDay()
	for _, day := range plan.Days {
		if n := day.VisitCount(); n > target {
			t.Fatalf("day %d has %d visits, relaxed target is %d", day.DayNumber, n, target)
		}
	}
	if plan.Days[0].Date != "2025-08-10" || plan.Days[2].Date != "2025-08-12" {
		t.Fatalf("unexpected dates %s..%s", plan.Days[0].Date, plan.Days[2].Date)
	}

	ranked := RankCandidates(cat.POIs(), prefs, fixedNow.Month(), nil)
	if !ranked[0].POI.HasCategory("waterfall") {
		t.Fatalf("top candidate %s is not a waterfall", ranked[0].POI.ID)
	}
}

func TestGenerateItineraryPaces(t *testing.T) {
	cat := catalog.Default()
	p := newTestPlanner(t, cat)

	for _, mode := range models.TransportModes {
		for _, pace := range models.Paces {
			prefs := models.Preferences{
				NumDays:       4,
				Budget:        15000,
				TransportMode: mode,
				Pace:          pace,
				Origin:        spatial.Point{Lat: 23.36, Lon: 85.33},
				HomeCity:      "Ranchi",
				StartDate:     "2025-11-03",
			}
			plan := p.GenerateItinerary(prefs)
			if plan.Degraded {
				t.Fatalf("%s/%s: degraded plan", mode, pace)
			}
			checkPlan(t, cat, plan, prefs)
		}
	}
}

func TestGenerateItineraryReturnsToOrigin(t *testing.T) {
	cat := catalog.Default()
	p := newTestPlanner(t, cat)

	prefs := models.Preferences{
		NumDays:       2,
		Budget:        20000,
		TransportMode: models.ModeCar,
		Pace:          models.PaceModerate,
		Origin:        spatial.Point{Lat: 23.36, Lon: 85.33},
		HomeCity:      "Ranchi",
	}
	plan := p.GenerateItinerary(prefs)
	checkPlan(t, cat, plan, prefs)

	last := plan.Days[len(plan.Days)-1]
	if last.VisitCount() == 0 {
		t.Skip("final day has no visits")
	}
	closing := last.Entries[len(last.Entries)-1]
	if closing.Kind != models.EntryReturnToOrigin || closing.Action != "return to Ranchi" {
		t.Fatalf("final entry should return to origin, got %+v", closing)
	}
	if last.OvernightLocation != "Ranchi" {
		t.Fatalf("overnight %q", last.OvernightLocation)
	}
}

func TestGenerateItineraryMustVisit(t *testing.T) {
	cat := catalog.Default()
	p := newTestPlanner(t, cat)

	// a one-day relaxed trip only has room for three POIs, the waterfalls
	// would win every slot on interest alone
	prefs := models.Preferences{
		NumDays:       1,
		Budget:        50000,
		TransportMode: models.ModeCar,
		Pace:          models.PaceRelaxed,
		Origin:        spatial.Point{Lat: 24.48, Lon: 86.70},
		Interests:     []string{"waterfall"},
		MustVisit:     []string{"deoghar_temple"},
	}
	plan := p.GenerateItinerary(prefs)
	checkPlan(t, cat, plan, prefs)

	first := plan.Days[0].Entries[0]
	if !first.IsVisit() || first.POI.ID != "deoghar_temple" {
		t.Fatalf("must-visit deoghar_temple should open the day, got %+v", first)
	}
	if first.StartTime != "04:00" {
		t.Fatalf("temple visit should start at opening, got %s", first.StartTime)
	}
}

func TestGenerateItineraryMultiCityByRail(t *testing.T) {
	cat := catalog.Default()
	p := newTestPlanner(t, cat)

	prefs := models.Preferences{
		NumDays:         5,
		Budget:          30000,
		TransportMode:   models.ModeTrain,
		Pace:            models.PaceModerate,
		Origin:          spatial.Point{Lat: 23.36, Lon: 85.33},
		HomeCity:        "Ranchi",
		DestinationCity: "Gaya",
	}
	plan := p.GenerateItinerary(prefs)
	if plan.Degraded {
		t.Fatalf("unexpected degraded plan")
	}
	checkPlan(t, cat, plan, prefs)

	arrival := plan.Days[0].Entries[0]
	if arrival.Kind != models.EntryTransit || arrival.Journey == nil {
		t.Fatalf("day 1 should open with the journey to Gaya, got %+v", arrival)
	}
	if !arrival.Journey.RailAssisted {
		t.Fatalf("expected a rail journey to Gaya, got %s", arrival.Journey.Narrative)
	}
	if arrival.Journey.Legs[2].Trip.TrainNumber != "12366" {
		t.Fatalf("expected train 12366, got %s", arrival.Journey.Legs[2].Trip.TrainNumber)
	}
	if plan.Days[0].OvernightLocation != "Gaya" {
		t.Fatalf("day 1 overnight %q", plan.Days[0].OvernightLocation)
	}

	if !plan.Days[1].InTransit || !strings.HasPrefix(plan.Days[1].OvernightLocation, "In transit to ") {
		t.Fatalf("day 2 should move to the next city, got %+v", plan.Days[1])
	}
	if plan.Days[1].VisitCount() != 0 {
		t.Fatalf("transit days carry no visits")
	}
}

func TestGenerateItineraryDegradesWithoutCatalog(t *testing.T) {
	p := New(staticSource{}, nil, DefaultOptions())
	p.SetClock(func() time.Time { return fixedNow })

	plan := p.GenerateItinerary(models.Preferences{NumDays: 4, Budget: 5000})
	if !plan.Degraded {
		t.Fatalf("expected a degraded plan")
	}
	if len(plan.Days) != 4 || plan.TotalCost != 0 || plan.TotalPOIs != 0 {
		t.Fatalf("unexpected degraded plan %+v", plan)
	}
	for _, d := range plan.Days {
		if len(d.Entries) != 0 {
			t.Fatalf("degraded days must be empty")
		}
	}
}

func TestGenerateItineraryRecoversFromPanic(t *testing.T) {
	p := New(panicSource{}, nil, DefaultOptions())
	p.SetClock(func() time.Time { return fixedNow })

	plan := p.GenerateItinerary(models.Preferences{NumDays: 2})
	if !plan.Degraded || len(plan.Days) != 2 {
		t.Fatalf("expected 2 degraded days, got %+v", plan)
	}
	if plan.Days[1].Date != "2025-08-11" {
		t.Fatalf("degraded days should still be dated, got %s", plan.Days[1].Date)
	}
}

func TestNewFallsBackToDefaults(t *testing.T) {
	p := New(staticSource{}, nil, Options{Strategy: "zigzag", DayStart: 600, DayEnd: 300})
	if p.opts.Strategy != StrategyNearest {
		t.Fatalf("strategy %s", p.opts.Strategy)
	}
	if p.opts.DayStart != 60 || p.opts.DayEnd != 1440 {
		t.Fatalf("day bounds %d-%d", p.opts.DayStart, p.opts.DayEnd)
	}
}
