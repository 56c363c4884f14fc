package planner

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

// Source hands out the catalog snapshot a planning call runs against
type Source interface {
	Current() *catalog.Catalog
}

// Options tunes the planner. Day bounds are minutes of day.
type Options struct {
	DayStart        int
	DayEnd          int
	Strategy        Strategy
	StationRadiusKm float64
	ReturnToOrigin  bool
}

// DefaultOptions returns a 01:00-24:00 day, nearest-first routing and a
// 25 km station radius
func DefaultOptions() Options {
	return Options{
		DayStart:        60,
		DayEnd:          timeofday.MinutesPerDay,
		Strategy:        StrategyNearest,
		StationRadiusKm: 25,
		ReturnToOrigin:  true,
	}
}

// Planner generates itineraries. It is safe for concurrent use: every call
// takes its own catalog snapshot and keeps all working state local.
type Planner struct {
	source    Source
	distances *spatial.DistanceCache
	opts      Options
	now       func() time.Time
}

// New creates a planner. distances may be nil.
func New(source Source, distances *spatial.DistanceCache, opts Options) *Planner {
	if !opts.Strategy.Valid() {
		opts.Strategy = StrategyNearest
	}
	if opts.DayEnd <= opts.DayStart {
		d := DefaultOptions()
		opts.DayStart, opts.DayEnd = d.DayStart, d.DayEnd
	}
	return &Planner{
		source:    source,
		distances: distances,
		opts:      opts,
		now:       time.Now,
	}
}

// SetClock replaces the wall clock used for the seasonal month, the default
// start date and the generated-at stamp
func (p *Planner) SetClock(now func() time.Time) {
	p.now = now
}

// GenerateItinerary plans a trip for prefs. It never fails: a planning error
// or panic yields an empty plan of prefs.NumDays days flagged as degraded.
func (p *Planner) GenerateItinerary(prefs models.Preferences) (plan models.TripPlan) {
	now := p.now()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Planner] Recovered from panic: %v", r)
			plan = emptyPlan(prefs, now)
		}
	}()

	plan, err := p.generate(prefs, now)
	if err != nil {
		log.Printf("[Planner] Failed to generate itinerary: %v", err)
		return emptyPlan(prefs, now)
	}
	return plan
}

func (p *Planner) generate(prefs models.Preferences, now time.Time) (models.TripPlan, error) {
	if prefs.NumDays < 1 {
		return models.TripPlan{}, fmt.Errorf("invalid trip length: %d days", prefs.NumDays)
	}
	cat := p.source.Current()
	if cat == nil {
		return models.TripPlan{}, errors.New("no catalog loaded")
	}

	ranked := RankCandidates(cat.POIs(), prefs, now.Month(), p.distances)
	selected := SelectCandidates(ranked, prefs)

	calc := NewJourneyCalculator(cat, p.distances)
	c := newComposer(p.opts, prefs, cat, calc, prefs.StartDay(now))
	if prefs.MultiCity() {
		c.composeMultiCity(selected)
	} else {
		c.composeSingleCity(selected)
	}
	c.closeTrip()

	pruned := 0
	if prefs.Budget > 0 {
		pruned = PruneToBudget(c.days, prefs.Budget)
	}

	plan := models.TripPlan{
		ID:              uuid.NewString(),
		Days:            c.days,
		UserPreferences: prefs,
		GeneratedAt:     now,
	}
	for _, d := range plan.Days {
		plan.TotalCost += d.TotalCost
		plan.TotalPOIs += d.VisitCount()
	}
	plan.DroppedPOIs = len(selected) - plan.TotalPOIs

	log.Printf("[Planner] Generated itinerary %s: %d days, %d POIs, %d dropped (%d over budget), cost %.0f",
		plan.ID, len(plan.Days), plan.TotalPOIs, plan.DroppedPOIs, pruned, plan.TotalCost)
	return plan, nil
}

// emptyPlan is the soft-failure result
func emptyPlan(prefs models.Preferences, now time.Time) models.TripPlan {
	n := max(0, prefs.NumDays)
	start := prefs.StartDay(now)

	days := make([]models.ItineraryDay, n)
	for i := range days {
		days[i] = models.ItineraryDay{
			DayNumber:     i + 1,
			Date:          start.AddDate(0, 0, i).Format(models.DateLayout),
			Entries:       []models.ScheduleEntry{},
			TransportMode: prefs.TransportMode,
		}
	}

	return models.TripPlan{
		ID:              uuid.NewString(),
		Days:            days,
		Degraded:        true,
		UserPreferences: prefs,
		GeneratedAt:     now,
	}
}
