package service

import (
	"testing"
	"time"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/planner"
)

func newItineraryService() *ItineraryService {
	store := catalog.NewStore(catalog.Default(), nil)
	p := planner.New(store, nil, planner.DefaultOptions())
	p.SetClock(func() time.Time { return testNow })

	s := NewItineraryService(p, store)
	s.now = func() time.Time { return testNow }
	return s
}

func TestItineraryServiceGenerate(t *testing.T) {
	s := newItineraryService()

	plan := s.Generate(decode(t, `{
		"num_days": "3",
		"budget": 10000,
		"pace": "relaxed",
		"interests": ["waterfall"],
		"base_location": [23.36, 85.33]
	}`))

	if plan.Degraded || len(plan.Days) != 3 {
		t.Fatalf("unexpected plan: degraded=%v days=%d", plan.Degraded, len(plan.Days))
	}
	if plan.UserPreferences.Pace != models.PaceRelaxed || plan.UserPreferences.NumDays != 3 {
		t.Fatalf("preferences not echoed: %+v", plan.UserPreferences)
	}
	if plan.Days[0].Date != "2025-03-04" {
		t.Fatalf("expected the plan to start today, got %s", plan.Days[0].Date)
	}
}

func TestItineraryServiceClampsDays(t *testing.T) {
	plan := newItineraryService().Generate(decode(t, `{"num_days": 99}`))
	if len(plan.Days) != MaxNumDays {
		t.Fatalf("expected %d days, got %d", MaxNumDays, len(plan.Days))
	}
}
