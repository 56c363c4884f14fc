package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

func TestDefaultPOIsAreSchedulable(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range DefaultPOIs() {
		if seen[p.ID] {
			t.Fatalf("duplicate poi id %s", p.ID)
		}
		seen[p.ID] = true
		if !p.Schedulable() {
			t.Fatalf("poi %s cannot fit its opening window", p.ID)
		}
		if len(p.Categories) == 0 {
			t.Fatalf("poi %s has no categories", p.ID)
		}
	}
}

func TestDefaultPOIStationsExist(t *testing.T) {
	c := Default()
	for _, p := range c.POIs() {
		if p.StationID == "" {
			continue
		}
		if _, ok := c.Station(p.StationID); !ok {
			t.Fatalf("poi %s references unknown station %s", p.ID, p.StationID)
		}
	}
}

func TestFindStationByCity(t *testing.T) {
	c := Default()

	s, ok := c.FindStationByCity("ranchi")
	if !ok || s.ID != "RNC" {
		t.Fatalf("expected first Ranchi station RNC, got %+v ok=%v", s, ok)
	}
	if _, ok := c.FindStationByCity("Atlantis"); ok {
		t.Fatalf("unexpected station for unknown city")
	}
}

func TestNearestStation(t *testing.T) {
	c := Default()

	s, ok := c.NearestStation(spatial.Point{Lat: 23.36, Lon: 85.33}, 25)
	if !ok || s.ID != "RNC" {
		t.Fatalf("expected RNC near Ranchi, got %+v ok=%v", s, ok)
	}
	if _, ok := c.NearestStation(spatial.Point{Lat: 0, Lon: 0}, 25); ok {
		t.Fatalf("expected no station near null island")
	}
}

func TestCanonicalCityAndCities(t *testing.T) {
	c := Default()
	name, ok := c.CanonicalCity("  gaya ")
	if !ok || name != "Gaya" {
		t.Fatalf("unexpected canonical city %q ok=%v", name, ok)
	}
	if len(c.CityPOIs("Ranchi")) != 4 {
		t.Fatalf("expected 4 Ranchi pois, got %d", len(c.CityPOIs("Ranchi")))
	}
	cities := c.Cities()
	for i := 1; i < len(cities); i++ {
		if cities[i-1] > cities[i] {
			t.Fatalf("cities not sorted: %v", cities)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	pois := c.POIs()
	pois[0].Name = "changed"
	if p, _ := c.POI(pois[0].ID); p.Name == "changed" {
		t.Fatalf("catalog was mutated through a returned slice")
	}
}

func TestStoreReload(t *testing.T) {
	calls := 0
	loader := func(ctx context.Context) (*Catalog, error) {
		calls++
		if calls == 1 {
			return New(DefaultPOIs()[:2], nil, nil), nil
		}
		return Default(), nil
	}

	store, err := Open(context.Background(), loader)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	old := store.Current()
	if len(old.POIs()) != 2 {
		t.Fatalf("expected initial snapshot with 2 pois")
	}

	if _, err := store.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(store.Current().POIs()) != len(DefaultPOIs()) {
		t.Fatalf("expected reloaded snapshot")
	}
	if len(old.POIs()) != 2 {
		t.Fatalf("old snapshot must stay intact")
	}
}

func TestStoreReloadWithoutLoader(t *testing.T) {
	store := NewStore(Default(), nil)
	if _, err := store.Reload(context.Background()); !errors.Is(err, ErrNoLoader) {
		t.Fatalf("expected ErrNoLoader, got %v", err)
	}
}

func TestBuildTimetableGeneratesForwardPairs(t *testing.T) {
	services := []models.TrainService{{
		Number: "1", Name: "Test",
		Stops: []models.TrainStop{
			stop("A", "", "10:00", 0),
			stop("B", "11:00", "11:05", 0),
			stop("C", "12:00", "", 0),
		},
	}}
	tt := BuildTimetable(services)

	if tt.Pairs() != 3 {
		t.Fatalf("expected 3 forward pairs, got %d", tt.Pairs())
	}
	if tt.HasTrips("C", "A") {
		t.Fatalf("reverse pair must not exist")
	}
	trips := tt.Trips("A", "C")
	if len(trips) != 1 || trips[0].Duration != 120 {
		t.Fatalf("unexpected A->C trips: %+v", trips)
	}
	bc := tt.Trips("B", "C")
	if len(bc) != 1 || bc[0].Departure != hm("11:05") || bc[0].Duration != 55 {
		t.Fatalf("unexpected B->C trips: %+v", bc)
	}
}

func TestBuildTimetableMultiDayService(t *testing.T) {
	tt := Default().Timetable()
	trips := tt.Trips("HJP", "RNC")
	if len(trips) != 1 {
		t.Fatalf("expected one HJP->RNC trip, got %d", len(trips))
	}
	// 20:00 day 0 to 21:10 day 1
	if trips[0].Duration != timeofday.MinutesPerDay+70 {
		t.Fatalf("unexpected duration %d", trips[0].Duration)
	}
	if trips[0].Arrival != hm("21:10") {
		t.Fatalf("index arrival should be a time of day, got %d", trips[0].Arrival)
	}
}

func TestTimetableSortedByDeparture(t *testing.T) {
	tt := Default().Timetable()
	// Jan Shatabdi 14:05 and Palamu Express 17:00 both run RNC -> BRKA
	trips := tt.Trips("RNC", "BRKA")
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}
	if trips[0].Departure > trips[1].Departure {
		t.Fatalf("trips not sorted: %+v", trips)
	}
}

func TestFindNextTripSameDay(t *testing.T) {
	c := Default()
	trip, ok := c.FindNextTrip("RNC", "BRKA", hm("15:00"))
	if !ok {
		t.Fatalf("expected a trip")
	}
	if trip.Departure != hm("17:00") || trip.TrainNumber != "13347" {
		t.Fatalf("unexpected trip %+v", trip)
	}
	if trip.Departure < hm("15:00") {
		t.Fatalf("departure before query time")
	}
	if trip.Arrival != trip.Departure+trip.Duration {
		t.Fatalf("arrival must be departure + duration")
	}
}

func TestFindNextTripExactDeparture(t *testing.T) {
	trip, ok := Default().FindNextTrip("RNC", "GAYA", hm("14:05"))
	if !ok || trip.Departure != hm("14:05") {
		t.Fatalf("trip departing exactly at query time should be returned, got %+v", trip)
	}
}

func TestFindNextTripRollsToNextDay(t *testing.T) {
	c := Default()
	trip, ok := c.FindNextTrip("RNC", "GAYA", hm("20:00"))
	if !ok {
		t.Fatalf("expected a next-day trip")
	}
	if trip.Departure != hm("14:05")+timeofday.MinutesPerDay {
		t.Fatalf("expected next-day departure, got %d", trip.Departure)
	}
	if trip.Arrival != hm("20:40")+timeofday.MinutesPerDay {
		t.Fatalf("expected next-day arrival, got %d", trip.Arrival)
	}
}

func TestFindNextTripNormalizesAbsoluteTime(t *testing.T) {
	c := Default()
	trip, ok := c.FindNextTrip("RNC", "BRKA", timeofday.MinutesPerDay+hm("15:00"))
	if !ok || trip.Departure != hm("17:00") {
		t.Fatalf("query time should be reduced to time of day, got %+v", trip)
	}
}

func TestFindNextTripUnknownPair(t *testing.T) {
	if _, ok := Default().FindNextTrip("RNC", "HJP", 0); ok {
		t.Fatalf("expected no trip for an unconnected pair")
	}
}
