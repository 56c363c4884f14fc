package planner

import (
	"strings"
	"testing"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
)

// railCatalog has one service A 10:00 -> B 12:00 and an unserved station C.
// A and A2 share a city.
func railCatalog() *catalog.Catalog {
	stations := []models.Station{
		{ID: "A", Name: "Alpha Junction", City: "Alpha", Lat: 0, Lon: 0},
		{ID: "A2", Name: "Alpha Halt", City: "Alpha", Lat: 0, Lon: 0.05},
		{ID: "B", Name: "Beta Junction", City: "Beta", Lat: 0, Lon: 1},
		{ID: "C", Name: "Gamma Road", City: "Gamma", Lat: 0, Lon: 2},
	}
	services := []models.TrainService{{
		Number: "T1",
		Name:   "Alpha Beta Express",
		Stops: []models.TrainStop{
			{StationID: "A", Arrival: models.NoTime, Departure: 600, Day: 0},
			{StationID: "B", Arrival: 720, Departure: models.NoTime, Day: 0},
		},
	}}
	return catalog.New(nil, stations, services)
}

func TestDriveMinutes(t *testing.T) {
	tests := []struct {
		name string
		km   float64
		mode models.TransportMode
		want int
	}{
		{"highway branch", 500, models.ModeCar, 375},
		{"short trip traffic", 10, models.ModeCar, 13},
		{"medium trip traffic", 30, models.ModeCar, 43},
		{"long trip traffic", 100, models.ModeCar, 156},
		{"bus profile", 70, models.ModeBus, 156},
		{"unknown mode uses car", 10, models.TransportMode("rocket"), 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DriveMinutes(tt.km, tt.mode); got != tt.want {
				t.Errorf("DriveMinutes(%v, %s) = %d, want %d", tt.km, tt.mode, got, tt.want)
			}
		})
	}
}

func TestDirectJourney(t *testing.T) {
	calc := NewJourneyCalculator(railCatalog(), nil)
	from := Place{Name: "here", Point: spatial.Point{Lat: 0, Lon: 0}}
	to := Place{Name: "there", Point: spatial.Point{Lat: 0, Lon: 0.5}}

	j := calc.Journey(from, to, models.ModeCar, 100)
	km := spatial.DistanceKm(from.Point, to.Point)

	if j.RailAssisted || j.Fallback {
		t.Fatalf("expected a plain road journey, got %+v", j)
	}
	if j.Minutes != DriveMinutes(km, models.ModeCar) {
		t.Fatalf("minutes %d, want %d", j.Minutes, DriveMinutes(km, models.ModeCar))
	}
	if j.Departure != 100 || j.Arrival != 100+j.Minutes {
		t.Fatalf("unexpected times %d -> %d", j.Departure, j.Arrival)
	}
	if len(j.Legs) != 1 || j.Legs[0].Kind != models.LegRoad {
		t.Fatalf("expected one road leg, got %+v", j.Legs)
	}
}

func TestRailJourneyWaitsForTrain(t *testing.T) {
	cat := railCatalog()
	calc := NewJourneyCalculator(cat, nil)

	from := Place{Name: "hotel", Point: spatial.Point{Lat: 0, Lon: -0.05}, StationID: "A"}
	to := Place{Name: "museum", Point: spatial.Point{Lat: 0.05, Lon: 1}, StationID: "B"}

	a, _ := cat.Station("A")
	b, _ := cat.Station("B")
	leg1 := DriveMinutes(spatial.DistanceKm(from.Point, a.Location()), models.ModeAuto)
	leg3 := DriveMinutes(spatial.DistanceKm(b.Location(), to.Point), models.ModeAuto)
	if leg1 == 0 || leg3 == 0 {
		t.Fatalf("test places should be off-station")
	}

	// reach the station 30 minutes before the 10:00 departure
	now := 600 - 30 - leg1
	j := calc.Journey(from, to, models.ModeTrain, now)

	if !j.RailAssisted || j.Mode != models.ModeTrain {
		t.Fatalf("expected a rail journey, got %+v", j)
	}
	if j.WaitMinutes != 30 {
		t.Fatalf("wait %d, want 30", j.WaitMinutes)
	}
	if want := leg1 + 30 + 120 + leg3; j.Minutes != want {
		t.Fatalf("total %d, want %d", j.Minutes, want)
	}
	if j.Arrival != now+j.Minutes {
		t.Fatalf("arrival %d, want %d", j.Arrival, now+j.Minutes)
	}
	if len(j.Legs) != 4 || j.Legs[2].Kind != models.LegRail || j.Legs[2].Trip == nil || j.Legs[2].Trip.TrainNumber != "T1" {
		t.Fatalf("unexpected legs %+v", j.Legs)
	}

	ticket := spatial.DistanceKm(a.Location(), b.Location()) * 2.0
	if !almostEqual(j.Legs[2].Cost, ticket) {
		t.Fatalf("ticket %v, want %v", j.Legs[2].Cost, ticket)
	}
}

func TestRailJourneyNextDay(t *testing.T) {
	calc := NewJourneyCalculator(railCatalog(), nil)
	from := Place{Name: "Alpha Junction", Point: spatial.Point{Lat: 0, Lon: 0}, StationID: "A"}
	to := Place{Name: "Beta Junction", Point: spatial.Point{Lat: 0, Lon: 1}, StationID: "B"}

	// 11:00 misses the only train
	j := calc.Journey(from, to, models.ModeTrain, 660)
	if j.WaitMinutes != 600+1440-660 {
		t.Fatalf("wait %d, want %d", j.WaitMinutes, 600+1440-660)
	}
	if j.Arrival != 720+1440 {
		t.Fatalf("arrival %d, want %d", j.Arrival, 720+1440)
	}
}

func TestRailJourneyFallsBackToCar(t *testing.T) {
	calc := NewJourneyCalculator(railCatalog(), nil)
	from := Place{Name: "Alpha Junction", Point: spatial.Point{Lat: 0, Lon: 0}, StationID: "A"}
	to := Place{Name: "Gamma Road", Point: spatial.Point{Lat: 0, Lon: 2}, StationID: "C"}

	j := calc.Journey(from, to, models.ModeTrain, 600)
	if !j.Fallback || j.RailAssisted || j.Mode != models.ModeCar {
		t.Fatalf("expected a car fallback, got %+v", j)
	}
	if !strings.Contains(j.Narrative, "No scheduled train") {
		t.Fatalf("narrative should mention the missing train: %q", j.Narrative)
	}
}

func TestRailSkippedWithinCity(t *testing.T) {
	calc := NewJourneyCalculator(railCatalog(), nil)
	from := Place{Name: "Alpha Junction", Point: spatial.Point{Lat: 0, Lon: 0}, StationID: "A"}
	to := Place{Name: "Alpha Halt", Point: spatial.Point{Lat: 0, Lon: 0.05}, StationID: "A2"}

	j := calc.Journey(from, to, models.ModeTrain, 600)
	if j.RailAssisted || j.Fallback || j.Mode != models.ModeTrain {
		t.Fatalf("expected a direct journey in the requested mode, got %+v", j)
	}
}

func TestRailNotUsedForRoadModes(t *testing.T) {
	calc := NewJourneyCalculator(railCatalog(), nil)
	from := Place{Name: "Alpha Junction", Point: spatial.Point{Lat: 0, Lon: 0}, StationID: "A"}
	to := Place{Name: "Beta Junction", Point: spatial.Point{Lat: 0, Lon: 1}, StationID: "B"}

	j := calc.Journey(from, to, models.ModeBus, 570)
	if j.RailAssisted || j.Mode != models.ModeBus {
		t.Fatalf("bus journeys never use rail, got %+v", j)
	}
}
