package planner

import (
	"fmt"
	"strings"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

// Road model constants
const (
	highwayThresholdKm = 200.0
	highwaySpeedKmh    = 80.0
	shortTripKm        = 20.0
	mediumTripKm       = 50.0
	shortTraffic       = 1.1
	mediumTraffic      = 1.2
	longTraffic        = 1.3
)

// Place is a journey endpoint. StationID is empty when no station serves it.
type Place struct {
	Name      string
	Point     spatial.Point
	City      string
	StationID string
}

// POIPlace converts a POI into a journey endpoint
func POIPlace(p models.POI) Place {
	return Place{Name: p.Name, Point: p.Location(), City: p.City, StationID: p.StationID}
}

// DriveMinutes estimates road time for km in mode, rounded down.
// Long trips use a flat highway speed and no traffic factor.
func DriveMinutes(km float64, mode models.TransportMode) int {
	speed := mode.Profile().SpeedKmh
	factor := 1.0
	switch {
	case km > highwayThresholdKm:
		speed = highwaySpeedKmh
	case km < shortTripKm:
		factor = shortTraffic
	case km < mediumTripKm:
		factor = mediumTraffic
	default:
		factor = longTraffic
	}
	return int(km / speed * 60 * factor)
}

// DriveCost is the road cost for km in mode
func DriveCost(km float64, mode models.TransportMode) float64 {
	return km * mode.Profile().CostKm
}

// JourneyCalculator prices and times movements between places against one
// catalog snapshot
type JourneyCalculator struct {
	catalog   *catalog.Catalog
	distances *spatial.DistanceCache
}

// NewJourneyCalculator creates a calculator. distances may be nil.
func NewJourneyCalculator(c *catalog.Catalog, distances *spatial.DistanceCache) *JourneyCalculator {
	return &JourneyCalculator{catalog: c, distances: distances}
}

// Distance returns the great-circle distance between two points in km
func (j *JourneyCalculator) Distance(a, b spatial.Point) float64 {
	return j.distances.Distance(a, b)
}

// Journey computes travel from one place to another starting at absolute
// minute now. Rail is used when both ends sit at stations of different
// cities and the mode permits it; a pair without any trip falls back to
// driving by car.
func (j *JourneyCalculator) Journey(from, to Place, mode models.TransportMode, now int) models.Journey {
	if j.railEligible(from, to, mode) {
		if journey, ok := j.railJourney(from, to, now); ok {
			return journey
		}
		journey := j.Direct(from, to, models.ModeCar, now)
		journey.Fallback = true
		journey.Narrative = fmt.Sprintf("No scheduled train %s → %s; %s", from.StationID, to.StationID, journey.Narrative)
		return journey
	}
	return j.Direct(from, to, mode, now)
}

func (j *JourneyCalculator) railEligible(from, to Place, mode models.TransportMode) bool {
	if !mode.PermitsRail() || from.StationID == "" || to.StationID == "" || from.StationID == to.StationID {
		return false
	}
	origin, okFrom := j.catalog.Station(from.StationID)
	dest, okTo := j.catalog.Station(to.StationID)
	if okFrom && okTo && strings.EqualFold(origin.City, dest.City) {
		return false
	}
	return true
}

// Direct computes a single road leg
func (j *JourneyCalculator) Direct(from, to Place, mode models.TransportMode, now int) models.Journey {
	if !mode.Valid() {
		mode = models.ModeCar
	}
	km := j.Distance(from.Point, to.Point)
	minutes := DriveMinutes(km, mode)
	cost := DriveCost(km, mode)

	return models.Journey{
		Mode:       mode,
		DistanceKm: km,
		Minutes:    minutes,
		Cost:       cost,
		Departure:  now,
		Arrival:    now + minutes,
		Legs: []models.JourneyLeg{{
			Kind: models.LegRoad, Mode: mode, From: from.Name, To: to.Name,
			DistanceKm: km, Minutes: minutes, Cost: cost,
		}},
		Narrative: fmt.Sprintf("%s %.1f km to %s (%d min)", mode, km, to.Name, minutes),
	}
}

// railJourney builds road → train → road. ok is false when a station is
// unknown or no trip serves the pair.
func (j *JourneyCalculator) railJourney(from, to Place, now int) (models.Journey, bool) {
	origin, ok := j.catalog.Station(from.StationID)
	if !ok {
		return models.Journey{}, false
	}
	dest, ok := j.catalog.Station(to.StationID)
	if !ok {
		return models.Journey{}, false
	}

	// leg 1: to the departure station
	leg1Km := j.Distance(from.Point, origin.Location())
	leg1Min := DriveMinutes(leg1Km, models.ModeAuto)
	leg1Cost := DriveCost(leg1Km, models.ModeAuto)
	atStation := now + leg1Min

	trip, ok := j.catalog.FindNextTrip(origin.ID, dest.ID, atStation)
	if !ok {
		return models.Journey{}, false
	}
	dayStart := atStation - timeofday.OfDay(atStation)
	wait := trip.Departure - timeofday.OfDay(atStation)
	departure := dayStart + trip.Departure

	railKm := j.Distance(origin.Location(), dest.Location())
	ticket := railKm * models.ModeTrain.Profile().CostKm

	// leg 3: from the arrival station
	leg3Km := j.Distance(dest.Location(), to.Point)
	leg3Min := DriveMinutes(leg3Km, models.ModeAuto)
	leg3Cost := DriveCost(leg3Km, models.ModeAuto)

	total := leg1Min + wait + trip.Duration + leg3Min

	narrative := fmt.Sprintf(
		"auto %.1f km to %s (%d min), wait %d min, train %s %s departs %s arrives %s, auto %.1f km to %s (%d min)",
		leg1Km, origin.Name, leg1Min, wait,
		trip.TrainNumber, trip.TrainName,
		timeofday.FormatAbsolute(departure, timeofday.DayOffset(now)),
		timeofday.FormatAbsolute(departure+trip.Duration, timeofday.DayOffset(now)),
		leg3Km, to.Name, leg3Min,
	)

	return models.Journey{
		Mode:         models.ModeTrain,
		DistanceKm:   leg1Km + railKm + leg3Km,
		Minutes:      total,
		Cost:         leg1Cost + ticket + leg3Cost,
		Departure:    now,
		Arrival:      now + total,
		WaitMinutes:  wait,
		RailAssisted: true,
		Legs: []models.JourneyLeg{
			{Kind: models.LegRoad, Mode: models.ModeAuto, From: from.Name, To: origin.Name, DistanceKm: leg1Km, Minutes: leg1Min, Cost: leg1Cost},
			{Kind: models.LegWait, From: origin.Name, To: origin.Name, Minutes: wait},
			{Kind: models.LegRail, Mode: models.ModeTrain, From: origin.Name, To: dest.Name, DistanceKm: railKm, Minutes: trip.Duration, Cost: ticket, Trip: &trip},
			{Kind: models.LegRoad, Mode: models.ModeAuto, From: dest.Name, To: to.Name, DistanceKm: leg3Km, Minutes: leg3Min, Cost: leg3Cost},
		},
		Narrative: narrative,
	}, true
}
