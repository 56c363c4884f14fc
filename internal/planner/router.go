package planner

import (
	"fmt"

	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

// Strategy picks the next POI among the feasible candidates
type Strategy string

// Routing strategies
const (
	// StrategyNearest picks the geometrically closest candidate
	StrategyNearest Strategy = "nearest"
	// StrategyEarliest picks the candidate with the shortest journey time
	StrategyEarliest Strategy = "earliest"
)

// Valid reports whether s is a known strategy
func (s Strategy) Valid() bool {
	return s == StrategyNearest || s == StrategyEarliest
}

// Window is a routing time window in absolute minutes. Day is the calendar
// day index the window belongs to; visits must end strictly before End.
type Window struct {
	Day   int
	Start int
	End   int
}

// Base returns the absolute minute of the window day's midnight
func (w Window) Base() int {
	return timeofday.StartOfDay(w.Day)
}

// DayWindow builds the window of day index d from minute-of-day bounds
func DayWindow(d, dayStart, dayEnd int) Window {
	base := timeofday.StartOfDay(d)
	return Window{Day: d, Start: base + dayStart, End: base + dayEnd}
}

// RouteResult is the outcome of routing one day
type RouteResult struct {
	Entries  []models.ScheduleEntry
	Position Place
	Clock    int // Absolute minute the last visit ended
	Dropped  int
	LastCity string
}

type candidate struct {
	index   int
	journey models.Journey
	key     float64
	arrival int
	start   int
	end     int
}

// RouteDay orders pois greedily from start within window. POIs that cannot
// be reached and finished in time are dropped for the day.
func RouteDay(calc *JourneyCalculator, pois []models.POI, start Place, window Window, mode models.TransportMode, strategy Strategy) RouteResult {
	res := RouteResult{Position: start, Clock: window.Start}
	remaining := append([]models.POI(nil), pois...)
	base := window.Base()

	for len(remaining) > 0 {
		var best *candidate
		for i, poi := range remaining {
			j := calc.Journey(res.Position, POIPlace(poi), mode, res.Clock)
			arrival := res.Clock + j.Minutes
			begin := max(arrival, base+poi.OpenTime)
			end := begin + poi.Duration
			if end >= window.End || end > base+poi.CloseTime {
				continue
			}

			key := calc.Distance(res.Position.Point, poi.Location())
			if strategy == StrategyEarliest {
				key = float64(j.Minutes)
			}
			if best == nil || key < best.key {
				best = &candidate{index: i, journey: j, key: key, arrival: arrival, start: begin, end: end}
			}
		}
		if best == nil {
			break
		}

		poi := remaining[best.index]
		remaining = append(remaining[:best.index], remaining[best.index+1:]...)

		journey := best.journey
		res.Entries = append(res.Entries, models.ScheduleEntry{
			Kind:             models.EntryVisit,
			POI:              poi.Summarize(),
			ArrivalTime:      timeofday.FormatAbsolute(best.arrival, window.Day),
			StartTime:        timeofday.FormatAbsolute(best.start, window.Day),
			EndTime:          timeofday.FormatAbsolute(best.end, window.Day),
			ArrivalMinute:    best.arrival,
			StartMinute:      best.start,
			EndMinute:        best.end,
			VisitCost:        poi.Cost,
			TravelCost:       journey.Cost,
			TravelTime:       journey.Minutes,
			TravelDistanceKm: journey.DistanceKm,
			Journey:          &journey,
		})
		res.Clock = best.end
		res.Position = POIPlace(poi)
		res.LastCity = poi.City
	}

	res.Dropped = len(remaining)
	return res
}

// ReturnEntry builds the closing leg back to the origin. Its time and cost
// are recorded even when it runs past the day window.
func ReturnEntry(calc *JourneyCalculator, from, origin Place, mode models.TransportMode, clock, day int) models.ScheduleEntry {
	j := calc.Journey(from, origin, mode, clock)
	return models.ScheduleEntry{
		Kind:             models.EntryReturnToOrigin,
		Action:           fmt.Sprintf("return to %s", origin.Name),
		ArrivalTime:      timeofday.FormatAbsolute(j.Arrival, day),
		ArrivalMinute:    j.Arrival,
		TravelCost:       j.Cost,
		TravelTime:       j.Minutes,
		TravelDistanceKm: j.DistanceKm,
		Journey:          &j,
	}
}
