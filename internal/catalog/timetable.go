package catalog

import (
	"sort"

	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

type routeKey struct {
	from string
	to   string
}

// Timetable indexes direct trips by ordered station pair.
// It is immutable once built.
type Timetable struct {
	trips map[routeKey][]models.ScheduledTrip
}

// BuildTimetable expands every forward stop pair of every service into a
// direct trip and sorts each pair's trips by departure time of day.
func BuildTimetable(services []models.TrainService) *Timetable {
	t := &Timetable{trips: make(map[routeKey][]models.ScheduledTrip)}

	for _, svc := range services {
		for i := 0; i < len(svc.Stops); i++ {
			from := svc.Stops[i]
			if from.Departure == models.NoTime {
				continue
			}
			depAbs := timeofday.StartOfDay(from.Day) + from.Departure

			for j := i + 1; j < len(svc.Stops); j++ {
				to := svc.Stops[j]
				if to.Arrival == models.NoTime || to.StationID == from.StationID {
					continue
				}
				arrAbs := timeofday.StartOfDay(to.Day) + to.Arrival
				if arrAbs <= depAbs {
					continue
				}

				key := routeKey{from: from.StationID, to: to.StationID}
				t.trips[key] = append(t.trips[key], models.ScheduledTrip{
					TrainNumber:   svc.Number,
					TrainName:     svc.Name,
					FromStationID: from.StationID,
					ToStationID:   to.StationID,
					Departure:     timeofday.OfDay(depAbs),
					Arrival:       timeofday.OfDay(arrAbs),
					Duration:      arrAbs - depAbs,
				})
			}
		}
	}

	for key := range t.trips {
		trips := t.trips[key]
		sort.SliceStable(trips, func(a, b int) bool {
			return trips[a].Departure < trips[b].Departure
		})
	}

	return t
}

// Pairs returns the number of station pairs with at least one trip
func (t *Timetable) Pairs() int {
	return len(t.trips)
}

// Trips returns a copy of the sorted trips between two stations
func (t *Timetable) Trips(from, to string) []models.ScheduledTrip {
	trips := t.trips[routeKey{from: from, to: to}]
	out := make([]models.ScheduledTrip, len(trips))
	copy(out, trips)
	return out
}

// HasTrips reports whether any trip connects the pair
func (t *Timetable) HasTrips(from, to string) bool {
	return len(t.trips[routeKey{from: from, to: to}]) > 0
}

// NextTrip returns the first trip departing at or after timeOfDay. When the
// day has no departures left, the earliest trip of the following day is
// returned with departure and arrival shifted by one day. Arrival is always
// departure + duration, relative to the query day.
func (t *Timetable) NextTrip(from, to string, timeOfDay int) (models.ScheduledTrip, bool) {
	trips := t.trips[routeKey{from: from, to: to}]
	if len(trips) == 0 {
		return models.ScheduledTrip{}, false
	}

	tod := timeofday.OfDay(timeOfDay)
	idx := sort.Search(len(trips), func(i int) bool {
		return trips[i].Departure >= tod
	})

	var trip models.ScheduledTrip
	if idx < len(trips) {
		trip = trips[idx]
	} else {
		trip = trips[0]
		trip.Departure += timeofday.MinutesPerDay
	}
	trip.Arrival = trip.Departure + trip.Duration
	return trip, true
}
