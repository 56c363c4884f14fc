package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

// composer assembles the days of one planning call
type composer struct {
	opts   Options
	prefs  models.Preferences
	cat    *catalog.Catalog
	calc   *JourneyCalculator
	origin Place
	caps   DayCaps
	start  time.Time
	days   []models.ItineraryDay
}

func newComposer(opts Options, prefs models.Preferences, cat *catalog.Catalog, calc *JourneyCalculator, start time.Time) *composer {
	c := &composer{
		opts:  opts,
		prefs: prefs,
		cat:   cat,
		calc:  calc,
		caps:  CapsFor(prefs),
		start: start,
		days:  make([]models.ItineraryDay, 0, prefs.NumDays),
	}
	c.origin = c.originPlace()
	return c
}

// originPlace resolves the origin's station from the home city, else the
// nearest station within the configured radius
func (c *composer) originPlace() Place {
	place := Place{Name: "Base location", Point: c.prefs.Origin}
	if c.prefs.HomeCity != "" {
		place.Name = c.prefs.HomeCity
		place.City = c.prefs.HomeCity
		if s, ok := c.cat.FindStationByCity(c.prefs.HomeCity); ok {
			place.StationID = s.ID
		}
	}
	if place.StationID == "" {
		if s, ok := c.cat.NearestStation(c.prefs.Origin, c.opts.StationRadiusKm); ok {
			place.StationID = s.ID
		}
	}
	return place
}

// cityPlace is where journeys into a city end: its station, or the centroid
// of its POIs when no station serves it
func (c *composer) cityPlace(city string, pois []models.POI) Place {
	if s, ok := c.cat.FindStationByCity(city); ok {
		return Place{Name: s.Name, Point: s.Location(), City: city, StationID: s.ID}
	}

	if len(pois) == 0 {
		pois = c.cat.CityPOIs(city)
	}
	if len(pois) == 0 {
		return Place{Name: city, Point: c.origin.Point, City: city}
	}
	points := make([]spatial.Point, len(pois))
	for i, p := range pois {
		points[i] = p.Location()
	}
	return Place{Name: city, Point: spatial.Centroid(points), City: city}
}

func (c *composer) full() bool {
	return len(c.days) >= c.prefs.NumDays
}

func (c *composer) window(d int) Window {
	return DayWindow(d, c.opts.DayStart, c.opts.DayEnd)
}

func (c *composer) appendDay(entries []models.ScheduleEntry, overnight string, inTransit bool) {
	d := len(c.days)
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	day := models.ItineraryDay{
		DayNumber:         d + 1,
		Date:              c.start.AddDate(0, 0, d).Format(models.DateLayout),
		Entries:           entries,
		TransportMode:     c.prefs.TransportMode,
		OvernightLocation: overnight,
		InTransit:         inTransit,
	}
	for _, e := range entries {
		day.TotalCost += e.Cost()
		day.TotalTravelTime += e.TravelTime
		if e.IsVisit() {
			day.TotalVisitTime += e.POI.Duration
		}
	}
	c.days = append(c.days, day)
}

func (c *composer) route(pois []models.POI, from Place, w Window) RouteResult {
	return RouteDay(c.calc, pois, from, w, c.prefs.TransportMode, c.opts.Strategy)
}

// composeSingleCity spreads the selection over every day and routes each
// day from where the previous one ended
func (c *composer) composeSingleCity(selected []models.POI) {
	buckets, _ := AssignDays(selected, c.prefs.NumDays, c.caps, c.prefs.IsMustVisit)

	pos := c.origin
	overnight := c.origin.Name
	for d := 0; d < c.prefs.NumDays; d++ {
		res := c.route(buckets[d], pos, c.window(d))
		if res.LastCity != "" {
			overnight = res.LastCity
		}
		pos = res.Position
		c.appendDay(res.Entries, overnight, false)
	}
}

// composeMultiCity travels to the destination first, then visits the other
// cities of the selection in discovery order with one transit day between
// consecutive cities. It stops as soon as the trip length is reached.
func (c *composer) composeMultiCity(selected []models.POI) {
	order, byCity := cityOrder(selected, c.prefs.DestinationCity)

	pos := c.origin
	clock := c.window(0).Start
	overnight := c.origin.Name

	for i, city := range order {
		if c.full() {
			break
		}
		target := c.cityPlace(city, byCity[city])
		label := fmt.Sprintf("In transit to %s", city)

		var prefix []models.ScheduleEntry
		if i == 0 {
			j := c.calc.Journey(pos, target, c.prefs.TransportMode, clock)
			segments := splitTransit(j, label)
			for _, seg := range segments[:len(segments)-1] {
				if c.full() {
					return
				}
				c.appendDay([]models.ScheduleEntry{seg}, label, true)
			}
			prefix = segments[len(segments)-1:]
			clock = j.Arrival
		} else {
			d := len(c.days)
			dep := c.window(d).Start
			j := c.calc.Journey(pos, target, c.prefs.TransportMode, dep)
			c.appendDay([]models.ScheduleEntry{transitEntry(j, d, j.Departure, j.Arrival, label, true)}, label, true)
			clock = j.Arrival
		}

		pos, clock, overnight = c.fillCity(city, byCity[city], target, clock, prefix)
	}

	for !c.full() {
		c.appendDay(nil, overnight, false)
	}
}

// fillCity buckets a city's POIs with the day assigner and routes one bucket
// per day. prefix entries open the first day (the arrival leg).
func (c *composer) fillCity(city string, pois []models.POI, pos Place, clock int, prefix []models.ScheduleEntry) (Place, int, string) {
	overnight := city
	remaining := c.prefs.NumDays - len(c.days)
	if remaining <= 0 {
		return pos, clock, overnight
	}

	target := c.caps.MaxPOIs
	if target < 1 {
		target = 1
	}
	k := (len(pois) + target - 1) / target
	k = max(1, min(k, remaining))
	buckets, _ := AssignDays(pois, k, c.caps, c.prefs.IsMustVisit)

	for i := 0; i < k && !c.full(); i++ {
		w := c.window(len(c.days))
		if clock > w.Start {
			w.Start = clock
		}
		res := c.route(buckets[i], pos, w)

		var entries []models.ScheduleEntry
		if i == 0 {
			entries = append(entries, prefix...)
		}
		entries = append(entries, res.Entries...)
		if res.LastCity != "" {
			overnight = res.LastCity
		}
		c.appendDay(entries, overnight, false)
		pos, clock = res.Position, res.Clock
	}
	return pos, clock, overnight
}

// closeTrip appends the return leg to the final day when it has visits
func (c *composer) closeTrip() {
	if !c.opts.ReturnToOrigin || len(c.days) == 0 {
		return
	}
	last := &c.days[len(c.days)-1]

	var lastVisit *models.ScheduleEntry
	for i := range last.Entries {
		if last.Entries[i].IsVisit() {
			lastVisit = &last.Entries[i]
		}
	}
	if lastVisit == nil {
		return
	}

	from := Place{Name: lastVisit.POI.Name, Point: spatial.Point{Lat: lastVisit.POI.Lat, Lon: lastVisit.POI.Lon}, City: lastVisit.POI.City}
	if poi, ok := c.cat.POI(lastVisit.POI.ID); ok {
		from = POIPlace(poi)
	}

	entry := ReturnEntry(c.calc, from, c.origin, c.prefs.TransportMode, lastVisit.EndMinute, len(c.days)-1)
	last.Entries = append(last.Entries, entry)
	last.TotalCost += entry.Cost()
	last.TotalTravelTime += entry.TravelTime
	last.OvernightLocation = c.origin.Name
}

// cityOrder lists the destination first, then every other city of the
// selection in the order it is first seen
func cityOrder(selected []models.POI, destination string) ([]string, map[string][]models.POI) {
	order := []string{destination}
	byCity := map[string][]models.POI{destination: nil}

	for _, poi := range selected {
		city := poi.City
		if strings.EqualFold(city, destination) {
			city = destination
		}
		if _, ok := byCity[city]; !ok {
			order = append(order, city)
		}
		byCity[city] = append(byCity[city], poi)
	}
	return order, byCity
}

// splitTransit books a journey across the calendar days it touches, one
// entry per day with the minutes spent travelling that day. Cost and the
// journey detail sit on the first entry.
func splitTransit(j models.Journey, label string) []models.ScheduleEntry {
	first := timeofday.DayOffset(j.Departure)
	last := timeofday.DayOffset(j.Arrival)

	out := make([]models.ScheduleEntry, 0, last-first+1)
	for d := first; d <= last; d++ {
		from := max(j.Departure, timeofday.StartOfDay(d))
		to := min(j.Arrival, timeofday.StartOfDay(d+1))
		out = append(out, transitEntry(j, d, from, to, label, d == first))
	}
	return out
}

func transitEntry(j models.Journey, day, from, to int, label string, book bool) models.ScheduleEntry {
	e := models.ScheduleEntry{
		Kind:          models.EntryTransit,
		Action:        label,
		ArrivalTime:   timeofday.FormatAbsolute(j.Arrival, day),
		StartTime:     timeofday.FormatAbsolute(from, day),
		EndTime:       timeofday.FormatAbsolute(to, day),
		ArrivalMinute: j.Arrival,
		StartMinute:   from,
		EndMinute:     to,
		TravelTime:    to - from,
	}
	if book {
		journey := j
		e.TravelCost = j.Cost
		e.TravelDistanceKm = j.DistanceKm
		e.Journey = &journey
	}
	return e
}
