// Package catalog holds the read-only reference data shared by all planning
// calls: points of interest, the station registry and the timetable index.
package catalog

import (
	"sort"
	"strings"

	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
)

// Catalog is an immutable snapshot of the reference data. Accessors return
// copies so callers cannot mutate shared state.
type Catalog struct {
	pois      []models.POI
	poiIndex  map[string]int
	stations  []models.Station
	stationIx map[string]int
	byCity    map[string]int // lowercased city -> first station index
	cities    map[string]string
	timetable *Timetable
}

// New builds a catalog snapshot. Input slices are copied.
func New(pois []models.POI, stations []models.Station, services []models.TrainService) *Catalog {
	c := &Catalog{
		pois:      append([]models.POI(nil), pois...),
		poiIndex:  make(map[string]int, len(pois)),
		stations:  append([]models.Station(nil), stations...),
		stationIx: make(map[string]int, len(stations)),
		byCity:    make(map[string]int),
		cities:    make(map[string]string),
		timetable: BuildTimetable(services),
	}

	for i, p := range c.pois {
		c.poiIndex[p.ID] = i
		c.addCity(p.City)
	}
	for i, s := range c.stations {
		c.stationIx[s.ID] = i
		key := cityKey(s.City)
		if _, ok := c.byCity[key]; !ok {
			c.byCity[key] = i
		}
		c.addCity(s.City)
	}

	return c
}

func (c *Catalog) addCity(city string) {
	if city == "" {
		return
	}
	key := cityKey(city)
	if _, ok := c.cities[key]; !ok {
		c.cities[key] = city
	}
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// POIs returns every POI in catalog order
func (c *Catalog) POIs() []models.POI {
	return append([]models.POI(nil), c.pois...)
}

// POI looks up a POI by id
func (c *Catalog) POI(id string) (models.POI, bool) {
	i, ok := c.poiIndex[id]
	if !ok {
		return models.POI{}, false
	}
	return c.pois[i], true
}

// Stations returns the station registry in registration order
func (c *Catalog) Stations() []models.Station {
	return append([]models.Station(nil), c.stations...)
}

// Station looks up a station by id
func (c *Catalog) Station(id string) (models.Station, bool) {
	i, ok := c.stationIx[id]
	if !ok {
		return models.Station{}, false
	}
	return c.stations[i], true
}

// FindStationByCity returns the first registered station of a city (case-insensitive)
func (c *Catalog) FindStationByCity(city string) (models.Station, bool) {
	i, ok := c.byCity[cityKey(city)]
	if !ok {
		return models.Station{}, false
	}
	return c.stations[i], true
}

// NearestStation returns the closest station within radiusKm of p
func (c *Catalog) NearestStation(p spatial.Point, radiusKm float64) (models.Station, bool) {
	best := -1
	bestDist := radiusKm
	for i, s := range c.stations {
		d := spatial.DistanceKm(p, s.Location())
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return models.Station{}, false
	}
	return c.stations[best], true
}

// CanonicalCity returns the catalog spelling of a city name
func (c *Catalog) CanonicalCity(city string) (string, bool) {
	name, ok := c.cities[cityKey(city)]
	return name, ok
}

// Cities returns every known city, sorted
func (c *Catalog) Cities() []string {
	out := make([]string, 0, len(c.cities))
	for _, name := range c.cities {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CityPOIs returns the POIs located in city, in catalog order
func (c *Catalog) CityPOIs(city string) []models.POI {
	key := cityKey(city)
	var out []models.POI
	for _, p := range c.pois {
		if cityKey(p.City) == key {
			out = append(out, p)
		}
	}
	return out
}

// FindNextTrip returns the next trip between two stations at or after timeOfDay
func (c *Catalog) FindNextTrip(from, to string, timeOfDay int) (models.ScheduledTrip, bool) {
	return c.timetable.NextTrip(from, to, timeOfDay)
}

// Timetable exposes the timetable index
func (c *Catalog) Timetable() *Timetable {
	return c.timetable
}
