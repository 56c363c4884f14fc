package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

// Catalog lookup errors
var (
	ErrUnknownStation = errors.New("unknown station")
	ErrNoTrip         = errors.New("no scheduled trip")
)

// Options lists the values a client may choose from
type Options struct {
	TransportModes      []models.TransportMode                           `json:"transport_modes"`
	PaceOptions         []models.Pace                                    `json:"pace_options"`
	AvailableCategories []string                                         `json:"available_categories"`
	DefaultBudget       float64                                          `json:"default_budget"`
	MaxPOIsPerDay       int                                              `json:"max_pois_per_day"`
	MinPOIsPerDay       int                                              `json:"min_pois_per_day"`
	MaxNumDays          int                                              `json:"max_num_days"`
	TransportProfiles   map[models.TransportMode]models.TransportProfile `json:"transport_profiles"`
	PaceProfiles        map[models.Pace]models.PaceProfile               `json:"pace_profiles"`
	Cities              []string                                         `json:"cities"`
}

// CatalogStore is the snapshot holder the catalog service reads and reloads
type CatalogStore interface {
	Current() *catalog.Catalog
	Reload(ctx context.Context) (*catalog.Catalog, error)
}

// CatalogService answers reference-data queries
type CatalogService struct {
	store CatalogStore
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// POIs returns every POI, optionally restricted to a city
func (s *CatalogService) POIs(city string) []models.POI {
	c := s.store.Current()
	if city != "" {
		return c.CityPOIs(city)
	}
	return c.POIs()
}

// Options returns the request options
func (s *CatalogService) Options() Options {
	return Options{
		TransportModes:      models.TransportModes,
		PaceOptions:         models.Paces,
		AvailableCategories: models.Categories,
		DefaultBudget:       DefaultBudget,
		MaxPOIsPerDay:       models.MaxPOIsPerDay,
		MinPOIsPerDay:       models.MinPOIsPerDay,
		MaxNumDays:          MaxNumDays,
		TransportProfiles:   models.TransportProfiles,
		PaceProfiles:        models.PaceProfiles,
		Cities:              s.store.Current().Cities(),
	}
}

// Stations returns all stations, or the first station of city when given
func (s *CatalogService) Stations(city string) ([]models.Station, error) {
	c := s.store.Current()
	if city == "" {
		return c.Stations(), nil
	}
	st, ok := c.FindStationByCity(city)
	if !ok {
		return nil, fmt.Errorf("%w for city %q", ErrUnknownStation, city)
	}
	return []models.Station{st}, nil
}

// NextTrip finds the next departure from one station to another at or after
// the given HH:MM time
func (s *CatalogService) NextTrip(from, to, at string) (*models.ScheduledTrip, error) {
	tod, err := timeofday.Parse(at)
	if err != nil {
		return nil, err
	}

	c := s.store.Current()
	for _, id := range []string{from, to} {
		if _, ok := c.Station(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStation, id)
		}
	}

	trip, ok := c.FindNextTrip(from, to, tod)
	if !ok {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoTrip, from, to)
	}
	return &trip, nil
}

// Reload rebuilds the catalog snapshot
func (s *CatalogService) Reload(ctx context.Context) (*catalog.Catalog, error) {
	return s.store.Reload(ctx)
}
