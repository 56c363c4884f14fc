package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/jengzang/itinerary-planner-go/internal/catalog"
	"github.com/jengzang/itinerary-planner-go/internal/database"
	"github.com/jengzang/itinerary-planner-go/internal/models"
)

// CatalogRepository reads and seeds the whole reference catalog
type CatalogRepository struct {
	db       *sql.DB
	pois     *POIRepository
	stations *StationRepository
	trains   *TrainRepository
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{
		db:       db,
		pois:     NewPOIRepository(db),
		stations: NewStationRepository(db),
		trains:   NewTrainRepository(db),
	}
}

// Seed stores the given data when the database holds no POIs yet.
// It reports whether anything was written.
func (r *CatalogRepository) Seed(pois []models.POI, stations []models.Station, services []models.TrainService) (bool, error) {
	count, err := r.pois.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err = database.Transaction(r.db, func(tx *sql.Tx) error {
		for _, s := range stations {
			if err := r.stations.Insert(tx, s); err != nil {
				return err
			}
		}
		for i, p := range pois {
			if err := r.pois.Insert(tx, i, p); err != nil {
				return err
			}
		}
		for i, s := range services {
			if err := r.trains.Insert(tx, i, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Printf("[Catalog] Seeded database: %d POIs, %d stations, %d train services",
		len(pois), len(stations), len(services))
	return true, nil
}

// SeedDefaults seeds the built-in dataset
func (r *CatalogRepository) SeedDefaults() (bool, error) {
	return r.Seed(catalog.DefaultPOIs(), catalog.DefaultStations(), catalog.DefaultServices())
}

// Load builds a catalog snapshot from the stored data
func (r *CatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pois, err := r.pois.GetAll()
	if err != nil {
		return nil, err
	}
	stations, err := r.stations.GetAll()
	if err != nil {
		return nil, err
	}
	services, err := r.trains.GetAll()
	if err != nil {
		return nil, err
	}

	return catalog.New(pois, stations, services), nil
}
