package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/itinerary-planner-go/internal/models"
)

// StationRepository handles database operations for rail stations
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository creates a new station repository
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

func (r *StationRepository) query(query string, args ...any) ([]models.Station, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.Lat, &s.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stations: %w", err)
	}

	return stations, nil
}

// GetAll retrieves every station in insertion order
func (r *StationRepository) GetAll() ([]models.Station, error) {
	return r.query("SELECT id, name, city, lat, lon FROM stations ORDER BY rowid")
}

// GetByCity retrieves the stations of one city, case-insensitively
func (r *StationRepository) GetByCity(city string) ([]models.Station, error) {
	return r.query("SELECT id, name, city, lat, lon FROM stations WHERE city = ? COLLATE NOCASE ORDER BY rowid", city)
}

// Insert stores a station inside tx
func (r *StationRepository) Insert(tx *sql.Tx, s models.Station) error {
	_, err := tx.Exec("INSERT INTO stations (id, name, city, lat, lon) VALUES (?, ?, ?, ?, ?)",
		s.ID, s.Name, s.City, s.Lat, s.Lon)
	if err != nil {
		return fmt.Errorf("failed to insert station %s: %w", s.ID, err)
	}
	return nil
}
