package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jengzang/itinerary-planner-go/internal/models"
)

const poiColumns = `id, name, city, lat, lon, categories_json,
	duration, popularity, open_time, close_time, cost,
	description, rating, review_count, accessibility_score,
	family_friendly, station_id, best_months_json`

// POIRepository handles database operations for points of interest
type POIRepository struct {
	db *sql.DB
}

// NewPOIRepository creates a new POI repository
func NewPOIRepository(db *sql.DB) *POIRepository {
	return &POIRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPOI(row rowScanner) (models.POI, error) {
	var p models.POI
	var categoriesJSON, monthsJSON string
	var stationID sql.NullString

	err := row.Scan(
		&p.ID, &p.Name, &p.City, &p.Lat, &p.Lon, &categoriesJSON,
		&p.Duration, &p.Popularity, &p.OpenTime, &p.CloseTime, &p.Cost,
		&p.Description, &p.Rating, &p.ReviewCount, &p.AccessibilityScore,
		&p.FamilyFriendly, &stationID, &monthsJSON,
	)
	if err != nil {
		return p, err
	}

	if err := json.Unmarshal([]byte(categoriesJSON), &p.Categories); err != nil {
		return p, fmt.Errorf("invalid categories for poi %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(monthsJSON), &p.BestMonths); err != nil {
		return p, fmt.Errorf("invalid best months for poi %s: %w", p.ID, err)
	}
	if len(p.BestMonths) == 0 {
		p.BestMonths = nil
	}
	p.StationID = stationID.String
	return p, nil
}

func (r *POIRepository) query(query string, args ...any) ([]models.POI, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pois: %w", err)
	}
	defer rows.Close()

	var pois []models.POI
	for rows.Next() {
		p, err := scanPOI(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poi: %w", err)
		}
		pois = append(pois, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pois: %w", err)
	}

	return pois, nil
}

// GetAll retrieves every POI in catalog order
func (r *POIRepository) GetAll() ([]models.POI, error) {
	return r.query("SELECT " + poiColumns + " FROM pois ORDER BY sort_order, id")
}

// GetByCity retrieves the POIs of one city, case-insensitively
func (r *POIRepository) GetByCity(city string) ([]models.POI, error) {
	return r.query("SELECT "+poiColumns+" FROM pois WHERE city = ? COLLATE NOCASE ORDER BY sort_order, id", city)
}

// GetByID retrieves a single POI by ID
func (r *POIRepository) GetByID(id string) (*models.POI, error) {
	p, err := scanPOI(r.db.QueryRow("SELECT "+poiColumns+" FROM pois WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get poi: %w", err)
	}
	return &p, nil
}

// Count returns the number of stored POIs
func (r *POIRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM pois").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pois: %w", err)
	}
	return count, nil
}

// Insert stores a POI inside tx. order fixes its catalog position.
func (r *POIRepository) Insert(tx *sql.Tx, order int, p models.POI) error {
	categories, err := json.Marshal(nonNil(p.Categories))
	if err != nil {
		return fmt.Errorf("failed to serialize categories: %w", err)
	}
	months, err := json.Marshal(nonNil(p.BestMonths))
	if err != nil {
		return fmt.Errorf("failed to serialize best months: %w", err)
	}

	var stationID any
	if p.StationID != "" {
		stationID = p.StationID
	}

	_, err = tx.Exec(`INSERT INTO pois (`+poiColumns+`, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.City, p.Lat, p.Lon, string(categories),
		p.Duration, p.Popularity, p.OpenTime, p.CloseTime, p.Cost,
		p.Description, p.Rating, p.ReviewCount, p.AccessibilityScore,
		p.FamilyFriendly, stationID, string(months), order,
	)
	if err != nil {
		return fmt.Errorf("failed to insert poi %s: %w", p.ID, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
