package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/itinerary-planner-go/internal/models"
)

// TrainRepository handles database operations for train services and their stops
type TrainRepository struct {
	db *sql.DB
}

// NewTrainRepository creates a new train repository
func NewTrainRepository(db *sql.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

// GetAll retrieves every service with its stops in call order
func (r *TrainRepository) GetAll() ([]models.TrainService, error) {
	rows, err := r.db.Query("SELECT number, name FROM train_services ORDER BY sort_order, number")
	if err != nil {
		return nil, fmt.Errorf("failed to query train services: %w", err)
	}
	defer rows.Close()

	var services []models.TrainService
	index := make(map[string]int)
	for rows.Next() {
		var s models.TrainService
		if err := rows.Scan(&s.Number, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan train service: %w", err)
		}
		index[s.Number] = len(services)
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate train services: %w", err)
	}

	stops, err := r.db.Query(`SELECT service_number, station_id, arrival, departure, day
		FROM train_stops ORDER BY service_number, seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query train stops: %w", err)
	}
	defer stops.Close()

	for stops.Next() {
		var number string
		var stop models.TrainStop
		if err := stops.Scan(&number, &stop.StationID, &stop.Arrival, &stop.Departure, &stop.Day); err != nil {
			return nil, fmt.Errorf("failed to scan train stop: %w", err)
		}
		i, ok := index[number]
		if !ok {
			continue
		}
		services[i].Stops = append(services[i].Stops, stop)
	}
	if err := stops.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate train stops: %w", err)
	}

	return services, nil
}

// Insert stores a service and its stops inside tx
func (r *TrainRepository) Insert(tx *sql.Tx, order int, s models.TrainService) error {
	_, err := tx.Exec("INSERT INTO train_services (number, name, sort_order) VALUES (?, ?, ?)",
		s.Number, s.Name, order)
	if err != nil {
		return fmt.Errorf("failed to insert train service %s: %w", s.Number, err)
	}

	for seq, stop := range s.Stops {
		_, err := tx.Exec(`INSERT INTO train_stops (service_number, seq, station_id, arrival, departure, day)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.Number, seq, stop.StationID, stop.Arrival, stop.Departure, stop.Day)
		if err != nil {
			return fmt.Errorf("failed to insert stop %d of train %s: %w", seq, s.Number, err)
		}
	}
	return nil
}
