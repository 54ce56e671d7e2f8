package repository

import (
	"context"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/HugoDataAnalyst/TravelTide/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	TripID                string     `gorm:"column:trip_id;primaryKey"`
	BaseFareUSD           float64    `gorm:"column:base_fare_usd"`
	Destination           string     `gorm:"column:destination"`
	DestinationAirportLat float64    `gorm:"column:destination_airport_lat"`
	DestinationAirportLon float64    `gorm:"column:destination_airport_lon"`
	CheckedBags           int        `gorm:"column:checked_bags"`
	DepartureTime         *time.Time `gorm:"column:departure_time"`
	ReturnTime            *time.Time `gorm:"column:return_time"`
	ReturnFlightBooked    bool       `gorm:"column:return_flight_booked"`
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

// ListAll loads every flight leg
func (r *GormFlightRepository) ListAll(ctx context.Context) ([]entity.Flight, error) {
	var rows []Flights
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	flights := make([]entity.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, entity.Flight{
			TripID:                row.TripID,
			BaseFareUSD:           row.BaseFareUSD,
			Destination:           row.Destination,
			DestinationAirportLat: row.DestinationAirportLat,
			DestinationAirportLon: row.DestinationAirportLon,
			CheckedBags:           row.CheckedBags,
			DepartureTime:         row.DepartureTime,
			ReturnTime:            row.ReturnTime,
			ReturnFlightBooked:    row.ReturnFlightBooked,
		})
	}
	return flights, nil
}
