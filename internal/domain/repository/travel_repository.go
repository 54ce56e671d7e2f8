package repository

import (
	"context"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
)

// UserRepository loads the traveler profile snapshot.
type UserRepository interface {
	ListAll(ctx context.Context) ([]entity.User, error)
}

// SessionRepository loads the browsing/booking event snapshot.
type SessionRepository interface {
	ListAll(ctx context.Context) ([]entity.Session, error)
}

// FlightRepository loads all flight legs keyed by trip.
type FlightRepository interface {
	ListAll(ctx context.Context) ([]entity.Flight, error)
}

// HotelRepository loads all hotel legs keyed by trip.
type HotelRepository interface {
	ListAll(ctx context.Context) ([]entity.Hotel, error)
}
