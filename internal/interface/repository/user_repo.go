package repository

import (
	"context"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/HugoDataAnalyst/TravelTide/internal/domain/repository"

	"gorm.io/gorm"
)

// GormUserRepository implements the UserRepository interface
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &GormUserRepository{
		db: db,
	}
}

// Users GORM model for database mapping
type Users struct {
	UserID         int64      `gorm:"column:user_id;primaryKey"`
	Birthdate      *time.Time `gorm:"column:birthdate"`
	Gender         *string    `gorm:"column:gender"`
	Married        *bool      `gorm:"column:married"`
	HasChildren    *bool      `gorm:"column:has_children"`
	HomeCountry    *string    `gorm:"column:home_country"`
	HomeCity       *string    `gorm:"column:home_city"`
	SignUpDate     time.Time  `gorm:"column:sign_up_date"`
	HomeAirportLat float64    `gorm:"column:home_airport_lat"`
	HomeAirportLon float64    `gorm:"column:home_airport_lon"`
}

// TableName overrides the default table name
func (Users) TableName() string {
	return "users"
}

// ListAll loads every user profile row
func (r *GormUserRepository) ListAll(ctx context.Context) ([]entity.User, error) {
	var rows []Users
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	users := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, entity.User{
			ID:             row.UserID,
			Birthdate:      row.Birthdate,
			Gender:         row.Gender,
			Married:        row.Married,
			HasChildren:    row.HasChildren,
			HomeCountry:    row.HomeCountry,
			HomeCity:       row.HomeCity,
			SignUpDate:     row.SignUpDate,
			HomeAirportLat: row.HomeAirportLat,
			HomeAirportLon: row.HomeAirportLon,
		})
	}
	return users, nil
}
