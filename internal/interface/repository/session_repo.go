package repository

import (
	"context"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/HugoDataAnalyst/TravelTide/internal/domain/repository"

	"gorm.io/gorm"
)

// GormSessionRepository implements the SessionRepository interface
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository
func NewGormSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &GormSessionRepository{
		db: db,
	}
}

// Sessions GORM model for database mapping
type Sessions struct {
	SessionID            string    `gorm:"column:session_id;primaryKey"`
	UserID               int64     `gorm:"column:user_id"`
	TripID               *string   `gorm:"column:trip_id"`
	SessionStart         time.Time `gorm:"column:session_start"`
	SessionEnd           time.Time `gorm:"column:session_end"`
	PageClicks           int       `gorm:"column:page_clicks"`
	FlightBooked         bool      `gorm:"column:flight_booked"`
	HotelBooked          bool      `gorm:"column:hotel_booked"`
	FlightDiscount       bool      `gorm:"column:flight_discount"`
	HotelDiscount        bool      `gorm:"column:hotel_discount"`
	FlightDiscountAmount *float64  `gorm:"column:flight_discount_amount"`
	HotelDiscountAmount  *float64  `gorm:"column:hotel_discount_amount"`
	Cancellation         bool      `gorm:"column:cancellation"`
}

// TableName overrides the default table name
func (Sessions) TableName() string {
	return "sessions"
}

// ListAll loads every session row
func (r *GormSessionRepository) ListAll(ctx context.Context) ([]entity.Session, error) {
	var rows []Sessions
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	sessions := make([]entity.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, entity.Session{
			ID:                   row.SessionID,
			UserID:               row.UserID,
			TripID:               row.TripID,
			SessionStart:         row.SessionStart,
			SessionEnd:           row.SessionEnd,
			PageClicks:           row.PageClicks,
			FlightBooked:         row.FlightBooked,
			HotelBooked:          row.HotelBooked,
			FlightDiscount:       row.FlightDiscount,
			HotelDiscount:        row.HotelDiscount,
			FlightDiscountAmount: row.FlightDiscountAmount,
			HotelDiscountAmount:  row.HotelDiscountAmount,
			Cancellation:         row.Cancellation,
		})
	}
	return sessions, nil
}
