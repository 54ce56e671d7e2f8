package repository

import (
	"context"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/HugoDataAnalyst/TravelTide/internal/domain/repository"

	"gorm.io/gorm"
)

// GormHotelRepository implements the HotelRepository interface
type GormHotelRepository struct {
	db *gorm.DB
}

// NewGormHotelRepository creates a new GORM hotel repository
func NewGormHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &GormHotelRepository{
		db: db,
	}
}

// Hotels GORM model for database mapping
type Hotels struct {
	TripID       string     `gorm:"column:trip_id;primaryKey"`
	HotelName    string     `gorm:"column:hotel_name"`
	Rooms        int        `gorm:"column:rooms"`
	CheckInTime  *time.Time `gorm:"column:check_in_time"`
	CheckOutTime *time.Time `gorm:"column:check_out_time"`
	PerRoomUSD   float64    `gorm:"column:hotel_per_room_usd"`
}

// TableName overrides the default table name
func (Hotels) TableName() string {
	return "hotels"
}

// ListAll loads every hotel leg
func (r *GormHotelRepository) ListAll(ctx context.Context) ([]entity.Hotel, error) {
	var rows []Hotels
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	hotels := make([]entity.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, entity.Hotel{
			TripID:       row.TripID,
			HotelName:    row.HotelName,
			Rooms:        row.Rooms,
			CheckInTime:  row.CheckInTime,
			CheckOutTime: row.CheckOutTime,
			PerRoomUSD:   row.PerRoomUSD,
		})
	}
	return hotels, nil
}
