package entity

import (
	"time"
)

// Hotel is the hotel leg of a trip, keyed by TripID.
type Hotel struct {
	TripID       string
	HotelName    string
	Rooms        int
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	PerRoomUSD   float64
}
