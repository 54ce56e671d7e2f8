package entity

import (
	"time"
)

// Session is one browsing/booking event. TripID is nil for pure browsing
// sessions; when set it links the session to at most one flight and one
// hotel leg. Discount amounts are nil unless a discount was recorded.
type Session struct {
	ID                   string
	UserID               int64
	TripID               *string
	SessionStart         time.Time
	SessionEnd           time.Time
	PageClicks           int
	FlightBooked         bool
	HotelBooked          bool
	FlightDiscount       bool
	HotelDiscount        bool
	FlightDiscountAmount *float64
	HotelDiscountAmount  *float64
	Cancellation         bool
}

// HasTrip reports whether the session is linked to a trip.
func (s *Session) HasTrip() bool {
	return s.TripID != nil && *s.TripID != ""
}
