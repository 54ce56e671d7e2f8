package entity

import (
	"time"
)

// User represents a traveler profile as stored in the users table.
// Optional attributes are pointers; nil means the field was never recorded.
type User struct {
	ID             int64
	Birthdate      *time.Time
	Gender         *string
	Married        *bool
	HasChildren    *bool
	HomeCountry    *string
	HomeCity       *string
	SignUpDate     time.Time
	HomeAirportLat float64
	HomeAirportLon float64
}
