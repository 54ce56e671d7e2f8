package entity

import (
	"time"
)

// Flight is the flight leg of a trip, keyed by TripID.
type Flight struct {
	TripID                string
	BaseFareUSD           float64
	Destination           string
	DestinationAirportLat float64
	DestinationAirportLon float64
	CheckedBags           int
	DepartureTime         *time.Time
	ReturnTime            *time.Time
	ReturnFlightBooked    bool
}
