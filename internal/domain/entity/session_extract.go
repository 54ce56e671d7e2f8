package entity

import (
	"time"
)

// SessionExtract is one row of the raw per-session projection handed to the
// external clustering/geodesic step. Defaults are per-field: absent strings
// become "", absent numeric amounts become 0, while absent timestamps, dates
// and booleans stay nil. Do not unify these policies.
type SessionExtract struct {
	UserID                int64      `json:"user_id"`
	SessionID             string     `json:"session_id"`
	TripID                string     `json:"trip_id"`
	SessionEnd            time.Time  `json:"session_end"`
	PageClicks            int        `json:"page_clicks"`
	FlightBooked          bool       `json:"flight_booked"`
	HotelBooked           bool       `json:"hotel_booked"`
	FlightDiscount        bool       `json:"flight_discount"`
	HotelDiscount         bool       `json:"hotel_discount"`
	FlightDiscountAmount  float64    `json:"flight_discount_amount"`
	HotelDiscountAmount   float64    `json:"hotel_discount_amount"`
	Cancellation          bool       `json:"cancellation"`
	Birthdate             *time.Time `json:"birthdate"`
	Gender                string     `json:"gender"`
	Married               *bool      `json:"married"`
	HasChildren           *bool      `json:"has_children"`
	HomeCountry           string     `json:"home_country"`
	HomeCity              string     `json:"home_city"`
	HomeAirportLat        float64    `json:"home_airport_lat"`
	HomeAirportLon        float64    `json:"home_airport_lon"`
	HotelName             string     `json:"hotel_name"`
	Rooms                 int        `json:"rooms"`
	StayNights            float64    `json:"stay_nights"`
	Destination           string     `json:"destination"`
	ReturnFlightBooked    *bool      `json:"return_flight_booked"`
	FlightHours           float64    `json:"flight_hours"`
	CheckedBags           int        `json:"checked_bags"`
	BaseFareUSD           float64    `json:"base_fare_usd"`
	DestinationAirportLat float64    `json:"destination_airport_lat"`
	DestinationAirportLon float64    `json:"destination_airport_lon"`
}
