package entity

import (
	"time"
)

// UserFeatureRecord is the per-user feature vector produced by one pipeline
// run. There is exactly one record per active user. Gender, HomeCountry and
// HomeCity are coalesced to empty strings; Birthdate, Married and HasChildren
// keep their unknown state as nil.
type UserFeatureRecord struct {
	UserID                   int64      `json:"user_id" bson:"userId"`
	Birthdate                *time.Time `json:"birthdate" bson:"birthdate,omitempty"`
	Gender                   string     `json:"gender" bson:"gender"`
	Married                  *bool      `json:"married" bson:"married,omitempty"`
	HasChildren              *bool      `json:"has_children" bson:"hasChildren,omitempty"`
	HomeCountry              string     `json:"home_country" bson:"homeCountry"`
	HomeCity                 string     `json:"home_city" bson:"homeCity"`
	LatestSession            time.Time  `json:"latest_session" bson:"latestSession"`
	TotalTrips               int        `json:"total_trips" bson:"totalTrips"`
	TotalCancellations       int        `json:"total_cancellations" bson:"totalCancellations"`
	TotalSessions            int        `json:"total_sessions" bson:"totalSessions"`
	TotalCancellationRate    float64    `json:"total_cancellation_rate" bson:"totalCancellationRate"`
	AverageCheckedBags       float64    `json:"average_checked_bags" bson:"averageCheckedBags"`
	PrefersFlights           float64    `json:"prefers_flights" bson:"prefersFlights"`
	PrefersHotels            float64    `json:"prefers_hotels" bson:"prefersHotels"`
	PrefersBoth              float64    `json:"prefers_both" bson:"prefersBoth"`
	ConversionRate           float64    `json:"conversion_rate" bson:"conversionRate"`
	AverageClicks            float64    `json:"average_clicks" bson:"averageClicks"`
	TotalClicks              int        `json:"total_clicks" bson:"totalClicks"`
	ClickEfficiency          float64    `json:"click_efficiency" bson:"clickEfficiency"`
	AverageHotelDiscount     float64    `json:"average_hotel_discount" bson:"averageHotelDiscount"`
	AverageFlightDiscount    float64    `json:"average_flight_discount" bson:"averageFlightDiscount"`
	FlightDiscountProportion float64    `json:"flight_discount_proportion" bson:"flightDiscountProportion"`
	HotelDiscountProportion  float64    `json:"hotel_discount_proportion" bson:"hotelDiscountProportion"`
	BothDiscountProportion   float64    `json:"both_discount_proportion" bson:"bothDiscountProportion"`
	DiscountResponsiveness   float64    `json:"discount_responsiveness" bson:"discountResponsiveness"`
	TotalHotelUSDSpent       float64    `json:"total_hotel_usd_spent" bson:"totalHotelUsdSpent"`
	TotalFlightUSDSpent      float64    `json:"total_flight_usd_spent" bson:"totalFlightUsdSpent"`
	TotalUSDSpent            float64    `json:"total_usd_spent" bson:"totalUsdSpent"`
	HotelHunterIndex         float64    `json:"hotel_hunter_index" bson:"hotelHunterIndex"`
}
