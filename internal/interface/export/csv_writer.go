package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// featureHeader fixes the column order of the feature table snapshot.
var featureHeader = []string{
	"user_id", "birthdate", "gender", "married", "has_children",
	"home_country", "home_city", "latest_session",
	"total_trips", "total_cancellations", "total_sessions",
	"total_cancellation_rate", "average_checked_bags",
	"prefers_flights", "prefers_hotels", "prefers_both",
	"conversion_rate", "average_clicks", "total_clicks", "click_efficiency",
	"average_hotel_discount", "average_flight_discount",
	"flight_discount_proportion", "hotel_discount_proportion",
	"both_discount_proportion", "discount_responsiveness",
	"total_hotel_usd_spent", "total_flight_usd_spent", "total_usd_spent",
	"hotel_hunter_index",
}

var extractHeader = []string{
	"user_id", "session_id", "trip_id", "session_end", "page_clicks",
	"flight_booked", "hotel_booked", "flight_discount", "hotel_discount",
	"flight_discount_amount", "hotel_discount_amount", "cancellation",
	"birthdate", "gender", "married", "has_children",
	"home_country", "home_city", "home_airport_lat", "home_airport_lon",
	"hotel_name", "rooms", "stay_nights",
	"destination", "return_flight_booked", "flight_hours", "checked_bags",
	"base_fare_usd", "destination_airport_lat", "destination_airport_lon",
}

// WriteFeatureCSV writes the feature table snapshot.
func WriteFeatureCSV(filename string, records []entity.UserFeatureRecord) error {
	return writeCSV(filename, featureHeader, len(records), func(i int) []string {
		r := records[i]
		return []string{
			strconv.FormatInt(r.UserID, 10),
			formatDate(r.Birthdate),
			r.Gender,
			formatBool(r.Married),
			formatBool(r.HasChildren),
			r.HomeCountry,
			r.HomeCity,
			r.LatestSession.Format(dateLayout),
			strconv.Itoa(r.TotalTrips),
			strconv.Itoa(r.TotalCancellations),
			strconv.Itoa(r.TotalSessions),
			formatFloat(r.TotalCancellationRate),
			formatFloat(r.AverageCheckedBags),
			formatFloat(r.PrefersFlights),
			formatFloat(r.PrefersHotels),
			formatFloat(r.PrefersBoth),
			formatFloat(r.ConversionRate),
			formatFloat(r.AverageClicks),
			strconv.Itoa(r.TotalClicks),
			formatFloat(r.ClickEfficiency),
			formatFloat(r.AverageHotelDiscount),
			formatFloat(r.AverageFlightDiscount),
			formatFloat(r.FlightDiscountProportion),
			formatFloat(r.HotelDiscountProportion),
			formatFloat(r.BothDiscountProportion),
			formatFloat(r.DiscountResponsiveness),
			formatFloat(r.TotalHotelUSDSpent),
			formatFloat(r.TotalFlightUSDSpent),
			formatFloat(r.TotalUSDSpent),
			formatFloat(r.HotelHunterIndex),
		}
	})
}

// WriteExtractCSV writes the raw per-session projection.
func WriteExtractCSV(filename string, rows []entity.SessionExtract) error {
	return writeCSV(filename, extractHeader, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			strconv.FormatInt(r.UserID, 10),
			r.SessionID,
			r.TripID,
			r.SessionEnd.Format(time.RFC3339),
			strconv.Itoa(r.PageClicks),
			strconv.FormatBool(r.FlightBooked),
			strconv.FormatBool(r.HotelBooked),
			strconv.FormatBool(r.FlightDiscount),
			strconv.FormatBool(r.HotelDiscount),
			formatFloat(r.FlightDiscountAmount),
			formatFloat(r.HotelDiscountAmount),
			strconv.FormatBool(r.Cancellation),
			formatDate(r.Birthdate),
			r.Gender,
			formatBool(r.Married),
			formatBool(r.HasChildren),
			r.HomeCountry,
			r.HomeCity,
			formatFloat(r.HomeAirportLat),
			formatFloat(r.HomeAirportLon),
			r.HotelName,
			strconv.Itoa(r.Rooms),
			formatFloat(r.StayNights),
			r.Destination,
			formatBool(r.ReturnFlightBooked),
			formatFloat(r.FlightHours),
			strconv.Itoa(r.CheckedBags),
			formatFloat(r.BaseFareUSD),
			formatFloat(r.DestinationAirportLat),
			formatFloat(r.DestinationAirportLon),
		}
	})
}

func writeCSV(filename string, header []string, n int, row func(i int) []string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
