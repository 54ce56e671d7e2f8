package usecase

import (
	"sort"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
)

// ProjectRawExtract emits one row per (active user, session), carrying
// profile, session, hotel and flight fields through for the external
// geodesic-distance and clustering step. It shares the activity filter with
// the aggregation pipeline but none of its derived metrics.
//
// Defaults are per-field, not uniform: absent strings become "", absent
// numeric amounts become 0, and absent timestamps/booleans stay nil.
func ProjectRawExtract(users []entity.User, rows map[int64][]SessionRow) []entity.SessionExtract {
	extract := make([]entity.SessionExtract, 0)
	for _, user := range users {
		userRows, ok := rows[user.ID]
		if !ok {
			continue
		}
		for _, row := range userRows {
			extract = append(extract, projectRow(user, row))
		}
	}

	sort.Slice(extract, func(i, j int) bool {
		if extract[i].UserID != extract[j].UserID {
			return extract[i].UserID < extract[j].UserID
		}
		return extract[i].SessionID < extract[j].SessionID
	})
	return extract
}

func projectRow(user entity.User, row SessionRow) entity.SessionExtract {
	s := row.Session

	out := entity.SessionExtract{
		UserID:         user.ID,
		SessionID:      s.ID,
		SessionEnd:     s.SessionEnd,
		PageClicks:     s.PageClicks,
		FlightBooked:   s.FlightBooked,
		HotelBooked:    s.HotelBooked,
		FlightDiscount: s.FlightDiscount,
		HotelDiscount:  s.HotelDiscount,
		Cancellation:   s.Cancellation,
		Birthdate:      user.Birthdate,
		Gender:         coalesce(user.Gender),
		Married:        user.Married,
		HasChildren:    user.HasChildren,
		HomeCountry:    coalesce(user.HomeCountry),
		HomeCity:       coalesce(user.HomeCity),
		HomeAirportLat: user.HomeAirportLat,
		HomeAirportLon: user.HomeAirportLon,
	}
	if s.TripID != nil {
		out.TripID = *s.TripID
	}
	if s.FlightDiscountAmount != nil {
		out.FlightDiscountAmount = *s.FlightDiscountAmount
	}
	if s.HotelDiscountAmount != nil {
		out.HotelDiscountAmount = *s.HotelDiscountAmount
	}

	if row.Hotel != nil {
		out.HotelName = row.Hotel.HotelName
		out.Rooms = row.Hotel.Rooms
		if row.Hotel.CheckInTime != nil && row.Hotel.CheckOutTime != nil {
			out.StayNights = row.Hotel.CheckOutTime.Sub(*row.Hotel.CheckInTime).Hours() / 24
		}
	}

	if row.Flight != nil {
		out.Destination = row.Flight.Destination
		returnBooked := row.Flight.ReturnFlightBooked
		out.ReturnFlightBooked = &returnBooked
		out.CheckedBags = row.Flight.CheckedBags
		out.BaseFareUSD = row.Flight.BaseFareUSD
		out.DestinationAirportLat = row.Flight.DestinationAirportLat
		out.DestinationAirportLon = row.Flight.DestinationAirportLon
		if row.Flight.DepartureTime != nil && row.Flight.ReturnTime != nil {
			out.FlightHours = row.Flight.ReturnTime.Sub(*row.Flight.DepartureTime).Hours()
		}
	}
	return out
}
