package usecase

import (
	"testing"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRawExtract(t *testing.T) {
	checkIn := time.Date(2023, 2, 1, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(3 * 24 * time.Hour)
	departure := time.Date(2023, 2, 1, 9, 0, 0, 0, time.UTC)
	ret := departure.Add(6 * time.Hour)

	user := entity.User{
		ID:             7,
		Gender:         strPtr("M"),
		HomeCountry:    strPtr("canada"),
		HomeAirportLat: 43.68,
		HomeAirportLon: -79.63,
	}
	rows := map[int64][]SessionRow{
		7: {
			{
				Session: entity.Session{ID: "s2", UserID: 7, TripID: strPtr("t1"), PageClicks: 12},
				Flight: &entity.Flight{
					TripID: "t1", Destination: "paris", BaseFareUSD: 640,
					CheckedBags: 1, ReturnFlightBooked: true,
					DestinationAirportLat: 49.01, DestinationAirportLon: 2.55,
					DepartureTime: &departure, ReturnTime: &ret,
				},
				Hotel: &entity.Hotel{
					TripID: "t1", HotelName: "Le Grand", Rooms: 2,
					CheckInTime: &checkIn, CheckOutTime: &checkOut, PerRoomUSD: 180,
				},
			},
			{Session: entity.Session{ID: "s1", UserID: 7}},
		},
	}

	extract := ProjectRawExtract([]entity.User{user}, rows)
	require.Len(t, extract, 2)

	t.Run("OrderedBySessionID", func(t *testing.T) {
		assert.Equal(t, "s1", extract[0].SessionID)
		assert.Equal(t, "s2", extract[1].SessionID)
	})

	t.Run("TripRowCarriesLegFields", func(t *testing.T) {
		row := extract[1]
		assert.Equal(t, "t1", row.TripID)
		assert.Equal(t, "Le Grand", row.HotelName)
		assert.Equal(t, 2, row.Rooms)
		assert.InDelta(t, 3.0, row.StayNights, 1e-9)
		assert.Equal(t, "paris", row.Destination)
		assert.InDelta(t, 6.0, row.FlightHours, 1e-9)
		assert.Equal(t, 640.0, row.BaseFareUSD)
		assert.InDelta(t, 49.01, row.DestinationAirportLat, 1e-9)
		require.NotNil(t, row.ReturnFlightBooked)
		assert.True(t, *row.ReturnFlightBooked)
	})

	t.Run("BrowsingRowDefaults", func(t *testing.T) {
		row := extract[0]
		// Strings empty, amounts zero, booleans for absent legs stay nil.
		assert.Equal(t, "", row.TripID)
		assert.Equal(t, "", row.HotelName)
		assert.Equal(t, 0.0, row.BaseFareUSD)
		assert.Equal(t, 0.0, row.FlightDiscountAmount)
		assert.Nil(t, row.ReturnFlightBooked)
	})

	t.Run("ProfileCarriedOnEveryRow", func(t *testing.T) {
		for _, row := range extract {
			assert.Equal(t, int64(7), row.UserID)
			assert.Equal(t, "M", row.Gender)
			assert.Equal(t, "canada", row.HomeCountry)
			assert.InDelta(t, 43.68, row.HomeAirportLat, 1e-9)
		}
	})

	t.Run("InactiveUsersExcluded", func(t *testing.T) {
		other := entity.User{ID: 8}
		out := ProjectRawExtract([]entity.User{user, other}, rows)
		assert.Len(t, out, 2)
	})
}
