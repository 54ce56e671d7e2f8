package usecase

import (
	"testing"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleFeatures(t *testing.T) {
	end := time.Date(2023, 3, 10, 18, 45, 0, 0, time.UTC)
	users := []entity.User{
		{ID: 2, Gender: strPtr("F"), HomeCountry: strPtr("usa"), HomeCity: strPtr("new york"), Married: boolPtr(true)},
		{ID: 1}, // every optional profile field missing
		{ID: 9}, // not active, no session rows
	}
	rows := map[int64][]SessionRow{
		1: {{Session: entity.Session{UserID: 1, SessionEnd: end}}},
		2: {
			{Session: entity.Session{UserID: 2, SessionEnd: end.Add(-48 * time.Hour)}},
			{Session: entity.Session{UserID: 2, SessionEnd: end.Add(2 * time.Hour)}},
		},
	}
	spend := map[int64]SpendAggregate{
		1: {UserID: 1, TotalHotelSpend: 100, TotalFlightSpend: 200, TotalSpend: 300},
		2: {UserID: 2, TotalHotelSpend: 400, TotalFlightSpend: 0, TotalSpend: 400},
	}
	scaled := map[int64]float64{1: 0, 2: 0.8}
	behavior := map[int64]BehaviorAggregate{
		1: {UserID: 1, TotalSessions: 1},
		2: {UserID: 2, TotalSessions: 2, HotelDiscountProportion: 0.5, AverageHotelDiscount: 0.2},
	}
	indices := map[int64]BehaviorIndices{
		1: {UserID: 1},
		2: {UserID: 2, ConversionRate: 0.5},
	}

	records := AssembleFeatures(users, rows, spend, scaled, behavior, indices)
	require.Len(t, records, 2)

	t.Run("SortedByUserID", func(t *testing.T) {
		assert.Equal(t, int64(1), records[0].UserID)
		assert.Equal(t, int64(2), records[1].UserID)
	})

	t.Run("InactiveUserExcluded", func(t *testing.T) {
		for _, r := range records {
			assert.NotEqual(t, int64(9), r.UserID)
		}
	})

	t.Run("MissingProfileFieldsCoalesce", func(t *testing.T) {
		assert.Equal(t, "", records[0].Gender)
		assert.Equal(t, "", records[0].HomeCountry)
		assert.Equal(t, "", records[0].HomeCity)
		// Unknown stays unknown, not false.
		assert.Nil(t, records[0].Married)
		assert.Nil(t, records[0].Birthdate)
	})

	t.Run("ProfilePassThrough", func(t *testing.T) {
		assert.Equal(t, "F", records[1].Gender)
		assert.Equal(t, "usa", records[1].HomeCountry)
		require.NotNil(t, records[1].Married)
		assert.True(t, *records[1].Married)
	})

	t.Run("LatestSessionIsDateOnly", func(t *testing.T) {
		assert.Equal(t, time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC), records[1].LatestSession)
	})

	t.Run("HotelHunterIndex", func(t *testing.T) {
		// 0.8 * 0.5 * 0.2
		assert.InDelta(t, 0.08, records[1].HotelHunterIndex, 1e-9)
		// Any zero factor zeroes the product.
		assert.Equal(t, 0.0, records[0].HotelHunterIndex)
	})

	t.Run("SpendCarriedThrough", func(t *testing.T) {
		assert.Equal(t, 300.0, records[0].TotalUSDSpent)
		assert.Equal(t, 400.0, records[1].TotalHotelUSDSpent)
		assert.InDelta(t, 0.5, records[1].ConversionRate, 1e-9)
	})
}
