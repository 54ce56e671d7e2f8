package usecase

import (
	"sort"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
)

// AssembleFeatures joins the profile attributes of every active user with the
// outputs of the aggregation stages into the final feature records, sorted by
// user id ascending so repeated runs over the same snapshot are
// byte-identical.
//
// Gender, home country and home city coalesce to empty strings; birthdate,
// married and has-children keep nil as "unknown". The hotel-hunter index is
// the product of the scaled hotel spend, the hotel-only discount proportion
// and the average hotel discount, so it is zero whenever any factor is.
func AssembleFeatures(
	users []entity.User,
	rows map[int64][]SessionRow,
	spend map[int64]SpendAggregate,
	scaled map[int64]float64,
	behavior map[int64]BehaviorAggregate,
	indices map[int64]BehaviorIndices,
) []entity.UserFeatureRecord {
	records := make([]entity.UserFeatureRecord, 0, len(rows))
	for _, user := range users {
		userRows, ok := rows[user.ID]
		if !ok {
			continue
		}

		sp := spend[user.ID]
		bh := behavior[user.ID]
		ix := indices[user.ID]

		record := entity.UserFeatureRecord{
			UserID:                   user.ID,
			Birthdate:                user.Birthdate,
			Gender:                   coalesce(user.Gender),
			Married:                  user.Married,
			HasChildren:              user.HasChildren,
			HomeCountry:              coalesce(user.HomeCountry),
			HomeCity:                 coalesce(user.HomeCity),
			LatestSession:            latestSessionDate(userRows),
			TotalTrips:               bh.TotalTrips,
			TotalCancellations:       bh.TotalCancellations,
			TotalSessions:            bh.TotalSessions,
			TotalCancellationRate:    ix.TotalCancellationRate,
			AverageCheckedBags:       bh.AverageCheckedBags,
			PrefersFlights:           ix.PrefersFlights,
			PrefersHotels:            ix.PrefersHotels,
			PrefersBoth:              ix.PrefersBoth,
			ConversionRate:           ix.ConversionRate,
			AverageClicks:            bh.AverageClicks,
			TotalClicks:              bh.TotalClicks,
			ClickEfficiency:          ix.ClickEfficiency,
			AverageHotelDiscount:     bh.AverageHotelDiscount,
			AverageFlightDiscount:    bh.AverageFlightDiscount,
			FlightDiscountProportion: bh.FlightDiscountProportion,
			HotelDiscountProportion:  bh.HotelDiscountProportion,
			BothDiscountProportion:   bh.BothDiscountProportion,
			DiscountResponsiveness:   ix.DiscountResponsiveness,
			TotalHotelUSDSpent:       sp.TotalHotelSpend,
			TotalFlightUSDSpent:      sp.TotalFlightSpend,
			TotalUSDSpent:            sp.TotalSpend,
			HotelHunterIndex:         scaled[user.ID] * bh.HotelDiscountProportion * bh.AverageHotelDiscount,
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].UserID < records[j].UserID
	})
	return records
}

func coalesce(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// latestSessionDate is the date part of the most recent session end.
func latestSessionDate(rows []SessionRow) time.Time {
	var latest time.Time
	for _, row := range rows {
		if row.Session.SessionEnd.After(latest) {
			latest = row.Session.SessionEnd
		}
	}
	year, month, day := latest.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, latest.Location())
}
