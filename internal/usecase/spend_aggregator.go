package usecase

// SpendAggregate holds per-user spend totals. AvgDailyHotelSpend is nil when
// the user has no hotel-bearing sessions; that absence must survive until the
// scaling stage and never collapse to zero here.
type SpendAggregate struct {
	UserID             int64
	TotalHotelSpend    float64
	TotalFlightSpend   float64
	TotalSpend         float64
	AvgDailyHotelSpend *float64
}

// AggregateSpend computes the spend totals for one user over their joined
// session rows. Sessions without a hotel or flight leg contribute zero to the
// totals. The hotel average instead skips leg-less sessions entirely
// (ignore-then-average): the discounted nightly spend is summed and counted
// only over sessions that actually carry a hotel leg.
func AggregateSpend(userID int64, rows []SessionRow) SpendAggregate {
	agg := SpendAggregate{UserID: userID}

	var hotelSum float64
	var hotelCount int
	for _, row := range rows {
		if row.Flight != nil {
			agg.TotalFlightSpend += row.Flight.BaseFareUSD
		}
		if row.Hotel != nil {
			nightly := row.Hotel.PerRoomUSD * float64(row.Hotel.Rooms)
			agg.TotalHotelSpend += nightly

			discount := 0.0
			if row.Session.HotelDiscountAmount != nil {
				discount = *row.Session.HotelDiscountAmount
			}
			hotelSum += (1 - discount) * nightly
			hotelCount++
		}
	}
	agg.TotalSpend = agg.TotalHotelSpend + agg.TotalFlightSpend

	if hotelCount > 0 {
		avg := hotelSum / float64(hotelCount)
		agg.AvgDailyHotelSpend = &avg
	}
	return agg
}
