package usecase

// BehaviorAggregate holds per-user raw counts and averages over discount
// usage, booking mix, clicks and cancellations. Ratios over these counts are
// derived in the index stage, not here.
type BehaviorAggregate struct {
	UserID int64

	// Discount averages over ALL sessions, nil amounts counted as 0
	// (default-then-average; the spend stage averages differently on purpose).
	AverageFlightDiscount float64
	AverageHotelDiscount  float64

	// Mutually exclusive discount proportions over total session count.
	FlightDiscountProportion float64
	HotelDiscountProportion  float64
	BothDiscountProportion   float64

	// Booking mix.
	OnlyFlightTrips int
	OnlyHotelTrips  int
	BothTrips       int
	TotalTrips      int
	TotalSessions   int

	AverageClicks      float64
	TotalClicks        int
	TotalCancellations int

	// Mean over flight-bearing sessions only; 0 when the user has none.
	AverageCheckedBags float64
}

// AggregateBehavior computes the behavioral counts for one user over their
// joined session rows.
func AggregateBehavior(userID int64, rows []SessionRow) BehaviorAggregate {
	agg := BehaviorAggregate{UserID: userID}
	agg.TotalSessions = len(rows)

	var flightDiscountSum, hotelDiscountSum float64
	var onlyFlightDiscount, onlyHotelDiscount, bothDiscount int
	var bagsSum, flightLegs int
	cancelledTrips := make(map[string]bool)

	for _, row := range rows {
		s := row.Session

		famt := 0.0
		if s.FlightDiscountAmount != nil {
			famt = *s.FlightDiscountAmount
		}
		hamt := 0.0
		if s.HotelDiscountAmount != nil {
			hamt = *s.HotelDiscountAmount
		}
		flightDiscountSum += famt
		hotelDiscountSum += hamt

		switch {
		case s.FlightDiscount && famt > 0 && !s.HotelDiscount:
			onlyFlightDiscount++
		case s.HotelDiscount && hamt > 0 && !s.FlightDiscount:
			onlyHotelDiscount++
		case s.FlightDiscount && s.HotelDiscount && famt > 0 && hamt > 0:
			bothDiscount++
		}

		switch {
		case s.FlightBooked && s.HotelBooked:
			agg.BothTrips++
		case s.FlightBooked:
			agg.OnlyFlightTrips++
		case s.HotelBooked:
			agg.OnlyHotelTrips++
		}

		if s.HasTrip() {
			agg.TotalTrips++
			if s.Cancellation {
				cancelledTrips[*s.TripID] = true
			}
		}

		agg.TotalClicks += s.PageClicks

		if row.Flight != nil {
			bagsSum += row.Flight.CheckedBags
			flightLegs++
		}
	}

	agg.TotalCancellations = len(cancelledTrips)

	if agg.TotalSessions > 0 {
		n := float64(agg.TotalSessions)
		agg.AverageFlightDiscount = flightDiscountSum / n
		agg.AverageHotelDiscount = hotelDiscountSum / n
		agg.FlightDiscountProportion = float64(onlyFlightDiscount) / n
		agg.HotelDiscountProportion = float64(onlyHotelDiscount) / n
		agg.BothDiscountProportion = float64(bothDiscount) / n
		agg.AverageClicks = float64(agg.TotalClicks) / n
	}
	if flightLegs > 0 {
		agg.AverageCheckedBags = float64(bagsSum) / float64(flightLegs)
	}
	return agg
}
