package usecase

// BehaviorIndices holds the composite rates and ratios derived from one
// user's behavioral counts. Every ratio defaults to 0 when its denominator
// is zero; no NaN or Inf ever leaves this stage.
type BehaviorIndices struct {
	UserID                 int64
	TotalCancellationRate  float64
	ConversionRate         float64
	PrefersFlights         float64
	PrefersHotels          float64
	PrefersBoth            float64
	ClickEfficiency        float64
	EngagementIndex        float64
	DiscountResponsiveness float64
}

// ratio returns num/den, or 0 when den is zero.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// DeriveIndices computes the behavioral indices from one user's aggregate.
func DeriveIndices(b BehaviorAggregate) BehaviorIndices {
	trips := float64(b.TotalTrips)

	// The engagement formula is the documented contract; it is NOT
	// algebraically simplified even though avgClicks*trips/totalClicks
	// collapses when totalClicks = avgClicks*sessions.
	engagement := 0.0
	if b.TotalClicks > 0 {
		engagement = b.AverageClicks * trips / float64(b.TotalClicks)
	}

	weighted := b.FlightDiscountProportion*float64(b.OnlyFlightTrips) +
		b.HotelDiscountProportion*float64(b.OnlyHotelTrips) +
		b.BothDiscountProportion*float64(b.BothTrips)

	return BehaviorIndices{
		UserID:                 b.UserID,
		TotalCancellationRate:  ratio(float64(b.TotalCancellations), trips),
		ConversionRate:         ratio(trips, float64(b.TotalSessions)),
		PrefersFlights:         ratio(float64(b.OnlyFlightTrips), trips),
		PrefersHotels:          ratio(float64(b.OnlyHotelTrips), trips),
		PrefersBoth:            ratio(float64(b.BothTrips), trips),
		ClickEfficiency:        ratio(float64(b.TotalClicks), trips),
		EngagementIndex:        engagement,
		DiscountResponsiveness: ratio(weighted, trips),
	}
}
