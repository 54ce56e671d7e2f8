package usecase

// ScaleHotelSpend min-max normalizes the average daily hotel spend across the
// whole active population. Explicitly two passes: the global reduction is a
// barrier that must finish before any per-user value is emitted, which keeps
// the stage safe to run after parallel per-user aggregation.
//
// Users with an undefined average, and the degenerate max == min range, map
// to 0. Every emitted value is in [0, 1].
func ScaleHotelSpend(values map[int64]*float64) map[int64]float64 {
	var min, max float64
	seen := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if !seen {
			min, max = *v, *v
			seen = true
			continue
		}
		if *v < min {
			min = *v
		}
		if *v > max {
			max = *v
		}
	}

	scaled := make(map[int64]float64, len(values))
	for userID, v := range values {
		if v == nil || !seen || max == min {
			scaled[userID] = 0
			continue
		}
		scaled[userID] = (*v - min) / (max - min)
	}
	return scaled
}
