package usecase

import (
	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
)

// SessionRow is one session joined with its optional flight and hotel legs.
// Flight and Hotel are nil when the session's trip has no such leg, or when
// the session has no trip at all.
type SessionRow struct {
	Session entity.Session
	Flight  *entity.Flight
	Hotel   *entity.Hotel
}

// BuildUserSessions joins sessions with their trip legs and groups the rows
// by user, keeping only users present in the active set. The join is
// materialized once and shared by every downstream aggregation stage.
func BuildUserSessions(sessions []entity.Session, flights []entity.Flight, hotels []entity.Hotel, active map[int64]bool) map[int64][]SessionRow {
	flightsByTrip := make(map[string]*entity.Flight, len(flights))
	for i := range flights {
		flightsByTrip[flights[i].TripID] = &flights[i]
	}
	hotelsByTrip := make(map[string]*entity.Hotel, len(hotels))
	for i := range hotels {
		hotelsByTrip[hotels[i].TripID] = &hotels[i]
	}

	rows := make(map[int64][]SessionRow)
	for _, session := range sessions {
		if !active[session.UserID] {
			continue
		}
		row := SessionRow{Session: session}
		if session.HasTrip() {
			row.Flight = flightsByTrip[*session.TripID]
			row.Hotel = hotelsByTrip[*session.TripID]
		}
		rows[session.UserID] = append(rows[session.UserID], row)
	}
	return rows
}
