package usecase

import (
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
)

// ActiveUserFilter selects users with strictly more than MinSessions sessions
// starting at or after CohortStart.
type ActiveUserFilter struct {
	CohortStart time.Time
	MinSessions int
}

// NewActiveUserFilter creates a new active user filter
func NewActiveUserFilter(cohortStart time.Time, minSessions int) *ActiveUserFilter {
	return &ActiveUserFilter{
		CohortStart: cohortStart,
		MinSessions: minSessions,
	}
}

// Filter returns the set of user ids passing the activity threshold.
func (f *ActiveUserFilter) Filter(sessions []entity.Session) map[int64]bool {
	counts := make(map[int64]int)
	for _, session := range sessions {
		if session.SessionStart.Before(f.CohortStart) {
			continue
		}
		counts[session.UserID]++
	}

	active := make(map[int64]bool)
	for userID, count := range counts {
		if count > f.MinSessions {
			active[userID] = true
		}
	}
	return active
}
