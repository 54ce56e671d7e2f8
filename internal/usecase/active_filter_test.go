package usecase

import (
	"testing"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

var cohortStart = time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)

func sessionAt(userID int64, start time.Time) entity.Session {
	return entity.Session{
		UserID:       userID,
		SessionStart: start,
		SessionEnd:   start.Add(30 * time.Minute),
	}
}

func sessionsFor(userID int64, count int, start time.Time) []entity.Session {
	sessions := make([]entity.Session, 0, count)
	for i := 0; i < count; i++ {
		sessions = append(sessions, sessionAt(userID, start.Add(time.Duration(i)*24*time.Hour)))
	}
	return sessions
}

func TestActiveUserFilter(t *testing.T) {
	filter := NewActiveUserFilter(cohortStart, 7)

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, filter.Filter(nil))
	})

	t.Run("EightSessionsPass", func(t *testing.T) {
		active := filter.Filter(sessionsFor(1, 8, cohortStart))
		assert.True(t, active[1])
	})

	t.Run("SevenSessionsFail", func(t *testing.T) {
		// The threshold is strictly greater-than.
		active := filter.Filter(sessionsFor(2, 7, cohortStart))
		assert.False(t, active[2])
	})

	t.Run("SessionsBeforeCutoffIgnored", func(t *testing.T) {
		sessions := sessionsFor(3, 8, cohortStart.AddDate(0, -1, 0))
		active := filter.Filter(sessions)
		assert.False(t, active[3])
	})

	t.Run("SessionAtCutoffCounts", func(t *testing.T) {
		sessions := sessionsFor(4, 7, cohortStart.Add(24*time.Hour))
		sessions = append(sessions, sessionAt(4, cohortStart))
		active := filter.Filter(sessions)
		assert.True(t, active[4])
	})

	t.Run("MixedUsers", func(t *testing.T) {
		sessions := append(sessionsFor(5, 10, cohortStart), sessionsFor(6, 3, cohortStart)...)
		active := filter.Filter(sessions)
		assert.True(t, active[5])
		assert.False(t, active[6])
		assert.Len(t, active, 1)
	})
}
