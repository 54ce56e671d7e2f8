package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), cfg.CohortStart)
	assert.Equal(t, 7, cfg.MinSessionCount)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "exports", cfg.OutputDir)
	assert.False(t, cfg.MongoExport)
	assert.Empty(t, cfg.MetricsPort)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("COHORT_START", "2022-11-01")
	t.Setenv("MIN_SESSION_COUNT", "3")
	t.Setenv("PIPELINE_WORKERS", "0")
	t.Setenv("MONGO_EXPORT", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2022, 11, 1, 0, 0, 0, 0, time.UTC), cfg.CohortStart)
	assert.Equal(t, 3, cfg.MinSessionCount)
	// Worker count is clamped to at least one.
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.MongoExport)
}

func TestLoadConfigRejectsBadCohortDate(t *testing.T) {
	t.Setenv("COHORT_START", "04-01-2023")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COHORT_START")
}
