package repository

import (
	"context"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
)

// FeatureSnapshotRepository persists the feature vectors of one pipeline run
// so the downstream segmentation process can pick them up.
type FeatureSnapshotRepository interface {
	SaveRun(ctx context.Context, runID string, records []entity.UserFeatureRecord) error
}
