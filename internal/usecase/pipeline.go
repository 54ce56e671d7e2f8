package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/HugoDataAnalyst/TravelTide/internal/domain/repository"
	"github.com/HugoDataAnalyst/TravelTide/pkg/logger"
	"github.com/HugoDataAnalyst/TravelTide/pkg/metrics"
)

// Pipeline runs the feature-aggregation stages over one immutable snapshot
// of the four input datasets. Per-user aggregation fans out over a bounded
// worker pool; the min-max scaling reduction is the only cross-user barrier.
type Pipeline struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	flightRepo  repository.FlightRepository
	hotelRepo   repository.HotelRepository
	filter      *ActiveUserFilter
	workers     int
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// PipelineResult is the output of one run.
type PipelineResult struct {
	Features    []entity.UserFeatureRecord
	RawExtract  []entity.SessionExtract
	ActiveUsers int
}

// NewPipeline creates a new feature pipeline
func NewPipeline(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	flightRepo repository.FlightRepository,
	hotelRepo repository.HotelRepository,
	filter *ActiveUserFilter,
	workers int,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		flightRepo:  flightRepo,
		hotelRepo:   hotelRepo,
		filter:      filter,
		workers:     workers,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run executes the full pipeline once. Any input read failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*PipelineResult, error) {
	loadStart := time.Now()
	users, err := p.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	sessions, err := p.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	flights, err := p.flightRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}
	hotels, err := p.hotelRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load hotels: %w", err)
	}
	p.observeStage("load", loadStart)
	p.countRows("users", len(users))
	p.countRows("sessions", len(sessions))
	p.countRows("flights", len(flights))
	p.countRows("hotels", len(hotels))
	p.logger.Info("Snapshot loaded",
		"users", len(users), "sessions", len(sessions),
		"flights", len(flights), "hotels", len(hotels))

	filterStart := time.Now()
	active := p.filter.Filter(sessions)
	p.observeStage("filter", filterStart)
	if p.metrics != nil {
		p.metrics.ActiveUsers.Set(float64(len(active)))
	}
	p.logger.Info("Active users selected", "count", len(active))

	rows := BuildUserSessions(sessions, flights, hotels, active)

	aggStart := time.Now()
	spend, behavior := p.aggregateUsers(rows)
	p.observeStage("aggregate", aggStart)

	// The global reduction over every user's average must complete before
	// any scaled value exists, hence its own stage after the worker pool.
	scaleStart := time.Now()
	ads := make(map[int64]*float64, len(spend))
	for userID, agg := range spend {
		ads[userID] = agg.AvgDailyHotelSpend
	}
	scaled := ScaleHotelSpend(ads)
	p.observeStage("scale", scaleStart)

	indices := make(map[int64]BehaviorIndices, len(behavior))
	for userID, agg := range behavior {
		indices[userID] = DeriveIndices(agg)
	}

	assembleStart := time.Now()
	features := AssembleFeatures(users, rows, spend, scaled, behavior, indices)
	extract := ProjectRawExtract(users, rows)
	p.observeStage("assemble", assembleStart)

	if p.metrics != nil {
		p.metrics.FeatureRecords.Add(float64(len(features)))
		p.metrics.ExtractRows.Add(float64(len(extract)))
	}
	p.logger.Info("Pipeline finished",
		"featureRecords", len(features), "extractRows", len(extract))

	return &PipelineResult{
		Features:    features,
		RawExtract:  extract,
		ActiveUsers: len(active),
	}, nil
}

// aggregateUsers runs the spend and behavior aggregations for disjoint user
// partitions concurrently. Each worker fills private maps that are merged
// after the pool drains, so no cross-user state is shared mid-stage.
func (p *Pipeline) aggregateUsers(rows map[int64][]SessionRow) (map[int64]SpendAggregate, map[int64]BehaviorAggregate) {
	userIDs := make([]int64, 0, len(rows))
	for userID := range rows {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	workers := p.workers
	if workers > len(userIDs) && len(userIDs) > 0 {
		workers = len(userIDs)
	}

	spendParts := make([]map[int64]SpendAggregate, workers)
	behaviorParts := make([]map[int64]BehaviorAggregate, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			spendPart := make(map[int64]SpendAggregate)
			behaviorPart := make(map[int64]BehaviorAggregate)
			for i := w; i < len(userIDs); i += workers {
				userID := userIDs[i]
				spendPart[userID] = AggregateSpend(userID, rows[userID])
				behaviorPart[userID] = AggregateBehavior(userID, rows[userID])
			}
			spendParts[w] = spendPart
			behaviorParts[w] = behaviorPart
		}(w)
	}
	wg.Wait()

	spend := make(map[int64]SpendAggregate, len(userIDs))
	behavior := make(map[int64]BehaviorAggregate, len(userIDs))
	for w := 0; w < workers; w++ {
		for userID, agg := range spendParts[w] {
			spend[userID] = agg
		}
		for userID, agg := range behaviorParts[w] {
			behavior[userID] = agg
		}
	}
	return spend, behavior
}

func (p *Pipeline) observeStage(stage string, start time.Time) {
	if p.metrics != nil {
		p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}
}

func (p *Pipeline) countRows(dataset string, n int) {
	if p.metrics != nil {
		p.metrics.RowsLoaded.WithLabelValues(dataset).Add(float64(n))
	}
}
