package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/HugoDataAnalyst/TravelTide/internal/infrastructure/config"
	"github.com/HugoDataAnalyst/TravelTide/internal/infrastructure/persistence"
	"github.com/HugoDataAnalyst/TravelTide/internal/interface/export"
	travelRepo "github.com/HugoDataAnalyst/TravelTide/internal/interface/repository"
	"github.com/HugoDataAnalyst/TravelTide/internal/usecase"
	"github.com/HugoDataAnalyst/TravelTide/pkg/logger"
	"github.com/HugoDataAnalyst/TravelTide/pkg/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting TravelTide feature pipeline")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context cancelled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Warn("Received signal, aborting run", "signal", sig)
		cancel()
	}()

	// Set up PostgreSQL connection for the input snapshot
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up input repositories
	userRepository := travelRepo.NewGormUserRepository(gormDB)
	sessionRepository := travelRepo.NewGormSessionRepository(gormDB)
	flightRepository := travelRepo.NewGormFlightRepository(gormDB)
	hotelRepository := travelRepo.NewGormHotelRepository(gormDB)

	// Serve /metrics while the run is in flight, if configured
	pipelineMetrics := metrics.NewMetrics("traveltide")
	if cfg.MetricsPort != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Info("Serving metrics", "port", cfg.MetricsPort)
			if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
				log.Error("Metrics server error", "error", err)
			}
		}()
	}

	runID := uuid.NewString()
	log.Info("Run started", "runId", runID,
		"cohortStart", cfg.CohortStart.Format("2006-01-02"),
		"minSessionCount", cfg.MinSessionCount)

	filter := usecase.NewActiveUserFilter(cfg.CohortStart, cfg.MinSessionCount)
	pipeline := usecase.NewPipeline(
		userRepository,
		sessionRepository,
		flightRepository,
		hotelRepository,
		filter,
		cfg.Workers,
		log,
		pipelineMetrics,
	)

	result, err := pipeline.Run(ctx)
	if err != nil {
		log.Fatal("Pipeline run failed", "error", err)
	}

	// File snapshots
	featureCSV := export.TimestampedFilename(cfg.OutputDir, "user_features", "csv")
	if err := export.WriteFeatureCSV(featureCSV, result.Features); err != nil {
		log.Fatal("Failed to write feature CSV", "error", err)
	}
	featureJSON := export.TimestampedFilename(cfg.OutputDir, "user_features", "json")
	if err := export.ExportJSON(featureJSON, result.Features); err != nil {
		log.Fatal("Failed to write feature JSON", "error", err)
	}
	extractCSV := export.TimestampedFilename(cfg.OutputDir, "session_extract", "csv")
	if err := export.WriteExtractCSV(extractCSV, result.RawExtract); err != nil {
		log.Fatal("Failed to write extract CSV", "error", err)
	}
	log.Info("Snapshots written", "features", featureCSV, "extract", extractCSV)

	// Optional MongoDB sink for the downstream segmentation job
	if cfg.MongoExport {
		log.Info("Connecting to MongoDB")
		mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		defer mongoClient.Disconnect(ctx)

		db := persistence.GetDatabase(mongoClient, cfg.MongoDB)
		snapshotRepo := travelRepo.NewMongoFeatureSnapshotRepository(db)
		if err := snapshotRepo.SaveRun(ctx, runID, result.Features); err != nil {
			log.Fatal("Failed to save feature snapshot", "error", err)
		}
		log.Info("Feature snapshot saved", "runId", runID, "records", len(result.Features))
	}

	log.Info("TravelTide feature pipeline done",
		"runId", runID,
		"activeUsers", result.ActiveUsers,
		"featureRecords", len(result.Features),
		"extractRows", len(result.RawExtract))
}
