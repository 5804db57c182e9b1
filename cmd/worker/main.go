package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/storely/mission-engine/pkg/cache"
	"github.com/storely/mission-engine/pkg/config"
	"github.com/storely/mission-engine/pkg/db"
	"github.com/storely/mission-engine/pkg/migrations"
	"github.com/storely/mission-engine/pkg/producer"
	"github.com/storely/mission-engine/pkg/repository"
	"github.com/storely/mission-engine/pkg/reward"
	"github.com/storely/mission-engine/pkg/scheduler"
	"github.com/storely/mission-engine/pkg/tracker"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("Failed to resolve timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	dbCfg := db.NewConfigFromEnv()
	conn, err := db.Connect(dbCfg)
	if err != nil {
		logger.Error("Failed to connect to database", "host", dbCfg.Host, "database", dbCfg.Database, "error", err)
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Apply(ctx, conn); err != nil {
		cancel()
		logger.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}
	cancel()

	missions := cache.NewCachedMissionRepository(
		repository.NewPostgresMissionRepository(conn),
		cfg.MissionCacheTTL,
		logger,
	)
	progress := repository.NewPostgresProgressRepository(conn)
	badges := repository.NewPostgresBadgeRepository(conn)

	granter := reward.NewGranter(badges, reward.NewDevMockExperienceLedger(), logger)
	missionTracker := tracker.New(missions, progress, granter, logger)

	stores := producer.NewPostgresStoreDirectory(conn)
	orders := producer.NewPostgresOrderStats(conn)
	weekly := producer.NewWeeklyRevenueProducer(stores, orders, missionTracker, loc, logger)
	monthly := producer.NewMonthlyBestSellerProducer(stores, orders, missionTracker, loc, logger)

	sched := scheduler.New(loc, cfg.ProducerTimeout, logger)
	if err := sched.Register(cfg.WeeklyRevenueSchedule, weekly); err != nil {
		logger.Error("Failed to register weekly revenue producer", "error", err)
		os.Exit(1)
	}
	if err := sched.Register(cfg.MonthlyBestSellerSchedule, monthly); err != nil {
		logger.Error("Failed to register monthly best seller producer", "error", err)
		os.Exit(1)
	}

	sched.Start()
	logger.Info("Mission engine worker started",
		"timezone", cfg.Timezone,
		"weekly_schedule", cfg.WeeklyRevenueSchedule,
		"monthly_schedule", cfg.MonthlyBestSellerSchedule,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Shutdown signal received, draining jobs", "signal", sig.String())
	<-sched.Stop().Done()
	logger.Info("Mission engine worker stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
