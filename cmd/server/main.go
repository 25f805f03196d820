package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/brand-engine/configs"
	"github.com/maheshrc27/brand-engine/internal/api"
	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/logger"
	"github.com/maheshrc27/brand-engine/internal/repository"
	"github.com/maheshrc27/brand-engine/internal/service"
	"github.com/maheshrc27/brand-engine/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Info("no .env file loaded", zap.Error(envErr))
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
	defer closeRedis(log, rdb)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis is unreachable, calendar snapshots will refetch", zap.String("addr", cfg.RedisURI), zap.Error(err))
	}
	cancel()

	var db *sql.DB
	history := repository.NewNopHistoryRepository()
	if cfg.PostgresURI != "" {
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatal("failed to open database", zap.Error(err))
		}
		defer closeDB(log, db)

		if err := db.Ping(); err != nil {
			log.Fatal("database is unreachable", zap.Error(err))
		}
		history = repository.NewHistoryRepository(db)
	} else {
		log.Info("POSTGRES_URI not set, action history disabled")
	}

	contentAPI := client.NewContentAPI(cfg.APIBaseURL, cfg.RequestTimeout, cfg.AgentTimeout, log.Named("content_api"))
	agentAPI := client.NewAgentAPI(cfg.AgentURL, cfg.AgentTimeout, log.Named("agent_api"))

	snapshots := repository.NewSnapshotRepository(rdb, cfg.SnapshotTTL)
	guard := service.NewInFlight()
	archive := service.NewR2Service(cfg.R2)

	services := api.Services{
		Brands:   service.NewBrandService(contentAPI, snapshots, history, guard, log),
		Calendar: service.NewCalendarService(contentAPI, snapshots, log),
		Posts:    service.NewPostService(contentAPI, archive, history, guard, log),
		Agent:    service.NewAgentService(agentAPI, history, guard, log),
		History:  service.NewHistoryService(history),
		Health:   service.NewHealthService(rdb, history, contentAPI),
	}

	viewer := utils.LoadLocation(cfg.ViewerTimezone, time.UTC)
	app := api.NewServer(*cfg, viewer, services, log)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()
	log.Info("server is running",
		zap.String("port", cfg.Port),
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.Bool("artwork_archive", cfg.R2.Enabled()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
	log.Info("server shutdown complete")
}

func closeDB(log *zap.Logger, db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Error("failed to close database", zap.Error(err))
	}
}

func closeRedis(log *zap.Logger, rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Error("failed to close redis", zap.Error(err))
	}
}
