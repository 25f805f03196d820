package service

import (
	"context"
	"time"

	"github.com/maheshrc27/brand-engine/internal/client"
	"github.com/maheshrc27/brand-engine/internal/repository"
	"github.com/redis/go-redis/v9"
)

const healthTimeout = 3 * time.Second

type HealthReport struct {
	Healthy bool              `json:"healthy"`
	Checks  map[string]string `json:"checks"`
}

type HealthService interface {
	Check(ctx context.Context) *HealthReport
}

type healthService struct {
	rdb     *redis.Client
	history repository.HistoryRepository
	api     client.ContentAPI
}

func NewHealthService(rdb *redis.Client, history repository.HistoryRepository, api client.ContentAPI) HealthService {
	return &healthService{rdb: rdb, history: history, api: api}
}

func (s *healthService) Check(ctx context.Context) *HealthReport {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	report := &HealthReport{Healthy: true, Checks: map[string]string{}}
	mark := func(name string, err error) {
		if err != nil {
			report.Healthy = false
			report.Checks[name] = err.Error()
			return
		}
		report.Checks[name] = "ok"
	}

	mark("redis", s.rdb.Ping(ctx).Err())
	mark("postgres", s.history.Ping(ctx))

	status, err := s.api.Status(ctx)
	if err != nil {
		mark("content_api", err)
	} else {
		report.Checks["content_api"] = status.Status
		if status.DB != "" {
			report.Checks["content_api_db"] = status.DB
		}
	}
	return report
}
