// Package app wires config, storage and services for both entry points.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"tubeplan/config"
	"tubeplan/database"
	chsvc "tubeplan/pkg/channel/service"
	chServiceImp "tubeplan/pkg/channel/serviceImp"
	"tubeplan/pkg/logger"
	"tubeplan/pkg/metrics"
	refRepoImp "tubeplan/pkg/reference/repositoryImp"
	refServiceImp "tubeplan/pkg/reference/serviceImp"
	"tubeplan/pkg/scoring"
	wfServiceImp "tubeplan/pkg/workflow/serviceImp"
	"tubeplan/pkg/youtube"
)

type App struct {
	Cfg     config.AppConfig
	Log     *logger.Logger
	DB      *gorm.DB
	Redis   *redis.Client
	Metrics *metrics.Metrics
	Weights scoring.Weights
	Search  youtube.Searcher

	Channel    chsvc.ChannelService
	Workflow   *wfServiceImp.WorkflowSvc
	References *refServiceImp.Svc
}

func New(ctx context.Context, cfg config.AppConfig, log *logger.Logger) (*App, error) {
	weights, err := scoring.LoadWeights(cfg.ScoringWeightsFile)
	if err != nil {
		return nil, fmt.Errorf("scoring weights: %w", err)
	}
	if cfg.ScoringWeightsFile != "" {
		log.Info("scoring weights loaded", "file", cfg.ScoringWeightsFile)
	}

	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	rdb := openRedis(ctx, cfg.RedisURL, log)
	search := youtube.NewCached(youtube.New(ctx, cfg.GoogleAPIKey, log), rdb, youtube.DefaultCacheTTL, m)
	if cfg.GoogleAPIKey == "" {
		log.Debug("no GOOGLE_API_KEY, video search disabled")
	}

	return &App{
		Cfg:        cfg,
		Log:        log,
		DB:         db,
		Redis:      rdb,
		Metrics:    m,
		Weights:    weights,
		Search:     search,
		Channel:    chServiceImp.New(db, log),
		Workflow:   wfServiceImp.New(db, search, weights, log, m),
		References: refServiceImp.New(refRepoImp.New(db), cfg.ReferenceAllowedDomains, cfg.ReferenceMaxBytes),
	}, nil
}

// openRedis returns nil when no URL is set or the server is unreachable.
func openRedis(ctx context.Context, url string, log *logger.Logger) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("redis: invalid URL, caching disabled", "error", err)
		return nil
	}
	rdb := redis.NewClient(opts)
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		log.Warn("redis: connection failed, caching disabled", "error", err)
		_ = rdb.Close()
		return nil
	}
	log.Info("redis: connected, search caching enabled")
	return rdb
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	a.Log.Sync()
}
