package app

import (
	"context"

	"career-advisor/internal/config"
	"career-advisor/internal/infrastructure/cache"
	"career-advisor/internal/usecase"
	"career-advisor/internal/ws"

	"go.uber.org/zap"
)

// Container holds the process-wide dependencies shared by all handlers.
type Container struct {
	Config      config.Config
	Logger      *zap.Logger
	Stats       *cache.Redis
	Hub         *ws.Hub
	Recommender *usecase.Recommender

	stopHub context.CancelFunc
}

func NewContainer(cfg config.Config, logger *zap.Logger) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}

	stats := cache.NewRedis(cfg.Redis, logger.Named("cache"))

	hub := ws.NewHub(logger.Named("ws"))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	rec := usecase.NewRecommender(stats, ws.NewNotifier(hub), logger.Named("recommender"))

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Stats:       stats,
		Hub:         hub,
		Recommender: rec,
		stopHub:     cancel,
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}
	if c.Stats == nil {
		return nil
	}
	return c.Stats.Close()
}
