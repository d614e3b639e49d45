package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wenlaunch/proposal-backend/config"
	"github.com/wenlaunch/proposal-backend/internal/bootstrap"
	"github.com/wenlaunch/proposal-backend/internal/logging"
	"github.com/wenlaunch/proposal-backend/internal/maintenance"
)

const serviceName = "proposal-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	var redisClient *redis.Client
	if cfg.Feeds.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Feeds.RedisAddr})
	}

	if cfg.Render.Retention > 0 {
		sweeper := maintenance.NewSweeper(cfg.Render.OutputDir, cfg.Render.Retention, logger)
		if err := sweeper.Start(); err != nil {
			logger.Fatal("start output sweeper", zap.Error(err))
		}
		defer sweeper.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Cfg:         cfg,
		Log:         logger,
		Redis:       redisClient,
	})

	logger.Info("listening", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
