package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Virag-Koradiya/ElevateU/internal/api"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
	"github.com/Virag-Koradiya/ElevateU/internal/infrastructure/config"
	mongostore "github.com/Virag-Koradiya/ElevateU/internal/infrastructure/db/mongo"
	redisstore "github.com/Virag-Koradiya/ElevateU/internal/infrastructure/db/redis"
	"github.com/Virag-Koradiya/ElevateU/internal/infrastructure/media"
	"github.com/Virag-Koradiya/ElevateU/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init("info", false)
		fallback.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb indexes")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection")
		}
		defer rdb.Close()
	} else {
		log.Warn().Msg("redis not configured, login throttling disabled")
	}

	var uploader ports.MediaUploader
	uploader, err = media.NewS3Uploader(ctx, media.Config{
		Endpoint:      cfg.S3.Endpoint,
		Region:        cfg.S3.Region,
		Bucket:        cfg.S3.Bucket,
		AccessKey:     cfg.S3.AccessKey,
		SecretKey:     cfg.S3.SecretKey,
		PublicBaseURL: cfg.S3.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("media uploader")
	}

	e := api.NewRouter(cfg, db, rdb, uploader, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
