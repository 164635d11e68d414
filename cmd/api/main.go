package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/modabay/storefront-api/internal/api"
	"github.com/modabay/storefront-api/internal/infrastructure/config"
	mongodb "github.com/modabay/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/modabay/storefront-api/internal/infrastructure/db/redis"
	"github.com/modabay/storefront-api/internal/infrastructure/media"
	"github.com/modabay/storefront-api/internal/infrastructure/payment"
	"github.com/modabay/storefront-api/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// Redis
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	// External collaborators
	provider := payment.NewStripeProvider(cfg.Stripe.SecretKey)
	images, err := media.NewCloudinaryStore(cfg.Cloudinary.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("cloudinary init failed")
	}

	e := api.NewRouter(db, rdb, provider, images, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
