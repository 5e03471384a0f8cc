package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jongleur-maersk/tracking-portal/internal/api"
	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/qrcode"
	"github.com/jongleur-maersk/tracking-portal/internal/core/service"
	mongodb "github.com/jongleur-maersk/tracking-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/jongleur-maersk/tracking-portal/internal/infrastructure/db/redis"
	"github.com/jongleur-maersk/tracking-portal/internal/pkg/config"
	"github.com/jongleur-maersk/tracking-portal/pkg/logger"
)

// @title Tracking Portal API
// @version 1.0
// @description Shipment tracking lookup API for the freight portal.
// @contact.name Support
// @contact.email support@maersk-cargo.com
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	shipmentRepo := mongodb.NewShipmentRepository(db)
	if err := shipmentRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure shipment indexes")
	}

	settings, err := mongodb.NewSiteSettingsRepository(db).Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load site settings, using defaults")
		settings = domain.DefaultSiteSettings()
	}
	settings = applySiteOverrides(settings, cfg.Site)

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Limit,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)

	codes := qrcode.New(cfg.BaseURL)
	trackingSvc := service.NewTrackingService(shipmentRepo, codes, log)

	e, err := api.NewRouter(trackingSvc, settings, limiter, db, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("tracking portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// applySiteOverrides lets environment variables win over the stored settings.
func applySiteOverrides(s domain.SiteSettings, o config.SiteConfig) domain.SiteSettings {
	if o.Name != "" {
		s.CompanyName = o.Name
	}
	if o.Email != "" {
		s.SiteEmail = o.Email
	}
	if o.Phone != "" {
		s.SitePhone = o.Phone
	}
	if o.Address != "" {
		s.SiteAddress = o.Address
	}
	if o.SupportEmail != "" {
		s.SupportEmail = o.SupportEmail
	}
	return s
}
