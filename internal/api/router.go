package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jongleur-maersk/tracking-portal/docs"
	"github.com/jongleur-maersk/tracking-portal/internal/api/handler"
	"github.com/jongleur-maersk/tracking-portal/internal/api/middleware"
	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
	"github.com/jongleur-maersk/tracking-portal/internal/core/ports"
	"github.com/jongleur-maersk/tracking-portal/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	trackingSvc ports.TrackingService,
	settings domain.SiteSettings,
	limiter middleware.Limiter,
	db *mongo.Database,
	rdb *redis.Client,
	log zerolog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tracking_portal"))

	// --- Dependencies ---
	trackingHandler := handler.NewTrackingHandler(trackingSvc, settings)
	pagesHandler := handler.NewPagesHandler(settings)
	throttle := middleware.RateLimit(limiter, log)

	// --- Pages ---
	e.GET("/", pagesHandler.Home)
	e.GET("/about", pagesHandler.About)
	e.GET("/services", pagesHandler.Services)
	e.GET("/contact", pagesHandler.Contact)
	e.GET("/track", trackingHandler.TrackPage, throttle)
	e.POST("/track", trackingHandler.TrackPage, throttle)

	// --- JSON API ---
	e.GET("/api/v1/shipments/:tracking_number", trackingHandler.GetShipment, throttle)

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
