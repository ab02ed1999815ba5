package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/mnallaretnam/weather-dashboard/internal/api/http"
	"github.com/mnallaretnam/weather-dashboard/internal/config"
	"github.com/mnallaretnam/weather-dashboard/internal/geocode"
	"github.com/mnallaretnam/weather-dashboard/internal/scheduler"
	"github.com/mnallaretnam/weather-dashboard/internal/session"
	"github.com/mnallaretnam/weather-dashboard/internal/weather"
	"github.com/mnallaretnam/weather-dashboard/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound geocoding and provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	geocoder := geocode.NewClient(httpClient)

	// Active weather provider. Open-Meteo is keyless; the alternatives
	// were validated for keys at config load.
	var provider weather.Provider
	switch cfg.Provider {
	case config.ProviderOpenWeather:
		provider = providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)
	case config.ProviderWeatherAPI:
		provider = providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey)
	default:
		provider = providers.NewOpenMeteoProvider(httpClient)
	}

	// Core search pipeline and session state.
	service := weather.NewService(geocoder, provider, cfg.ForecastDays)
	sessions := session.NewStore(cfg.SessionMaxAge)

	// Background sweep of idle sessions.
	sweeper := scheduler.New(sessions, cfg.SessionSweepInterval)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("failed to start session sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "weather-dashboard",
			"provider": provider.Name(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, sessions)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
