package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"booking-widget/config"
	bookingHTTP "booking-widget/internal/booking/delivery/http"
	"booking-widget/internal/booking/usecase"
	"booking-widget/internal/httpserver"
	"booking-widget/internal/middleware"
	"booking-widget/pkg/log"
)

// @title       Booking Widget API
// @description Books events into a shared calendar and sends confirmation emails.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, "Refusing to start:", cfgErr)
		} else {
			fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		}
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting booking service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Service stopped with error: %v", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Providers, authenticated once and shared by every request
	calendarGateway, err := newCalendarGateway(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	mailGateway, err := newMailGateway(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	// 4. Booking domain
	bookingUC := usecase.New(logger, calendarGateway, mailGateway, cfg.Meeting.Link)
	bookingHandler := bookingHTTP.New(logger, bookingUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin}),
		BookingHandler: bookingHandler,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 6. Run
	return httpServer.Run(ctx)
}
