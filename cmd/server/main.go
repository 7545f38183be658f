package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/code-indenter/backend/internal/api"
	"github.com/code-indenter/backend/internal/config"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	app := fiber.New(fiber.Config{
		AppName: "Code Indenter API",
	})

	app.Use(recoverer.New())
	app.Use(cors.New())
	app.Use(requestLogger(logger))

	h := api.NewHandler(cfg, logger)
	api.SetupRoutes(app, h)

	logger.Info("starting indenter backend",
		slog.String("port", cfg.Port),
		slog.Duration("format_timeout", cfg.FormatTimeout))
	log.Fatal(app.Listen(":" + cfg.Port))
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// requestLogger tags every request with an ID and logs its outcome.
func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		logger.Info("request",
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("duration", time.Since(start)))
		return err
	}
}
