package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/soltixdb/varint/internal/config"
	"github.com/soltixdb/varint/internal/handlers"
	"github.com/soltixdb/varint/internal/logging"
	"github.com/soltixdb/varint/internal/middleware"
	"github.com/soltixdb/varint/internal/utils"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, cfg config.Config) (*handlers.Handler, error) {
	h, err := handlers.New(logger, cfg.Codec)
	if err != nil {
		return nil, err
	}

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger, "/health"))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)
	v1 := app.Group("/v1", authMiddleware)

	// Single values
	v1.Post("/encode", h.Encode)
	v1.Post("/decode", h.Decode)

	// Packed sequences
	v1.Post("/sequence/encode", h.EncodeSequence)
	v1.Post("/sequence/decode", h.DecodeSequence)

	app.Use(h.NotFound)

	return h, nil
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, cfg config.Config) (*fiber.App, error) {
	fiberCfg := fiber.Config{
		AppName:               "Varint Codec",
		DisableStartupMessage: !cfg.IsDevelopment(),
		ErrorHandler:          middleware.ErrorHandler(logger),
		ReadTimeout:           utils.ReadTimeout,
		WriteTimeout:          utils.WriteTimeout,
		IdleTimeout:           utils.IdleTimeout,
	}
	if cfg.Server.BodyLimit > 0 {
		fiberCfg.BodyLimit = cfg.Server.BodyLimit
	}

	app := fiber.New(fiberCfg)
	if _, err := Setup(app, logger, cfg); err != nil {
		return nil, err
	}
	return app, nil
}
