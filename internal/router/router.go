package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/channelchat/channelchat-go/internal/handler"
	"github.com/channelchat/channelchat-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	User    *handler.UserHandler
	Session *handler.SessionHandler
	Message *handler.MessageHandler
	Ingest  *handler.IngestHandler
	Tool    *handler.ToolHandler
	Status  *handler.StatusHandler
	Health  *handler.HealthHandler
	Export  *handler.ExportHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Probes and metrics (outside the API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// User routes
	registerLimit := middleware.NewRegisterRateLimiter()
	loginLimit := middleware.NewLoginRateLimiter()
	api.Post("/users", h.User.Register, registerLimit.Handler())
	api.Post("/users/login", h.User.Login, loginLimit.Handler())

	// Session routes
	api.Post("/sessions", h.Session.Create)
	api.Get("/sessions", h.Session.List)
	api.Put("/sessions/:sessionId", h.Session.Rename)
	api.Delete("/sessions/:sessionId", h.Session.Delete)

	// Message routes
	api.Post("/sessions/:sessionId/messages", h.Message.Append)
	api.Get("/sessions/:sessionId/messages", h.Message.List)

	// Channel download (SSE) and analytics tools
	downloadLimit := middleware.NewDownloadRateLimiter()
	api.Post("/youtube/download", h.Ingest.Download, downloadLimit.Handler())
	api.Post("/tools/call", h.Tool.Call)

	// Dataset snapshots
	api.Post("/sessions/:sessionId/export", h.Export.Save)
	api.Get("/datasets/export", h.Export.Latest)

	// Status
	api.Get("/status", h.Status.Get)
}
