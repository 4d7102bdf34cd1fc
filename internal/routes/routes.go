package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/fintrackr/backend/internal/auth"
	"github.com/fintrackr/backend/internal/config"
	"github.com/fintrackr/backend/internal/handlers"
	"github.com/fintrackr/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	verifier auth.Verifier,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	transactionHandler *handlers.TransactionHandler,
	dashboardHandler *handlers.DashboardHandler,
	currencyHandler *handlers.CurrencyHandler,
	profileHandler *handlers.ProfileHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter rate limit: 10 req/min per IP
	authGroup := api.Group("/auth")
	authGroup.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/login/google", authHandler.GoogleLogin)

	protected := middleware.TokenProtected(cfg, verifier)

	categories := api.Group("/categories", protected)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	transactions := api.Group("/transactions", protected)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.Get)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	api.Get("/dashboard/summary", protected, dashboardHandler.Summary)

	api.Get("/currencies", protected, currencyHandler.List)

	api.Get("/user-profile", protected, profileHandler.Get)
	api.Put("/user-profile", protected, profileHandler.Update)
}
