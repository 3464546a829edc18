// Package router assembles the echo engine: global middleware, the custom
// error handler, and every API route with its handler and auth requirements.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wealthwatch/internal/config"
	"wealthwatch/internal/handlers"
	"wealthwatch/internal/middleware"
	"wealthwatch/internal/services"
	"wealthwatch/internal/storage"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	Config           *config.Config
	Store            storage.Storage
	TokenService     services.TokenServiceInterface
	AuthService      services.AuthServiceInterface
	ExpenseService   services.ExpenseServiceInterface
	BudgetService    services.BudgetServiceInterface
	AnalyticsService services.AnalyticsServiceInterface
}

// New builds the fully wired echo engine.
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(
		deps.Config.Security.RateLimitPerSecond,
		deps.Config.Security.RateLimitBurst,
	))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.Config.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.TokenService, deps.Config)
	expenseHandler := handlers.NewExpenseHandler(deps.ExpenseService)
	budgetHandler := handlers.NewBudgetHandler(deps.BudgetService, deps.AnalyticsService)
	analyticsHandler := handlers.NewAnalyticsHandler(deps.AnalyticsService)
	healthHandler := handlers.NewHealthCheckHandler(deps.Store)

	e.GET("/healthz", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(deps.TokenService)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, requireAuth)

	expenses := api.Group("/expenses", requireAuth)
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	// Registered before /:id so "stats" is not captured as an expense id.
	expenses.GET("/stats/summary", analyticsHandler.Stats)
	expenses.GET("/:id", expenseHandler.Get)
	// Updates are partial either way; PUT is the documented verb, PATCH is
	// kept for clients that send the more accurate one.
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.PATCH("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	budgets := api.Group("/budgets", requireAuth)
	budgets.GET("", budgetHandler.List)
	budgets.POST("", budgetHandler.Create)
	budgets.GET("/comparison", budgetHandler.Comparison)
	budgets.GET("/:id", budgetHandler.Get)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.PATCH("/:id", budgetHandler.Update)
	budgets.DELETE("/:id", budgetHandler.Delete)

	analytics := api.Group("/analytics", requireAuth)
	analytics.GET("/summary", analyticsHandler.Summary)

	return e
}
