package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/memberhub/members-api/internal/api/handler"
	"github.com/memberhub/members-api/internal/api/middleware"
	"github.com/memberhub/members-api/internal/auth"
	"github.com/memberhub/members-api/internal/core/ports"
	"github.com/memberhub/members-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router wires together. Redis is nil unless
// the session strategy is active.
type Deps struct {
	Strategy auth.Strategy
	Auth     ports.AuthService
	Admin    ports.AdminService
	Audit    ports.AuditRecorder
	Mongo    *mongo.Database
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds the Echo instance with the full route authorization map.
// Routes with no guard are public; guards compose left-to-right and only
// decide which rejection surfaces first.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("members_http"))
	e.Use(middleware.ResolveIdentity(d.Strategy, d.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Strategy, d.Audit)
	userHandler := handler.NewUserHandler()
	adminHandler := handler.NewAdminHandler(d.Admin, d.Audit)

	// --- Public + auth routes ---
	e.GET("/", handler.Landing)
	e.POST("/sign-up", authHandler.Signup, middleware.RequireAnonymous())
	e.POST("/log-in", authHandler.Login, middleware.RequireAnonymous())
	e.GET("/log-out", authHandler.Logout)

	// --- Member routes ---
	e.GET("/dashboard", userHandler.Dashboard, middleware.RequireAuthenticated())
	e.GET("/settings", userHandler.Settings,
		middleware.RequireAuthenticated(), middleware.RequireNotAdmin())
	e.GET("/upgrade-account", userHandler.UpgradeAccount,
		middleware.RequireAuthenticated(), middleware.RequireNotAdmin())

	// --- Admin routes ---
	admin := e.Group("/admin", middleware.RequireAdmin())
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.Users)
	admin.POST("/users/:id/promote", adminHandler.Promote)

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
