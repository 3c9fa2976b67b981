package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/platformkit/auth-service/internal/api/handler"
	"github.com/platformkit/auth-service/internal/api/middleware"
	"github.com/platformkit/auth-service/internal/core/service"
	"github.com/platformkit/auth-service/internal/infrastructure/config"
	mongodb "github.com/platformkit/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/platformkit/auth-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	roles := mongodb.NewRoleRepository(db)
	stamps := redisdb.NewStampCache(rdb)

	issuer := service.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TokenTTL)
	registration := service.NewRegistrationService(users, roles, stamps, log)
	authService := service.NewAuthService(users, roles)
	seeder := service.NewRoleSeeder(roles)

	authHandler := handler.NewAuthHandler(seeder, registration, authService, issuer)
	authMiddleware := middleware.Auth(issuer)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/seedRoles", authHandler.SeedRoles)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
