package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gamestore/game-store-api/internal/api/handler"
	"github.com/gamestore/game-store-api/internal/api/middleware"
	"github.com/gamestore/game-store-api/internal/core/domain"
	"github.com/gamestore/game-store-api/internal/core/service"
	mongodb "github.com/gamestore/game-store-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gamestore/game-store-api/internal/infrastructure/db/redis"
	"github.com/gamestore/game-store-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gamestore"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	gameRepo := mongodb.NewGameRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	gameService := service.NewGameService(gameRepo, catalogCache, log)

	authHandler := handler.NewAuthHandler(authService)
	gameHandler := handler.NewGameHandler(gameService)

	// Runs once per request; anonymous requests pass through and are judged
	// by the per-route permission gates below.
	e.Use(middleware.Auth(tokenService, userRepo))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog routes ---
	games := e.Group("/games")
	games.GET("", gameHandler.List, middleware.Require(domain.PermissionUser))
	games.GET("/:id", gameHandler.Get, middleware.Require(domain.PermissionUser))
	games.POST("", gameHandler.Create, middleware.Require(domain.PermissionAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
