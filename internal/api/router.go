package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fastlegal/case-service/internal/api/handler"
	"github.com/fastlegal/case-service/internal/api/middleware"
	"github.com/fastlegal/case-service/internal/core/service"
	"github.com/fastlegal/case-service/internal/infrastructure/config"
	mongorepo "github.com/fastlegal/case-service/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("fastlegal"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	caseRepo := mongorepo.NewCaseRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	caseService := service.NewCaseService(caseRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	caseHandler := handler.NewCaseHandler(caseService)
	healthHandler := handler.NewHealthHandler(db)

	authGate := middleware.Auth(tokenService)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	e.PUT("/user", userHandler.UpdateProfile, authGate)

	apiGroup := e.Group("/api", authGate)
	apiGroup.POST("/cases", caseHandler.Create)
	apiGroup.PUT("/cases/:id", caseHandler.Update)
	apiGroup.DELETE("/cases/:id", caseHandler.Delete)
	apiGroup.GET("/cases", caseHandler.List)
	apiGroup.GET("/cases/:id", caseHandler.Get)
	apiGroup.GET("/users", userHandler.List)
	apiGroup.GET("/users/count", userHandler.Count)
	apiGroup.DELETE("/users/:id", userHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)    // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
