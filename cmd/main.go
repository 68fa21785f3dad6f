package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/dkmezza/auth-service/internal/handler"
	"github.com/dkmezza/auth-service/internal/middleware"
	"github.com/dkmezza/auth-service/internal/repository"
	"github.com/dkmezza/auth-service/internal/service"
	"github.com/dkmezza/auth-service/pkg/config"
	"github.com/dkmezza/auth-service/pkg/database"
	"github.com/dkmezza/auth-service/pkg/jwtutil"
	"github.com/dkmezza/auth-service/pkg/logger"
	"github.com/dkmezza/auth-service/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting auth service...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// JWT codec holds the signing key and token lifetime for the
	// process; both are immutable after startup
	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})

	// Wire repositories, services and handlers
	db := database.GetDB()
	users := repository.NewGormUserRepository(db)
	tenants := repository.NewGormTenantRepository(db)
	companies := repository.NewGormCompanyRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(users, jwt))
	tenantHandler := handler.NewTenantHandler(service.NewTenantService(tenants))
	companyHandler := handler.NewCompanyHandler(service.NewCompanyService(companies, tenants))

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	api := e.Group("/api")

	// Authentication routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Everything below requires a verified bearer token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwt))

	protected.GET("/users/me", authHandler.Me)

	tenantsGroup := protected.Group("/tenants")
	tenantsGroup.GET("", tenantHandler.List)
	tenantsGroup.POST("", tenantHandler.Create)
	tenantsGroup.GET("/:id", tenantHandler.Get)
	tenantsGroup.PUT("/:id", tenantHandler.Update)
	tenantsGroup.DELETE("/:id", tenantHandler.Delete)

	companiesGroup := protected.Group("/companies")
	companiesGroup.GET("", companyHandler.List)
	companiesGroup.POST("", companyHandler.Create)
	companiesGroup.GET("/:id", companyHandler.Get)
	companiesGroup.PUT("/:id", companyHandler.Update)
	companiesGroup.DELETE("/:id", companyHandler.Delete)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
