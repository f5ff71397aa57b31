package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bookmyshoot/booking-api/docs"
	"github.com/bookmyshoot/booking-api/internal/api/handler"
	"github.com/bookmyshoot/booking-api/internal/api/middleware"
	"github.com/bookmyshoot/booking-api/internal/core/auth"
	"github.com/bookmyshoot/booking-api/internal/core/domain"
	"github.com/bookmyshoot/booking-api/internal/core/service"
	mongodb "github.com/bookmyshoot/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bookmyshoot/booking-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the router needs beyond its two
// connection handles. It is constructed once in main from the environment.
type RouterConfig struct {
	JWTSecret        string
	TokenTTL         time.Duration
	BcryptCost       int
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("bookmyshoot"))

	// --- Dependencies ---
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	orgRepo := mongodb.NewOrganizationRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)

	userService := service.NewUserService(userRepo, hasher, tokens, throttle, log)
	photographerService := service.NewPhotographerService(userRepo, log)
	orgService := service.NewOrganizationService(orgRepo, log)

	authHandler := handler.NewAuthHandler(userService)
	photographerHandler := handler.NewPhotographerHandler(photographerService)
	orgHandler := handler.NewOrganizationHandler(orgService)

	guard := middleware.Auth(tokens, userRepo)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, guard)
	authGroup.PUT("/profile-image", authHandler.UpdateProfileImage, guard)

	// --- Public directory & organizations ---
	e.GET("/api/photographers", photographerHandler.List)
	e.GET("/api/organizations/:id", orgHandler.Get)
	e.POST("/api/organizations", orgHandler.Create, guard,
		middleware.RBAC(domain.RolePhotographer, domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
