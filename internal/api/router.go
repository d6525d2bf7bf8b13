package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Virag-Koradiya/ElevateU/internal/api/handler"
	"github.com/Virag-Koradiya/ElevateU/internal/api/middleware"
	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
	"github.com/Virag-Koradiya/ElevateU/internal/core/service"
	"github.com/Virag-Koradiya/ElevateU/internal/infrastructure/config"
	mongostore "github.com/Virag-Koradiya/ElevateU/internal/infrastructure/db/mongo"
	redisstore "github.com/Virag-Koradiya/ElevateU/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil: login throttling is then disabled and the readiness probe
// skips Redis.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, uploader ports.MediaUploader, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("elevateu"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	jobRepo := mongostore.NewJobRepository(db)
	companyRepo := mongostore.NewCompanyRepository(db)
	applicationRepo := mongostore.NewApplicationRepository(db)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisstore.NewLoginThrottle(rdb)
	}

	authService := service.NewAuthService(userRepo, uploader, limiter, cfg.SecretKey, cfg.TokenTTL, log)
	jobService := service.NewJobService(jobRepo, companyRepo, log)
	companyService := service.NewCompanyService(companyRepo, uploader, log)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, userRepo, companyRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Env, cfg.TokenTTL)
	jobHandler := handler.NewJobHandler(jobService)
	companyHandler := handler.NewCompanyHandler(companyService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	authGuard := middleware.Auth(cfg.SecretKey)
	recruiterOnly := middleware.RBAC(domain.RoleRecruiter)
	seekerOnly := middleware.RBAC(domain.RoleSeeker)

	// --- Auth routes ---
	user := e.Group("/api/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.GET("/logout", authHandler.Logout)
	user.GET("/me", authHandler.Me, authGuard)
	user.PATCH("/profile/update", authHandler.UpdateProfile, authGuard)

	// --- Job routes ---
	job := e.Group("/api/job", authGuard)
	job.POST("", jobHandler.Create, recruiterOnly)
	job.GET("", jobHandler.Search)
	job.GET("/admin", jobHandler.Mine, recruiterOnly)
	job.GET("/:id", jobHandler.Get)
	job.DELETE("/:id", jobHandler.Delete, recruiterOnly)

	// --- Company routes ---
	company := e.Group("/api/company", authGuard, recruiterOnly)
	company.POST("", companyHandler.Register)
	company.GET("", companyHandler.List)
	company.GET("/:id", companyHandler.Get)
	company.PUT("/:id", companyHandler.Update)

	// --- Application routes ---
	application := e.Group("/api/application", authGuard)
	application.POST("/apply/:id", applicationHandler.Apply, seekerOnly)
	application.GET("", applicationHandler.ListMine, seekerOnly)
	application.GET("/applicants/:id", applicationHandler.Applicants, recruiterOnly)
	application.PATCH("/status/:id", applicationHandler.UpdateStatus, recruiterOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
