package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/salonhq/salon-system/docs"
	"github.com/salonhq/salon-system/internal/api/handler"
	"github.com/salonhq/salon-system/internal/api/middleware"
	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/service"
	"github.com/salonhq/salon-system/internal/core/token"
	"github.com/salonhq/salon-system/internal/infrastructure/config"
	"github.com/salonhq/salon-system/internal/infrastructure/db/postgres"
	rediscache "github.com/salonhq/salon-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("salon"))

	// --- Dependencies ---
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL, cfg.TokenLeeway)

	authRepo := postgres.NewAuthRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	reportCache := rediscache.NewReportCache(rdb, cfg.ReportCacheTTL)

	authService := service.NewAuthService(authRepo, tokens, log)
	staffService := service.NewStaffService(staffRepo, log)
	catalogService := service.NewCatalogService(catalogRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, staffRepo, catalogRepo, log)
	reportService := service.NewReportService(reportRepo, reportCache, log)

	authHandler := handler.NewAuthHandler(authService)
	staffHandler := handler.NewStaffHandler(staffService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	reportHandler := handler.NewReportHandler(reportService)

	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Staff routes (reads open, writes admin only) ---
	e.GET("/staff", staffHandler.List)
	e.GET("/staff/:id", staffHandler.Get)
	staffAdmin := e.Group("/staff", authRequired, middleware.RBAC(domain.RoleAdmin))
	staffAdmin.POST("", staffHandler.Create)
	staffAdmin.PUT("/:id", staffHandler.Update)
	staffAdmin.PATCH("/:id", staffHandler.Patch)
	staffAdmin.DELETE("/:id", staffHandler.Delete)

	// --- Service catalog routes (open) ---
	e.POST("/services", serviceHandler.Create)
	e.GET("/services", serviceHandler.List)
	e.GET("/services/:id", serviceHandler.Get)
	e.PUT("/services/:id", serviceHandler.Update)
	e.PATCH("/services/:id", serviceHandler.Patch)
	e.DELETE("/services/:id", serviceHandler.Delete)

	// --- Appointment routes (role-gated per operation) ---
	appts := e.Group("/appointments", authRequired)
	appts.POST("", appointmentHandler.Create, middleware.RBAC(domain.RoleCustomer, domain.RoleAdmin))
	appts.GET("", appointmentHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleStaff))
	appts.GET("/filter", appointmentHandler.Filter, middleware.RBAC(domain.RoleAdmin, domain.RoleStaff))
	appts.GET("/:id", appointmentHandler.Get, middleware.RBAC(domain.RoleAdmin, domain.RoleStaff))
	appts.PUT("/:id", appointmentHandler.Update, middleware.RBAC(domain.RoleAdmin, domain.RoleStaff))
	appts.PATCH("/:id", appointmentHandler.Patch, middleware.RBAC(domain.RoleAdmin, domain.RoleStaff))
	appts.DELETE("/:id", appointmentHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Report routes (open) ---
	e.GET("/reports/daily-appointments", reportHandler.DailyAppointments)
	e.GET("/reports/appointments-by-status", reportHandler.AppointmentsByStatus)
	e.GET("/reports/staff-performance", reportHandler.StaffPerformance)
	e.GET("/reports/service-popularity", reportHandler.ServicePopularity)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
