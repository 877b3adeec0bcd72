package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/complaintdesk/portal/docs"
	"github.com/complaintdesk/portal/internal/api/handler"
	"github.com/complaintdesk/portal/internal/api/middleware"
	"github.com/complaintdesk/portal/internal/core/domain"
	"github.com/complaintdesk/portal/internal/core/ports"
	"github.com/complaintdesk/portal/internal/core/service"
	"github.com/complaintdesk/portal/internal/infrastructure/config"
	mongodb "github.com/complaintdesk/portal/internal/infrastructure/db/mongo"
)

// NewRouter builds the Echo instance with every portal route registered.
// rdb is nil when sessions run on the in-memory store.
func NewRouter(db *mongo.Database, rdb *redis.Client, sessions ports.SessionStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	complaintRepo := mongodb.NewComplaintRepository(db)
	assignmentRepo := mongodb.NewAssignmentRepository(db)

	authService := service.NewAuthService(userRepo, sessions, cfg.SessionSecret, cfg.SessionTTL, log)
	complaintService := service.NewComplaintService(complaintRepo, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	adminHandler := handler.NewAdminHandler(complaintService, assignmentService)
	homeHandler := handler.NewHomeHandler()

	e.Use(middleware.Session(authService))
	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout, requireAuth)

	// --- Landing pages ---
	e.GET("/", homeHandler.Home, requireAuth)
	e.GET("/jeng", homeHandler.Junior, requireAuth)

	// --- Complaints (submission is open to anonymous callers) ---
	e.GET("/complaint", complaintHandler.Form, requireAuth)
	e.POST("/registerComplaint", complaintHandler.Submit)

	// --- Admin ---
	e.GET("/admin", adminHandler.Dashboard, requireAdmin)
	e.GET("/admin/complaints/:id", adminHandler.ComplaintDetail, requireAdmin)
	e.POST("/assign", adminHandler.Assign, requireAdmin)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
