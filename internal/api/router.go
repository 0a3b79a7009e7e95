package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/taskdeck/todo-system/internal/api/handler"
	"github.com/taskdeck/todo-system/internal/api/middleware"
	"github.com/taskdeck/todo-system/internal/core/ports"
	"github.com/taskdeck/todo-system/internal/core/service"
	"github.com/taskdeck/todo-system/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The db handle is only used by the readiness probe; repositories come in
// through their ports so tests can swap implementations.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *sql.DB, authRepo ports.AuthRepository, taskRepo ports.TaskRepository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	tokens := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.Expiration())
	hasher := service.NewBcryptHasher()
	authService := service.NewAuthService(authRepo, hasher, tokens, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	authMiddleware := middleware.Auth(tokens, authRepo)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authMiddleware)
	auth.GET("/me", authHandler.Me, authMiddleware)

	// --- Task routes (all protected) ---
	tasks := e.Group("/tasks", authMiddleware)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
	tasks.PATCH("/:id/toggle", taskHandler.Toggle)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if db != nil {
		readinessHandler := handler.NewReadinessHandler(db)
		e.GET("/health/ready", readinessHandler.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
