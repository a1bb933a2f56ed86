// Package http - HTTP-слой сервиса на Fiber
package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/config"
	"github.com/cleaning-marketplace/internal/delivery/http/handler"
	"github.com/cleaning-marketplace/internal/delivery/http/middleware"
)

// HealthChecker - проверка доступности хранилища для /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	store  HealthChecker

	searchHandler      *handler.SearchHandler
	providerHandler    *handler.ProviderHandler
	userHandler        *handler.UserHandler
	appointmentHandler *handler.AppointmentHandler
	paymentHandler     *handler.PaymentHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	store HealthChecker,
	searchHandler *handler.SearchHandler,
	providerHandler *handler.ProviderHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	paymentHandler *handler.PaymentHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Cleaning Marketplace API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		store:              store,
		searchHandler:      searchHandler,
		providerHandler:    providerHandler,
		userHandler:        userHandler,
		appointmentHandler: appointmentHandler,
		paymentHandler:     paymentHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Геопоиск открыт без авторизации
	api.Get("/providers/search", s.searchHandler.Search)
	api.Get("/providers/:id", s.providerHandler.GetByID)

	authed := api.Group("", middleware.Auth())

	authed.Put("/providers/:id/settings", s.providerHandler.UpdateSettings)

	authed.Post("/users", s.userHandler.Create)
	authed.Get("/users/:id", s.userHandler.GetByID)
	authed.Patch("/users/:id", s.userHandler.UpdateProfile)

	authed.Post("/appointments", s.appointmentHandler.Create)
	authed.Get("/appointments/:id", s.appointmentHandler.GetByID)
	authed.Patch("/appointments/:id/status", s.appointmentHandler.UpdateStatus)

	authed.Post("/payments/simulate", s.paymentHandler.Simulate)
}

func (s *Server) health(c *fiber.Ctx) error {
	if s.store != nil {
		if err := s.store.Health(c.Context()); err != nil {
			s.logger.Error("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"time":   time.Now(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает fiber-приложение (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - обработчик ошибок, дошедших до fiber
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
