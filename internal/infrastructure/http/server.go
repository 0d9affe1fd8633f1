package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/wekeepgrowing/customer-dashboard/internal/adapter/handler/http"
	"github.com/wekeepgrowing/customer-dashboard/internal/config"
	"github.com/wekeepgrowing/customer-dashboard/internal/infrastructure/database"
	"github.com/wekeepgrowing/customer-dashboard/internal/infrastructure/stats"
	"github.com/wekeepgrowing/customer-dashboard/internal/usecase"
	"github.com/wekeepgrowing/customer-dashboard/pkg/logger"
)

// StatsStore records and reports request statistics
type StatsStore interface {
	stats.Recorder
	handlers.StatsReader
}

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
	stats  StatsStore
}

// ServerOption configures optional server collaborators
type ServerOption func(*Server)

// WithStats enables request statistics and GET /internal/stats
func WithStats(store StatsStore) ServerOption {
	return func(s *Server) {
		s.stats = store
	}
}

func NewServer(cfg *config.Config, log *zap.Logger, repos *database.Repositories, opts ...ServerOption) *Server {
	s := &Server{
		config: cfg,
		logger: log,
		echo:   echo.New(),
		repos:  repos,
	}
	for _, opt := range opts {
		opt(s)
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	logger.WithEchoLogger(e, log)

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	if s.stats != nil {
		e.Use(stats.Middleware(s.stats, log))
	}
	if cfg.RateLimit.Enabled {
		e.Use(newRateLimiter(cfg.RateLimit, log))
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	customerUsecase := usecase.NewCustomerUsecase(s.repos.Customer, s.repos.Order, s.logger)
	orderUsecase := usecase.NewOrderUsecase(s.repos.Customer, s.repos.Order, s.logger)

	handlers.NewHealthHandler(s.config.Service.Name, s.repos.Ping, s.logger).RegisterRoutes(s.echo)
	handlers.NewCustomerHandler(customerUsecase, s.logger).RegisterRoutes(s.echo)
	handlers.NewOrderHandler(orderUsecase, s.logger).RegisterRoutes(s.echo)

	if s.stats != nil {
		handlers.NewStatsHandler(s.stats).RegisterRoutes(s.echo)
	}
}

// Start blocks serving HTTP until Shutdown is called
func (s *Server) Start() error {
	addr := s.config.Server.HTTP.Address()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}
