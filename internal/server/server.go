// Package server wires configuration, providers, the refresh pipeline, and the
// HTTP surface into one runnable unit.
package server

import (
	"context"
	"log/slog"
	"net/http"

	apppicks "github.com/preston-bernstein/watchability-service/internal/app/picks"
	"github.com/preston-bernstein/watchability-service/internal/availability"
	"github.com/preston-bernstein/watchability-service/internal/config"
	httpserver "github.com/preston-bernstein/watchability-service/internal/http"
	"github.com/preston-bernstein/watchability-service/internal/logging"
	"github.com/preston-bernstein/watchability-service/internal/metrics"
	"github.com/preston-bernstein/watchability-service/internal/pickstate"
	"github.com/preston-bernstein/watchability-service/internal/poller"
	"github.com/preston-bernstein/watchability-service/internal/providers"
	"github.com/preston-bernstein/watchability-service/internal/quality"
	"github.com/preston-bernstein/watchability-service/internal/scoring"
	"github.com/preston-bernstein/watchability-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server bundles everything needed to run the service.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	pickService   *apppicks.Service
	pickStore     pickstate.Store
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider, store, and poller wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithDeps(cfg, logger, nil, nil)
}

func newServerWithDeps(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, pickStore pickstate.Store) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), 0, 0)
	}

	if pickStore == nil {
		built, err := buildStore(cfg, logger)
		if err != nil {
			return nil, err
		}
		pickStore = built
	}

	loc := providers.ResolveTimezone(cfg.ReferenceTZ)

	avail := availability.NewCache()
	validator := quality.NewValidator(logger)
	engine := scoring.NewEngine(avail, loc, logger)
	machine := pickstate.New(pickStore, loc, cfg.DailyResetHour, logger)
	pickSvc := apppicks.NewService(provider, avail, validator, engine, machine, loc, logger, recorder)

	plr := poller.New(serviceRefresher{svc: pickSvc}, cfg.Categories, logger, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, pickSvc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		pickService:   pickSvc,
		pickStore:     pickStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

// serviceRefresher adapts the pick service to the poller's Refresher.
type serviceRefresher struct {
	svc *apppicks.Service
}

func (r serviceRefresher) Refresh(ctx context.Context, category string) error {
	_, err := r.svc.Refresh(ctx, category)
	return err
}

func buildStore(cfg config.Config, logger *slog.Logger) (pickstate.Store, error) {
	if cfg.DBPath == ":memory:" {
		return store.NewMemoryStore(), nil
	}
	sqlStore, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		if logger != nil {
			logger.Error("sqlite store unavailable", "error", err)
		}
		return nil, err
	}
	return sqlStore, nil
}

func buildHTTPServer(cfg config.Config, pickSvc *apppicks.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var ready httpserver.ReadyChecker
	if plr != nil {
		ready = readyFunc(func() bool { return plr.Status().IsReady() })
	}

	handler := httpserver.NewHandler(pickSvc, ready, cfg.Categories, logger)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpserver.LoggingMiddleware(logger, httpserver.MetricsMiddleware(recorder, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

type readyFunc func() bool

func (f readyFunc) IsReady() bool { return f() }

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if closer, ok := s.pickStore.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
