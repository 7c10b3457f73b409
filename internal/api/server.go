package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/expert-metrics-api/internal/api/handler"
	"github.com/vfg2006/expert-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/expert-metrics-api/pkg/middleware"
	"github.com/vfg2006/expert-metrics-api/pkg/telemetry"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	dashboarder insighting.Dashboarder,
	cronServices handler.CronJobServices,
	metrics *telemetry.Metrics,
	clock handler.Clock,
) (*Server, error) {
	if dashboarder == nil {
		return nil, fmt.Errorf("serviço de dashboard não informado")
	}

	if metrics == nil {
		metrics = telemetry.Default()
	}

	if clock == nil {
		location := cfg.App.TimeLocation()
		clock = func() time.Time { return time.Now().In(location) }
	}

	authorizer := middleware.NewAuthorizer(cfg.Auth.Secret)
	if !authorizer.Enabled() {
		logrus.Warn("AUTH_SECRET não configurado: autenticação desabilitada")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(metrics.Handler())...),
		router.WithMetrics(metrics),
		router.WithRoutes(handler.Dashboard(dashboarder, authorizer, clock)...),
		router.WithRoutes(handler.CronJobs(cronServices, authorizer)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		authorizer.Authenticate(),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
