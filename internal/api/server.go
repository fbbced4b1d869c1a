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

	"github.com/vfg2006/campaign-insights-api/internal/api/handler"
	"github.com/vfg2006/campaign-insights-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/metrics"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	dashboard  dashboarding.Dashboard
}

func New(
	config *config.Config,
	dashboard dashboarding.Dashboard,
	refresher handler.DatasetRefresher,
	authenticator authenticating.Authenticator,
	m *metrics.Metrics,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(m.Handler())...),
		router.WithRoutes(handler.Dashboard(dashboard)...),
		router.WithRoutes(handler.Dataset(dashboard, refresher)...),
	)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(rt, authenticator, m),
			ReadHeaderTimeout: 2 * time.Second,
		},
		dashboard: dashboard,
	}

	return srv, nil
}

// NewHandler monta a cadeia de middlewares comum a todas as rotas
func NewHandler(rt http.Handler, authenticator authenticating.Authenticator, m *metrics.Metrics) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(m),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
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

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown cancela a busca do dataset em andamento antes de fechar o HTTP
func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	s.dashboard.Close()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
