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

	"github.com/vfg2006/marketing-insights-api/internal/api/handler"
	"github.com/vfg2006/marketing-insights-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-insights-api/internal/appstate"
	"github.com/vfg2006/marketing-insights-api/internal/config"
	"github.com/vfg2006/marketing-insights-api/internal/scheduler"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/charting"
	"github.com/vfg2006/marketing-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	state *appstate.State,
	advisor advising.Advisor,
	datasetRefreshService *scheduler.DatasetRefreshService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DatasetRefreshService: datasetRefreshService,
		State:                 state,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, state, advisor, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
			// a pergunta ao modelo pode levar até LLM_TIMEOUT
			WriteTimeout: config.LLM.Timeout + 10*time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares
func NewHandler(
	config *config.Config,
	state *appstate.State,
	advisor advising.Advisor,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(state.Dataset, config.LLM.Provider)...),
		router.WithRoutes(handler.Dataset(state.Dataset)...),
		router.WithRoutes(handler.Saturation(state.Dataset)...),
		router.WithRoutes(handler.Charts(state.Dataset, charting.NewRenderer())...),
		router.WithRoutes(handler.Conversations(advisor, config.AnalysisLog.Limit)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
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

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
