package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/marketing-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm"
	"github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/marketing-insights-api/infrastructure/repository"
	"github.com/vfg2006/marketing-insights-api/internal/api"
	"github.com/vfg2006/marketing-insights-api/internal/appstate"
	"github.com/vfg2006/marketing-insights-api/internal/config"
	"github.com/vfg2006/marketing-insights-api/internal/scheduler"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising"
	"github.com/vfg2006/marketing-insights-api/pkg/log"
)

func main() {
	// Necessário para o godotenv encontrar o .env ao rodar com go run
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state, err := appstate.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o estado da aplicação")
	}

	analysisRepo, closeAnalysisRepo := analysisRepository(ctx, cfg)
	defer closeAnalysisRepo()

	llmClient := llmclient.NewClient(cfg)
	llmIntegrator := llm.New(cfg, llmClient)
	if !llmClient.HasAPIKey() {
		logrus.Warn("Nenhuma chave de LLM configurada; perguntas serão recusadas até GROQ_API_KEY ou OPENAI_API_KEY ser definida")
	}

	advisor := advising.NewService(cfg, llmIntegrator, state.Dataset, state.Conversations, analysisRepo)

	datasetRefreshService := scheduler.NewDatasetRefreshService(state.Dataset, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dataset")
	}

	server, err := api.New(cfg, state, advisor, datasetRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// analysisRepository escolhe entre o log em PostgreSQL e o log em memória
func analysisRepository(ctx context.Context, cfg *config.Config) (repository.AnalysisRepository, func()) {
	if !cfg.AnalysisLog.Enabled {
		logrus.Info("Log de análises em memória")
		return repository.NewMemoryAnalysisRepository(cfg.AnalysisLog.Limit), func() {}
	}

	conn := pgconn(ctx, cfg.Database)
	return repository.NewAnalysisRepository(conn), func() { conn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
