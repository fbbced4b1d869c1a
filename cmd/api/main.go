package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-insights-api/internal/api"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/metrics"
	"github.com/vfg2006/campaign-insights-api/internal/scheduler"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/charting"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/heatmapping"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

func main() {
	configureWorkdir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Configure(logrus.InfoLevel.String())
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics(nil)

	// só a origem postgres precisa de banco
	var conn postgres.Queryer
	if cfg.Dataset.Source == config.SourcePostgres {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		conn = pgConn
	}

	source, err := datasource.New(cfg.Dataset, conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a origem do dataset")
	}

	dashboard := dashboarding.NewService(
		source,
		aggregating.NewService(),
		charting.NewService(),
		heatmapping.NewService(),
		m,
		cfg,
	)

	// uma única busca na subida; se falhar, as views respondem DATA_001 até a próxima
	if err := dashboard.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("Falha na carga inicial do dataset")
	}

	refreshService := scheduler.NewDatasetRefreshService(dashboard, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dataset")
	} else {
		logrus.Info("Agendador de atualização do dataset iniciado com sucesso")
	}

	authenticator := authenticating.NewService(cfg)

	server, err := api.New(cfg, dashboard, refreshService, authenticator, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureWorkdir faz os caminhos relativos (.env, DATASET_PATH) partirem do diretório do main
func configureWorkdir() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	if err := os.Chdir(dir); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar o diretório de trabalho")
	}
}

// pgconn cria uma conexão com o banco de dados e aplica as migrações
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	if err := postgres.Migrate(dbConfig.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações do PostgreSQL")
	}

	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
