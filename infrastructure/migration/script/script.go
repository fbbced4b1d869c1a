// Script que aplica as migrações e carrega um dataset JSON na tabela de campanhas.
//
// Uso: go run ./infrastructure/migration/script [arquivo.json]
package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.WithError(err).Warn("Nível de log inválido, mantendo o padrão")
	}

	path := cfg.Dataset.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	if err := postgres.Migrate(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	data, err := datasource.NewFileSource(path).Fetch(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o dataset")
	}

	count, err := datasource.NewSeeder(conn, cfg.Dataset.Table).Seed(ctx, data)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar campanhas")
	}

	logrus.WithFields(logrus.Fields{
		"arquivo":   path,
		"tabela":    cfg.Dataset.Table,
		"campanhas": count,
		"duracao":   time.Since(startTime).String(),
	}).Info("Script de migração concluído")
}
