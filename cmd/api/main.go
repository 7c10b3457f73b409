package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/expert-metrics-api/infrastructure/cache"
	"github.com/vfg2006/expert-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/expert-metrics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/expert-metrics-api/infrastructure/repository"
	"github.com/vfg2006/expert-metrics-api/internal/api"
	"github.com/vfg2006/expert-metrics-api/internal/api/handler"
	"github.com/vfg2006/expert-metrics-api/internal/config"
	"github.com/vfg2006/expert-metrics-api/internal/scheduler"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/expert-metrics-api/pkg/log"
	"github.com/vfg2006/expert-metrics-api/pkg/telemetry"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := telemetry.Default()

	sheetsClient, err := sheetsclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o acesso à planilha")
	}

	sheetsService := sheets.New(cfg, sheetsClient, cache.NewClientCache(cfg.Sheets.ClientCacheTTL), metrics)
	dashboardService := insighting.NewService(sheetsService)

	cronServices := handler.CronJobServices{}

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo := repository.NewStatusSnapshotRepository(pgConn)
		dashboardService.WithSnapshots(snapshotRepo)

		snapshotSyncService := scheduler.NewStatusSnapshotSyncService(sheetsService, snapshotRepo, metrics, cfg)
		if err := snapshotSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de status dos experts")
		} else {
			logrus.Info("Agendador de status dos experts iniciado com sucesso")
		}

		cronServices.StatusSnapshotSyncService = snapshotSyncService
	} else {
		logrus.Info("Banco de dados desabilitado: histórico de status indisponível")
	}

	location := cfg.App.TimeLocation()
	clock := func() time.Time { return time.Now().In(location) }

	server, err := api.New(cfg, dashboardService, cronServices, metrics, clock)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
