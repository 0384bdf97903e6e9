package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi/shopclient"
	"github.com/vfg2006/shop-manager-api/infrastructure/repository"
	"github.com/vfg2006/shop-manager-api/internal/api"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/scheduler"
	"github.com/vfg2006/shop-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/shop-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/shop-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/shop-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shopClient := shopclient.NewClient(cfg)
	shopIntegrator := shopapi.New(cfg, shopClient)

	catalogService := catalog.NewService(shopIntegrator)
	if err := catalogService.RefreshProducts(ctx); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar os produtos na inicialização")
	}
	if err := catalogService.RefreshCustomers(ctx); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar os clientes na inicialização")
	}

	reportingService := reporting.NewService(cfg, shopIntegrator, catalogService)
	checkoutService := checkout.NewService(cfg, catalogService, shopIntegrator)

	// Os snapshots de relatório são a única parte que usa o PostgreSQL
	var (
		rankingService        ranking.RankingService
		reportSnapshotService *scheduler.ReportSnapshotService
	)
	if cfg.ReportSnapshot.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo := repository.NewReportSnapshotRepository(pgConn)
		rankingService = ranking.NewSnapshotRankingService(snapshotRepo)

		reportSnapshotService = scheduler.NewReportSnapshotService(reportingService, snapshotRepo, cfg)
		if err := reportSnapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de relatório")
		} else {
			logrus.Info("Agendador de snapshots de relatório iniciado com sucesso")
		}
	} else {
		rankingService = ranking.NewSnapshotRankingService(nil)
		logrus.Info("Snapshots de relatório desabilitados, PostgreSQL não será utilizado")
	}

	server, err := api.New(
		cfg,
		catalogService,
		reportingService,
		rankingService,
		checkoutService,
		reportSnapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria a conexão com o banco de dados e garante as tabelas do serviço
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas de snapshots")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
