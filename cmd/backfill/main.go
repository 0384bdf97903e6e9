// Comando para recalcular os snapshots diários de um período
//
//	go run ./cmd/backfill -start 2024-01-01 -end 2024-01-31
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi/shopclient"
	"github.com/vfg2006/shop-manager-api/infrastructure/repository"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/scheduler"
	"github.com/vfg2006/shop-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/shop-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

func main() {
	startFlag := flag.String("start", "", "primeiro dia (YYYY-MM-DD)")
	endFlag := flag.String("end", "", "último dia (YYYY-MM-DD), padrão ontem")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	loc := cfg.Reports.Location

	start, err := utils.ParseDate(*startFlag, loc)
	if err != nil || start == nil {
		logrus.Fatal("Informe -start no formato YYYY-MM-DD")
	}

	end := utils.StartOfDay(time.Now().In(loc).AddDate(0, 0, -1))
	if parsed, err := utils.ParseDate(*endFlag, loc); err != nil {
		logrus.WithError(err).Fatal("Data final inválida")
	} else if parsed != nil {
		end = *parsed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar as tabelas de snapshots")
	}

	shopIntegrator := shopapi.New(cfg, shopclient.NewClient(cfg))

	catalogService := catalog.NewService(shopIntegrator)
	if err := catalogService.RefreshProducts(ctx); err != nil {
		logrus.WithError(err).Warn("Snapshots sem nomes de produtos")
	}
	if err := catalogService.RefreshCustomers(ctx); err != nil {
		logrus.WithError(err).Warn("Snapshots sem nomes de clientes")
	}

	service := scheduler.NewReportSnapshotService(
		reporting.NewService(cfg, shopIntegrator, catalogService),
		repository.NewReportSnapshotRepository(conn),
		cfg,
	)

	startedAt := time.Now()
	saved, err := service.Backfill(ctx, *start, end)

	entry := logrus.WithFields(logrus.Fields{
		"report_start": start.Format(time.DateOnly),
		"report_end":   end.Format(time.DateOnly),
		"report_saved": saved,
		"duration":     time.Since(startedAt).String(),
	})
	if err != nil {
		entry.WithError(err).Fatal("Backfill de snapshots interrompido")
	}
	entry.Info("Backfill de snapshots concluído")
}
