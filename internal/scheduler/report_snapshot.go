// Package scheduler contém os serviços de agendamento dos relatórios
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/infrastructure/repository"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/usecases/reporting"
)

type ReportSnapshotConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
}

// ReportSnapshotService salva diariamente o relatório de vendas do dia anterior
type ReportSnapshotService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	snapshotRepo        repository.ReportSnapshotRepository
	config              ReportSnapshotConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewReportSnapshotService(
	reporter reporting.Reporter,
	snapshotRepo repository.ReportSnapshotRepository,
	cfg *config.Config,
) *ReportSnapshotService {
	snapshotConfig := ReportSnapshotConfig{
		CronSchedule:  cfg.ReportSnapshot.CronSchedule,  // Default: 2h da manhã todos os dias
		SyncEnabled:   cfg.ReportSnapshot.Enabled,       // Default: desabilitado
		RetentionDays: cfg.ReportSnapshot.RetentionDays, // 0 mantém todos
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  snapshotConfig.CronSchedule,
		"retention_days": snapshotConfig.RetentionDays,
	}).Info("Configuração do agendador de snapshots de relatório carregada")

	return &ReportSnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		config:       snapshotConfig,
		now:          time.Now,
	}
}

func (s *ReportSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots de relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao salvar snapshot de relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot calcula e salva o relatório de ontem e aplica a retenção
func (s *ReportSnapshotService) RunSnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Snapshot de relatório já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	err := s.runSnapshot(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

func (s *ReportSnapshotService) runSnapshot(ctx context.Context) error {
	yesterday := s.now().AddDate(0, 0, -1)

	snapshot, err := s.reporter.DailySnapshot(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("erro ao calcular snapshot: %w", err)
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"report_date":    snapshot.Date.Format(time.DateOnly),
		"report_total":   snapshot.Aggregate.GrandTotal.StringFixed(2),
		"report_buckets": len(snapshot.Aggregate.Buckets),
	}).Info("Snapshot de relatório salvo")

	if s.config.RetentionDays <= 0 {
		return nil
	}

	cutoff := s.now().AddDate(0, 0, -s.config.RetentionDays)
	deleted, err := s.snapshotRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("erro ao aplicar retenção de snapshots: %w", err)
	}
	if deleted > 0 {
		logrus.WithField("report_deleted", deleted).Info("Snapshots antigos removidos")
	}

	return nil
}

// Backfill salva os snapshots de cada dia entre start e end (inclusive).
// Para no primeiro erro e devolve quantos dias foram salvos.
func (s *ReportSnapshotService) Backfill(ctx context.Context, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("período inválido: %s depois de %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	saved := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return saved, err
		}

		snapshot, err := s.reporter.DailySnapshot(ctx, day)
		if err != nil {
			return saved, fmt.Errorf("erro ao calcular snapshot de %s: %w", day.Format(time.DateOnly), err)
		}

		if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
			return saved, fmt.Errorf("erro ao salvar snapshot de %s: %w", day.Format(time.DateOnly), err)
		}
		saved++

		logrus.WithFields(logrus.Fields{
			"report_date":  day.Format(time.DateOnly),
			"report_total": snapshot.Aggregate.GrandTotal.StringFixed(2),
		}).Debug("Snapshot retroativo salvo")
	}

	return saved, nil
}

// TriggerManualSync inicia manualmente o snapshot de relatório
func (s *ReportSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de relatório")
	go func() {
		if err := s.RunSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no snapshot manual de relatório")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
