package ranking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/shop-manager-api/infrastructure/repository"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// ErrSnapshotsUnavailable indica que o banco de snapshots não está configurado
var ErrSnapshotsUnavailable = errors.New("report snapshots are not available")

type RankingService interface {
	GetLatestSnapshot(ctx context.Context) (*domain.ReportSnapshot, error)
	GetSnapshots(ctx context.Context, start, end time.Time) ([]domain.ReportSnapshot, error)
}

type SnapshotRankingService struct {
	SnapshotRepository repository.ReportSnapshotRepository
}

func NewSnapshotRankingService(snapshotRepository repository.ReportSnapshotRepository) RankingService {
	return &SnapshotRankingService{
		SnapshotRepository: snapshotRepository,
	}
}

// GetLatestSnapshot retorna o último relatório diário salvo (nil quando não há)
func (s *SnapshotRankingService) GetLatestSnapshot(ctx context.Context) (*domain.ReportSnapshot, error) {
	if s.SnapshotRepository == nil {
		return nil, ErrSnapshotsUnavailable
	}

	snapshot, err := s.SnapshotRepository.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar último snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *SnapshotRankingService) GetSnapshots(ctx context.Context, start, end time.Time) ([]domain.ReportSnapshot, error) {
	if s.SnapshotRepository == nil {
		return nil, ErrSnapshotsUnavailable
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf("data final anterior à data inicial")
	}

	snapshots, err := s.SnapshotRepository.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshots: %w", err)
	}
	return snapshots, nil
}
