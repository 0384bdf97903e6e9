package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSnapshotRankingService_GetLatestSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		setup   func(repo *mocks.MockReportSnapshotRepository)
		wantNil bool
		wantErr bool
	}{
		{
			name: "snapshot encontrado",
			setup: func(repo *mocks.MockReportSnapshotRepository) {
				repo.EXPECT().GetLatest(gomock.Any()).Return(&domain.ReportSnapshot{ID: 7}, nil)
			},
		},
		{
			name: "nenhum snapshot",
			setup: func(repo *mocks.MockReportSnapshotRepository) {
				repo.EXPECT().GetLatest(gomock.Any()).Return(nil, nil)
			},
			wantNil: true,
		},
		{
			name: "erro no banco",
			setup: func(repo *mocks.MockReportSnapshotRepository) {
				repo.EXPECT().GetLatest(gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReportSnapshotRepository(ctrl)
			tt.setup(repo)

			snapshot, err := NewSnapshotRankingService(repo).GetLatestSnapshot(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, snapshot)
				return
			}
			assert.Equal(t, int64(7), snapshot.ID)
		})
	}
}

func TestSnapshotRankingService_GetSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReportSnapshotRepository(ctrl)
	service := NewSnapshotRankingService(repo)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetByDateRange(gomock.Any(), start, end).Return([]domain.ReportSnapshot{{ID: 1}, {ID: 2}}, nil)

	snapshots, err := service.GetSnapshots(context.Background(), start, end)
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)

	_, err = service.GetSnapshots(context.Background(), end, start)
	assert.Error(t, err)
}

func TestSnapshotRankingService_SemBanco(t *testing.T) {
	service := NewSnapshotRankingService(nil)

	_, err := service.GetLatestSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotsUnavailable)
}
