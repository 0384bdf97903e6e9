package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shop-manager-api/internal/api/handler"
)

type fakeSyncJob struct {
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync() { f.triggered++ }

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		cronType      string
		job           *fakeSyncJob
		wantStatus    int
		wantTriggered int
	}{
		{name: "snapshot de relatório", cronType: "report-snapshot", job: &fakeSyncJob{}, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "todas", cronType: "all", job: &fakeSyncJob{}, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "tipo desconhecido", cronType: "meta", job: &fakeSyncJob{}, wantStatus: http.StatusBadRequest},
		{name: "serviço desabilitado", cronType: "report-snapshot", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := handler.CronJobServices{}
			if tt.job != nil {
				services.ReportSnapshotService = tt.job
			}

			rec := serve(t, handler.CronJobs(services), http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.job != nil {
				assert.Equal(t, tt.wantTriggered, tt.job.triggered)
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	services := handler.CronJobServices{ReportSnapshotService: &fakeSyncJob{}}

	rec := serve(t, handler.CronJobs(services), http.MethodGet, "/v1/cron/status", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "report-snapshot")
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, handler.Healthcheck(), http.MethodGet, "/healthcheck", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}
