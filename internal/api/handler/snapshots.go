package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/shop-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

// GetLatestSnapshot retorna o último relatório diário persistido
func GetLatestSnapshot(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.GetLatestSnapshot(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar o último snapshot")
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum snapshot encontrado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// GetSnapshots retorna os snapshots do período (padrão: últimos 30 dias)
func GetSnapshots(service ranking.RankingService, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		startDate, err := utils.ParseDate(params.Get("start_date"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		endDate, err := utils.ParseDate(params.Get("end_date"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		end := utils.EndOfDay(time.Now().In(loc))
		if endDate != nil {
			end = utils.EndOfDay(*endDate)
		}
		start := utils.StartOfDay(end).AddDate(0, 0, -30)
		if startDate != nil {
			start = *startDate
		}
		if end.Before(start) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A data final deve ser posterior à data inicial", nil)
			return
		}

		snapshots, err := service.GetSnapshots(r.Context(), start, end)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar snapshots")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	})
}
