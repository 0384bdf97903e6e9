package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shop-manager-api/pkg/log"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

// GetSalesReport agrega as vendas do período por dia, semana, mês ou ano.
// start_date e end_date são dias do calendário em loc.
func GetSalesReport(service reporting.Reporter, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		filters := domain.ReportFilters{
			Granularity: domain.ParseGranularity(params.Get("granularity")),
		}
		if filters.Granularity == "" {
			filters.Granularity = domain.GranularityDay
		}

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
		if startDate != nil {
			filters.StartDate = *startDate
		}
		if endDate != nil {
			filters.EndDate = utils.EndOfDay(*endDate)
		}
		if !filters.StartDate.IsZero() && !filters.EndDate.IsZero() && filters.EndDate.Before(filters.StartDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A data final deve ser posterior à data inicial", nil)
			return
		}

		if value := params.Get("sort"); value != "" {
			sortBuckets, err := strconv.ParseBool(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro sort inválido", nil)
				return
			}
			filters.SortBuckets = sortBuckets
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"report_granularity": filters.Granularity,
			"report_start":       filters.StartDate,
			"report_end":         filters.EndDate,
		}).Info("reports: calculando relatório de vendas")

		aggregate, err := service.SalesReport(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular relatório de vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, aggregate)
	})
}

// GetTopRanking retorna os clientes com mais compras e os produtos mais vendidos
func GetTopRanking(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		filters := domain.TopFilters{}

		customers, err := parseLimit(params.Get("customers"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro customers inválido", nil)
			return
		}
		products, err := parseLimit(params.Get("products"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro products inválido", nil)
			return
		}
		filters.CustomerLimit = customers
		filters.ProductLimit = products

		switch params.Get("by") {
		case "", "count":
		case "units":
			filters.ByUnits = true
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro by inválido. Valores aceitos: count, units", nil)
			return
		}

		ranking, err := service.Top(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular ranking")
			return
		}

		writeJSON(w, r, http.StatusOK, ranking)
	})
}

// parseLimit aceita vazio (usa o padrão configurado) ou um inteiro positivo
func parseLimit(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if limit <= 0 {
		return 0, strconv.ErrRange
	}
	return limit, nil
}
