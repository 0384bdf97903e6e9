package handler

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/shop-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/shop-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shop-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

func errInvalidField(field string, err error) error {
	return fmt.Errorf("campo %s inválido: %w", field, err)
}

func decodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

// writeServiceError traduz os erros dos casos de uso para o envelope padronizado
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		stockErr      *checkout.InsufficientStockError
		incompleteErr *checkout.IncompleteCheckoutError
		validationErr *catalog.ValidationError
		collabErr     *domain.CollaboratorUnavailableError
	)

	switch {
	case errors.As(err, &stockErr):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInsufficientStock, "Estoque insuficiente", map[string]any{
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		})

	case errors.As(err, &incompleteErr):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados incompletos", map[string]any{
			"missing_customer": incompleteErr.MissingCustomer,
			"empty_cart":       incompleteErr.EmptyCart,
		})

	case errors.As(err, &validationErr):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados inválidos", map[string]any{
			"field":   validationErr.Field,
			"message": validationErr.Message,
		})

	case errors.Is(err, checkout.ErrInvalidQuantity):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Quantidade inválida", nil)

	case errors.Is(err, checkout.ErrCheckoutInProgress):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrCheckoutInProgress, "A venda já está sendo registrada", nil)

	case errors.Is(err, checkout.ErrSessionNotFound),
		errors.Is(err, checkout.ErrItemNotInCart),
		errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrCustomerNotFound):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)

	case errors.Is(err, ranking.ErrSnapshotsUnavailable):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Snapshots de relatório indisponíveis", nil)

	case errors.As(err, &collabErr):
		if collabErr.Validation {
			logger.Warn(message)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A API da loja rejeitou os dados", map[string]any{
				"operation": collabErr.Operation,
				"status":    collabErr.StatusCode,
			})
			return
		}
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "API da loja indisponível", map[string]any{
			"operation": collabErr.Operation,
		})

	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
