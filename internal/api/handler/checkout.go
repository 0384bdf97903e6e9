package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shop-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shop-manager-api/pkg/log"
)

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type selectCustomerRequest struct {
	CustomerID string `json:"customer_id"`
}

func OpenSession(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Open(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao abrir sessão de venda")
			return
		}

		log.ForContext(r.Context()).WithField("session_id", summary.ID).Info("checkout: sessão aberta")
		writeJSON(w, r, http.StatusCreated, summary)
	})
}

func GetSession(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Get(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar sessão de venda")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func CancelSession(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		if err := service.Cancel(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao cancelar sessão de venda")
			return
		}

		log.ForContext(r.Context()).WithField("session_id", id).Info("checkout: sessão cancelada")
		w.WriteHeader(http.StatusNoContent)
	})
}

func SelectCustomer(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req selectCustomerRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		if req.CustomerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "customer_id é obrigatório", nil)
			return
		}

		summary, err := service.SelectCustomer(r.Context(), sessionID(r), req.CustomerID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao selecionar cliente")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func ClearCustomer(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.ClearCustomer(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao remover cliente")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func AddCartItem(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}
		if req.ProductID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "product_id é obrigatório", nil)
			return
		}

		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		summary, err := service.AddItem(r.Context(), sessionID(r), req.ProductID, quantity)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar item ao carrinho")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func UpdateCartItem(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req updateQuantityRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		productID := httprouter.ParamsFromContext(r.Context()).ByName("product_id")

		summary, err := service.UpdateQuantity(r.Context(), sessionID(r), productID, req.Quantity)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar quantidade")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

func RemoveCartItem(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productID := httprouter.ParamsFromContext(r.Context()).ByName("product_id")

		summary, err := service.RemoveItem(r.Context(), sessionID(r), productID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao remover item do carrinho")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// SubmitSession registra a venda e devolve o comprovante
func SubmitSession(service checkout.CheckoutService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)

		receipt, err := service.Checkout(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao finalizar venda")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"session_id":     id,
			"receipt_number": receipt.Number,
			"sale_total":     receipt.Totals.Total.StringFixed(2),
		}).Info("checkout: venda registrada")

		writeJSON(w, r, http.StatusCreated, receipt)
	})
}

func sessionID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}
