package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-manager-api/internal/api/handler"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/shop-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/shop-manager-api/internal/usecases/checkout/mocks"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func buildingSummary(id string) *checkout.Summary {
	return &checkout.Summary{
		Session: checkout.Session{
			ID:    id,
			State: checkout.StateBuilding,
			Cart: domain.Cart{Lines: []domain.CartLine{{
				Product:  domain.Product{ID: "p1", Name: "Widget", UnitPrice: decimal.RequireFromString("10.00"), StockQuantity: 3},
				Quantity: 1,
			}}},
		},
	}
}

func TestAddCartItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *mocks.MockCheckoutService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "quantidade padrão é 1",
			body: `{"product_id":"p1"}`,
			setup: func(service *mocks.MockCheckoutService) {
				service.EXPECT().AddItem(gomock.Any(), "s1", "p1", 1).Return(buildingSummary("s1"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "estoque insuficiente",
			body: `{"product_id":"p1","quantity":5}`,
			setup: func(service *mocks.MockCheckoutService) {
				service.EXPECT().AddItem(gomock.Any(), "s1", "p1", 5).Return(nil, &checkout.InsufficientStockError{
					ProductID: "p1", ProductName: "Widget", Requested: 5, Available: 3,
				})
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrInsufficientStock,
		},
		{
			name: "quantidade inválida",
			body: `{"product_id":"p1","quantity":0}`,
			setup: func(service *mocks.MockCheckoutService) {
				service.EXPECT().AddItem(gomock.Any(), "s1", "p1", 0).Return(nil, checkout.ErrInvalidQuantity)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "sem product_id",
			body:       `{"quantity":1}`,
			setup:      func(service *mocks.MockCheckoutService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "corpo inválido",
			body:       `{`,
			setup:      func(service *mocks.MockCheckoutService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "sessão inexistente",
			body: `{"product_id":"p1"}`,
			setup: func(service *mocks.MockCheckoutService) {
				service.EXPECT().AddItem(gomock.Any(), "s1", "p1", 1).Return(nil, checkout.ErrSessionNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCheckoutService(ctrl)
			tt.setup(service)

			rec := serve(t, handler.Checkout(service), http.MethodPost, "/v1/checkout/sessions/s1/items",
				strings.NewReader(tt.body), "application/json")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestAddCartItem_DetalhesDoEstoqueInsuficiente(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCheckoutService(ctrl)
	service.EXPECT().AddItem(gomock.Any(), "s1", "p1", 5).Return(nil, &checkout.InsufficientStockError{
		ProductID: "p1", Requested: 5, Available: 3,
	})

	rec := serve(t, handler.Checkout(service), http.MethodPost, "/v1/checkout/sessions/s1/items",
		strings.NewReader(`{"product_id":"p1","quantity":5}`), "application/json")

	details, ok := decodeAPIError(t, rec).Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "p1", details["product_id"])
	assert.EqualValues(t, 5, details["requested"])
	assert.EqualValues(t, 3, details["available"])
}

func TestOpenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCheckoutService(ctrl)
	service.EXPECT().Open(gomock.Any()).Return(&checkout.Summary{
		Session: checkout.Session{ID: "s1", State: checkout.StateEmpty},
	}, nil)

	rec := serve(t, handler.Checkout(service), http.MethodPost, "/v1/checkout/sessions", nil, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "s1", body["id"])
	assert.Equal(t, "empty", body["state"])
	assert.Contains(t, body, "totals")
}

func TestSessionRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCheckoutService(ctrl)
	routes := handler.Checkout(service)

	t.Run("buscar sessão", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "s1").Return(buildingSummary("s1"), nil)

		rec := serve(t, routes, http.MethodGet, "/v1/checkout/sessions/s1", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "building", decodeBody(t, rec)["state"])
	})

	t.Run("cancelar sessão", func(t *testing.T) {
		service.EXPECT().Cancel(gomock.Any(), "s1").Return(nil)

		rec := serve(t, routes, http.MethodDelete, "/v1/checkout/sessions/s1", nil, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("selecionar cliente", func(t *testing.T) {
		service.EXPECT().SelectCustomer(gomock.Any(), "s1", "c1").Return(buildingSummary("s1"), nil)

		rec := serve(t, routes, http.MethodPut, "/v1/checkout/sessions/s1/customer",
			strings.NewReader(`{"customer_id":"c1"}`), "application/json")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		service.EXPECT().SelectCustomer(gomock.Any(), "s1", "c9").Return(nil, fmt.Errorf("selecionar cliente: %w", catalog.ErrCustomerNotFound))

		rec := serve(t, routes, http.MethodPut, "/v1/checkout/sessions/s1/customer",
			strings.NewReader(`{"customer_id":"c9"}`), "application/json")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("remover cliente", func(t *testing.T) {
		service.EXPECT().ClearCustomer(gomock.Any(), "s1").Return(buildingSummary("s1"), nil)

		rec := serve(t, routes, http.MethodDelete, "/v1/checkout/sessions/s1/customer", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("atualizar quantidade", func(t *testing.T) {
		service.EXPECT().UpdateQuantity(gomock.Any(), "s1", "p1", 3).Return(buildingSummary("s1"), nil)

		rec := serve(t, routes, http.MethodPut, "/v1/checkout/sessions/s1/items/p1",
			strings.NewReader(`{"quantity":3}`), "application/json")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("remover item fora do carrinho", func(t *testing.T) {
		service.EXPECT().RemoveItem(gomock.Any(), "s1", "p9").Return(nil, checkout.ErrItemNotInCart)

		rec := serve(t, routes, http.MethodDelete, "/v1/checkout/sessions/s1/items/p9", nil, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSubmitSession(t *testing.T) {
	tests := []struct {
		name       string
		result     *domain.Receipt
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name: "venda registrada",
			result: &domain.Receipt{
				Number: "V-ABC123",
				Sale:   domain.Sale{ID: "v1"},
				Totals: domain.Totals{Total: decimal.RequireFromString("23.60")},
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "venda incompleta",
			err:        &checkout.IncompleteCheckoutError{MissingCustomer: true},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "venda já em andamento",
			err:        checkout.ErrCheckoutInProgress,
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrCheckoutInProgress,
		},
		{
			name:       "api da loja fora do ar",
			err:        domain.NewCollaboratorError("recordSale", 503, errors.New("indisponível")),
			wantStatus: http.StatusBadGateway,
			wantCode:   apiErrors.ErrExternalService,
		},
		{
			name:       "api da loja rejeitou a venda",
			err:        domain.NewCollaboratorError("recordSale", 422, errors.New("cliente inválido")),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCheckoutService(ctrl)
			service.EXPECT().Checkout(gomock.Any(), "s1").Return(tt.result, tt.err)

			rec := serve(t, handler.Checkout(service), http.MethodPost, "/v1/checkout/sessions/s1/submit", nil, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
				return
			}
			assert.Equal(t, "V-ABC123", decodeBody(t, rec)["number"])
		})
	}
}

func TestSubmitSession_CancelamentoDoContexto(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCheckoutService(ctrl)
	service.EXPECT().Checkout(gomock.Any(), "s1").Return(nil, context.DeadlineExceeded)

	rec := serve(t, handler.Checkout(service), http.MethodPost, "/v1/checkout/sessions/s1/submit", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
}
