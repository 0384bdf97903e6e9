package shopapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi/shopclient"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

func newTestIntegrator(t *testing.T, handler http.HandlerFunc) ShopIntegrator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.ShopAPI.URL = server.URL
	cfg.ShopAPI.UploadsURL = "http://cdn.local/uploads"
	cfg.ShopAPI.Timeout = 2 * time.Second
	return New(cfg, shopclient.NewClient(cfg))
}

func TestShopService_ListProducts_ValidatesRecords(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"_id":"p1","nombre":"Widget","precio":10,"stock":5,"fecha":"2024-01-01T00:00:00Z","imagen":"w.png"},
			{"_id":"p2","nombre":"Roto","precio":-1,"stock":5,"fecha":"2024-01-01"},
			{"nombre":"Sem ID","precio":1,"stock":1,"fecha":"2024-01-01"}
		]`))
	})

	products, err := integrator.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "http://cdn.local/uploads/w.png", products[0].ImageURL)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), products[0].AddedDate)
}

func TestShopService_ListSales_SkipsInvalidDates(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"_id":"v1","clienteId":"A","productoId":"p1","monto":100,"fecha":"2024-01-05"},
			{"_id":"v2","clienteId":"B","productoId":"p1","monto":50,"fecha":"ontem"}
		]`))
	})

	sales, err := integrator.ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "v1", sales[0].ID)
}

func TestShopService_ListSales_SkipsInvalidItems(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"_id":"v1","clienteId":"A","monto":30,"fecha":"2024-01-05","items":[{"productoId":"p1","cantidad":3,"precio":10}]},
			{"_id":"v2","clienteId":"B","monto":0,"fecha":"2024-01-05","items":[{"productoId":"p1","cantidad":0,"precio":10}]},
			{"_id":"v3","clienteId":"C","monto":-10,"fecha":"2024-01-05","items":[{"productoId":"p2","cantidad":-1,"precio":10}]},
			{"_id":"v4","clienteId":"D","monto":10,"fecha":"2024-01-05","items":[{"cantidad":1,"precio":10}]}
		]`))
	})

	sales, err := integrator.ListSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "v1", sales[0].ID)
	require.Len(t, sales[0].Items, 1)
	assert.Equal(t, "p1", sales[0].Items[0].ProductID)
	assert.Equal(t, 3, sales[0].Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(10).Equal(sales[0].Items[0].UnitPrice))
}

func TestShopService_CollaboratorErrors(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		wantValidation bool
	}{
		{name: "erro do servidor", status: http.StatusBadGateway, wantValidation: false},
		{name: "erro de validação", status: http.StatusUnprocessableEntity, wantValidation: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := integrator.ListCustomers(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrCollaboratorUnavailable))

			var collabErr *domain.CollaboratorUnavailableError
			require.True(t, errors.As(err, &collabErr))
			assert.Equal(t, "listCustomers", collabErr.Operation)
			assert.Equal(t, tt.status, collabErr.StatusCode)
			assert.Equal(t, tt.wantValidation, collabErr.Validation)
		})
	}
}

func TestShopService_RecordSale_FallsBackToCartWhenAckHasNoSale(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"v77"}`))
	})

	customer := domain.Customer{ID: "c1", Name: "Ana"}
	lines := []domain.CartLine{{
		Product:  domain.Product{ID: "p1", Name: "Widget", UnitPrice: decimal.RequireFromString("10.00"), StockQuantity: 5},
		Quantity: 2,
	}}

	sale, err := integrator.RecordSale(context.Background(), customer, lines)
	require.NoError(t, err)
	assert.Equal(t, "v77", sale.ID)
	assert.Equal(t, "c1", sale.CustomerID)
	assert.Equal(t, "p1", sale.ProductID)
	assert.True(t, decimal.NewFromInt(20).Equal(sale.Amount))
}
