package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/shop-manager-api/internal/usecases/checkout/mocks"
	"go.uber.org/mock/gomock"
)

func widgetSession() checkout.Session {
	ana := &domain.Customer{ID: "c1", Name: "Ana"}
	widget := domain.Product{ID: "p1", Name: "Widget", UnitPrice: decimal.RequireFromString("10.00"), StockQuantity: 10}

	return checkout.Session{ID: "s1"}.
		WithCustomer(ana).
		WithCart(domain.Cart{Lines: []domain.CartLine{{Product: widget, Quantity: 2}}})
}

func TestSession_Estados(t *testing.T) {
	session := checkout.Session{ID: "s1"}.WithCart(domain.Cart{})
	assert.Equal(t, checkout.StateEmpty, session.State)

	session = session.WithCustomer(&domain.Customer{ID: "c1"})
	assert.Equal(t, checkout.StateBuilding, session.State)

	session = session.WithCustomer(nil)
	assert.Equal(t, checkout.StateEmpty, session.State)
}

func TestCheckout_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := mocks.NewMockSaleRecorder(ctrl)
	session := widgetSession()

	recorder.EXPECT().
		RecordSale(gomock.Any(), domain.Customer{ID: "c1", Name: "Ana"}, gomock.Len(1)).
		Return(&domain.Sale{ID: "v1", CustomerID: "c1", Amount: decimal.NewFromInt(20)}, nil)

	result, receipt, err := checkout.Checkout(context.Background(), session, recorder, checkout.DefaultTaxRate)
	require.NoError(t, err)

	assert.Equal(t, "20.00", receipt.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "3.60", receipt.Totals.Tax.StringFixed(2))
	assert.Equal(t, "23.60", receipt.Totals.Total.StringFixed(2))
	assert.Equal(t, "v1", receipt.Sale.ID)
	assert.Regexp(t, `^V-[A-Z0-9]{6}$`, receipt.Number)

	assert.True(t, result.Cart.IsEmpty())
	assert.Nil(t, result.Customer)
	assert.Equal(t, checkout.StateCompleted, result.State)

	// A sessão recebida continua intacta
	assert.Len(t, session.Cart.Lines, 1)
	assert.NotNil(t, session.Customer)
}

func TestCheckout_Incompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := mocks.NewMockSaleRecorder(ctrl)

	tests := []struct {
		name            string
		session         checkout.Session
		missingCustomer bool
		emptyCart       bool
	}{
		{
			name:            "sem cliente",
			session:         widgetSession().WithCustomer(nil),
			missingCustomer: true,
		},
		{
			name:      "carrinho vazio",
			session:   widgetSession().WithCart(domain.Cart{}),
			emptyCart: true,
		},
		{
			name:            "sem cliente e sem itens",
			session:         checkout.Session{ID: "s1", State: checkout.StateEmpty},
			missingCustomer: true,
			emptyCart:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, receipt, err := checkout.Checkout(context.Background(), tt.session, recorder, checkout.DefaultTaxRate)

			assert.ErrorIs(t, err, checkout.ErrIncompleteCheckout)
			var incomplete *checkout.IncompleteCheckoutError
			require.True(t, errors.As(err, &incomplete))
			assert.Equal(t, tt.missingCustomer, incomplete.MissingCustomer)
			assert.Equal(t, tt.emptyCart, incomplete.EmptyCart)
			assert.Nil(t, receipt)
			assert.Equal(t, tt.session, result)
		})
	}
}

func TestCheckout_FalhaMantemCarrinhoECliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := mocks.NewMockSaleRecorder(ctrl)
	session := widgetSession()

	tests := []struct {
		name string
		err  error
	}{
		{name: "API indisponível", err: domain.NewCollaboratorError("recordSale", 503, errors.New("unavailable"))},
		{name: "erro de rede sem tipo", err: errors.New("connection reset")},
		{name: "venda não devolvida pelo recorder", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder.EXPECT().RecordSale(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			result, receipt, err := checkout.Checkout(context.Background(), session, recorder, checkout.DefaultTaxRate)

			assert.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)
			assert.Nil(t, receipt)
			assert.Equal(t, checkout.StateBuilding, result.State)
			assert.Equal(t, session.Cart, result.Cart)
			assert.Equal(t, session.Customer, result.Customer)
		})
	}
}
