package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

type State string

const (
	StateEmpty      State = "empty"
	StateBuilding   State = "building"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
)

// Session é o contexto explícito de uma venda em andamento
type Session struct {
	ID        string           `json:"id"`
	Cart      domain.Cart      `json:"cart"`
	Customer  *domain.Customer `json:"customer,omitempty"`
	State     State            `json:"state"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SaleRecorder registra a venda no sistema externo
type SaleRecorder interface {
	RecordSale(ctx context.Context, customer domain.Customer, lines []domain.CartLine) (*domain.Sale, error)
}

// WithCart devolve uma cópia da sessão com o novo carrinho e o estado recalculado
func (s Session) WithCart(cart domain.Cart) Session {
	s.Cart = cart
	return s.settle()
}

// WithCustomer devolve uma cópia da sessão com o cliente selecionado (nil desmarca)
func (s Session) WithCustomer(customer *domain.Customer) Session {
	if customer != nil {
		c := *customer
		customer = &c
	}
	s.Customer = customer
	return s.settle()
}

func (s Session) settle() Session {
	if s.Cart.IsEmpty() && s.Customer == nil {
		s.State = StateEmpty
	} else {
		s.State = StateBuilding
	}
	return s
}

// Checkout envia o carrinho e o cliente ao recorder. Com confirmação, devolve a
// sessão concluída com carrinho vazio e sem cliente. Em falha, devolve a sessão
// como estava, no estado Building, para nova tentativa.
func Checkout(ctx context.Context, session Session, recorder SaleRecorder, taxRate decimal.Decimal) (Session, *domain.Receipt, error) {
	if session.Customer == nil || session.Cart.IsEmpty() {
		return session, nil, &IncompleteCheckoutError{
			MissingCustomer: session.Customer == nil,
			EmptyCart:       session.Cart.IsEmpty(),
		}
	}

	number, err := utils.GenerateReceiptNumber()
	if err != nil {
		return session, nil, fmt.Errorf("erro ao gerar número do comprovante: %w", err)
	}

	customer := *session.Customer
	lines := session.Cart.Clone().Lines
	totals := ComputeTotals(session.Cart, taxRate)

	sale, err := recorder.RecordSale(ctx, customer, lines)
	if err == nil && sale == nil {
		err = errSaleNotReturned
	}
	if err != nil {
		failed := session
		failed.State = StateBuilding
		if !errors.Is(err, domain.ErrCollaboratorUnavailable) {
			err = domain.NewCollaboratorError("recordSale", 0, err)
		}
		return failed, nil, err
	}

	receipt := &domain.Receipt{
		Number:   number,
		Sale:     *sale,
		Customer: customer,
		Lines:    lines,
		Totals:   totals,
		IssuedAt: time.Now(),
	}

	completed := session
	completed.Cart = domain.Cart{}
	completed.Customer = nil
	completed.State = StateCompleted

	return completed, receipt, nil
}
