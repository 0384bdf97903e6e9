package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Catalog fornece os produtos e clientes atuais
type Catalog interface {
	FindProduct(ctx context.Context, id string) (domain.Product, error)
	FindCustomer(ctx context.Context, id string) (domain.Customer, error)
	RefreshProducts(ctx context.Context) error
}

type CheckoutService interface {
	Open(ctx context.Context) (*Summary, error)
	Get(ctx context.Context, id string) (*Summary, error)
	SelectCustomer(ctx context.Context, id string, customerID string) (*Summary, error)
	ClearCustomer(ctx context.Context, id string) (*Summary, error)
	AddItem(ctx context.Context, id string, productID string, quantity int) (*Summary, error)
	UpdateQuantity(ctx context.Context, id string, productID string, quantity int) (*Summary, error)
	RemoveItem(ctx context.Context, id string, productID string) (*Summary, error)
	Cancel(ctx context.Context, id string) error
	Checkout(ctx context.Context, id string) (*domain.Receipt, error)
}

// Summary é a sessão com os totais calculados
type Summary struct {
	Session
	Totals domain.Totals `json:"totals"`
}

type Service struct {
	catalog  Catalog
	recorder SaleRecorder
	taxRate  decimal.Decimal
	policy   StockPolicy
	timeout  time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]Session
}

func NewService(cfg *config.Config, catalog Catalog, recorder SaleRecorder) *Service {
	taxRate := cfg.Checkout.TaxRate
	if cfg.Checkout.RawTaxRate == "" {
		taxRate = DefaultTaxRate
	}

	policy, err := ParseStockPolicy(cfg.Checkout.StockPolicy)
	if err != nil {
		logrus.WithError(err).Warn("Usando política de estoque cumulativa")
		policy = StockPolicyCumulative
	}

	return &Service{
		catalog:  catalog,
		recorder: recorder,
		taxRate:  taxRate,
		policy:   policy,
		timeout:  cfg.Checkout.Timeout,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
}

func (s *Service) Open(ctx context.Context) (*Summary, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da sessão: %w", err)
	}

	now := s.now()
	session := Session{
		ID:        id,
		State:     StateEmpty,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	logrus.WithField("session_id", id).Debug("Sessão de venda aberta")

	return s.summary(session), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.summary(session), nil
}

func (s *Service) SelectCustomer(ctx context.Context, id string, customerID string) (*Summary, error) {
	customer, err := s.catalog.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.mutate(id, func(session Session) (Session, error) {
		return session.WithCustomer(&customer), nil
	})
}

func (s *Service) ClearCustomer(ctx context.Context, id string) (*Summary, error) {
	return s.mutate(id, func(session Session) (Session, error) {
		return session.WithCustomer(nil), nil
	})
}

func (s *Service) AddItem(ctx context.Context, id string, productID string, quantity int) (*Summary, error) {
	product, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.mutate(id, func(session Session) (Session, error) {
		cart, err := AddItem(session.Cart, product, quantity, s.policy)
		if err != nil {
			return session, err
		}
		return session.WithCart(cart), nil
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, id string, productID string, quantity int) (*Summary, error) {
	product, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.mutate(id, func(session Session) (Session, error) {
		cart, err := UpdateQuantity(session.Cart, product, quantity)
		if err != nil {
			return session, err
		}
		return session.WithCart(cart), nil
	})
}

func (s *Service) RemoveItem(ctx context.Context, id string, productID string) (*Summary, error) {
	return s.mutate(id, func(session Session) (Session, error) {
		return session.WithCart(RemoveItem(session.Cart, productID)), nil
	})
}

// Cancel descarta a sessão e o carrinho
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if session.State == StateSubmitting {
		return ErrCheckoutInProgress
	}

	delete(s.sessions, id)
	return nil
}

// Checkout registra a venda da sessão. Enquanto a venda está sendo enviada a
// sessão fica em Submitting e rejeita alterações e um segundo envio.
func (s *Service) Checkout(ctx context.Context, id string) (*domain.Receipt, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if session.State == StateSubmitting {
		s.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	submitting := session
	submitting.State = StateSubmitting
	s.sessions[id] = submitting
	s.mu.Unlock()

	submitCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	result, receipt, err := Checkout(submitCtx, session, s.recorder, s.taxRate)

	s.mu.Lock()
	result.UpdatedAt = s.now()
	s.sessions[id] = result
	s.mu.Unlock()

	logger := logrus.WithFields(logrus.Fields{
		"session_id": id,
		"duration":   time.Since(start).String(),
	})
	if err != nil {
		logger.WithError(err).Warn("Venda não registrada")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"sale_id":      receipt.Sale.ID,
		"sale_total":   receipt.Totals.Total.StringFixed(2),
		"customer_id":  receipt.Customer.ID,
		"receipt_code": receipt.Number,
	}).Info("Venda registrada")

	// O estoque mudou na API da loja
	if err := s.catalog.RefreshProducts(ctx); err != nil {
		logger.WithError(err).Warn("Erro ao atualizar produtos após a venda")
	}

	return receipt, nil
}

func (s *Service) mutate(id string, fn func(Session) (Session, error)) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.State == StateSubmitting {
		return nil, ErrCheckoutInProgress
	}

	next, err := fn(session)
	if err != nil {
		return nil, err
	}

	next.UpdatedAt = s.now()
	s.sessions[id] = next
	return s.summary(next), nil
}

func (s *Service) summary(session Session) *Summary {
	return &Summary{
		Session: session,
		Totals:  ComputeTotals(session.Cart, s.taxRate),
	}
}
