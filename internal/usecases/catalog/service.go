package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type CatalogService interface {
	ListProducts(ctx context.Context, query string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, name string) (*domain.Customer, error)
}

// Service mantém as listas de produtos e clientes. Cada lista é trocada por
// inteiro depois de uma alteração, então leitores nunca veem uma lista parcial.
type Service struct {
	shop shopapi.ShopIntegrator

	mu        sync.RWMutex
	products  []domain.Product
	customers []domain.Customer
}

func NewService(shop shopapi.ShopIntegrator) *Service {
	return &Service{shop: shop}
}

// ListProducts busca a lista atual e filtra pelo nome quando query não é vazia
func (s *Service) ListProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if err := s.RefreshProducts(ctx); err != nil {
		return nil, err
	}

	products := s.productSnapshot()
	if strings.TrimSpace(query) == "" {
		return products, nil
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if containsFold(p.Name, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) CreateProduct(ctx context.Context, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error) {
	if err := validateProduct(fields); err != nil {
		return nil, err
	}

	product, err := s.shop.CreateProduct(ctx, fields, image)
	if err != nil {
		return nil, err
	}

	s.refreshAfterMutation(ctx, s.RefreshProducts)
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "id", Message: "é obrigatório"}
	}
	if err := validateProduct(fields); err != nil {
		return nil, err
	}

	product, err := s.shop.UpdateProduct(ctx, id, fields, image)
	if err != nil {
		return nil, err
	}

	s.refreshAfterMutation(ctx, s.RefreshProducts)
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "é obrigatório"}
	}

	if err := s.shop.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.refreshAfterMutation(ctx, s.RefreshProducts)
	return nil
}

func (s *Service) ListCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	if err := s.RefreshCustomers(ctx); err != nil {
		return nil, err
	}

	customers := s.customerSnapshot()
	if strings.TrimSpace(query) == "" {
		return customers, nil
	}

	filtered := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if containsFold(c.Name, query) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *Service) CreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	customer, err := s.shop.CreateCustomer(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	s.refreshAfterMutation(ctx, s.RefreshCustomers)
	return customer, nil
}

// FindProduct procura na lista carregada e, se não achar, recarrega uma vez
func (s *Service) FindProduct(ctx context.Context, id string) (domain.Product, error) {
	if product, ok := s.lookupProduct(id); ok {
		return product, nil
	}

	if err := s.RefreshProducts(ctx); err != nil {
		return domain.Product{}, err
	}

	if product, ok := s.lookupProduct(id); ok {
		return product, nil
	}
	return domain.Product{}, ErrProductNotFound
}

func (s *Service) FindCustomer(ctx context.Context, id string) (domain.Customer, error) {
	if customer, ok := s.lookupCustomer(id); ok {
		return customer, nil
	}

	if err := s.RefreshCustomers(ctx); err != nil {
		return domain.Customer{}, err
	}

	if customer, ok := s.lookupCustomer(id); ok {
		return customer, nil
	}
	return domain.Customer{}, ErrCustomerNotFound
}

// RefreshProducts troca a lista de produtos pela lista atual da API
func (s *Service) RefreshProducts(ctx context.Context) error {
	products, err := s.shop.ListProducts(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

func (s *Service) RefreshCustomers(ctx context.Context) error {
	customers, err := s.shop.ListCustomers(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
	return nil
}

// ProductName resolve o nome a partir da lista já carregada, sem chamar a API
func (s *Service) ProductName(id string) (string, bool) {
	product, ok := s.lookupProduct(id)
	return product.Name, ok
}

func (s *Service) CustomerName(id string) (string, bool) {
	customer, ok := s.lookupCustomer(id)
	return customer.Name, ok
}

func (s *Service) refreshAfterMutation(ctx context.Context, refresh func(context.Context) error) {
	if err := refresh(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar a lista após a alteração")
	}
}

func (s *Service) productSnapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

func (s *Service) customerSnapshot() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers
}

func (s *Service) lookupProduct(id string) (domain.Product, bool) {
	for _, p := range s.productSnapshot() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Service) lookupCustomer(id string) (domain.Customer, bool) {
	for _, c := range s.customerSnapshot() {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

func containsFold(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(strings.TrimSpace(query)))
}
