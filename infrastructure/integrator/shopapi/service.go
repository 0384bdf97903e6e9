package shopapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi/shopclient"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi/shopdomain"
	"github.com/vfg2006/shop-manager-api/internal/config"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// ShopIntegrator expõe as operações lógicas da API de dados da loja
type ShopIntegrator interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, name string) (*domain.Customer, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	RecordSale(ctx context.Context, customer domain.Customer, lines []domain.CartLine) (*domain.Sale, error)
}

type ShopService struct {
	cfg    *config.Config
	Client shopclient.Client
}

func New(cfg *config.Config, client shopclient.Client) ShopIntegrator {
	return &ShopService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ShopService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	resp, err := s.Client.ListProducts(ctx)
	if err != nil {
		return nil, collaboratorError("listProducts", err)
	}

	products := make([]domain.Product, 0, len(resp))
	for _, p := range resp {
		product, ok := s.toProduct(p)
		if !ok {
			logrus.WithField("product_id", p.ID).Warn("shopapi: produto inválido ignorado")
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

func (s *ShopService) CreateProduct(ctx context.Context, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error) {
	resp, err := s.Client.CreateProduct(ctx, toProductForm(fields, image))
	if err != nil {
		return nil, collaboratorError("createProduct", err)
	}

	product, _ := s.toProduct(*resp)
	return &product, nil
}

func (s *ShopService) UpdateProduct(ctx context.Context, id string, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error) {
	resp, err := s.Client.UpdateProduct(ctx, id, toProductForm(fields, image))
	if err != nil {
		return nil, collaboratorError("updateProduct", err)
	}

	product, _ := s.toProduct(*resp)
	if product.ID == "" {
		product.ID = id
	}
	return &product, nil
}

func (s *ShopService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Client.DeleteProduct(ctx, id); err != nil {
		return collaboratorError("deleteProduct", err)
	}
	return nil
}

func (s *ShopService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	resp, err := s.Client.ListCustomers(ctx)
	if err != nil {
		return nil, collaboratorError("listCustomers", err)
	}

	customers := make([]domain.Customer, 0, len(resp))
	for _, c := range resp {
		if c.ID == "" {
			logrus.WithField("customer_name", c.Name).Warn("shopapi: cliente sem ID ignorado")
			continue
		}
		customers = append(customers, domain.Customer{ID: c.ID, Name: c.Name})
	}

	return customers, nil
}

func (s *ShopService) CreateCustomer(ctx context.Context, name string) (*domain.Customer, error) {
	resp, err := s.Client.CreateCustomer(ctx, shopdomain.CreateCustomerRequest{Name: name})
	if err != nil {
		return nil, collaboratorError("createCustomer", err)
	}

	customer := domain.Customer{ID: resp.ID, Name: resp.Name}
	if customer.Name == "" {
		customer.Name = name
	}
	return &customer, nil
}

func (s *ShopService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	resp, err := s.Client.ListSales(ctx)
	if err != nil {
		return nil, collaboratorError("listSales", err)
	}

	sales := make([]domain.Sale, 0, len(resp))
	skipped := 0
	for _, v := range resp {
		sale, ok := toSale(v, s.location())
		if !ok {
			skipped++
			continue
		}
		sales = append(sales, sale)
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"sale_skipped": skipped,
			"sale_total":   len(resp),
		}).Warn("shopapi: vendas com data ou itens inválidos foram ignoradas")
	}

	return sales, nil
}

func (s *ShopService) RecordSale(ctx context.Context, customer domain.Customer, lines []domain.CartLine) (*domain.Sale, error) {
	req := shopdomain.RecordSaleRequest{
		Customer: shopdomain.Customer{ID: customer.ID, Name: customer.Name},
		Items:    make([]shopdomain.CartItem, 0, len(lines)),
	}
	for _, line := range lines {
		req.Items = append(req.Items, shopdomain.CartItem{
			ID:       line.Product.ID,
			Name:     line.Product.Name,
			Price:    line.Product.UnitPrice,
			Quantity: line.Quantity,
		})
	}

	resp, err := s.Client.RecordSale(ctx, req)
	if err != nil {
		return nil, collaboratorError("recordSale", err)
	}

	sale, ok := toSale(*resp, s.location())
	if !ok {
		// A API pode confirmar sem devolver a venda completa
		sale = recordedSale(resp.ID, customer, lines)
	}

	return &sale, nil
}

func (s *ShopService) toProduct(p shopdomain.Product) (domain.Product, bool) {
	addedDate, _ := shopdomain.ParseDate(p.AddedDate, s.location())

	product := domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		UnitPrice:     p.Price,
		StockQuantity: p.Stock,
		AddedDate:     addedDate,
		Image:         p.Image,
	}
	if p.Image != "" {
		product.ImageURL = s.cfg.ShopAPI.UploadsURL + "/" + p.Image
	}

	valid := p.ID != "" && !p.Price.IsNegative() && p.Stock >= 0
	return product, valid
}

// location é o fuso usado para datas sem offset vindas da API
func (s *ShopService) location() *time.Location {
	if s.cfg.Reports.Location == nil {
		return time.UTC
	}
	return s.cfg.Reports.Location
}

func toSale(v shopdomain.Sale, loc *time.Location) (domain.Sale, bool) {
	date, ok := shopdomain.ParseDate(v.Date, loc)
	if !ok {
		return domain.Sale{}, false
	}

	sale := domain.Sale{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		ProductID:  v.ProductID,
		Amount:     v.Amount,
		Date:       date,
	}
	for _, item := range v.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return domain.Sale{}, false
		}
		sale.Items = append(sale.Items, domain.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return sale, true
}

func recordedSale(id string, customer domain.Customer, lines []domain.CartLine) domain.Sale {
	sale := domain.Sale{
		ID:         id,
		CustomerID: customer.ID,
		Amount:     decimal.Zero,
		Date:       time.Now(),
	}
	for _, line := range lines {
		sale.Amount = sale.Amount.Add(line.Subtotal())
		sale.Items = append(sale.Items, domain.SaleItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.UnitPrice,
		})
	}
	if len(lines) == 1 {
		sale.ProductID = lines[0].Product.ID
	}
	return sale
}

func toProductForm(fields domain.ProductFields, image *domain.ImageUpload) shopclient.ProductForm {
	form := shopclient.ProductForm{
		Name:      strings.TrimSpace(fields.Name),
		Price:     fields.UnitPrice.String(),
		Stock:     fields.StockQuantity,
		AddedDate: fields.AddedDate.UTC().Format(time.RFC3339),
	}
	if image != nil && image.Content != nil {
		form.ImageFilename = image.Filename
		form.Image = image.Content
	}
	return form
}

func collaboratorError(operation string, err error) error {
	var statusErr *shopclient.StatusError
	if errors.As(err, &statusErr) {
		return domain.NewCollaboratorError(operation, statusErr.StatusCode, err)
	}
	return domain.NewCollaboratorError(operation, 0, err)
}
