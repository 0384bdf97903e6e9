package shopclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi/shopdomain"
)

func (c *ShopClient) ListProducts(ctx context.Context) ([]shopdomain.Product, error) {
	var response []shopdomain.Product
	if err := c.doJSON(ctx, http.MethodGet, nil, &response, productsPath); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ShopClient) CreateProduct(ctx context.Context, form ProductForm) (*shopdomain.Product, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário do produto: %w", err)
	}

	var response shopdomain.Product
	if err := c.do(ctx, http.MethodPost, body, contentType, &response, productsPath); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *ShopClient) UpdateProduct(ctx context.Context, id string, form ProductForm) (*shopdomain.Product, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário do produto: %w", err)
	}

	var response shopdomain.Product
	if err := c.do(ctx, http.MethodPut, body, contentType, &response, productsPath, id); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *ShopClient) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, nil, nil, productsPath, id)
}

func (c *ShopClient) ListCustomers(ctx context.Context) ([]shopdomain.Customer, error) {
	var response []shopdomain.Customer
	if err := c.doJSON(ctx, http.MethodGet, nil, &response, customersPath); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ShopClient) CreateCustomer(ctx context.Context, req shopdomain.CreateCustomerRequest) (*shopdomain.Customer, error) {
	var response shopdomain.Customer
	if err := c.doJSON(ctx, http.MethodPost, req, &response, customersPath); err != nil {
		return nil, err
	}
	return &response, nil
}
