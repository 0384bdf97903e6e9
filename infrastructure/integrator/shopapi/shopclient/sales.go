package shopclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi/shopdomain"
)

func (c *ShopClient) ListSales(ctx context.Context) ([]shopdomain.Sale, error) {
	var response []shopdomain.Sale
	if err := c.doJSON(ctx, http.MethodGet, nil, &response, salesPath); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *ShopClient) RecordSale(ctx context.Context, req shopdomain.RecordSaleRequest) (*shopdomain.Sale, error) {
	var response shopdomain.Sale
	if err := c.doJSON(ctx, http.MethodPost, req, &response, salesPath); err != nil {
		return nil, err
	}
	return &response, nil
}
