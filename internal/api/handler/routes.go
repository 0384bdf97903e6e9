package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/shop-manager-api/internal/api/handler/router"
	"github.com/vfg2006/shop-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/shop-manager-api/internal/usecases/checkout"
	"github.com/vfg2006/shop-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/shop-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/shop-manager-api/pkg/middleware"
)

const (
	maxProductUploadBytes = maxProductFormMemory + 2<<20
	MaxJSONBodyBytes      = 1 << 20
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Products(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.BodyLimit(maxProductUploadBytes)},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.BodyLimit(maxProductUploadBytes)},
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
	}
}

func Customers(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.BodyLimit(MaxJSONBodyBytes)},
		},
	}
}

// Reports interpreta as datas das consultas no fuso loc
func Reports(reporter reporting.Reporter, snapshots ranking.RankingService, loc *time.Location) []router.Route {
	if loc == nil {
		loc = time.UTC
	}

	return []router.Route{
		{
			Path:    "/v1/reports/sales",
			Method:  http.MethodGet,
			Handler: GetSalesReport(reporter, loc),
		},
		{
			Path:    "/v1/reports/top",
			Method:  http.MethodGet,
			Handler: GetTopRanking(reporter),
		},
		{
			Path:    "/v1/reports/snapshots/latest",
			Method:  http.MethodGet,
			Handler: GetLatestSnapshot(snapshots),
		},
		{
			Path:    "/v1/reports/snapshots",
			Method:  http.MethodGet,
			Handler: GetSnapshots(snapshots, loc),
		},
	}
}

func Checkout(service checkout.CheckoutService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/checkout/sessions",
			Method:  http.MethodPost,
			Handler: OpenSession(service),
		},
		{
			Path:    "/v1/checkout/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
		{
			Path:    "/v1/checkout/sessions/:id",
			Method:  http.MethodDelete,
			Handler: CancelSession(service),
		},
		{
			Path:    "/v1/checkout/sessions/:id/customer",
			Method:  http.MethodPut,
			Handler: SelectCustomer(service),
		},
		{
			Path:    "/v1/checkout/sessions/:id/customer",
			Method:  http.MethodDelete,
			Handler: ClearCustomer(service),
		},
		{
			Path:    "/v1/checkout/sessions/:id/items",
			Method:  http.MethodPost,
			Handler: AddCartItem(service),
		},
		{
			Path:    "/v1/checkout/sessions/:id/items/:product_id",
			Method:  http.MethodPut,
			Handler: UpdateCartItem(service),
		},
		{
			Path:    "/v1/checkout/sessions/:id/items/:product_id",
			Method:  http.MethodDelete,
			Handler: RemoveCartItem(service),
		},
		{
			Path:    "/v1/checkout/sessions/:id/submit",
			Method:  http.MethodPost,
			Handler: SubmitSession(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
