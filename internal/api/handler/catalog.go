package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shop-manager-api/pkg/log"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

// Limite de memória para o formulário do produto (imagens acima disso vão para disco)
const maxProductFormMemory = 10 << 20

func ListProducts(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		products, err := service.ListProducts(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, r, http.StatusOK, products)
	})
}

func CreateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields, image, cleanup, err := parseProductForm(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		defer cleanup()

		product, err := service.CreateProduct(r.Context(), fields, image)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar produto")
			return
		}

		log.ForContext(r.Context()).WithField("product_id", product.ID).Info("catalog: produto criado")
		writeJSON(w, r, http.StatusCreated, product)
	})
}

func UpdateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		fields, image, cleanup, err := parseProductForm(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		defer cleanup()

		product, err := service.UpdateProduct(r.Context(), id, fields, image)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar produto")
			return
		}

		log.ForContext(r.Context()).WithField("product_id", id).Info("catalog: produto atualizado")
		writeJSON(w, r, http.StatusOK, product)
	})
}

func DeleteProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProduct(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir produto")
			return
		}

		log.ForContext(r.Context()).WithField("product_id", id).Info("catalog: produto excluído")
		w.WriteHeader(http.StatusNoContent)
	})
}

func ListCustomers(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar clientes")
			return
		}

		writeJSON(w, r, http.StatusOK, customers)
	})
}

type createCustomerRequest struct {
	Name string `json:"name"`
}

func CreateCustomer(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req createCustomerRequest
		if err := decodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		customer, err := service.CreateCustomer(r.Context(), req.Name)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar cliente")
			return
		}

		log.ForContext(r.Context()).WithField("customer_id", customer.ID).Info("catalog: cliente criado")
		writeJSON(w, r, http.StatusCreated, customer)
	})
}

// parseProductForm lê o formulário multipart com os mesmos campos do front-end
// (nombre, precio, stock, fecha e o arquivo opcional imagen)
func parseProductForm(r *http.Request) (domain.ProductFields, *domain.ImageUpload, func(), error) {
	noop := func() {}
	fields := domain.ProductFields{}

	if err := r.ParseMultipartForm(maxProductFormMemory); err != nil {
		return fields, nil, noop, errInvalidField("formulário", err)
	}
	cleanup := func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	fields.Name = strings.TrimSpace(r.FormValue("nombre"))

	if value := strings.TrimSpace(r.FormValue("precio")); value != "" {
		price, err := decimal.NewFromString(value)
		if err != nil {
			cleanup()
			return fields, nil, noop, errInvalidField("precio", err)
		}
		fields.UnitPrice = price
	}

	if value := strings.TrimSpace(r.FormValue("stock")); value != "" {
		stock, err := strconv.Atoi(value)
		if err != nil {
			cleanup()
			return fields, nil, noop, errInvalidField("stock", err)
		}
		fields.StockQuantity = stock
	}

	addedDate, err := utils.ParseDateTime(strings.TrimSpace(r.FormValue("fecha")))
	if err != nil {
		cleanup()
		return fields, nil, noop, errInvalidField("fecha", err)
	}
	fields.AddedDate = addedDate

	file, header, err := r.FormFile("imagen")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return fields, nil, cleanup, nil
		}
		cleanup()
		return fields, nil, noop, errInvalidField("imagen", err)
	}

	image := &domain.ImageUpload{Filename: header.Filename, Content: file}
	return fields, image, func() {
		_ = file.Close()
		cleanup()
	}, nil
}
