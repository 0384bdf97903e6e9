package handler_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-manager-api/internal/api/handler"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/catalog"
	"github.com/vfg2006/shop-manager-api/internal/usecases/catalog/mocks"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func productForm(t *testing.T, values map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}
	if image != nil {
		part, err := writer.CreateFormFile("imagen", "foto.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestCreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalogService(ctrl)

	service.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields domain.ProductFields, image *domain.ImageUpload) (*domain.Product, error) {
			assert.Equal(t, "Lapiz Azul", fields.Name)
			assert.True(t, decimal.RequireFromString("12.50").Equal(fields.UnitPrice))
			assert.Equal(t, 7, fields.StockQuantity)
			assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), fields.AddedDate)

			require.NotNil(t, image)
			assert.Equal(t, "foto.png", image.Filename)
			content, err := io.ReadAll(image.Content)
			require.NoError(t, err)
			assert.Equal(t, []byte("png"), content)

			return &domain.Product{ID: "p1", Name: fields.Name}, nil
		})

	body, contentType := productForm(t, map[string]string{
		"nombre": "Lapiz Azul",
		"precio": "12.50",
		"stock":  "7",
		"fecha":  "2024-03-10",
	}, []byte("png"))

	rec := serve(t, handler.Products(service), http.MethodPost, "/v1/products", body, contentType)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "p1", decodeBody(t, rec)["id"])
}

func TestCreateProduct_CamposInvalidos(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{name: "preço não numérico", values: map[string]string{"nombre": "Lapiz", "precio": "doce"}},
		{name: "estoque não inteiro", values: map[string]string{"nombre": "Lapiz", "stock": "1.5"}},
		{name: "data inválida", values: map[string]string{"nombre": "Lapiz", "fecha": "10/03/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockCatalogService(ctrl)

			body, contentType := productForm(t, tt.values, nil)
			rec := serve(t, handler.Products(service), http.MethodPost, "/v1/products", body, contentType)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
		})
	}
}

func TestCreateProduct_ValidacaoDoCatalogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalogService(ctrl)
	service.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), nil).
		Return(nil, &catalog.ValidationError{Field: "name", Message: "deve conter apenas letras"})

	body, contentType := productForm(t, map[string]string{"nombre": "Lapiz 2"}, nil)
	rec := serve(t, handler.Products(service), http.MethodPost, "/v1/products", body, contentType)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	details, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "name", details["field"])
}

func TestUpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalogService(ctrl)
	service.EXPECT().UpdateProduct(gomock.Any(), "p1", gomock.Any(), nil).
		Return(&domain.Product{ID: "p1", Name: "Goma"}, nil)

	body, contentType := productForm(t, map[string]string{"nombre": "Goma", "precio": "2"}, nil)
	rec := serve(t, handler.Products(service), http.MethodPut, "/v1/products/p1", body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalogService(ctrl)
	routes := handler.Products(service)

	t.Run("listar com busca", func(t *testing.T) {
		service.EXPECT().ListProducts(gomock.Any(), "lap").Return([]domain.Product{{ID: "p1", Name: "Lapiz"}}, nil)

		rec := serve(t, routes, http.MethodGet, "/v1/products?q=lap", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var products []domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		assert.Len(t, products, 1)
	})

	t.Run("excluir", func(t *testing.T) {
		service.EXPECT().DeleteProduct(gomock.Any(), "p1").Return(nil)

		rec := serve(t, routes, http.MethodDelete, "/v1/products/p1", nil, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		service.EXPECT().DeleteProduct(gomock.Any(), "p9").Return(catalog.ErrProductNotFound)

		rec := serve(t, routes, http.MethodDelete, "/v1/products/p9", nil, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("upload acima do limite", func(t *testing.T) {
		rec := serve(t, routes, http.MethodPost, "/v1/products",
			bytes.NewReader(make([]byte, 13<<20)), "multipart/form-data; boundary=x")

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestCustomerRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalogService(ctrl)
	routes := handler.Customers(service)

	t.Run("listar", func(t *testing.T) {
		service.EXPECT().ListCustomers(gomock.Any(), "").Return([]domain.Customer{{ID: "c1", Name: "Ana"}}, nil)

		rec := serve(t, routes, http.MethodGet, "/v1/customers", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("criar", func(t *testing.T) {
		service.EXPECT().CreateCustomer(gomock.Any(), "Ana").Return(&domain.Customer{ID: "c1", Name: "Ana"}, nil)

		rec := serve(t, routes, http.MethodPost, "/v1/customers", strings.NewReader(`{"name":"Ana"}`), "application/json")

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "c1", decodeBody(t, rec)["id"])
	})

	t.Run("nome inválido", func(t *testing.T) {
		service.EXPECT().CreateCustomer(gomock.Any(), "").
			Return(nil, &catalog.ValidationError{Field: "name", Message: "é obrigatório"})

		rec := serve(t, routes, http.MethodPost, "/v1/customers", strings.NewReader(`{"name":""}`), "application/json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("api da loja indisponível", func(t *testing.T) {
		service.EXPECT().ListCustomers(gomock.Any(), "").
			Return(nil, domain.NewCollaboratorError("listCustomers", 0, io.ErrUnexpectedEOF))

		rec := serve(t, routes, http.MethodGet, "/v1/customers", nil, "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
