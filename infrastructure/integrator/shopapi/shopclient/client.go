package shopclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/shop-manager-api/infrastructure/integrator/shopapi/shopdomain"
	"github.com/vfg2006/shop-manager-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	productsPath  = "/api/productos"
	customersPath = "/api/clientes"
	salesPath     = "/api/ventas"
)

type Client interface {
	ListProducts(ctx context.Context) ([]shopdomain.Product, error)
	CreateProduct(ctx context.Context, form ProductForm) (*shopdomain.Product, error)
	UpdateProduct(ctx context.Context, id string, form ProductForm) (*shopdomain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]shopdomain.Customer, error)
	CreateCustomer(ctx context.Context, req shopdomain.CreateCustomerRequest) (*shopdomain.Customer, error)
	ListSales(ctx context.Context) ([]shopdomain.Sale, error)
	RecordSale(ctx context.Context, req shopdomain.RecordSaleRequest) (*shopdomain.Sale, error)
}

// StatusError é devolvido quando a API responde com status diferente de 2xx
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, e.Body)
}

type ShopClient struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &ShopClient{
		httpClient: &http.Client{
			Timeout: cfg.ShopAPI.Timeout + 5*time.Second,
		},
		baseURL: cfg.ShopAPI.URL,
		timeout: cfg.ShopAPI.Timeout,
	}
}

func (c *ShopClient) endpoint(parts ...string) (string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(append([]string{endpoint.Path}, parts...)...)
	return endpoint.String(), nil
}

// do executa a requisição e decodifica a resposta JSON em out (quando não nil)
func (c *ShopClient) do(ctx context.Context, method string, body io.Reader, contentType string, out any, parts ...string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint, err := c.endpoint(parts...)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}

	// Algumas rotas respondem sem corpo
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

func (c *ShopClient) doJSON(ctx context.Context, method string, in any, out any, parts ...string) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("erro ao serializar a requisição: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}
	return c.do(ctx, method, body, contentType, out, parts...)
}

// ProductForm são os campos enviados como multipart/form-data
type ProductForm struct {
	Name          string
	Price         string
	Stock         int
	AddedDate     string
	ImageFilename string
	Image         io.Reader
}

func (f ProductForm) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	fields := [][2]string{
		{"nombre", f.Name},
		{"precio", f.Price},
		{"stock", fmt.Sprintf("%d", f.Stock)},
		{"fecha", f.AddedDate},
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", err
		}
	}

	if f.Image != nil {
		part, err := writer.CreateFormFile("imagen", f.ImageFilename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Image); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf, writer.FormDataContentType(), nil
}
