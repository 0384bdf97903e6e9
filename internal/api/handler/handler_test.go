package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-manager-api/internal/api/handler/router"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shop-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func serve(t *testing.T, routes []router.Route, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_RotaDesconhecida(t *testing.T) {
	rec := serve(t, nil, http.MethodGet, "/v1/nada", nil, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
}

func TestRouter_MetodoNaoPermitido(t *testing.T) {
	routes := []router.Route{{
		Path:    "/v1/ping",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}}

	rec := serve(t, routes, http.MethodPatch, "/v1/ping", nil, "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, apiErrors.ErrMethodNotAllowed, decodeAPIError(t, rec).Code)
}

func TestRouter_WithGroupAplicaMiddlewaresNaOrdem(t *testing.T) {
	var calls []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := router.New(router.WithGroup(
		[]func(http.Handler) http.Handler{mark("grupo")},
		router.Route{
			Path:        "/v1/ping",
			Method:      http.MethodGet,
			Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls = append(calls, "handler") }),
			Middlewares: []func(http.Handler) http.Handler{mark("rota")},
		},
	))

	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	require.Equal(t, []string{"grupo", "rota", "handler"}, calls)
}
