package middleware

import (
	"net/http"

	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
)

// BodyLimit recusa requisições com Content-Length acima de maxBytes e limita a leitura do corpo
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Corpo da requisição muito grande", map[string]any{
					"max_bytes": maxBytes,
				})
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
