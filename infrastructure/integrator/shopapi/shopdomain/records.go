// Package shopdomain contém os registros no formato da API da loja
package shopdomain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string          `json:"_id"`
	Name      string          `json:"nombre"`
	Price     decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
	AddedDate string          `json:"fecha"`
	Image     string          `json:"imagen,omitempty"`
}

type Customer struct {
	ID   string `json:"_id"`
	Name string `json:"nombre"`
}

type Sale struct {
	ID         string          `json:"_id"`
	CustomerID string          `json:"clienteId"`
	ProductID  string          `json:"productoId,omitempty"`
	Amount     decimal.Decimal `json:"monto"`
	Date       string          `json:"fecha"`
	Items      []SaleItem      `json:"items,omitempty"`
}

type SaleItem struct {
	ProductID string          `json:"productoId"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio"`
}

// RecordSaleRequest é o corpo enviado para registrar uma venda
type RecordSaleRequest struct {
	Customer Customer   `json:"cliente"`
	Items    []CartItem `json:"items"`
}

// CartItem é o produto do carrinho com a quantidade vendida
type CartItem struct {
	ID       string          `json:"_id"`
	Name     string          `json:"nombre"`
	Price    decimal.Decimal `json:"precio"`
	Quantity int             `json:"cantidad"`
}

type CreateCustomerRequest struct {
	Name string `json:"nombre"`
}

// Formatos de data aceitos no campo fecha
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDate interpreta o campo fecha da API. Valores sem offset são lidos em loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
