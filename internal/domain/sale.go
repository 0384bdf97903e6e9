// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma venda já registrada na API da loja.
// Depois de carregada é tratada como imutável.
type Sale struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	ProductID  string          `json:"product_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Items      []SaleItem      `json:"items,omitempty"`
}

type SaleItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// InRange verifica se a venda está no intervalo fechado [start, end]
func (s Sale) InRange(start, end time.Time) bool {
	return !s.Date.Before(start) && !s.Date.After(end)
}

// Units retorna as unidades vendidas por produto, na ordem dos itens.
// Uma venda sem itens conta como uma unidade do seu ProductID.
func (s Sale) Units() []SaleItem {
	if len(s.Items) == 0 {
		if s.ProductID == "" {
			return nil
		}
		return []SaleItem{{ProductID: s.ProductID, Quantity: 1}}
	}

	units := make([]SaleItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			continue
		}
		units = append(units, item)
	}

	return units
}
