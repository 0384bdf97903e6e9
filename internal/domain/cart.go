package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal retorna quantidade × preço unitário da linha
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart é a lista ordenada de linhas de uma sessão de venda, indexada pelo ID do produto
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Find retorna a posição da linha do produto ou -1
func (c Cart) Find(productID string) int {
	for i, line := range c.Lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Clone copia as linhas para que alterações não afetem o carrinho original
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
}

// Receipt é o comprovante de uma venda concluída
type Receipt struct {
	Number   string     `json:"number"`
	Sale     Sale       `json:"sale"`
	Customer Customer   `json:"customer"`
	Lines    []CartLine `json:"lines"`
	Totals   Totals     `json:"totals"`
	IssuedAt time.Time  `json:"issued_at"`
}
