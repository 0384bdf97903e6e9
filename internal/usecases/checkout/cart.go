package checkout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/shop-manager-api/internal/domain"
)

// StockPolicy define como o estoque é conferido ao somar itens a uma linha existente
type StockPolicy string

const (
	// StockPolicyCumulative confere a quantidade total da linha contra o estoque
	StockPolicyCumulative StockPolicy = "cumulative"
	// StockPolicyIncremental confere só a quantidade adicionada, como no front-end antigo
	StockPolicyIncremental StockPolicy = "incremental"
)

// DefaultTaxRate é o IGV aplicado sobre o subtotal
var DefaultTaxRate = decimal.RequireFromString("0.18")

func ParseStockPolicy(value string) (StockPolicy, error) {
	switch StockPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", StockPolicyCumulative:
		return StockPolicyCumulative, nil
	case StockPolicyIncremental:
		return StockPolicyIncremental, nil
	}
	return "", fmt.Errorf("política de estoque desconhecida: %q", value)
}

// AddItem adiciona quantity unidades do produto ao carrinho. O carrinho recebido
// nunca é alterado; em caso de erro ele continua válido.
func AddItem(cart domain.Cart, product domain.Product, quantity int, policy StockPolicy) (domain.Cart, error) {
	if quantity <= 0 {
		return cart, ErrInvalidQuantity
	}
	if quantity > product.StockQuantity {
		return cart, insufficientStock(product, quantity)
	}

	next := cart.Clone()
	pos := next.Find(product.ID)
	if pos < 0 {
		next.Lines = append(next.Lines, domain.CartLine{Product: product, Quantity: quantity})
		return next, nil
	}

	total := next.Lines[pos].Quantity + quantity
	if policy != StockPolicyIncremental && total > product.StockQuantity {
		return cart, insufficientStock(product, total)
	}

	next.Lines[pos] = domain.CartLine{Product: product, Quantity: total}
	return next, nil
}

// RemoveItem remove a linha do produto. Produto ausente não é erro.
func RemoveItem(cart domain.Cart, productID string) domain.Cart {
	pos := cart.Find(productID)
	if pos < 0 {
		return cart
	}

	next := domain.Cart{Lines: make([]domain.CartLine, 0, len(cart.Lines)-1)}
	next.Lines = append(next.Lines, cart.Lines[:pos]...)
	next.Lines = append(next.Lines, cart.Lines[pos+1:]...)
	return next
}

// UpdateQuantity troca a quantidade da linha do produto. Quantidade zero remove a linha.
func UpdateQuantity(cart domain.Cart, product domain.Product, quantity int) (domain.Cart, error) {
	pos := cart.Find(product.ID)
	if pos < 0 {
		return cart, ErrItemNotInCart
	}
	if quantity < 0 {
		return cart, ErrInvalidQuantity
	}
	if quantity == 0 {
		return RemoveItem(cart, product.ID), nil
	}
	if quantity > product.StockQuantity {
		return cart, insufficientStock(product, quantity)
	}

	next := cart.Clone()
	next.Lines[pos] = domain.CartLine{Product: product, Quantity: quantity}
	return next, nil
}

// ComputeTotals calcula subtotal, imposto e total sem arredondamento
func ComputeTotals(cart domain.Cart, taxRate decimal.Decimal) domain.Totals {
	subtotal := decimal.Zero
	for _, line := range cart.Lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	tax := subtotal.Mul(taxRate)

	return domain.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
		TaxRate:  taxRate,
	}
}

func insufficientStock(product domain.Product, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID:   product.ID,
		ProductName: product.Name,
		Requested:   requested,
		Available:   product.StockQuantity,
	}
}
