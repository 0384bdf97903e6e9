package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos para o contexto de venda
var (
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrIncompleteCheckout = errors.New("incomplete checkout")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrItemNotInCart      = errors.New("item not in cart")

	ErrSessionNotFound    = errors.New("checkout session not found")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// errSaleNotReturned é usado quando o recorder confirma sem erro mas sem a venda
var errSaleNotReturned = errors.New("sale recorder returned no sale")

// InsufficientStockError indica que a quantidade pedida passa do estoque do produto
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: produto %s (%s) pedido %d, disponível %d",
		ErrInsufficientStock, e.ProductName, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// IncompleteCheckoutError indica que falta cliente ou itens para concluir a venda
type IncompleteCheckoutError struct {
	MissingCustomer bool
	EmptyCart       bool
}

func (e *IncompleteCheckoutError) Error() string {
	var missing []string
	if e.MissingCustomer {
		missing = append(missing, "cliente não selecionado")
	}
	if e.EmptyCart {
		missing = append(missing, "carrinho vazio")
	}
	return fmt.Sprintf("%s: %s", ErrIncompleteCheckout, strings.Join(missing, ", "))
}

func (e *IncompleteCheckoutError) Unwrap() error {
	return ErrIncompleteCheckout
}
