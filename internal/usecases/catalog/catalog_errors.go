package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidData      = errors.New("invalid data")
)

// ValidationError aponta o campo rejeitado na validação do formulário
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidData, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}
