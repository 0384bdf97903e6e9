package domain

import (
	"errors"
	"fmt"
)

// ErrCollaboratorUnavailable indica falha na API de dados da loja (rede ou servidor)
var ErrCollaboratorUnavailable = errors.New("shop data API unavailable")

// CollaboratorUnavailableError carrega o contexto da chamada que falhou
type CollaboratorUnavailableError struct {
	Operation  string // Operação lógica (ex: listSales)
	StatusCode int    // Status HTTP quando houve resposta
	Validation bool   // true quando a API rejeitou os dados enviados (4xx)
	Err        error
}

func (e *CollaboratorUnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", ErrCollaboratorUnavailable, e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrCollaboratorUnavailable, e.Operation, e.Err)
}

func (e *CollaboratorUnavailableError) Unwrap() error {
	return e.Err
}

func (e *CollaboratorUnavailableError) Is(target error) bool {
	return target == ErrCollaboratorUnavailable
}

func NewCollaboratorError(operation string, statusCode int, err error) *CollaboratorUnavailableError {
	return &CollaboratorUnavailableError{
		Operation:  operation,
		StatusCode: statusCode,
		Validation: statusCode >= 400 && statusCode < 500,
		Err:        err,
	}
}
