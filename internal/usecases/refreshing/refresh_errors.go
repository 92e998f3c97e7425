package refreshing

import (
	"errors"
	"fmt"
)

var (
	ErrEndpointRequired = errors.New("endpoint not specified")
	ErrUnknownEndpoint  = errors.New("unknown endpoint")
	ErrKeyRequired      = errors.New("key is required for validate-key")
)

// RefreshError é um erro de validação do pedido ao proxy
type RefreshError struct {
	Err     error
	Code    string // Código de erro para API
	Details string
}

func (e *RefreshError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

func NewRefreshError(err error, code string, details string) *RefreshError {
	return &RefreshError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
