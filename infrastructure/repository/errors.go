package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// StoreError envolve qualquer falha de consulta ou conexão com o banco
type StoreError struct {
	Op  string // Operação do repositório que falhou
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &StoreError{Op: op, Err: fmt.Errorf("erro no banco de dados: %w (código: %s)", err, pqErr.Code)}
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError verifica se err (ou algum erro envolvido) é um StoreError
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
