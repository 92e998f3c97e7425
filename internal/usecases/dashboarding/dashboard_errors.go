package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAPIKeyNotSet      = errors.New("api key not configured")
	ErrInvalidTimestamp  = errors.New("invalid snapshot timestamp")
	ErrMissingDailyDate  = errors.New("daily metric date is required")
	ErrFetchDashboard    = errors.New("error fetching dashboard data")
	ErrPersistSnapshot   = errors.New("error persisting metrics snapshot")
	ErrPersistDailyRows  = errors.New("error persisting daily metrics")
	ErrUnknownRevenueSrc = errors.New("unknown revenue series")
)

// AuthError é devolvido quando o header Authorization não confere com a chave compartilhada
type AuthError struct {
	Err     error
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// DashboardError carrega o código de API e o erro do repositório
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string
	Cause   error // Erro original do repositório
}

func (e *DashboardError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap expõe tanto o erro base quanto a causa, para errors.Is/As funcionarem nos dois
func (e *DashboardError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewDashboardError(err error, code string, details string, cause error) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
		Cause:   cause,
	}
}
