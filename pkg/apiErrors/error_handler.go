package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Discriminadores estáveis consumidos pelo frontend
const (
	ErrUnauthorized     = "UNAUTHORIZED"     // Chave compartilhada ausente ou incorreta
	ErrInvalidRequest   = "INVALID_REQUEST"  // Corpo ou parâmetros inválidos
	ErrStore            = "STORE_ERROR"      // Falha no banco de dados
	ErrKey              = "KEY_ERROR"        // Credencial do job runner inválida/expirada
	ErrParse            = "PARSE_ERROR"      // Resposta do job runner não é JSON
	ErrConnection       = "CONNECTION_ERROR" // Job runner inacessível
	ErrInternalServer   = "INTERNAL_ERROR"   // Erro interno
	ErrMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrNotFound         = "NOT_FOUND"
	ErrResponseTooLarge = "RESPONSE_TOO_LARGE"
)

var httpStatusMap = map[string]int{
	ErrUnauthorized:     http.StatusUnauthorized,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrStore:            http.StatusInternalServerError,
	ErrKey:              http.StatusBadRequest,
	ErrParse:            http.StatusBadGateway,
	ErrConnection:       http.StatusServiceUnavailable,
	ErrResponseTooLarge: http.StatusBadGateway,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrNotFound:         http.StatusNotFound,
}

// APIError é o corpo padrão de erro
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP padrão de um discriminador
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado com o status padrão do código
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	WriteErrorWithStatus(w, StatusFor(code), code, message, details)
}

// WriteErrorWithStatus escreve o erro padronizado com um status explícito
func WriteErrorWithStatus(w http.ResponseWriter, status int, code string, message string, details any) {
	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um APIError a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
