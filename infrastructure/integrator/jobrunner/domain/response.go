package jobrunnerdomain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const KeyErrorCode = "KEY_ERROR"

var (
	ErrUpstreamConnection = errors.New("failed to connect to the update server")
	ErrUpstreamParse      = errors.New("failed to parse response from server")
	ErrCredential         = errors.New("invalid or expired key")
	ErrResponseTooLarge   = errors.New("response from server exceeds the size limit")
)

// UpstreamError descreve uma falha de comunicação com o job runner
type UpstreamError struct {
	Kind   error // Um dos sentinelas acima
	Status int   // Status HTTP do job runner, 0 quando não houve resposta
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Kind.Error(), e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind.Error(), e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Response é o corpo devolvido pelo job runner. Os campos ficam crus porque o
// job runner não garante tipos (details pode ser string ou objeto).
type Response struct {
	Success json.RawMessage `json:"success"`
	Error   json.RawMessage `json:"error"`
	Message json.RawMessage `json:"message"`
	Details json.RawMessage `json:"details"`
	Output  json.RawMessage `json:"output"`
}

// IsKeyError indica credencial expirada, seja no campo error ou dentro de details
func (r *Response) IsKeyError() bool {
	if r.ErrorText() == KeyErrorCode {
		return true
	}
	return bytes.Contains(r.Details, []byte(KeyErrorCode))
}

func (r *Response) ErrorText() string {
	return rawText(r.Error)
}

func (r *Response) MessageText() string {
	return rawText(r.Message)
}

// SuccessValue devolve o campo success quando é um booleano
func (r *Response) SuccessValue() (bool, bool) {
	switch strings.TrimSpace(string(r.Success)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// rawText devolve strings JSON sem aspas e qualquer outro valor como texto
func rawText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

// CredentialRequest é o corpo de validate-key
type CredentialRequest struct {
	Key string `json:"key"`
}
