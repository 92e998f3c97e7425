package middleware

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

// Authorizer valida o header Authorization de uma requisição
type Authorizer interface {
	Authorize(authorization string) error
}

// APIKeyAuth exige a chave compartilhada antes de qualquer leitura do corpo
func APIKeyAuth(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authorizer.Authorize(r.Header.Get("Authorization")); err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).Warn("Tentativa de acesso sem chave válida")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorized, "Unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
