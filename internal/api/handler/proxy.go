package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
)

// Proxy encaminha update-dashboard e validate-key para o job runner com a credencial do servidor
func Proxy(service refreshing.Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var request domain.ProxyRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid JSON body", nil)
			return
		}

		result, err := service.Proxy(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Failed to proxy request")
			return
		}

		writeJSON(w, r, result.StatusCode, result.Result)
	})
}
