package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
)

func GetMetrics(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := service.GetDashboard(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch metrics")
			return
		}

		writeJSON(w, r, http.StatusOK, data)
	})
}

// UpdateMetrics recebe o push do job runner. A chave já foi validada pelo middleware
// da rota, então nada aqui roda sem autorização.
func UpdateMetrics(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var update domain.MetricsUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid JSON body", nil)
			return
		}

		if err := service.ApplyUpdate(r.Context(), &update); err != nil {
			writeServiceError(w, r, err, "Failed to update metrics")
			return
		}

		writeJSON(w, r, http.StatusOK, successResponse{Success: true, Message: "Metrics updated successfully"})
	})
}
