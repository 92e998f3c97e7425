package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// RefreshScheduler é a parte do agendador usada pelos endpoints de cron
type RefreshScheduler interface {
	TriggerManualSync() bool
	GetStatus() domain.RefreshStatus
}

// RunRefresh dispara a atualização do dashboard fora do horário agendado
func RunRefresh(service RefreshScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !service.TriggerManualSync() {
			writeJSON(w, r, http.StatusConflict, successResponse{
				Success: false,
				Message: "Atualização já em andamento",
			})
			return
		}

		writeJSON(w, r, http.StatusAccepted, successResponse{
			Success: true,
			Message: "Atualização iniciada com sucesso",
		})
	})
}

// GetRefreshStatus retorna o estado do agendador e o último resultado
func GetRefreshStatus(service RefreshScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetStatus())
	})
}
