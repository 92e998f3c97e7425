package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Corpo máximo aceito em POST; o job runner envia no máximo alguns anos de linhas diárias
const maxBodyBytes = 5 << 20

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o corpo padrão
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log.ForContext(r.Context()).WithError(err).Error(fallback)

	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		message := fallback
		if dashErr.Code == apiErrors.ErrInvalidRequest {
			message = dashErr.Error()
		}
		apiErrors.WriteError(w, dashErr.Code, message, nil)
		return
	}

	var refreshErr *refreshing.RefreshError
	if errors.As(err, &refreshErr) {
		apiErr := apiErrors.FromError(refreshErr, refreshErr.Code)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
		return
	}

	var authErr *dashboarding.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, apiErrors.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
