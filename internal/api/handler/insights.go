package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ppc-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/ppc-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ppc-insights-api/pkg/log"
)

// GetWorkspaceInsights retorna o relatório de insights do workspace.
// O parâmetro refresh=true força o recálculo ignorando o cache.
func GetWorkspaceInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do workspace não fornecido", nil)
			return
		}

		refreshParam := r.URL.Query().Get("refresh")
		if refreshParam != "" && refreshParam != "true" && refreshParam != "false" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro refresh deve ser true ou false", nil)
			return
		}

		forceRefresh := refreshParam == "true"

		logger.WithFields(log.Fields{
			"workspace_id":  id,
			"force_refresh": forceRefresh,
		}).Info("insights: buscando relatório do workspace")

		report, err := service.GetWorkspaceInsights(id, forceRefresh)
		if err != nil {
			if errors.Is(err, reporting.ErrWorkspaceNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrWorkspaceNotFound, "Workspace não encontrado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"workspace_id": id,
				"error":        err.Error(),
			}).Error("insights: falha ao obter relatório do workspace")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter insights do workspace", nil)
			return
		}

		logger.WithFields(log.Fields{
			"workspace_id": id,
			"health_score": report.HealthScore,
		}).Info("insights: relatório do workspace obtido com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("insights: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	})
}
