package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ppc-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/ppc-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ppc-insights-api/pkg/log"
)

// WorkspaceList retorna todos os workspaces cadastrados
func WorkspaceList(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		workspaces, err := service.ListWorkspaces()
		if err != nil {
			logger.WithError(err).Error("workspaces: falha ao listar workspaces")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar workspaces", nil)
			return
		}

		logger.WithField("total", len(workspaces)).Debug("workspaces: listagem concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(workspaces); err != nil {
			logger.WithError(err).Error("workspaces: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	})
}
