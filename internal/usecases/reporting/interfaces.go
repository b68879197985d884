package reporting

import "github.com/vfg2006/ppc-insights-api/internal/domain"

// Reporter orquestra o cálculo, o cache e a entrega dos relatórios de
// insights por workspace
type Reporter interface {
	// GetWorkspaceInsights retorna o relatório do workspace, usando o cache
	// persistido quando ainda é recente. forceRefresh ignora o cache.
	GetWorkspaceInsights(workspaceID string, forceRefresh bool) (*domain.InsightsReport, error)

	// RefreshWorkspaceInsights recalcula o relatório do workspace e
	// persiste o resultado
	RefreshWorkspaceInsights(workspaceID string) (*domain.InsightsReport, error)

	// ListWorkspaces retorna todos os workspaces cadastrados
	ListWorkspaces() ([]*domain.Workspace, error)

	// ListActiveWorkspaces retorna os workspaces elegíveis para o
	// recálculo agendado
	ListActiveWorkspaces() ([]*domain.Workspace, error)
}
