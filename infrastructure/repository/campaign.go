package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ppc-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

const campaignsTable = "campaigns"

type CampaignRepository interface {
	ListByWorkspaceID(workspaceID string) ([]*domain.CampaignSummary, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// ListByWorkspaceID retorna todas as campanhas do workspace, inclusive as
// sem orçamento diário definido. Os filtros de qualificação são
// responsabilidade das análises, não do repositório.
func (r *campaignRepository) ListByWorkspaceID(workspaceID string) ([]*domain.CampaignSummary, error) {
	query, args, err := squirrel.
		Select("id", "name", "provider", "status", "daily_budget_micros").
		From(campaignsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.CampaignSummary, 0)
	for rows.Next() {
		campaign := &domain.CampaignSummary{}
		if err := rows.Scan(
			&campaign.ID,
			&campaign.Name,
			&campaign.Provider,
			&campaign.Status,
			&campaign.DailyBudgetMicros,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
