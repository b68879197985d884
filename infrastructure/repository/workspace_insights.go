package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ppc-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
)

const workspaceInsightsTable = "workspace_insights wi"

type WorkspaceInsightsRepository interface {
	GetLatestByWorkspaceID(workspaceID string) (*domain.WorkspaceInsightsRecord, error)
	SaveOrUpdate(record *domain.WorkspaceInsightsRecord) error
}

type workspaceInsightsRepository struct {
	conn postgres.Queryer
}

func NewWorkspaceInsightsRepository(conn *postgres.Connection) WorkspaceInsightsRepository {
	return &workspaceInsightsRepository{
		conn: conn,
	}
}

func (r *workspaceInsightsRepository) GetLatestByWorkspaceID(workspaceID string) (*domain.WorkspaceInsightsRecord, error) {
	query, args, err := squirrel.
		Select("wi.id", "wi.workspace_id", "wi.report", "wi.generated_at").
		From(workspaceInsightsTable).
		Where(squirrel.Eq{"wi.workspace_id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.WorkspaceInsightsRecord{}
	var reportJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&record.ID,
		&record.WorkspaceID,
		&reportJSON,
		&record.GeneratedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insights do workspace: %w", err)
	}

	if reportJSON != nil {
		report := &domain.InsightsReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do relatório: %w", err)
		}
		record.Report = report
	}

	return record, nil
}

// SaveOrUpdate persiste o relatório como JSONB, mantendo no máximo um
// registro por workspace.
func (r *workspaceInsightsRepository) SaveOrUpdate(record *domain.WorkspaceInsightsRecord) error {
	var reportJSON []byte
	var err error

	if record.Report != nil {
		reportJSON, err = json.Marshal(record.Report)
		if err != nil {
			return fmt.Errorf("erro ao serializar o relatório para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("workspace_insights").
		Columns("id", "workspace_id", "report", "generated_at").
		Values(record.ID, record.WorkspaceID, reportJSON, record.GeneratedAt).
		Suffix(`
			ON CONFLICT (workspace_id) DO UPDATE SET
				report = EXCLUDED.report,
				generated_at = EXCLUDED.generated_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
