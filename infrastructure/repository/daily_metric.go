package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ppc-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
	"github.com/vfg2006/ppc-insights-api/pkg/utils"
)

const dailyMetricsTable = "perf_campaign_daily pcd"

type DailyMetricRepository interface {
	GetByWorkspaceAndDateRange(workspaceID string, startDate, endDate time.Time) ([]*domain.DailyMetricRecord, error)
	DeleteOlderThan(days int) (int64, error)
}

type dailyMetricRepository struct {
	conn postgres.Queryer
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

// GetByWorkspaceAndDateRange retorna os registros diários do workspace na
// janela, sem ordenação garantida. O motor de insights ordena do jeito dele.
func (r *dailyMetricRepository) GetByWorkspaceAndDateRange(workspaceID string, startDate, endDate time.Time) ([]*domain.DailyMetricRecord, error) {
	query, args, err := squirrel.
		Select(
			"pcd.campaign_id",
			"c.name",
			"c.provider",
			"pcd.date",
			"pcd.impressions",
			"pcd.clicks",
			"pcd.spend_micros",
			"pcd.conversions",
			"pcd.conversion_value",
		).
		From(dailyMetricsTable).
		Join("campaigns c ON c.id = pcd.campaign_id").
		Where(squirrel.Eq{"c.workspace_id": workspaceID}).
		Where(squirrel.GtOrEq{"pcd.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"pcd.date": endDate.Format("2006-01-02")}).
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

	records := make([]*domain.DailyMetricRecord, 0)
	for rows.Next() {
		record := &domain.DailyMetricRecord{}
		var dateStr string

		if err := rows.Scan(
			&record.CampaignID,
			&record.CampaignName,
			&record.Provider,
			&dateStr,
			&record.Impressions,
			&record.Clicks,
			&record.SpendMicros,
			&record.Conversions,
			&record.ConversionValue,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica diária: %w", err)
		}

		date, err := utils.ParseDate(dateStr[:10])
		if err != nil {
			return nil, fmt.Errorf("erro ao converter data: %w", err)
		}
		record.Date = *date

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *dailyMetricRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("perf_campaign_daily").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
