package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ppc-insights-api/infrastructure/repository"
	"github.com/vfg2006/ppc-insights-api/internal/config"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
	"github.com/vfg2006/ppc-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ppc-insights-api/pkg/utils"
)

// Service implementa a interface Reporter
type Service struct {
	cfg           *config.Config
	insighter     insighting.Insighter
	workspaceRepo repository.WorkspaceRepository
	campaignRepo  repository.CampaignRepository
	metricRepo    repository.DailyMetricRepository
	insightsRepo  repository.WorkspaceInsightsRepository
	now           func() time.Time
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	cfg *config.Config,
	insighter insighting.Insighter,
	workspaceRepo repository.WorkspaceRepository,
	campaignRepo repository.CampaignRepository,
	metricRepo repository.DailyMetricRepository,
	insightsRepo repository.WorkspaceInsightsRepository,
) Reporter {
	return &Service{
		cfg:           cfg,
		insighter:     insighter,
		workspaceRepo: workspaceRepo,
		campaignRepo:  campaignRepo,
		metricRepo:    metricRepo,
		insightsRepo:  insightsRepo,
		now:           time.Now,
	}
}

// GetWorkspaceInsights retorna o relatório em cache quando ainda é recente.
// Relatórios mais velhos que o limite configurado, ausentes ou com
// forceRefresh são recalculados na hora.
func (s *Service) GetWorkspaceInsights(workspaceID string, forceRefresh bool) (*domain.InsightsReport, error) {
	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar workspace")
	}
	if workspace == nil {
		return nil, ErrWorkspaceNotFound
	}

	if !forceRefresh {
		cached, err := s.insightsRepo.GetLatestByWorkspaceID(workspaceID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar insights em cache")
		}

		maxAge := time.Duration(s.cfg.Insights.CacheMaxAgeHours) * time.Hour
		if cached != nil && cached.Report != nil && s.now().UTC().Sub(cached.GeneratedAt) <= maxAge {
			logrus.WithFields(logrus.Fields{
				"workspace_id": workspaceID,
				"generated_at": cached.GeneratedAt,
			}).Debug("Relatório de insights servido do cache")
			return cached.Report, nil
		}
	}

	return s.refreshInsights(workspace)
}

// RefreshWorkspaceInsights recalcula e persiste o relatório do workspace
func (s *Service) RefreshWorkspaceInsights(workspaceID string) (*domain.InsightsReport, error) {
	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar workspace")
	}
	if workspace == nil {
		return nil, ErrWorkspaceNotFound
	}

	return s.refreshInsights(workspace)
}

func (s *Service) refreshInsights(workspace *domain.Workspace) (*domain.InsightsReport, error) {
	now := s.now().UTC()
	startDate := now.AddDate(0, 0, -s.cfg.Insights.LookbackDays)

	campaigns, err := s.campaignRepo.ListByWorkspaceID(workspace.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas do workspace")
	}

	metrics, err := s.metricRepo.GetByWorkspaceAndDateRange(workspace.ID, startDate, now)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas diárias do workspace")
	}

	report := s.insighter.ComputeInsights(metrics, campaigns, now)

	recordID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do registro de insights")
	}

	record := &domain.WorkspaceInsightsRecord{
		ID:          recordID,
		WorkspaceID: workspace.ID,
		Report:      report,
		GeneratedAt: report.GeneratedAt,
	}

	if err := s.insightsRepo.SaveOrUpdate(record); err != nil {
		return nil, errors.Wrap(err, "erro ao persistir o relatório de insights")
	}

	logrus.WithFields(logrus.Fields{
		"workspace_id": workspace.ID,
		"health_score": report.HealthScore,
		"anomalies":    report.Anomalies.Total,
	}).Info("Relatório de insights recalculado")

	return report, nil
}

// ListWorkspaces retorna todos os workspaces cadastrados
func (s *Service) ListWorkspaces() ([]*domain.Workspace, error) {
	return s.workspaceRepo.ListWorkspaces()
}

// ListActiveWorkspaces retorna os workspaces com status ativo
func (s *Service) ListActiveWorkspaces() ([]*domain.Workspace, error) {
	return s.workspaceRepo.ListActiveWorkspaces()
}
