package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ppc-insights-api/infrastructure/repository"
	"github.com/vfg2006/ppc-insights-api/internal/config"
	"github.com/vfg2006/ppc-insights-api/internal/domain"
	"github.com/vfg2006/ppc-insights-api/internal/usecases/reporting"
)

// InsightsRefreshConfig representa a configuração do agendador de recálculo
// de insights
type InsightsRefreshConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	RefreshEnabled    bool
	RetentionDays     int
}

// InsightsRefreshService gerencia o agendamento e a execução do recálculo
// dos relatórios de insights de todos os workspaces ativos
type InsightsRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 InsightsRefreshConfig
	reporter               reporting.Reporter
	metricRepo             repository.DailyMetricRepository
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

// NewInsightsRefreshService cria uma nova instância do serviço de recálculo
// agendado de insights
func NewInsightsRefreshService(
	reporter reporting.Reporter,
	metricRepo repository.DailyMetricRepository,
	appConfig *config.Config,
) *InsightsRefreshService {
	refreshConfig := InsightsRefreshConfig{
		CronSchedule:      appConfig.InsightsRefresh.CronSchedule,
		MaxConcurrentJobs: appConfig.InsightsRefresh.MaxConcurrentJobs,
		RefreshEnabled:    appConfig.InsightsRefresh.Enabled,
		RetentionDays:     appConfig.InsightsRefresh.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"refresh_enabled":     refreshConfig.RefreshEnabled,
		"retention_days":      refreshConfig.RetentionDays,
	}).Info("Configuração do agendador de recálculo de insights carregada")

	return &InsightsRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		reporter:       reporter,
		metricRepo:     metricRepo,
		refreshRunning: false,
	}
}

// Start inicia o agendador
func (s *InsightsRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Recálculo agendado de insights desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllWorkspaces()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllWorkspaces recalcula os insights de todos os workspaces ativos
func (s *InsightsRefreshService) refreshAllWorkspaces() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recálculo de insights já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	startTime := time.Now()
	s.lastRefreshStartedAt = startTime

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando recálculo de insights para todos os workspaces ativos")

	workspaces, err := s.reporter.ListActiveWorkspaces()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de workspaces para recálculo de insights")
		return
	}

	if len(workspaces) == 0 {
		logrus.Info("Nenhum workspace ativo encontrado para recálculo de insights")
		return
	}

	refreshed := s.processWorkspaces(workspaces)

	s.pruneOldMetrics()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"workspaces": len(workspaces),
		"refreshed":  refreshed,
	}).Info("Recálculo de insights concluído")

	s.lastRefreshCompletedAt = time.Now()
}

// pruneOldMetrics remove as métricas diárias fora da janela de retenção.
// Retenção zero ou negativa desabilita a limpeza.
func (s *InsightsRefreshService) pruneOldMetrics() {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.metricRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover métricas diárias fora da janela de retenção")
		return
	}

	logrus.WithFields(logrus.Fields{
		"retention_days": s.config.RetentionDays,
		"rows_deleted":   deleted,
	}).Info("Métricas diárias fora da janela de retenção removidas")
}

// processWorkspaces recalcula os workspaces em paralelo respeitando o limite
// de workers configurado. Retorna o número de workspaces recalculados com
// sucesso.
func (s *InsightsRefreshService) processWorkspaces(workspaces []*domain.Workspace) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var mu sync.Mutex
	refreshed := 0

	for _, workspace := range workspaces {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(ws *domain.Workspace) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if s.refreshWorkspace(ws) {
				mu.Lock()
				refreshed++
				mu.Unlock()
			}
		}(workspace)
	}

	wg.Wait()
	return refreshed
}

// refreshWorkspace recalcula os insights de um único workspace
func (s *InsightsRefreshService) refreshWorkspace(ws *domain.Workspace) bool {
	logrus.WithFields(logrus.Fields{
		"workspace_id":   ws.ID,
		"workspace_name": ws.Name,
	}).Info("Recalculando insights do workspace")

	report, err := s.reporter.RefreshWorkspaceInsights(ws.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace_id": ws.ID,
			"error":        err.Error(),
		}).Error("Erro ao recalcular insights do workspace")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"workspace_id": ws.ID,
		"health_score": report.HealthScore,
	}).Info("Insights do workspace recalculados com sucesso")
	return true
}

// TriggerManualRefresh inicia manualmente um recálculo de insights
func (s *InsightsRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recálculo de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de insights")
	go s.refreshAllWorkspaces()
}

// GetStatus retorna o status atual do agendador
func (s *InsightsRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_max_concurrent":    s.config.MaxConcurrentJobs,
		"refresh_retention_days":    s.config.RetentionDays,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
	}
}
