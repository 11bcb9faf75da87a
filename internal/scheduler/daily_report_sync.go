package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/business-advisor-api/pkg/metrics"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

// DailyReportSyncConfig representa a configuração do agendador de relatórios diários
type DailyReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DailyReportSyncService agenda a materialização do relatório do dia anterior
// de todas as empresas ativas
type DailyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyReportSyncConfig
	businessRepo        repository.BusinessRepository
	advisor             advising.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailyReportSyncService cria uma nova instância do serviço de materialização de relatórios
func NewDailyReportSyncService(
	businessRepo repository.BusinessRepository,
	advisor advising.Reporter,
	appConfig *config.Config,
) *DailyReportSyncService {
	// Criar a configuração com base na config global
	syncConfig := DailyReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios diários carregada")

	return &DailyReportSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		businessRepo: businessRepo,
		advisor:      advisor,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *DailyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Materialização de relatórios diários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de materialização de relatórios diários")

	// Agendar a materialização dos relatórios
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllDailyReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar materialização de relatórios diários: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de materialização de relatórios diários")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllDailyReports materializa o relatório do último dia fechado de todas as empresas ativas
func (s *DailyReportSyncService) syncAllDailyReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Materialização de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando materialização de relatórios diários para todas as empresas ativas")

	// Buscar todas as empresas ativas
	activeBusinesses, err := s.getActiveBusinesses()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de empresas para materialização de relatórios")
		return
	}

	if len(activeBusinesses) == 0 {
		logrus.Info("Nenhuma empresa ativa encontrada para materialização de relatórios")
		return
	}

	// Ontem é o último dia fechado; o dia corrente nunca é materializado
	referenceDate := utils.TruncateToDay(time.Now().AddDate(0, 0, -1))

	var processed, skipped, failed int
	for _, business := range activeBusinesses {
		err := s.processBusinessReport(business, referenceDate)
		switch {
		case err == nil:
			processed++
		case errors.Is(err, advising.ErrRecordNotFound):
			skipped++
		default:
			failed++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"date":      referenceDate.Format(time.DateOnly),
		"processed": processed,
		"skipped":   skipped,
		"failed":    failed,
	}).Info("Materialização de relatórios diários concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveBusinesses busca e filtra empresas ativas
func (s *DailyReportSyncService) getActiveBusinesses() ([]*domain.Business, error) {
	activeBusinesses, err := s.businessRepo.ListBusinesses([]domain.BusinessStatus{domain.BusinessStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeBusinesses) == 0 {
		logrus.Info("Nenhuma empresa encontrada para materialização de relatórios")
		return []*domain.Business{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_businesses": len(activeBusinesses),
	}).Info("Empresas encontradas para materialização de relatórios")

	return activeBusinesses, nil
}

// processBusinessReport materializa o relatório de uma empresa para a data.
// Empresas sem registro diário na data são puladas, não é uma falha.
func (s *DailyReportSyncService) processBusinessReport(business *domain.Business, date time.Time) error {
	logrus.WithFields(logrus.Fields{
		"business_id":   business.ID,
		"business_name": business.Name,
		"date":          date.Format(time.DateOnly),
	}).Info("Materializando relatório diário para empresa")

	_, err := s.advisor.GetDailyReport(business.ID, date)
	if err != nil {
		if errors.Is(err, advising.ErrRecordNotFound) {
			logrus.WithFields(logrus.Fields{
				"business_id": business.ID,
				"date":        date.Format(time.DateOnly),
			}).Warn("Empresa sem registro diário para a data. Pulando.")
			metrics.ReportSyncTotal.WithLabelValues("skipped").Inc()
			return err
		}

		logrus.WithFields(logrus.Fields{
			"business_id": business.ID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao materializar relatório diário para empresa")
		metrics.ReportSyncTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.ReportSyncTotal.WithLabelValues("ok").Inc()
	return nil
}

// TriggerManualSync inicia manualmente uma materialização de relatórios.
// Retorna false quando já existe uma materialização em andamento.
func (s *DailyReportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Materialização de relatórios já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando materialização manual de relatórios diários")
	go s.syncAllDailyReports()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	syncRunning := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
