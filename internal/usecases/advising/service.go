package advising

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/metrics"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

// Service implementa tanto a interface Analyzer quanto Reporter
type Service struct {
	cfg              *config.Config
	thresholds       domain.Thresholds
	recordRepository repository.DailyRecordRepository
	reportRepository repository.ReportRepository
	useStore         bool
}

// NewService cria uma nova instância do serviço de análise
func NewService(cfg *config.Config) CombinedAdvisor {
	return &Service{
		cfg:              cfg,
		thresholds:       cfg.Thresholds.ToDomain(),
		recordRepository: nil,   // Inicialmente null
		reportRepository: nil,   // Inicialmente null
		useStore:         false, // Inicialmente não lê nem persiste relatórios
	}
}

// WithStore habilita a leitura de registros diários e a persistência de
// relatórios materializados
func (s *Service) WithStore(
	recordRepo repository.DailyRecordRepository,
	reportRepo repository.ReportRepository,
) *Service {
	s.recordRepository = recordRepo
	s.reportRepository = reportRepo
	s.useStore = (s.recordRepository != nil && s.reportRepository != nil)
	return s
}

// Analyze executa o pipeline completo sobre um par de registros ad hoc:
// validação, métricas derivadas e regras de recomendação. É uma função pura
// dos registros e dos limites; nada é persistido.
func (s *Service) Analyze(request *domain.AnalyzeRequest) (*domain.Report, error) {
	if request == nil {
		request = &domain.AnalyzeRequest{}
	}

	today, yesterday, err := ValidateRecordPair(request.Today, request.Yesterday)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("validation_error").Inc()
		return nil, err
	}

	thresholds := s.resolveThresholds(request.Thresholds)

	bundle := domain.ComputeDailyMetrics(today, &yesterday)
	output, fired := evaluateRules(bundle, thresholds)
	countRuleFirings(fired)
	metrics.AnalysesTotal.WithLabelValues("ok").Inc()

	logrus.WithFields(logrus.Fields{
		"profit":      bundle.Profit,
		"fired_rules": fired,
	}).Debug("Análise ad hoc concluída")

	return &domain.Report{
		Metrics:      bundle,
		MetricNotes:  bundle.UndefinedNotes(),
		ReportOutput: output,
	}, nil
}

// GetDailyReport retorna o relatório de uma empresa para a data informada.
// Relatórios já materializados são servidos do banco; dias fechados sem
// relatório são materializados e persistidos. O dia corrente ainda pode
// receber registros novos, então é sempre recalculado e nunca persistido.
func (s *Service) GetDailyReport(businessID string, date time.Time) (*domain.Report, error) {
	if !s.useStore {
		return nil, ErrStoreDisabled
	}

	date = utils.TruncateToDay(date)

	stored, err := s.reportRepository.GetByBusinessAndDate(businessID, date)
	if err != nil {
		return nil, NewBusinessAdvisingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, "Falha ao consultar relatório no banco de dados")
	}

	if stored != nil {
		logrus.WithFields(logrus.Fields{
			"business_id":    businessID,
			"reference_date": utils.FormatDate(date),
		}).Debug("Relatório servido do banco de dados")
		return stored, nil
	}

	report, err := s.buildReport(businessID, date)
	if err != nil {
		return nil, err
	}

	if !utils.SameDay(date, time.Now()) {
		if err := s.reportRepository.Save(report); err != nil {
			return nil, NewBusinessAdvisingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, "Falha ao salvar relatório no banco de dados")
		}
	}

	return report, nil
}

// ListReports retorna os relatórios já materializados da empresa no período
func (s *Service) ListReports(businessID string, startDate, endDate time.Time) ([]*domain.Report, error) {
	if !s.useStore {
		return nil, ErrStoreDisabled
	}

	if startDate.IsZero() || endDate.IsZero() {
		return nil, NewAdvisingError(ErrInvalidPeriod, apiErrors.ErrMissingRequiredData, "É necessário informar as datas de início e fim")
	}

	if startDate.After(endDate) {
		return nil, NewAdvisingError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "A data de início não pode ser posterior à data de fim")
	}

	reports, err := s.reportRepository.ListByBusiness(businessID, utils.TruncateToDay(startDate), utils.TruncateToDay(endDate))
	if err != nil {
		return nil, NewBusinessAdvisingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, "Falha ao listar relatórios no banco de dados")
	}

	return reports, nil
}

// buildReport materializa o relatório da data a partir dos registros diários
func (s *Service) buildReport(businessID string, date time.Time) (*domain.Report, error) {
	record, err := s.recordRepository.GetByBusinessAndDate(businessID, date)
	if err != nil {
		return nil, NewBusinessAdvisingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, "Falha ao consultar registro diário no banco de dados")
	}

	if record == nil {
		return nil, NewBusinessAdvisingError(ErrRecordNotFound, apiErrors.ErrRecordNotFound, businessID,
			fmt.Sprintf("Nenhum registro diário para %s", utils.FormatDate(date)))
	}

	previous, err := s.recordRepository.GetByBusinessAndDate(businessID, date.AddDate(0, 0, -1))
	if err != nil {
		return nil, NewBusinessAdvisingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, "Falha ao consultar registro do dia anterior")
	}

	// Sem registro do dia anterior as variações ficam indefinidas; não é erro
	var yesterday *domain.DailyRecord
	if previous != nil {
		yesterday = &previous.DailyRecord
	}

	bundle := domain.ComputeDailyMetrics(record.DailyRecord, yesterday)
	output, fired := evaluateRules(bundle, s.thresholds)
	countRuleFirings(fired)
	metrics.AnalysesTotal.WithLabelValues("ok").Inc()

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"business_id":    businessID,
		"reference_date": utils.FormatDate(date),
		"fired_rules":    fired,
	}).Debug("Relatório diário materializado")

	return &domain.Report{
		ID:            id,
		BusinessID:    businessID,
		ReferenceDate: &date,
		Metrics:       bundle,
		MetricNotes:   bundle.UndefinedNotes(),
		ReportOutput:  output,
	}, nil
}

func (s *Service) resolveThresholds(override *domain.Thresholds) domain.Thresholds {
	if override == nil {
		return s.thresholds
	}

	return override.WithDefaults(s.thresholds)
}

func countRuleFirings(fired []string) {
	for _, rule := range fired {
		metrics.RuleFiringsTotal.WithLabelValues(rule).Inc()
	}
}
