package advising

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/business-advisor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func analyzeRequest() *domain.AnalyzeRequest {
	return &domain.AnalyzeRequest{
		Today: &domain.DailyRecordInput{
			Sales:     floatPtr(1000),
			Costs:     floatPtr(800),
			Customers: intPtr(50),
		},
		Yesterday: &domain.DailyRecordInput{
			Sales:     floatPtr(900),
			Costs:     floatPtr(750),
			Customers: intPtr(45),
		},
	}
}

func TestAnalyze(t *testing.T) {
	service := NewService(&config.Config{})

	t.Run("Deve executar o pipeline completo para um par válido", func(t *testing.T) {
		report, err := service.Analyze(analyzeRequest())

		require.NoError(t, err)
		require.NotNil(t, report)

		assert.Equal(t, 200.0, report.Metrics.Profit)
		assert.True(t, report.Metrics.CAC.Defined)
		assert.Equal(t, 16.0, report.Metrics.CAC.Value)
		assert.Equal(t, "Profit: $200.00", report.ProfitStatus)
		assert.Equal(t, []string{}, report.Alerts)
		assert.Equal(t, []string{"Consider increasing advertising budget due to 11.11% sales growth"}, report.Recommendations)
		assert.Nil(t, report.MetricNotes)

		// Análises ad hoc não são persistidas e não carregam identificação
		assert.Empty(t, report.ID)
		assert.Empty(t, report.BusinessID)
		assert.Nil(t, report.ReferenceDate)
	})

	t.Run("Deve aplicar os limites informados na requisição sobre os padrões", func(t *testing.T) {
		request := analyzeRequest()
		request.Thresholds = &domain.Thresholds{CACCeiling: 10}

		report, err := service.Analyze(request)

		require.NoError(t, err)
		assert.Contains(t, report.Alerts, "CAC $16.00 is above the configured limit of $10.00")
		// O limite de crescimento de vendas não informado continua no padrão
		assert.Contains(t, report.Recommendations, "Consider increasing advertising budget due to 11.11% sales growth")
	})

	t.Run("Deve recusar entrada inválida sem calcular métricas", func(t *testing.T) {
		request := analyzeRequest()
		request.Today = nil

		report, err := service.Analyze(request)

		require.Error(t, err)
		assert.Nil(t, report)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []RecordIssue{{Record: "today", Reason: "is required"}}, validationErr.Issues)
	})

	t.Run("Deve expor os motivos das métricas indefinidas", func(t *testing.T) {
		request := analyzeRequest()
		request.Today.Customers = intPtr(0)

		report, err := service.Analyze(request)

		require.NoError(t, err)
		assert.False(t, report.Metrics.CAC.Defined)
		assert.Equal(t, domain.MetricNoteNoCustomers, report.MetricNotes["cac"])
		assert.Equal(t, domain.MetricNoteCACUndefined, report.MetricNotes["cac_change_pct"])
	})

	t.Run("Deve produzir o mesmo relatório para entradas idênticas", func(t *testing.T) {
		first, err := service.Analyze(analyzeRequest())
		require.NoError(t, err)

		second, err := service.Analyze(analyzeRequest())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestGetDailyReport(t *testing.T) {
	referenceDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	todayRecord := &domain.BusinessDailyRecord{
		ID:            "rec2",
		BusinessID:    "biz123",
		ReferenceDate: referenceDate,
		DailyRecord:   domain.DailyRecord{Sales: 1000, Costs: 800, Customers: 50},
	}
	previousRecord := &domain.BusinessDailyRecord{
		ID:            "rec1",
		BusinessID:    "biz123",
		ReferenceDate: referenceDate.AddDate(0, 0, -1),
		DailyRecord:   domain.DailyRecord{Sales: 900, Costs: 750, Customers: 45},
	}

	newStoredService := func(ctrl *gomock.Controller) (*Service, *repomocks.MockDailyRecordRepository, *repomocks.MockReportRepository) {
		recordRepo := repomocks.NewMockDailyRecordRepository(ctrl)
		reportRepo := repomocks.NewMockReportRepository(ctrl)

		service := NewService(&config.Config{}).(*Service).WithStore(recordRepo, reportRepo)

		return service, recordRepo, reportRepo
	}

	t.Run("Deve servir o relatório já materializado sem recalcular", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, _, reportRepo := newStoredService(ctrl)

		stored := &domain.Report{ID: "rep123", BusinessID: "biz123", ReferenceDate: &referenceDate}
		reportRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate).
			Return(stored, nil)

		report, err := service.GetDailyReport("biz123", referenceDate)

		require.NoError(t, err)
		assert.Equal(t, stored, report)
	})

	t.Run("Deve materializar e persistir o relatório de um dia fechado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, recordRepo, reportRepo := newStoredService(ctrl)

		reportRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate).
			Return(nil, nil)
		recordRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate).
			Return(todayRecord, nil)
		recordRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate.AddDate(0, 0, -1)).
			Return(previousRecord, nil)

		var saved *domain.Report
		reportRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(report *domain.Report) error {
				saved = report
				return nil
			})

		report, err := service.GetDailyReport("biz123", referenceDate)

		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, report, saved)

		assert.NotEmpty(t, report.ID)
		assert.Equal(t, "biz123", report.BusinessID)
		assert.Equal(t, referenceDate, *report.ReferenceDate)
		assert.Equal(t, 200.0, report.Metrics.Profit)
		assert.Equal(t, []string{"Consider increasing advertising budget due to 11.11% sales growth"}, report.Recommendations)
	})

	t.Run("Deve recalcular sem persistir o relatório do dia corrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, recordRepo, reportRepo := newStoredService(ctrl)

		today := utils.TruncateToDay(time.Now())
		currentRecord := &domain.BusinessDailyRecord{
			ID:            "rec3",
			BusinessID:    "biz123",
			ReferenceDate: today,
			DailyRecord:   domain.DailyRecord{Sales: 1000, Costs: 800, Customers: 50},
		}

		reportRepo.EXPECT().
			GetByBusinessAndDate("biz123", today).
			Return(nil, nil)
		recordRepo.EXPECT().
			GetByBusinessAndDate("biz123", today).
			Return(currentRecord, nil)
		recordRepo.EXPECT().
			GetByBusinessAndDate("biz123", today.AddDate(0, 0, -1)).
			Return(nil, nil)

		report, err := service.GetDailyReport("biz123", today)

		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, 200.0, report.Metrics.Profit)
	})

	t.Run("Deve retornar erro quando não há registro para a data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, recordRepo, reportRepo := newStoredService(ctrl)

		reportRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate).
			Return(nil, nil)
		recordRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate).
			Return(nil, nil)

		report, err := service.GetDailyReport("biz123", referenceDate)

		require.Error(t, err)
		assert.Nil(t, report)
		assert.True(t, errors.Is(err, ErrRecordNotFound))

		var advisingErr *AdvisingError
		require.True(t, errors.As(err, &advisingErr))
		assert.Equal(t, apiErrors.ErrRecordNotFound, advisingErr.Code)
		assert.Equal(t, "biz123", advisingErr.BusinessID)
	})

	t.Run("Deve deixar as variações indefinidas quando falta o registro anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, recordRepo, reportRepo := newStoredService(ctrl)

		reportRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate).
			Return(nil, nil)
		recordRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate).
			Return(todayRecord, nil)
		recordRepo.EXPECT().
			GetByBusinessAndDate("biz123", referenceDate.AddDate(0, 0, -1)).
			Return(nil, nil)
		reportRepo.EXPECT().
			Save(gomock.Any()).
			Return(nil)

		report, err := service.GetDailyReport("biz123", referenceDate)

		require.NoError(t, err)
		assert.True(t, report.Metrics.CAC.Defined)
		assert.False(t, report.Metrics.SalesChangePct.Defined)
		assert.False(t, report.Metrics.CostsChangePct.Defined)
		assert.Equal(t, domain.MetricNoteNoBaseline, report.MetricNotes["sales_change_pct"])
	})

	t.Run("Deve exigir persistência habilitada", func(t *testing.T) {
		service := NewService(&config.Config{})

		report, err := service.GetDailyReport("biz123", referenceDate)

		assert.Nil(t, report)
		assert.True(t, errors.Is(err, ErrStoreDisabled))
	})
}

func TestListReports(t *testing.T) {
	startDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	endDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	t.Run("Deve listar os relatórios do período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		recordRepo := repomocks.NewMockDailyRecordRepository(ctrl)
		reportRepo := repomocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}).(*Service).WithStore(recordRepo, reportRepo)

		expected := []*domain.Report{{ID: "rep1"}, {ID: "rep2"}}
		reportRepo.EXPECT().
			ListByBusiness("biz123", startDate, endDate).
			Return(expected, nil)

		reports, err := service.ListReports("biz123", startDate, endDate)

		require.NoError(t, err)
		assert.Equal(t, expected, reports)
	})

	t.Run("Deve recusar período com início depois do fim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		recordRepo := repomocks.NewMockDailyRecordRepository(ctrl)
		reportRepo := repomocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}).(*Service).WithStore(recordRepo, reportRepo)

		reports, err := service.ListReports("biz123", endDate, startDate)

		require.Error(t, err)
		assert.Nil(t, reports)
		assert.True(t, errors.Is(err, ErrInvalidPeriod))
	})

	t.Run("Deve exigir persistência habilitada", func(t *testing.T) {
		service := NewService(&config.Config{})

		reports, err := service.ListReports("biz123", startDate, endDate)

		assert.Nil(t, reports)
		assert.True(t, errors.Is(err, ErrStoreDisabled))
	})
}
