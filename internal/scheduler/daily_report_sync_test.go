package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/business-advisor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	advisingmocks "github.com/vfg2006/business-advisor-api/internal/usecases/advising/mocks"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDailyReportSyncService_syncAllDailyReports(t *testing.T) {
	activeFilter := []domain.BusinessStatus{domain.BusinessStatusActive}

	t.Run("Deve materializar o relatório de ontem para todas as empresas ativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
		mockAdvisor := advisingmocks.NewMockReporter(ctrl)

		service := &DailyReportSyncService{
			businessRepo: mockBusinessRepo,
			advisor:      mockAdvisor,
		}

		mockBusinessRepo.EXPECT().
			ListBusinesses(activeFilter).
			Return([]*domain.Business{
				{ID: "biz1", Name: "Loja A", Status: domain.BusinessStatusActive},
				{ID: "biz2", Name: "Loja B", Status: domain.BusinessStatusActive},
			}, nil)

		var processedDate time.Time
		mockAdvisor.EXPECT().
			GetDailyReport("biz1", gomock.Any()).
			DoAndReturn(func(businessID string, date time.Time) (*domain.Report, error) {
				processedDate = date
				return &domain.Report{ID: "rep1", BusinessID: businessID}, nil
			})

		// Empresa sem registro na data não interrompe as demais
		mockAdvisor.EXPECT().
			GetDailyReport("biz2", gomock.Any()).
			Return(nil, advising.NewBusinessAdvisingError(advising.ErrRecordNotFound, apiErrors.ErrRecordNotFound, "biz2", "sem registro"))

		service.syncAllDailyReports()

		assert.True(t, utils.SameDay(processedDate, time.Now().AddDate(0, 0, -1)))
		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Deve continuar após falha em uma das empresas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
		mockAdvisor := advisingmocks.NewMockReporter(ctrl)

		service := &DailyReportSyncService{
			businessRepo: mockBusinessRepo,
			advisor:      mockAdvisor,
		}

		mockBusinessRepo.EXPECT().
			ListBusinesses(activeFilter).
			Return([]*domain.Business{
				{ID: "biz1", Name: "Loja A"},
				{ID: "biz2", Name: "Loja B"},
			}, nil)

		mockAdvisor.EXPECT().
			GetDailyReport("biz1", gomock.Any()).
			Return(nil, assert.AnError)
		mockAdvisor.EXPECT().
			GetDailyReport("biz2", gomock.Any()).
			Return(&domain.Report{ID: "rep2"}, nil)

		service.syncAllDailyReports()
	})

	t.Run("Não deve executar quando já há materialização em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
		mockAdvisor := advisingmocks.NewMockReporter(ctrl)

		service := &DailyReportSyncService{
			businessRepo: mockBusinessRepo,
			advisor:      mockAdvisor,
			syncRunning:  true,
		}

		service.syncAllDailyReports()

		assert.True(t, service.syncRunning)
	})

	t.Run("Deve abortar quando a busca de empresas falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
		mockAdvisor := advisingmocks.NewMockReporter(ctrl)

		service := &DailyReportSyncService{
			businessRepo: mockBusinessRepo,
			advisor:      mockAdvisor,
		}

		mockBusinessRepo.EXPECT().
			ListBusinesses(activeFilter).
			Return(nil, assert.AnError)

		service.syncAllDailyReports()

		assert.False(t, service.syncRunning)
	})
}

func TestDailyReportSyncService_TriggerManualSync(t *testing.T) {
	t.Run("Deve iniciar a materialização em segundo plano quando ocioso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
		mockAdvisor := advisingmocks.NewMockReporter(ctrl)

		service := &DailyReportSyncService{
			businessRepo: mockBusinessRepo,
			advisor:      mockAdvisor,
		}

		done := make(chan struct{})
		mockBusinessRepo.EXPECT().
			ListBusinesses([]domain.BusinessStatus{domain.BusinessStatusActive}).
			DoAndReturn(func([]domain.BusinessStatus) ([]*domain.Business, error) {
				close(done)
				return []*domain.Business{}, nil
			})

		started := service.TriggerManualSync()

		require.True(t, started)
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("materialização manual não executou dentro do prazo")
		}

		require.Eventually(t, func() bool {
			return service.GetStatus()["sync_running"] == false
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Deve recusar quando já existe materialização em andamento", func(t *testing.T) {
		service := &DailyReportSyncService{syncRunning: true}

		started := service.TriggerManualSync()

		assert.False(t, started)
	})
}

func TestDailyReportSyncService_GetStatus(t *testing.T) {
	service := &DailyReportSyncService{
		config: DailyReportSyncConfig{
			CronSchedule: "30 3 * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "30 3 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
