package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-advisor-api/internal/api/handler/router"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	advisingmocks "github.com/vfg2006/business-advisor-api/internal/usecases/advising/mocks"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/middleware"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

type apiErrorResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Details []map[string]any `json:"details"`
}

func newReportsRouter(service advising.CombinedAdvisor) http.Handler {
	return router.New(router.WithRoutes(Reports(service)...))
}

// authenticatedRequest monta uma requisição já autenticada como cliente,
// como se tivesse passado pelo middleware de autenticação
func authenticatedRequest(method, target string, body []byte) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)

	claims := &domain.Claims{
		UserID:     7,
		UserRoleID: middleware.RoleClient,
	}

	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func sampleReport() *domain.Report {
	report := &domain.Report{
		Metrics: domain.MetricsBundle{
			Profit:         200,
			CAC:            domain.DefinedMetric(16),
			SalesChangePct: domain.DefinedMetric(100.0 / 9.0),
			CostsChangePct: domain.DefinedMetric(20.0 / 3.0),
			CACChangePct:   domain.DefinedMetric(-4),
		},
		ReportOutput: domain.NewReportOutput(200),
	}

	report.Recommendations = append(report.Recommendations,
		"Consider increasing advertising budget due to 11.11% sales growth")

	return report
}

func TestAnalyzeRecords(t *testing.T) {
	t.Run("Deve executar a análise e retornar o relatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)

		var analyzed *domain.AnalyzeRequest
		service.EXPECT().
			Analyze(gomock.Any()).
			DoAndReturn(func(request *domain.AnalyzeRequest) (*domain.Report, error) {
				analyzed = request
				return sampleReport(), nil
			})

		body, err := json.Marshal(domain.AnalyzeRequest{
			Today:     &domain.DailyRecordInput{Sales: floatPtr(1000), Costs: floatPtr(800), Customers: intPtr(50)},
			Yesterday: &domain.DailyRecordInput{Sales: floatPtr(900), Costs: floatPtr(750), Customers: intPtr(45)},
		})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/v1/reports/analyze", body))

		require.Equal(t, http.StatusOK, rec.Code)

		require.NotNil(t, analyzed)
		require.NotNil(t, analyzed.Today)
		assert.Equal(t, float64(1000), *analyzed.Today.Sales)

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, "Profit: $200.00", response["profit_status"])
		assert.Len(t, response["recommendations"], 1)

		metrics, ok := response["metrics"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(200), metrics["profit"])
	})

	t.Run("Deve retornar 422 quando a validação rejeita a entrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)
		service.EXPECT().
			Analyze(gomock.Any()).
			Return(nil, &advising.ValidationError{
				Issues: []advising.RecordIssue{
					{Record: "today", Reason: "is required"},
				},
			})

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec,
			authenticatedRequest(http.MethodPost, "/v1/reports/analyze", []byte(`{"yesterday":{"sales":900,"costs":750,"customers":45}}`)))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var apiErr apiErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))

		assert.Equal(t, apiErrors.ErrInvalidRecord, apiErr.Code)
		assert.Equal(t, "invalid input: today is required", apiErr.Message)
		require.Len(t, apiErr.Details, 1)
		assert.Equal(t, "today", apiErr.Details[0]["record"])
	})

	t.Run("Deve retornar 400 para corpo de requisição inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec,
			authenticatedRequest(http.MethodPost, "/v1/reports/analyze", []byte(`{invalid`)))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	})

	t.Run("Deve negar acesso sem autenticação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/v1/reports/analyze", bytes.NewReader([]byte(`{}`))))

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var apiErr apiErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidToken, apiErr.Code)
	})
}

func TestGetDailyReport(t *testing.T) {
	t.Run("Deve retornar o relatório da data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)

		var requestedDate time.Time
		service.EXPECT().
			GetDailyReport("biz123", gomock.Any()).
			DoAndReturn(func(businessID string, date time.Time) (*domain.Report, error) {
				requestedDate = date
				return sampleReport(), nil
			})

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec,
			authenticatedRequest(http.MethodGet, "/v1/businesses/biz123/reports/daily?date=2025-03-10", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2025-03-10", utils.FormatDate(requestedDate))

		var response map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "Profit: $200.00", response["profit_status"])
	})

	t.Run("Deve exigir a data do relatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec,
			authenticatedRequest(http.MethodGet, "/v1/businesses/biz123/reports/daily", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
	})

	t.Run("Deve retornar 404 quando não há registro para a data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)
		service.EXPECT().
			GetDailyReport("biz123", gomock.Any()).
			Return(nil, advising.NewBusinessAdvisingError(
				advising.ErrRecordNotFound,
				apiErrors.ErrRecordNotFound,
				"biz123",
				"Nenhum registro diário para 2025-03-10",
			))

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec,
			authenticatedRequest(http.MethodGet, "/v1/businesses/biz123/reports/daily?date=2025-03-10", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)

		var response struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, apiErrors.ErrRecordNotFound, response.Code)
		assert.Equal(t, "biz123", response.Details["business_id"])
	})
}

func TestListBusinessReports(t *testing.T) {
	t.Run("Deve listar os relatórios do período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)

		var listedStart, listedEnd time.Time
		service.EXPECT().
			ListReports("biz123", gomock.Any(), gomock.Any()).
			DoAndReturn(func(businessID string, startDate, endDate time.Time) ([]*domain.Report, error) {
				listedStart = startDate
				listedEnd = endDate
				return []*domain.Report{sampleReport(), sampleReport()}, nil
			})

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec,
			authenticatedRequest(http.MethodGet, "/v1/businesses/biz123/reports?start_date=2025-03-01&end_date=2025-03-10", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2025-03-01", utils.FormatDate(listedStart))
		assert.Equal(t, "2025-03-10", utils.FormatDate(listedEnd))

		var response []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response, 2)
	})

	t.Run("Deve retornar 400 para período sem datas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := advisingmocks.NewMockCombinedAdvisor(ctrl)
		service.EXPECT().
			ListReports("biz123", gomock.Any(), gomock.Any()).
			Return(nil, advising.NewAdvisingError(
				advising.ErrInvalidPeriod,
				apiErrors.ErrMissingRequiredData,
				"É necessário informar as datas de início e fim",
			))

		rec := httptest.NewRecorder()
		newReportsRouter(service).ServeHTTP(rec,
			authenticatedRequest(http.MethodGet, "/v1/businesses/biz123/reports", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
	})
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
