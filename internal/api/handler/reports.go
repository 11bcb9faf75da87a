package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/log"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

// AnalyzeRecords executa o pipeline de análise sobre um par de registros
// enviado no corpo da requisição, sem persistir nada
func AnalyzeRecords(service advising.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithField("error", err.Error()).Warn("reports: invalid analyze request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		report, err := service.Analyze(&request)
		if err != nil {
			handleAdvisingError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"alerts":          len(report.Alerts),
			"recommendations": len(report.Recommendations),
		}).Info("reports: ad hoc analysis completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetDailyReport retorna o relatório diário de uma empresa cadastrada
func GetDailyReport(service advising.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("businessID")
		logger.WithField("business_id", businessID).Info("reports: fetching daily report")

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"date":        r.URL.Query().Get("date"),
				"error":       err.Error(),
			}).Warn("reports: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "A data deve estar no formato YYYY-MM-DD", nil)
			return
		}

		if date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "A data do relatório é obrigatória", nil)
			return
		}

		report, err := service.GetDailyReport(businessID, *date)
		if err != nil {
			logger.WithFields(log.Fields{
				"business_id":    businessID,
				"reference_date": utils.FormatDate(*date),
				"error":          err.Error(),
			}).Error("reports: failed to get daily report")

			handleAdvisingError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListBusinessReports retorna os relatórios materializados de uma empresa no período
func ListBusinessReports(service advising.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("businessID")
		logger.WithField("business_id", businessID).Info("reports: listing reports")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"start_date":  r.URL.Query().Get("start_date"),
				"error":       err.Error(),
			}).Warn("reports: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "A data de início deve estar no formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"end_date":    r.URL.Query().Get("end_date"),
				"error":       err.Error(),
			}).Warn("reports: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "A data de fim deve estar no formato YYYY-MM-DD", nil)
			return
		}

		reports, err := service.ListReports(businessID, *startDate, *endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("reports: failed to list reports")

			handleAdvisingError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reports); err != nil {
			logger.WithFields(log.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// handleAdvisingError traduz os erros do serviço de análise para a resposta da API
func handleAdvisingError(w http.ResponseWriter, logger log.Logger, err error) {
	// Problemas de validação carregam a lista de campos rejeitados
	var validationErr *advising.ValidationError
	if errors.As(err, &validationErr) {
		logger.WithField("issues", len(validationErr.Issues)).Warn("reports: input rejected by validation")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRecord, validationErr.Error(), validationErr.Issues)
		return
	}

	var advisingErr *advising.AdvisingError
	if errors.As(err, &advisingErr) {
		var details any
		if advisingErr.BusinessID != "" {
			details = map[string]any{
				"business_id": advisingErr.BusinessID,
			}
		}

		apiErrors.WriteError(w, advisingErr.Code, advisingErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, advising.ErrRecordNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Registro diário não encontrado para a data", nil)

	case errors.Is(err, advising.ErrReportNotFound):
		apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Relatório não encontrado", nil)

	case errors.Is(err, advising.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, advising.ErrStoreDisabled):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Persistência de relatórios não habilitada", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar análise", nil)
	}
}
