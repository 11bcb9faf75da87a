package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/business-advisor-api/internal/usecases/business"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

// UpsertDailyRecord grava os números de um dia da empresa. Reenvios para a
// mesma data substituem os valores anteriores.
func UpsertDailyRecord(service business.BusinessService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertDailyRecord")

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("businessID")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa é obrigatório", nil)
			return
		}

		var request domain.UpsertDailyRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		record, err := service.UpsertDailyRecord(businessID, &request)
		if err != nil {
			logrus.Error("Error upserting daily record:", err)

			handleBusinessError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListDailyRecords retorna os registros diários da empresa no período
func ListDailyRecords(service business.BusinessService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("businessID")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa é obrigatório", nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "A data de início deve estar no formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "A data de fim deve estar no formato YYYY-MM-DD", nil)
			return
		}

		records, err := service.ListDailyRecords(businessID, *startDate, *endDate)
		if err != nil {
			logrus.Error("Error listing daily records:", err)

			handleBusinessError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// handleBusinessError traduz os erros do serviço de empresas para a resposta da API
func handleBusinessError(w http.ResponseWriter, err error) {
	// Registros com campos rejeitados carregam a lista de problemas
	var validationErr *advising.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRecord, validationErr.Error(), validationErr.Issues)
		return
	}

	var businessErr *business.BusinessError
	if errors.As(err, &businessErr) {
		var details any
		if businessErr.BusinessID != "" {
			details = map[string]any{
				"business_id": businessErr.BusinessID,
			}
		}

		apiErrors.WriteError(w, businessErr.Code, businessErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, business.ErrBusinessNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Empresa não encontrada", nil)

	case errors.Is(err, business.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao realizar operação no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar requisição", nil)
	}
}
