package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/business"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
)

// CreateBusiness cadastra uma nova empresa
func CreateBusiness(service business.BusinessService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBusiness")

		var request domain.CreateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateBusiness(&request)
		if err != nil {
			logrus.Error("Error creating business:", err)

			handleBusinessError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListBusinesses lista as empresas cadastradas, com filtro opcional de status
func ListBusinesses(service business.BusinessService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.BusinessStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.BusinessStatus(status))
			}
		}

		businesses, err := service.ListBusinesses(availableStatus)
		if err != nil {
			logrus.Error("Error listing businesses:", err)

			handleBusinessError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(businesses); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetBusiness retorna os dados de uma empresa pelo ID
func GetBusiness(service business.BusinessService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("businessID")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa é obrigatório", nil)
			return
		}

		found, err := service.GetBusinessByID(businessID)
		if err != nil {
			logrus.Error("Error getting business:", err)

			handleBusinessError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(found); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpdateBusiness atualiza os dados cadastrais de uma empresa
func UpdateBusiness(service business.BusinessService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBusiness")

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("businessID")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa é obrigatório", nil)
			return
		}

		var request domain.UpdateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		request.ID = businessID

		updated, err := service.UpdateBusiness(&request)
		if err != nil {
			logrus.Error("Error updating business:", err)

			handleBusinessError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
