package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/middleware"
)

type UserBusinessesRequest struct {
	BusinessIDs []string `json:"business_ids"`
}

// GetUserBusinesses retorna as empresas vinculadas ao usuário logado
func GetUserBusinesses(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		businesses, err := service.GetUserLinkedBusinesses(userClaims.UserID)
		if err != nil {
			logrus.Error("Error listing linked businesses:", err)

			handleUserError(w, err, "Erro ao buscar empresas vinculadas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(businesses); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// LinkUserBusinesses vincula uma lista de empresas a um usuário. Os vínculos
// são processados um a um e as falhas retornam ao lado dos sucessos. A rota
// é restrita a administradores pelo middleware de roles
func LinkUserBusinesses(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		var req UserBusinessesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if len(req.BusinessIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lista de IDs de empresas não pode estar vazia", nil)
			return
		}

		var successfulLinks []string
		var failedLinks []string

		for _, businessID := range req.BusinessIDs {
			if err := service.LinkUserBusiness(userID, businessID); err != nil {
				logrus.Warnf("Erro ao vincular empresa %s ao usuário %d: %v", businessID, userID, err)
				failedLinks = append(failedLinks, businessID)
			} else {
				successfulLinks = append(successfulLinks, businessID)
			}
		}

		response := map[string]any{
			"message":          "Empresas vinculadas processadas",
			"user_id":          userID,
			"successful_links": successfulLinks,
		}

		if len(failedLinks) > 0 {
			response["failed_links"] = failedLinks
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// UnlinkUserBusiness remove o vínculo entre um usuário e uma empresa. A rota
// é restrita a administradores pelo middleware de roles
func UnlinkUserBusiness(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromPath(w, r)
		if !ok {
			return
		}

		businessID := httprouter.ParamsFromContext(r.Context()).ByName("business_id")
		if businessID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa é obrigatório", nil)
			return
		}

		if err := service.UnlinkUserBusiness(userID, businessID); err != nil {
			logrus.Error("Error unlinking business:", err)

			handleUserError(w, err, "Erro ao desvincular empresa")
			return
		}

		response := map[string]any{
			"message":     "Empresa desvinculada com sucesso",
			"user_id":     userID,
			"business_id": businessID,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
