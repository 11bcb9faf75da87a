package business

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/business-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

type BusinessService interface {
	CreateBusiness(request *domain.CreateBusinessRequest) (*domain.Business, error)
	UpdateBusiness(request *domain.UpdateBusinessRequest) (*domain.Business, error)
	ListBusinesses(availableStatus []domain.BusinessStatus) ([]*domain.Business, error)
	GetBusinessByID(businessID string) (*domain.Business, error)
	UpsertDailyRecord(businessID string, request *domain.UpsertDailyRecordRequest) (*domain.BusinessDailyRecord, error)
	ListDailyRecords(businessID string, startDate, endDate time.Time) ([]*domain.BusinessDailyRecord, error)
}

type Service struct {
	businessRepository repository.BusinessRepository
	recordRepository   repository.DailyRecordRepository
}

func NewService(
	businessRepository repository.BusinessRepository,
	recordRepository repository.DailyRecordRepository,
) BusinessService {
	return &Service{
		businessRepository: businessRepository,
		recordRepository:   recordRepository,
	}
}

func (s *Service) CreateBusiness(request *domain.CreateBusinessRequest) (*domain.Business, error) {
	if request.Name == "" {
		return nil, NewBusinessError(ErrBusinessNameRequired, apiErrors.ErrMissingRequiredData, "O nome da empresa é obrigatório")
	}

	if request.CNPJ != nil && *request.CNPJ != "" {
		existing, err := s.businessRepository.GetByCNPJ(*request.CNPJ)
		if err != nil {
			logrus.Error("Error getting business by cnpj on the repository:", err)
			return nil, NewBusinessError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresa no banco de dados")
		}

		if existing != nil {
			return nil, NewBusinessErrorWithID(ErrBusinessAlreadyExists, apiErrors.ErrBusinessAlreadyExists, existing.ID, "Já existe uma empresa cadastrada com este CNPJ")
		}
	}

	businessID, err := utils.GenerateID()
	if err != nil {
		return nil, NewBusinessError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para empresa")
	}

	business := &domain.Business{
		ID:      businessID,
		Name:    request.Name,
		Segment: request.Segment,
		CNPJ:    request.CNPJ,
		Status:  domain.BusinessStatusActive,
	}

	if err := s.businessRepository.Create(business); err != nil {
		logrus.Error("Error creating business on the repository:", err)
		return nil, NewBusinessError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao cadastrar empresa no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"business_id": business.ID,
		"name":        business.Name,
	}).Info("Empresa cadastrada com sucesso")

	return business, nil
}

func (s *Service) UpdateBusiness(request *domain.UpdateBusinessRequest) (*domain.Business, error) {
	if request.ID == "" {
		return nil, NewBusinessError(ErrBusinessIDRequired, apiErrors.ErrMissingRequiredData, "O ID da empresa é obrigatório")
	}

	if request.Status != nil {
		status := domain.BusinessStatus(*request.Status)
		if status != domain.BusinessStatusActive && status != domain.BusinessStatusInactive {
			return nil, NewBusinessErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, request.ID, "Status deve ser ACTIVE ou INACTIVE")
		}
	}

	existing, err := s.businessRepository.GetByID(request.ID)
	if err != nil {
		logrus.Error("Error getting business by id on the repository:", err)
		return nil, NewBusinessError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresa no banco de dados")
	}

	if existing == nil {
		return nil, NewBusinessErrorWithID(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, request.ID, "Empresa não encontrada")
	}

	if err := s.businessRepository.Update(request); err != nil {
		logrus.Error("Error updating business on the repository:", err)
		return nil, NewBusinessErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar empresa no banco de dados")
	}

	updated, err := s.businessRepository.GetByID(request.ID)
	if err != nil {
		logrus.Error("Error getting business by id on the repository:", err)
		return nil, NewBusinessError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresa no banco de dados")
	}

	return updated, nil
}

func (s *Service) ListBusinesses(availableStatus []domain.BusinessStatus) ([]*domain.Business, error) {
	businesses, err := s.businessRepository.ListBusinesses(availableStatus)
	if err != nil {
		return nil, NewBusinessError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas no banco de dados")
	}

	return businesses, nil
}

func (s *Service) GetBusinessByID(businessID string) (*domain.Business, error) {
	if businessID == "" {
		return nil, NewBusinessError(ErrBusinessIDRequired, apiErrors.ErrMissingRequiredData, "O ID da empresa é obrigatório")
	}

	business, err := s.businessRepository.GetByID(businessID)
	if err != nil {
		logrus.Error("Error getting business by id on the repository:", err)
		return nil, NewBusinessError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresa no banco de dados")
	}

	if business == nil {
		return nil, NewBusinessErrorWithID(ErrBusinessNotFound, apiErrors.ErrBusinessNotFound, businessID, "Empresa não encontrada")
	}

	return business, nil
}

// UpsertDailyRecord grava os números de um dia da empresa. O par
// (empresa, data) tem no máximo um registro; reenvios substituem os valores.
func (s *Service) UpsertDailyRecord(businessID string, request *domain.UpsertDailyRecordRequest) (*domain.BusinessDailyRecord, error) {
	if _, err := s.GetBusinessByID(businessID); err != nil {
		return nil, err
	}

	if request.ReferenceDate == "" {
		return nil, NewBusinessErrorWithID(ErrInvalidDate, apiErrors.ErrMissingRequiredData, businessID, "A data de referência é obrigatória")
	}

	referenceDate, err := time.Parse(utils.DateLayout, request.ReferenceDate)
	if err != nil {
		return nil, NewBusinessErrorWithID(ErrInvalidDate, apiErrors.ErrInvalidFormat, businessID, "A data de referência deve estar no formato YYYY-MM-DD")
	}

	record, err := advising.ValidateRecord("record", &request.DailyRecordInput)
	if err != nil {
		return nil, err
	}

	recordID, err := utils.GenerateID()
	if err != nil {
		return nil, NewBusinessErrorWithID(ErrGenerateID, apiErrors.ErrInternalServer, businessID, "Falha ao gerar identificador único para registro")
	}

	toStore := &domain.BusinessDailyRecord{
		ID:            recordID,
		BusinessID:    businessID,
		ReferenceDate: referenceDate,
		DailyRecord:   record,
	}

	if err := s.recordRepository.Upsert(toStore); err != nil {
		logrus.Error("Error upserting daily record on the repository:", err)
		return nil, NewBusinessErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, "Falha ao salvar registro diário no banco de dados")
	}

	// Em caso de conflito a linha existente mantém o ID original, então o
	// registro retornado é relido do banco
	stored, err := s.recordRepository.GetByBusinessAndDate(businessID, referenceDate)
	if err != nil {
		logrus.Error("Error getting daily record on the repository:", err)
		return nil, NewBusinessErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, "Falha ao consultar registro diário no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"business_id":    businessID,
		"reference_date": request.ReferenceDate,
	}).Info("Registro diário salvo com sucesso")

	return stored, nil
}

func (s *Service) ListDailyRecords(businessID string, startDate, endDate time.Time) ([]*domain.BusinessDailyRecord, error) {
	if _, err := s.GetBusinessByID(businessID); err != nil {
		return nil, err
	}

	if startDate.IsZero() || endDate.IsZero() {
		return nil, NewBusinessErrorWithID(ErrInvalidPeriod, apiErrors.ErrMissingRequiredData, businessID, "É necessário informar as datas de início e fim")
	}

	if startDate.After(endDate) {
		return nil, NewBusinessErrorWithID(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, businessID, "A data de início não pode ser posterior à data de fim")
	}

	records, err := s.recordRepository.GetByDateRange(businessID, utils.TruncateToDay(startDate), utils.TruncateToDay(endDate))
	if err != nil {
		return nil, NewBusinessErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, businessID, "Falha ao listar registros diários no banco de dados")
	}

	return records, nil
}
