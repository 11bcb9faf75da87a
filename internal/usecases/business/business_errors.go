package business

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de empresas
var (
	// Erros de validação
	ErrBusinessIDRequired   = errors.New("business ID is required")
	ErrBusinessNameRequired = errors.New("business name is required")
	ErrBusinessNotFound     = errors.New("business not found")
	ErrInvalidStatus        = errors.New("invalid business status")
	ErrInvalidDate          = errors.New("invalid reference date")
	ErrInvalidPeriod        = errors.New("invalid period")

	// Erros de duplicidade
	ErrBusinessAlreadyExists = errors.New("business already exists")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating UUID")
)

// BusinessError é um erro com contexto adicional para empresas
type BusinessError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	BusinessID string // ID da empresa envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *BusinessError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError cria um novo BusinessError
func NewBusinessError(err error, code string, details string) *BusinessError {
	return &BusinessError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewBusinessErrorWithID cria um novo BusinessError com ID da empresa
func NewBusinessErrorWithID(err error, code string, businessID string, details string) *BusinessError {
	return &BusinessError{
		Err:        err,
		Code:       code,
		BusinessID: businessID,
		Details:    details,
	}
}
