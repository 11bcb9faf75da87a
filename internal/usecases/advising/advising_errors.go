package advising

import (
	"errors"
	"fmt"
)

// Erros do serviço de análise
var (
	ErrRecordNotFound    = errors.New("registro diário não encontrado")
	ErrReportNotFound    = errors.New("relatório não encontrado")
	ErrStoreDisabled     = errors.New("persistência de relatórios não habilitada")
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AdvisingError é um erro com contexto adicional do serviço de análise
type AdvisingError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	BusinessID string // Empresa envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AdvisingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AdvisingError) Unwrap() error {
	return e.Err
}

// NewAdvisingError cria um novo erro do serviço de análise
func NewAdvisingError(baseErr error, code string, details string) *AdvisingError {
	return &AdvisingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewBusinessAdvisingError cria um novo erro com contexto de empresa
func NewBusinessAdvisingError(baseErr error, code string, businessID string, details string) *AdvisingError {
	return &AdvisingError{
		Err:        baseErr,
		Code:       code,
		BusinessID: businessID,
		Details:    details,
	}
}
