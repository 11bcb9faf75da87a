package domain

import (
	"math"
	"time"
)

// DailyRecord é o retrato de um dia de operação de uma empresa
type DailyRecord struct {
	Sales     float64 `json:"sales"`
	Costs     float64 `json:"costs"`
	Customers int     `json:"customers"`
}

// FieldIssue descreve um problema de validação em um campo do registro
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Issues verifica os invariantes numéricos do registro. Campos monetários
// aceitam zero, nenhum campo aceita valor negativo ou não finito.
func (r DailyRecord) Issues() []FieldIssue {
	var issues []FieldIssue

	issues = appendAmountIssues(issues, "sales", r.Sales)
	issues = appendAmountIssues(issues, "costs", r.Costs)

	if r.Customers < 0 {
		issues = append(issues, FieldIssue{Field: "customers", Reason: "must not be negative"})
	}

	return issues
}

func appendAmountIssues(issues []FieldIssue, field string, value float64) []FieldIssue {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return append(issues, FieldIssue{Field: field, Reason: "must be a finite number"})
	}

	if value < 0 {
		return append(issues, FieldIssue{Field: field, Reason: "must not be negative"})
	}

	return issues
}

// DailyRecordInput é o formato de entrada de um registro diário. Os campos
// são ponteiros para distinguir campo ausente de campo com valor zero.
type DailyRecordInput struct {
	Sales     *float64 `json:"sales"`
	Costs     *float64 `json:"costs"`
	Customers *int     `json:"customers"`
}

// BusinessDailyRecord é um registro diário persistido de uma empresa
type BusinessDailyRecord struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	ReferenceDate time.Time `json:"reference_date"`
	DailyRecord
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// UpsertDailyRecordRequest é o corpo da requisição de envio de registro diário
type UpsertDailyRecordRequest struct {
	ReferenceDate string `json:"reference_date"`
	DailyRecordInput
}
