package advising

import (
	"fmt"
	"strings"

	"github.com/vfg2006/business-advisor-api/internal/domain"
)

// RecordIssue aponta um problema de validação em um dos registros de entrada
type RecordIssue struct {
	Record string `json:"record"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// ValidationError reúne todos os problemas encontrados na entrada. A análise
// é abortada e nenhuma métrica é calculada quando a validação falha.
type ValidationError struct {
	Issues []RecordIssue
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Field == "" {
			parts = append(parts, fmt.Sprintf("%s %s", issue.Record, issue.Reason))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s.%s %s", issue.Record, issue.Field, issue.Reason))
	}

	return "invalid input: " + strings.Join(parts, "; ")
}

// ValidateRecordPair valida os registros de hoje e de ontem juntos, para que
// a resposta aponte todos os campos problemáticos de uma só vez
func ValidateRecordPair(today, yesterday *domain.DailyRecordInput) (domain.DailyRecord, domain.DailyRecord, error) {
	var issues []RecordIssue

	todayRecord, todayIssues := buildRecord("today", today)
	issues = append(issues, todayIssues...)

	yesterdayRecord, yesterdayIssues := buildRecord("yesterday", yesterday)
	issues = append(issues, yesterdayIssues...)

	if len(issues) > 0 {
		return domain.DailyRecord{}, domain.DailyRecord{}, &ValidationError{Issues: issues}
	}

	return todayRecord, yesterdayRecord, nil
}

// ValidateRecord valida um registro isolado, usado no envio de registros
// diários de empresas cadastradas
func ValidateRecord(name string, input *domain.DailyRecordInput) (domain.DailyRecord, error) {
	record, issues := buildRecord(name, input)
	if len(issues) > 0 {
		return domain.DailyRecord{}, &ValidationError{Issues: issues}
	}

	return record, nil
}

func buildRecord(name string, input *domain.DailyRecordInput) (domain.DailyRecord, []RecordIssue) {
	if input == nil {
		return domain.DailyRecord{}, []RecordIssue{{Record: name, Reason: "is required"}}
	}

	var issues []RecordIssue

	if input.Sales == nil {
		issues = append(issues, RecordIssue{Record: name, Field: "sales", Reason: "is required"})
	}

	if input.Costs == nil {
		issues = append(issues, RecordIssue{Record: name, Field: "costs", Reason: "is required"})
	}

	if input.Customers == nil {
		issues = append(issues, RecordIssue{Record: name, Field: "customers", Reason: "is required"})
	}

	if len(issues) > 0 {
		return domain.DailyRecord{}, issues
	}

	record := domain.DailyRecord{
		Sales:     *input.Sales,
		Costs:     *input.Costs,
		Customers: *input.Customers,
	}

	for _, fieldIssue := range record.Issues() {
		issues = append(issues, RecordIssue{Record: name, Field: fieldIssue.Field, Reason: fieldIssue.Reason})
	}

	if len(issues) > 0 {
		return domain.DailyRecord{}, issues
	}

	return record, nil
}
