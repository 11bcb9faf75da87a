package domain

import (
	"fmt"
	"math"
	"time"
)

// ReportOutput é o resultado da avaliação das regras sobre as métricas
type ReportOutput struct {
	ProfitStatus    string   `json:"profit_status"`
	Alerts          []string `json:"alerts"`
	Recommendations []string `json:"recommendations"`
}

// NewReportOutput cria o output com as listas inicializadas, para que o JSON
// sempre carregue arrays e nunca null
func NewReportOutput(profit float64) ReportOutput {
	return ReportOutput{
		ProfitStatus:    FormatProfitStatus(profit),
		Alerts:          []string{},
		Recommendations: []string{},
	}
}

// FormatProfitStatus formata o status do resultado do dia. Prejuízo é
// exibido como magnitude positiva.
func FormatProfitStatus(profit float64) string {
	if profit < 0 {
		return fmt.Sprintf("Loss: $%.2f", math.Abs(profit))
	}

	return fmt.Sprintf("Profit: $%.2f", profit)
}

// Report é o relatório diário completo de uma empresa. Os campos de
// identificação ficam vazios em análises ad hoc, que não são persistidas.
type Report struct {
	ID            string            `json:"id,omitempty"`
	BusinessID    string            `json:"business_id,omitempty"`
	ReferenceDate *time.Time        `json:"reference_date,omitempty"`
	Metrics       MetricsBundle     `json:"metrics"`
	MetricNotes   map[string]string `json:"metric_notes,omitempty"`
	ReportOutput
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// AnalyzeRequest é o corpo da análise ad hoc de um par de registros.
// Thresholds é opcional; campos não informados usam os padrões do serviço.
type AnalyzeRequest struct {
	Today      *DailyRecordInput `json:"today"`
	Yesterday  *DailyRecordInput `json:"yesterday"`
	Thresholds *Thresholds       `json:"thresholds,omitempty"`
}
