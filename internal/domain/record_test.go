package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyRecordIssues(t *testing.T) {
	tests := []struct {
		name     string
		record   DailyRecord
		expected []FieldIssue
	}{
		{
			name:     "Registro válido não deve ter problemas",
			record:   DailyRecord{Sales: 1000, Costs: 800, Customers: 50},
			expected: nil,
		},
		{
			name:     "Valores zero são válidos",
			record:   DailyRecord{Sales: 0, Costs: 0, Customers: 0},
			expected: nil,
		},
		{
			name:   "Vendas negativas devem ser rejeitadas",
			record: DailyRecord{Sales: -1, Costs: 800, Customers: 50},
			expected: []FieldIssue{
				{Field: "sales", Reason: "must not be negative"},
			},
		},
		{
			name:   "Clientes negativos devem ser rejeitados",
			record: DailyRecord{Sales: 1000, Costs: 800, Customers: -5},
			expected: []FieldIssue{
				{Field: "customers", Reason: "must not be negative"},
			},
		},
		{
			name:   "Valores não finitos devem ser rejeitados",
			record: DailyRecord{Sales: math.NaN(), Costs: math.Inf(1), Customers: 50},
			expected: []FieldIssue{
				{Field: "sales", Reason: "must be a finite number"},
				{Field: "costs", Reason: "must be a finite number"},
			},
		},
		{
			name:   "Todos os problemas devem ser reportados de uma vez",
			record: DailyRecord{Sales: -10, Costs: -20, Customers: -1},
			expected: []FieldIssue{
				{Field: "sales", Reason: "must not be negative"},
				{Field: "costs", Reason: "must not be negative"},
				{Field: "customers", Reason: "must not be negative"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Issues())
		})
	}
}
