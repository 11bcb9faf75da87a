package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDailyMetrics(t *testing.T) {
	tests := []struct {
		name      string
		today     DailyRecord
		yesterday *DailyRecord
		validate  func(t *testing.T, bundle MetricsBundle)
	}{
		{
			name:      "Deve calcular lucro exatamente como vendas menos custos",
			today:     DailyRecord{Sales: 1000, Costs: 800, Customers: 50},
			yesterday: &DailyRecord{Sales: 900, Costs: 750, Customers: 45},
			validate: func(t *testing.T, bundle MetricsBundle) {
				assert.Equal(t, 200.0, bundle.Profit)

				assert.True(t, bundle.CAC.Defined)
				assert.Equal(t, 16.0, bundle.CAC.Value)

				assert.True(t, bundle.SalesChangePct.Defined)
				assert.InDelta(t, 11.11, bundle.SalesChangePct.Value, 0.01)

				assert.True(t, bundle.CostsChangePct.Defined)
				assert.InDelta(t, 6.67, bundle.CostsChangePct.Value, 0.01)
			},
		},
		{
			name:      "CAC deve ficar indefinido quando não há clientes no dia",
			today:     DailyRecord{Sales: 1000, Costs: 800, Customers: 0},
			yesterday: &DailyRecord{Sales: 900, Costs: 750, Customers: 45},
			validate: func(t *testing.T, bundle MetricsBundle) {
				assert.False(t, bundle.CAC.Defined)
				assert.Equal(t, MetricNoteNoCustomers, bundle.CAC.Note)

				// Sem CAC de hoje não há variação de CAC
				assert.False(t, bundle.CACChangePct.Defined)
				assert.Equal(t, MetricNoteCACUndefined, bundle.CACChangePct.Note)

				// As demais variações continuam definidas
				assert.True(t, bundle.SalesChangePct.Defined)
				assert.True(t, bundle.CostsChangePct.Defined)
			},
		},
		{
			name:      "Variações devem ficar indefinidas quando a base do dia anterior é zero",
			today:     DailyRecord{Sales: 1000, Costs: 800, Customers: 50},
			yesterday: &DailyRecord{Sales: 0, Costs: 0, Customers: 0},
			validate: func(t *testing.T, bundle MetricsBundle) {
				assert.False(t, bundle.SalesChangePct.Defined)
				assert.Equal(t, MetricNoteZeroBase, bundle.SalesChangePct.Note)

				assert.False(t, bundle.CostsChangePct.Defined)
				assert.Equal(t, MetricNoteZeroBase, bundle.CostsChangePct.Note)

				assert.False(t, bundle.CACChangePct.Defined)
				assert.Equal(t, MetricNoteCACUndefined, bundle.CACChangePct.Note)
			},
		},
		{
			name:      "Deve marcar todas as variações como indefinidas sem registro anterior",
			today:     DailyRecord{Sales: 1000, Costs: 800, Customers: 50},
			yesterday: nil,
			validate: func(t *testing.T, bundle MetricsBundle) {
				assert.Equal(t, 200.0, bundle.Profit)
				assert.True(t, bundle.CAC.Defined)

				assert.False(t, bundle.SalesChangePct.Defined)
				assert.Equal(t, MetricNoteNoBaseline, bundle.SalesChangePct.Note)
				assert.False(t, bundle.CostsChangePct.Defined)
				assert.Equal(t, MetricNoteNoBaseline, bundle.CostsChangePct.Note)
				assert.False(t, bundle.CACChangePct.Defined)
				assert.Equal(t, MetricNoteNoBaseline, bundle.CACChangePct.Note)
			},
		},
		{
			name:      "Deve calcular a variação do CAC quando ambos os dias têm clientes",
			today:     DailyRecord{Sales: 1000, Costs: 800, Customers: 40},
			yesterday: &DailyRecord{Sales: 900, Costs: 750, Customers: 50},
			validate: func(t *testing.T, bundle MetricsBundle) {
				// CAC de hoje 20.00, de ontem 15.00
				assert.True(t, bundle.CAC.Defined)
				assert.Equal(t, 20.0, bundle.CAC.Value)

				assert.True(t, bundle.CACChangePct.Defined)
				assert.InDelta(t, 33.33, bundle.CACChangePct.Value, 0.01)
			},
		},
		{
			name:      "Variação do CAC deve ficar indefinida quando o CAC de ontem é zero",
			today:     DailyRecord{Sales: 1000, Costs: 800, Customers: 40},
			yesterday: &DailyRecord{Sales: 900, Costs: 0, Customers: 50},
			validate: func(t *testing.T, bundle MetricsBundle) {
				assert.True(t, bundle.CAC.Defined)
				assert.False(t, bundle.CACChangePct.Defined)
				assert.Equal(t, MetricNoteZeroBase, bundle.CACChangePct.Note)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := ComputeDailyMetrics(tt.today, tt.yesterday)

			if tt.validate != nil {
				tt.validate(t, bundle)
			}
		})
	}
}

func TestComputeDailyMetricsIsDeterministic(t *testing.T) {
	today := DailyRecord{Sales: 1000, Costs: 800, Customers: 50}
	yesterday := DailyRecord{Sales: 900, Costs: 750, Customers: 45}

	first := ComputeDailyMetrics(today, &yesterday)
	second := ComputeDailyMetrics(today, &yesterday)

	assert.Equal(t, first, second)
}

func TestMetricMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		metric   Metric
		expected string
	}{
		{
			name:     "Métrica definida deve serializar como número com duas casas",
			metric:   DefinedMetric(11.111111),
			expected: "11.11",
		},
		{
			name:     "Métrica definida com valor inteiro não ganha casas decimais",
			metric:   DefinedMetric(16),
			expected: "16",
		},
		{
			name:     "Métrica indefinida deve serializar como null",
			metric:   UndefinedMetric(MetricNoteNoCustomers),
			expected: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.metric)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestMetricsBundleUndefinedNotes(t *testing.T) {
	t.Run("Deve listar os motivos das métricas indefinidas", func(t *testing.T) {
		today := DailyRecord{Sales: 1000, Costs: 800, Customers: 0}
		bundle := ComputeDailyMetrics(today, nil)

		notes := bundle.UndefinedNotes()

		assert.Equal(t, MetricNoteNoCustomers, notes["cac"])
		assert.Equal(t, MetricNoteNoBaseline, notes["sales_change_pct"])
		assert.Equal(t, MetricNoteNoBaseline, notes["costs_change_pct"])
		assert.Equal(t, MetricNoteNoBaseline, notes["cac_change_pct"])
	})

	t.Run("Deve retornar nil quando todas as métricas estão definidas", func(t *testing.T) {
		today := DailyRecord{Sales: 1000, Costs: 800, Customers: 50}
		yesterday := DailyRecord{Sales: 900, Costs: 750, Customers: 45}

		bundle := ComputeDailyMetrics(today, &yesterday)

		assert.Nil(t, bundle.UndefinedNotes())
	})
}
