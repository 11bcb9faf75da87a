package advising

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

func TestEvaluateRules(t *testing.T) {
	tests := []struct {
		name                    string
		today                   domain.DailyRecord
		yesterday               *domain.DailyRecord
		thresholds              domain.Thresholds
		expectedProfitStatus    string
		expectedAlerts          []string
		expectedRecommendations []string
		expectedFired           []string
	}{
		{
			name:                 "Deve recomendar mais investimento em anúncios quando as vendas crescem",
			today:                domain.DailyRecord{Sales: 1000, Costs: 800, Customers: 50},
			yesterday:            &domain.DailyRecord{Sales: 900, Costs: 750, Customers: 45},
			thresholds:           domain.DefaultThresholds(),
			expectedProfitStatus: "Profit: $200.00",
			expectedAlerts:       []string{},
			expectedRecommendations: []string{
				"Consider increasing advertising budget due to 11.11% sales growth",
			},
			expectedFired: []string{"sales_growth"},
		},
		{
			name:                 "Deve alertar prejuízo e recomendar redução de custos",
			today:                domain.DailyRecord{Sales: 500, Costs: 700, Customers: 20},
			yesterday:            &domain.DailyRecord{Sales: 500, Costs: 650, Customers: 20},
			thresholds:           domain.DefaultThresholds(),
			expectedProfitStatus: "Loss: $200.00",
			expectedAlerts: []string{
				"Negative profit: business is operating at a loss",
			},
			expectedRecommendations: []string{
				"Reduce costs to improve profitability",
			},
			expectedFired: []string{"negative_profit"},
		},
		{
			name:                 "Deve alertar alta de CAC e recomendar revisão de campanhas",
			today:                domain.DailyRecord{Sales: 1000, Costs: 800, Customers: 40},
			yesterday:            &domain.DailyRecord{Sales: 900, Costs: 750, Customers: 50},
			thresholds:           domain.DefaultThresholds(),
			expectedProfitStatus: "Profit: $200.00",
			expectedAlerts: []string{
				"CAC increased by 33.33%, which is significant.",
			},
			expectedRecommendations: []string{
				"Review marketing campaigns for efficiency",
				"Consider increasing advertising budget due to 11.11% sales growth",
			},
			expectedFired: []string{"cac_increase", "sales_growth"},
		},
		{
			name:                 "Deve alertar CAC acima do teto configurado",
			today:                domain.DailyRecord{Sales: 1000, Costs: 800, Customers: 10},
			yesterday:            &domain.DailyRecord{Sales: 1000, Costs: 800, Customers: 10},
			thresholds:           domain.DefaultThresholds(),
			expectedProfitStatus: "Profit: $200.00",
			expectedAlerts: []string{
				"CAC $80.00 is above the configured limit of $50.00",
			},
			expectedRecommendations: []string{},
			expectedFired:           []string{"cac_above_ceiling"},
		},
		{
			name:                 "Deve alertar alta de custos e não disparar regra no limite exato",
			today:                domain.DailyRecord{Sales: 1000, Costs: 900, Customers: 50},
			yesterday:            &domain.DailyRecord{Sales: 1000, Costs: 750, Customers: 50},
			thresholds:           domain.DefaultThresholds(),
			expectedProfitStatus: "Profit: $100.00",
			expectedAlerts: []string{
				// A alta de CAC é de exatamente 20%, que não ultrapassa o limite
				"Costs grew 20.00% versus the previous day",
			},
			expectedRecommendations: []string{},
			expectedFired:           []string{"costs_growth"},
		},
		{
			name:                 "Deve manter a ordem das regras quando todas disparam",
			today:                domain.DailyRecord{Sales: 1200, Costs: 1300, Customers: 10},
			yesterday:            &domain.DailyRecord{Sales: 1000, Costs: 1000, Customers: 100},
			thresholds:           domain.DefaultThresholds(),
			expectedProfitStatus: "Loss: $100.00",
			expectedAlerts: []string{
				"Negative profit: business is operating at a loss",
				"CAC $130.00 is above the configured limit of $50.00",
				"CAC increased by 1200.00%, which is significant.",
				"Costs grew 30.00% versus the previous day",
			},
			expectedRecommendations: []string{
				"Reduce costs to improve profitability",
				"Review marketing campaigns for efficiency",
				"Consider increasing advertising budget due to 20.00% sales growth",
			},
			expectedFired: []string{"negative_profit", "cac_above_ceiling", "cac_increase", "sales_growth", "costs_growth"},
		},
		{
			name:                    "Deve ignorar as regras de CAC quando o CAC é indefinido",
			today:                   domain.DailyRecord{Sales: 100, Costs: 90, Customers: 0},
			yesterday:               &domain.DailyRecord{Sales: 100, Costs: 90, Customers: 0},
			thresholds:              domain.DefaultThresholds(),
			expectedProfitStatus:    "Profit: $10.00",
			expectedAlerts:          []string{},
			expectedRecommendations: []string{},
			expectedFired:           []string{},
		},
		{
			name:                    "Deve ignorar a variação de vendas quando a base anterior é zero",
			today:                   domain.DailyRecord{Sales: 500, Costs: 100, Customers: 10},
			yesterday:               &domain.DailyRecord{Sales: 0, Costs: 100, Customers: 10},
			thresholds:              domain.DefaultThresholds(),
			expectedProfitStatus:    "Profit: $400.00",
			expectedAlerts:          []string{},
			expectedRecommendations: []string{},
			expectedFired:           []string{},
		},
		{
			name:                 "Deve avaliar apenas as regras do dia quando não há registro anterior",
			today:                domain.DailyRecord{Sales: 1200, Costs: 1300, Customers: 10},
			yesterday:            nil,
			thresholds:           domain.DefaultThresholds(),
			expectedProfitStatus: "Loss: $100.00",
			expectedAlerts: []string{
				"Negative profit: business is operating at a loss",
				"CAC $130.00 is above the configured limit of $50.00",
			},
			expectedRecommendations: []string{
				"Reduce costs to improve profitability",
			},
			expectedFired: []string{"negative_profit", "cac_above_ceiling"},
		},
		{
			name:      "Deve respeitar limites customizados",
			today:     domain.DailyRecord{Sales: 1000, Costs: 800, Customers: 50},
			yesterday: &domain.DailyRecord{Sales: 900, Costs: 750, Customers: 45},
			thresholds: domain.Thresholds{
				CACCeiling:     10,
				CACIncreasePct: 20,
				SalesGrowthPct: 15,
				CostsGrowthPct: 15,
			},
			expectedProfitStatus: "Profit: $200.00",
			expectedAlerts: []string{
				"CAC $16.00 is above the configured limit of $10.00",
			},
			expectedRecommendations: []string{},
			expectedFired:           []string{"cac_above_ceiling"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := domain.ComputeDailyMetrics(tt.today, tt.yesterday)
			output, fired := evaluateRules(bundle, tt.thresholds)

			assert.Equal(t, tt.expectedProfitStatus, output.ProfitStatus)
			assert.Equal(t, tt.expectedAlerts, output.Alerts)
			assert.Equal(t, tt.expectedRecommendations, output.Recommendations)
			assert.Equal(t, tt.expectedFired, fired)
		})
	}
}

func TestEvaluateRulesIsIdempotent(t *testing.T) {
	today := domain.DailyRecord{Sales: 1200, Costs: 1300, Customers: 10}
	yesterday := &domain.DailyRecord{Sales: 1000, Costs: 1000, Customers: 100}
	bundle := domain.ComputeDailyMetrics(today, yesterday)

	first, firstFired := evaluateRules(bundle, domain.DefaultThresholds())
	second, secondFired := evaluateRules(bundle, domain.DefaultThresholds())

	assert.Equal(t, first, second)
	assert.Equal(t, firstFired, secondFired)
}
