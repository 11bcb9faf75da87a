package advising

import (
	"fmt"

	"github.com/vfg2006/business-advisor-api/internal/domain"
)

// Nomes das regras, usados em logs e métricas
const (
	ruleNegativeProfit  = "negative_profit"
	ruleCACAboveCeiling = "cac_above_ceiling"
	ruleCACIncrease     = "cac_increase"
	ruleSalesGrowth     = "sales_growth"
	ruleCostsGrowth     = "costs_growth"
)

// evaluateRules avalia o conjunto fixo de regras sobre as métricas do dia.
// A ordem de avaliação é fixa e determina a ordem dos alertas e das
// recomendações na saída:
//
//  1. prejuízo no dia
//  2. CAC acima do teto configurado
//  3. alta de CAC em relação ao dia anterior
//  4. crescimento de vendas
//  5. alta de custos
//
// Métricas indefinidas não disparam as regras que dependem delas. Várias
// regras podem disparar para o mesmo dia. Retorna também os nomes das
// regras disparadas.
func evaluateRules(bundle domain.MetricsBundle, thresholds domain.Thresholds) (domain.ReportOutput, []string) {
	output := domain.NewReportOutput(bundle.Profit)
	fired := make([]string, 0)

	if bundle.Profit < 0 {
		output.Alerts = append(output.Alerts, "Negative profit: business is operating at a loss")
		output.Recommendations = append(output.Recommendations, "Reduce costs to improve profitability")
		fired = append(fired, ruleNegativeProfit)
	}

	if bundle.CAC.Defined && bundle.CAC.Value > thresholds.CACCeiling {
		output.Alerts = append(output.Alerts, fmt.Sprintf(
			"CAC $%.2f is above the configured limit of $%.2f",
			bundle.CAC.Value, thresholds.CACCeiling,
		))
		fired = append(fired, ruleCACAboveCeiling)
	}

	if bundle.CACChangePct.Defined && bundle.CACChangePct.Value > thresholds.CACIncreasePct {
		output.Alerts = append(output.Alerts, fmt.Sprintf(
			"CAC increased by %.2f%%, which is significant.",
			bundle.CACChangePct.Value,
		))
		output.Recommendations = append(output.Recommendations, "Review marketing campaigns for efficiency")
		fired = append(fired, ruleCACIncrease)
	}

	if bundle.SalesChangePct.Defined && bundle.SalesChangePct.Value > thresholds.SalesGrowthPct {
		output.Recommendations = append(output.Recommendations, fmt.Sprintf(
			"Consider increasing advertising budget due to %.2f%% sales growth",
			bundle.SalesChangePct.Value,
		))
		fired = append(fired, ruleSalesGrowth)
	}

	if bundle.CostsChangePct.Defined && bundle.CostsChangePct.Value > thresholds.CostsGrowthPct {
		output.Alerts = append(output.Alerts, fmt.Sprintf(
			"Costs grew %.2f%% versus the previous day",
			bundle.CostsChangePct.Value,
		))
		fired = append(fired, ruleCostsGrowth)
	}

	return output, fired
}
