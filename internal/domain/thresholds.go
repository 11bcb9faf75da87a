package domain

// Thresholds são os limites configuráveis das regras de recomendação
type Thresholds struct {
	CACCeiling     float64 `json:"cac_ceiling"`
	CACIncreasePct float64 `json:"cac_increase_pct"`
	SalesGrowthPct float64 `json:"sales_growth_pct"`
	CostsGrowthPct float64 `json:"costs_growth_pct"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CACCeiling:     50,
		CACIncreasePct: 20,
		SalesGrowthPct: 10,
		CostsGrowthPct: 15,
	}
}

// WithDefaults preenche campos não informados (<= 0) com os valores de base.
// Limites negativos ou zero não fazem sentido para nenhuma das regras.
func (t Thresholds) WithDefaults(base Thresholds) Thresholds {
	if t.CACCeiling <= 0 {
		t.CACCeiling = base.CACCeiling
	}

	if t.CACIncreasePct <= 0 {
		t.CACIncreasePct = base.CACIncreasePct
	}

	if t.SalesGrowthPct <= 0 {
		t.SalesGrowthPct = base.SalesGrowthPct
	}

	if t.CostsGrowthPct <= 0 {
		t.CostsGrowthPct = base.CostsGrowthPct
	}

	return t
}
