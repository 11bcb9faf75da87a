package domain

// MetricsBundle reúne as métricas derivadas de um par de registros diários.
// Profit é sempre calculável; as demais podem ser indefinidas quando o
// denominador correspondente é zero ou quando não há registro do dia anterior.
type MetricsBundle struct {
	Profit         float64 `json:"profit"`
	CAC            Metric  `json:"cac"`
	SalesChangePct Metric  `json:"sales_change_pct"`
	CostsChangePct Metric  `json:"costs_change_pct"`
	CACChangePct   Metric  `json:"cac_change_pct"`
}

// ComputeDailyMetrics deriva as métricas do dia. yesterday pode ser nil
// quando não existe registro do dia anterior; nesse caso as variações
// percentuais ficam indefinidas e o CAC do dia continua sendo calculado.
func ComputeDailyMetrics(today DailyRecord, yesterday *DailyRecord) MetricsBundle {
	bundle := MetricsBundle{
		Profit: today.Sales - today.Costs,
		CAC:    computeCAC(today),
	}

	if yesterday == nil {
		bundle.SalesChangePct = UndefinedMetric(MetricNoteNoBaseline)
		bundle.CostsChangePct = UndefinedMetric(MetricNoteNoBaseline)
		bundle.CACChangePct = UndefinedMetric(MetricNoteNoBaseline)
		return bundle
	}

	bundle.SalesChangePct = percentChange(today.Sales, yesterday.Sales)
	bundle.CostsChangePct = percentChange(today.Costs, yesterday.Costs)

	cacYesterday := computeCAC(*yesterday)
	if bundle.CAC.Defined && cacYesterday.Defined {
		bundle.CACChangePct = percentChange(bundle.CAC.Value, cacYesterday.Value)
	} else {
		bundle.CACChangePct = UndefinedMetric(MetricNoteCACUndefined)
	}

	return bundle
}

func computeCAC(record DailyRecord) Metric {
	if record.Customers == 0 {
		return UndefinedMetric(MetricNoteNoCustomers)
	}

	return DefinedMetric(record.Costs / float64(record.Customers))
}

// percentChange calcula a variação percentual em relação ao valor anterior,
// indefinida quando a base é zero
func percentChange(current, previous float64) Metric {
	if previous == 0 {
		return UndefinedMetric(MetricNoteZeroBase)
	}

	return DefinedMetric((current - previous) / previous * 100)
}

// UndefinedNotes devolve o motivo de cada métrica indefinida, indexado pelo
// nome do campo JSON da métrica
func (b MetricsBundle) UndefinedNotes() map[string]string {
	notes := make(map[string]string)

	for name, metric := range map[string]Metric{
		"cac":              b.CAC,
		"sales_change_pct": b.SalesChangePct,
		"costs_change_pct": b.CostsChangePct,
		"cac_change_pct":   b.CACChangePct,
	} {
		if !metric.Defined && metric.Note != "" {
			notes[name] = metric.Note
		}
	}

	if len(notes) == 0 {
		return nil
	}

	return notes
}
