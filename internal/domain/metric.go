package domain

import (
	"math"
	"strconv"
)

// Notas explicando por que uma métrica derivada não pôde ser calculada
const (
	MetricNoteNoCustomers  = "customers is zero"
	MetricNoteZeroBase     = "previous day value is zero"
	MetricNoteNoBaseline   = "no record for the previous day"
	MetricNoteCACUndefined = "CAC is not computable for both days"
)

// Metric representa um valor derivado que pode ser indefinido.
// Divisões com denominador zero produzem uma métrica indefinida com a
// nota do motivo, nunca NaN ou infinito.
type Metric struct {
	Value   float64
	Defined bool
	Note    string
}

func DefinedMetric(value float64) Metric {
	return Metric{Value: value, Defined: true}
}

func UndefinedMetric(note string) Metric {
	return Metric{Note: note}
}

// MarshalJSON serializa métricas definidas como número com duas casas
// decimais e métricas indefinidas como null
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Defined {
		return []byte("null"), nil
	}

	rounded := roundTwoDecimalPlaces(m.Value)
	return strconv.AppendFloat(nil, rounded, 'f', -1, 64), nil
}

func roundTwoDecimalPlaces(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
