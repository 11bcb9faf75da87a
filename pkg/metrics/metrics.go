// Package metrics expõe os contadores Prometheus da aplicação
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AnalysesTotal conta as execuções do pipeline de análise por resultado
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "business_advisor",
		Name:      "analyses_total",
		Help:      "Total de análises executadas, por resultado",
	}, []string{"result"})

	// RuleFiringsTotal conta os disparos de cada regra de recomendação
	RuleFiringsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "business_advisor",
		Name:      "rule_firings_total",
		Help:      "Total de disparos por regra de recomendação",
	}, []string{"rule"})

	// ReportSyncTotal conta o resultado da materialização de relatórios por empresa
	ReportSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "business_advisor",
		Name:      "report_sync_total",
		Help:      "Resultado das sincronizações de relatório diário",
	}, []string{"result"})

	// HTTPRequestsTotal conta as requisições HTTP atendidas. O caminho não é
	// label para não explodir a cardinalidade com os parâmetros de rota.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "business_advisor",
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP, por método e status",
	}, []string{"method", "status"})

	// HTTPRequestDuration mede a latência das requisições HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "business_advisor",
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP em segundos",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

// Handler retorna o handler HTTP do endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
