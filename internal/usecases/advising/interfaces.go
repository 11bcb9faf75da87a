package advising

import (
	"time"

	"github.com/vfg2006/business-advisor-api/internal/domain"
)

// Analyzer executa o pipeline de análise sobre um par de registros ad hoc
type Analyzer interface {
	// Analyze valida o par de registros, deriva as métricas e avalia as
	// regras de recomendação. Não persiste nada.
	Analyze(request *domain.AnalyzeRequest) (*domain.Report, error)
}

// Reporter serve relatórios diários de empresas cadastradas
type Reporter interface {
	// GetDailyReport retorna o relatório da data, materializando e
	// persistindo quando ainda não existe (exceto para o dia corrente)
	GetDailyReport(businessID string, date time.Time) (*domain.Report, error)

	// ListReports retorna os relatórios já materializados no período
	ListReports(businessID string, startDate, endDate time.Time) ([]*domain.Report, error)
}

// CombinedAdvisor é a interface completa do serviço de análise
type CombinedAdvisor interface {
	Analyzer
	Reporter
}
