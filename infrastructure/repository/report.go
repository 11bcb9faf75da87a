package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

const (
	reportsTable = "reports r"

	reportColumns = "r.id, r.business_id, r.reference_date, r.profit, r.cac, r.sales_change_pct, r.costs_change_pct, r.cac_change_pct, r.profit_status, r.alerts, r.recommendations, r.metric_notes, r.created_at, r.updated_at"
)

type ReportRepository interface {
	GetByBusinessAndDate(businessID string, date time.Time) (*domain.Report, error)
	ListByBusiness(businessID string, startDate, endDate time.Time) ([]*domain.Report, error)
	Save(report *domain.Report) error
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) GetByBusinessAndDate(businessID string, date time.Time) (*domain.Report, error) {
	query, args, err := squirrel.
		Select(reportColumns).
		From(reportsTable).
		Where(squirrel.Eq{"r.business_id": businessID, "r.reference_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	report, err := r.scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func (r *reportRepository) ListByBusiness(businessID string, startDate, endDate time.Time) ([]*domain.Report, error) {
	query, args, err := squirrel.
		Select(reportColumns).
		From(reportsTable).
		Where(squirrel.Eq{"r.business_id": businessID}).
		Where(squirrel.GtOrEq{"r.reference_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"r.reference_date": endDate.Format(time.DateOnly)}).
		OrderBy("r.reference_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		report, err := r.scanReportRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *reportRepository) Save(report *domain.Report) error {
	if report.ReferenceDate == nil {
		return errors.New("relatório sem data de referência não pode ser persistido")
	}

	alertsJSON, err := json.Marshal(report.Alerts)
	if err != nil {
		return fmt.Errorf("erro ao serializar alertas para JSON: %w", err)
	}

	recommendationsJSON, err := json.Marshal(report.Recommendations)
	if err != nil {
		return fmt.Errorf("erro ao serializar recomendações para JSON: %w", err)
	}

	var metricNotesJSON []byte
	if report.MetricNotes != nil {
		metricNotesJSON, err = json.Marshal(report.MetricNotes)
		if err != nil {
			return fmt.Errorf("erro ao serializar notas de métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("reports").
		Columns("id", "business_id", "reference_date", "profit", "cac", "sales_change_pct", "costs_change_pct", "cac_change_pct", "profit_status", "alerts", "recommendations", "metric_notes").
		Values(
			report.ID,
			report.BusinessID,
			report.ReferenceDate.Format(time.DateOnly),
			report.Metrics.Profit,
			metricValue(report.Metrics.CAC),
			metricValue(report.Metrics.SalesChangePct),
			metricValue(report.Metrics.CostsChangePct),
			metricValue(report.Metrics.CACChangePct),
			report.ProfitStatus,
			alertsJSON,
			recommendationsJSON,
			metricNotesJSON,
		).
		Suffix(`
			ON CONFLICT (business_id, reference_date) DO UPDATE SET
				profit = EXCLUDED.profit,
				cac = EXCLUDED.cac,
				sales_change_pct = EXCLUDED.sales_change_pct,
				costs_change_pct = EXCLUDED.costs_change_pct,
				cac_change_pct = EXCLUDED.cac_change_pct,
				profit_status = EXCLUDED.profit_status,
				alerts = EXCLUDED.alerts,
				recommendations = EXCLUDED.recommendations,
				metric_notes = EXCLUDED.metric_notes,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *reportRepository) scanReport(row *sql.Row) (*domain.Report, error) {
	report := &domain.Report{}
	var cac, salesChange, costsChange, cacChange sql.NullFloat64
	var alertsJSON, recommendationsJSON, metricNotesJSON []byte

	err := row.Scan(
		&report.ID,
		&report.BusinessID,
		&report.ReferenceDate,
		&report.Metrics.Profit,
		&cac,
		&salesChange,
		&costsChange,
		&cacChange,
		&report.ProfitStatus,
		&alertsJSON,
		&recommendationsJSON,
		&metricNotesJSON,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.hydrateReport(report, cac, salesChange, costsChange, cacChange, alertsJSON, recommendationsJSON, metricNotesJSON)
}

func (r *reportRepository) scanReportRows(rows *sql.Rows) (*domain.Report, error) {
	report := &domain.Report{}
	var cac, salesChange, costsChange, cacChange sql.NullFloat64
	var alertsJSON, recommendationsJSON, metricNotesJSON []byte

	err := rows.Scan(
		&report.ID,
		&report.BusinessID,
		&report.ReferenceDate,
		&report.Metrics.Profit,
		&cac,
		&salesChange,
		&costsChange,
		&cacChange,
		&report.ProfitStatus,
		&alertsJSON,
		&recommendationsJSON,
		&metricNotesJSON,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.hydrateReport(report, cac, salesChange, costsChange, cacChange, alertsJSON, recommendationsJSON, metricNotesJSON)
}

// hydrateReport remonta as métricas e as listas do relatório a partir das
// colunas cruas. Uma coluna de métrica NULL significa métrica indefinida.
func (r *reportRepository) hydrateReport(
	report *domain.Report,
	cac, salesChange, costsChange, cacChange sql.NullFloat64,
	alertsJSON, recommendationsJSON, metricNotesJSON []byte,
) (*domain.Report, error) {
	report.Metrics.CAC = nullableMetric(cac)
	report.Metrics.SalesChangePct = nullableMetric(salesChange)
	report.Metrics.CostsChangePct = nullableMetric(costsChange)
	report.Metrics.CACChangePct = nullableMetric(cacChange)

	report.Alerts = []string{}
	if alertsJSON != nil {
		if err := json.Unmarshal(alertsJSON, &report.Alerts); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de alertas: %w", err)
		}
	}

	report.Recommendations = []string{}
	if recommendationsJSON != nil {
		if err := json.Unmarshal(recommendationsJSON, &report.Recommendations); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de recomendações: %w", err)
		}
	}

	if metricNotesJSON != nil {
		notes := make(map[string]string)
		if err := json.Unmarshal(metricNotesJSON, &notes); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de notas de métricas: %w", err)
		}
		report.MetricNotes = notes
	}

	return report, nil
}

func nullableMetric(value sql.NullFloat64) domain.Metric {
	if !value.Valid {
		return domain.Metric{}
	}

	return domain.DefinedMetric(value.Float64)
}

func metricValue(metric domain.Metric) interface{} {
	if !metric.Defined {
		return nil
	}

	return metric.Value
}
