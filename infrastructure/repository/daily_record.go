package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

const (
	dailyRecordsTable = "daily_records dr"
)

type DailyRecordRepository interface {
	GetByBusinessAndDate(businessID string, date time.Time) (*domain.BusinessDailyRecord, error)
	GetByDateRange(businessID string, startDate, endDate time.Time) ([]*domain.BusinessDailyRecord, error)
	Upsert(record *domain.BusinessDailyRecord) error
}

type dailyRecordRepository struct {
	conn *postgres.Connection
}

func NewDailyRecordRepository(conn *postgres.Connection) DailyRecordRepository {
	return &dailyRecordRepository{
		conn: conn,
	}
}

func (r *dailyRecordRepository) GetByBusinessAndDate(businessID string, date time.Time) (*domain.BusinessDailyRecord, error) {
	query, args, err := squirrel.
		Select("dr.id, dr.business_id, dr.reference_date, dr.sales, dr.costs, dr.customers, dr.created_at, dr.updated_at").
		From(dailyRecordsTable).
		Where(squirrel.Eq{"dr.business_id": businessID, "dr.reference_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	record, err := r.scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro diário: %w", err)
	}

	return record, nil
}

func (r *dailyRecordRepository) GetByDateRange(businessID string, startDate, endDate time.Time) ([]*domain.BusinessDailyRecord, error) {
	query, args, err := squirrel.
		Select("dr.id, dr.business_id, dr.reference_date, dr.sales, dr.costs, dr.customers, dr.created_at, dr.updated_at").
		From(dailyRecordsTable).
		Where(squirrel.Eq{"dr.business_id": businessID}).
		Where(squirrel.GtOrEq{"dr.reference_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dr.reference_date": endDate.Format(time.DateOnly)}).
		OrderBy("dr.reference_date ASC").
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

	records := make([]*domain.BusinessDailyRecord, 0)
	for rows.Next() {
		record, err := r.scanRecordRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros diários: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *dailyRecordRepository) Upsert(record *domain.BusinessDailyRecord) error {
	query := squirrel.StatementBuilder.
		Insert("daily_records").
		Columns("id", "business_id", "reference_date", "sales", "costs", "customers").
		Values(
			record.ID,
			record.BusinessID,
			record.ReferenceDate.Format(time.DateOnly),
			record.Sales,
			record.Costs,
			record.Customers,
		).
		Suffix(`
			ON CONFLICT (business_id, reference_date) DO UPDATE SET
				sales = EXCLUDED.sales,
				costs = EXCLUDED.costs,
				customers = EXCLUDED.customers,
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

func (r *dailyRecordRepository) scanRecord(row *sql.Row) (*domain.BusinessDailyRecord, error) {
	record := &domain.BusinessDailyRecord{}

	err := row.Scan(
		&record.ID,
		&record.BusinessID,
		&record.ReferenceDate,
		&record.Sales,
		&record.Costs,
		&record.Customers,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *dailyRecordRepository) scanRecordRows(rows *sql.Rows) (*domain.BusinessDailyRecord, error) {
	record := &domain.BusinessDailyRecord{}

	err := rows.Scan(
		&record.ID,
		&record.BusinessID,
		&record.ReferenceDate,
		&record.Sales,
		&record.Costs,
		&record.Customers,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
