package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/internal/domain"
)

const (
	businessesTable = "businesses b"
)

type BusinessRepository interface {
	GetByID(businessID string) (*domain.Business, error)
	GetByCNPJ(cnpj string) (*domain.Business, error)
	ListBusinesses(availableStatus []domain.BusinessStatus) ([]*domain.Business, error)
	Create(business *domain.Business) error
	Update(business *domain.UpdateBusinessRequest) error
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) GetByID(businessID string) (*domain.Business, error) {
	return r.getBusiness(squirrel.Eq{"b.id": businessID})
}

func (r *businessRepository) GetByCNPJ(cnpj string) (*domain.Business, error) {
	return r.getBusiness(squirrel.Eq{"b.cnpj": cnpj})
}

func (r *businessRepository) getBusiness(whereClause map[string]interface{}) (*domain.Business, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.segment, b.cnpj, b.status, b.created_at, b.updated_at").
		From(businessesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	business := &domain.Business{}
	err = row.Scan(
		&business.ID,
		&business.Name,
		&business.Segment,
		&business.CNPJ,
		&business.Status,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
	}

	return business, nil
}

func (r *businessRepository) ListBusinesses(availableStatus []domain.BusinessStatus) ([]*domain.Business, error) {
	queryBuilder := squirrel.
		Select("b.id, b.name, b.segment, b.cnpj, b.status, b.created_at, b.updated_at").
		From(businessesTable).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.status": availableStatus})
	}

	query, args, err := queryBuilder.ToSql()
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

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		business := &domain.Business{}
		err := rows.Scan(
			&business.ID,
			&business.Name,
			&business.Segment,
			&business.CNPJ,
			&business.Status,
			&business.CreatedAt,
			&business.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear empresas: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return businesses, nil
}

func (r *businessRepository) Create(business *domain.Business) error {
	query := squirrel.StatementBuilder.
		Insert("businesses").
		Columns("id", "name", "segment", "cnpj", "status").
		Values(
			business.ID,
			business.Name,
			business.Segment,
			business.CNPJ,
			business.Status,
		).
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

func (r *businessRepository) Update(business *domain.UpdateBusinessRequest) error {
	if business.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("businesses").
		Where(squirrel.Eq{"id": business.ID}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	if business.Name != nil {
		queryBuilder = queryBuilder.Set("name", *business.Name)
	}

	if business.Segment != nil {
		queryBuilder = queryBuilder.Set("segment", *business.Segment)
	}

	if business.CNPJ != nil {
		queryBuilder = queryBuilder.Set("cnpj", *business.CNPJ)
	}

	if business.Status != nil {
		queryBuilder = queryBuilder.Set("status", *business.Status)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("business not found")
	}

	return nil
}
