package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación de ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	pool *pgxpool.Pool
}

// NewContractRepository construye el adaptador de persistencia para contratos.
func NewContractRepository(pool *pgxpool.Pool) *ContractRepo {
	return &ContractRepo{pool: pool}
}

const contractColumns = `id, account_id, project_id, title, scope, status, currency, net, vat_rate, vat_amount, total, start_date, end_date, created_at, updated_at`

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(ctx context.Context, contract *entity.Contract) error {
	if contract.ID == "" {
		contract.ID = uuid.New().String()
	}
	query := `
		INSERT INTO contracts (id, account_id, project_id, title, scope, status, currency, net, vat_rate, vat_amount, total, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		contract.ID, contract.AccountID, nullIfEmpty(contract.ProjectID),
		contract.Title, contract.Scope, contract.Status, contract.Currency,
		contract.Net, contract.VATRate, contract.VATAmount, contract.Total,
		contract.StartDate, contract.EndDate, contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// FindByID obtiene un contrato por ID. Devuelve (nil, nil) si no existe.
func (r *ContractRepo) FindByID(ctx context.Context, id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	var c entity.Contract
	var projectID *string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.AccountID, &projectID, &c.Title, &c.Scope, &c.Status,
		&c.Currency, &c.Net, &c.VATRate, &c.VATAmount, &c.Total,
		&c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	c.ProjectID = derefStr(projectID)
	return &c, nil
}

// Update actualiza un contrato.
func (r *ContractRepo) Update(ctx context.Context, contract *entity.Contract) error {
	query := `
		UPDATE contracts SET title = $2, scope = $3, status = $4, currency = $5,
		       net = $6, vat_rate = $7, vat_amount = $8, total = $9,
		       start_date = $10, end_date = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		contract.ID, contract.Title, contract.Scope, contract.Status,
		contract.Currency, contract.Net, contract.VATRate, contract.VATAmount,
		contract.Total, contract.StartDate, contract.EndDate, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByAccount lista contratos de una cuenta con paginación.
func (r *ContractRepo) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts by account: %w", err)
	}
	defer rows.Close()
	return scanContracts(rows)
}

// List lista contratos con paginación.
func (r *ContractRepo) List(ctx context.Context, limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	return scanContracts(rows)
}

func scanContracts(rows pgx.Rows) ([]*entity.Contract, error) {
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		var projectID *string
		if err := rows.Scan(
			&c.ID, &c.AccountID, &projectID, &c.Title, &c.Scope, &c.Status,
			&c.Currency, &c.Net, &c.VATRate, &c.VATAmount, &c.Total,
			&c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		c.ProjectID = derefStr(projectID)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un contrato por ID.
func (r *ContractRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}
