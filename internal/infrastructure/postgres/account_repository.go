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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `id, name, kind, tax_id, address, phone, email, status, created_at, updated_at`

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	query := `
		INSERT INTO accounts (id, name, kind, tax_id, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		account.ID, account.Name, account.Kind, nullIfEmpty(account.TaxID),
		nullIfEmpty(account.Address), nullIfEmpty(account.Phone), nullIfEmpty(account.Email),
		account.Status, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindByID obtiene una cuenta por ID. Devuelve (nil, nil) si no existe.
func (r *AccountRepo) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	var a entity.Account
	var taxID, address, phone, email *string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Kind, &taxID, &address, &phone, &email,
		&a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	a.TaxID = derefStr(taxID)
	a.Address = derefStr(address)
	a.Phone = derefStr(phone)
	a.Email = derefStr(email)
	return &a, nil
}

// Update actualiza una cuenta.
func (r *AccountRepo) Update(ctx context.Context, account *entity.Account) error {
	query := `
		UPDATE accounts SET name = $2, kind = $3, tax_id = $4, address = $5,
		       phone = $6, email = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		account.ID, account.Name, account.Kind, nullIfEmpty(account.TaxID),
		nullIfEmpty(account.Address), nullIfEmpty(account.Phone), nullIfEmpty(account.Email),
		account.Status, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// List lista cuentas con paginación; kind filtra por tipo si no es vacío.
func (r *AccountRepo) List(ctx context.Context, kind string, limit, offset int) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ($1 = '' OR kind = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		var taxID, address, phone, email *string
		if err := rows.Scan(&a.ID, &a.Name, &a.Kind, &taxID, &address, &phone, &email, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.TaxID = derefStr(taxID)
		a.Address = derefStr(address)
		a.Phone = derefStr(phone)
		a.Email = derefStr(email)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina una cuenta por ID.
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
