package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
}

// NewContactRepository construye el adaptador de persistencia para contactos.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

const contactColumns = `id, account_id, name, email, phone, position, created_at, updated_at`

// Create persiste un nuevo contacto.
func (r *ContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	query := `
		INSERT INTO contacts (id, account_id, name, email, phone, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		contact.ID, contact.AccountID, contact.Name, nullIfEmpty(contact.Email),
		nullIfEmpty(contact.Phone), nullIfEmpty(contact.Position),
		contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// FindByID obtiene un contacto por ID. Devuelve (nil, nil) si no existe.
func (r *ContactRepo) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	var c entity.Contact
	var email, phone, position *string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.AccountID, &c.Name, &email, &phone, &position, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	c.Email = derefStr(email)
	c.Phone = derefStr(phone)
	c.Position = derefStr(position)
	return &c, nil
}

// Update actualiza un contacto.
func (r *ContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts SET name = $2, email = $3, phone = $4, position = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		contact.ID, contact.Name, nullIfEmpty(contact.Email), nullIfEmpty(contact.Phone),
		nullIfEmpty(contact.Position), contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// ListByAccount lista contactos de una cuenta con paginación.
func (r *ContactRepo) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		var email, phone, position *string
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Name, &email, &phone, &position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		c.Email = derefStr(email)
		c.Phone = derefStr(phone)
		c.Position = derefStr(position)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un contacto por ID.
func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
