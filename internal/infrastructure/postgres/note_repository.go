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

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación de NoteRepository sobre PostgreSQL.
type NoteRepo struct {
	pool *pgxpool.Pool
}

// NewNoteRepository construye el adaptador de persistencia para notas.
func NewNoteRepository(pool *pgxpool.Pool) *NoteRepo {
	return &NoteRepo{pool: pool}
}

const noteColumns = `id, author_id, entity_kind, entity_id, body, created_at, updated_at`

// Create persiste una nueva nota.
func (r *NoteRepo) Create(ctx context.Context, note *entity.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	query := `
		INSERT INTO notes (id, author_id, entity_kind, entity_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		note.ID, note.AuthorID, note.EntityKind, note.EntityID, note.Body,
		note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// FindByID obtiene una nota por ID. Devuelve (nil, nil) si no existe.
func (r *NoteRepo) FindByID(ctx context.Context, id string) (*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	var n entity.Note
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.AuthorID, &n.EntityKind, &n.EntityID, &n.Body, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return &n, nil
}

// Update actualiza el cuerpo de una nota.
func (r *NoteRepo) Update(ctx context.Context, note *entity.Note) error {
	query := `UPDATE notes SET body = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, note.ID, note.Body, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// ListByEntity lista notas de una entidad (cuenta, proyecto o contrato).
func (r *NoteRepo) ListByEntity(ctx context.Context, entityKind, entityID string, limit, offset int) ([]*entity.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE entity_kind = $1 AND entity_id = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, entityKind, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.AuthorID, &n.EntityKind, &n.EntityID, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Delete elimina una nota por ID.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
