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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository sobre PostgreSQL.
type ProjectRepo struct {
	pool *pgxpool.Pool
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

const projectColumns = `id, account_id, name, summary, status, budget, start_date, due_date, created_at, updated_at`

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	query := `
		INSERT INTO projects (id, account_id, name, summary, status, budget, start_date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		project.ID, project.AccountID, project.Name, nullIfEmpty(project.Summary),
		project.Status, project.Budget, project.StartDate, project.DueDate,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// FindByID obtiene un proyecto por ID. Devuelve (nil, nil) si no existe.
func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	var p entity.Project
	var summary *string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AccountID, &p.Name, &summary, &p.Status, &p.Budget,
		&p.StartDate, &p.DueDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	p.Summary = derefStr(summary)
	return &p, nil
}

// Update actualiza un proyecto.
func (r *ProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, summary = $3, status = $4, budget = $5,
		       start_date = $6, due_date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		project.ID, project.Name, nullIfEmpty(project.Summary), project.Status,
		project.Budget, project.StartDate, project.DueDate, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// List lista proyectos con paginación.
func (r *ProjectRepo) List(ctx context.Context, limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

// ListByAccount lista proyectos de una cuenta con paginación.
func (r *ProjectRepo) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects by account: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

func scanProjects(rows pgx.Rows) ([]*entity.Project, error) {
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		var summary *string
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &summary, &p.Status, &p.Budget, &p.StartDate, &p.DueDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Summary = derefStr(summary)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un proyecto por ID.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
