package repository

import (
	"context"

	"github.com/jhondav/agencia-api/internal/domain/entity"
)

// ProjectRepository puerto de persistencia para proyectos.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id string) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	List(ctx context.Context, limit, offset int) ([]*entity.Project, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Project, error)
	Delete(ctx context.Context, id string) error
}

// TaskRepository puerto de persistencia para tareas.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	ListByProject(ctx context.Context, projectID string, limit, offset int) ([]*entity.Task, error)
	ListByAssignee(ctx context.Context, assigneeID string, limit, offset int) ([]*entity.Task, error)
	Delete(ctx context.Context, id string) error
}
