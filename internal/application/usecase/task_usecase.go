package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

// TaskUseCase casos de uso de tareas.
type TaskUseCase struct {
	repo        repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, projectRepo: projectRepo}
}

var validTaskStatus = map[string]bool{
	entity.TaskStatusTodo:  true,
	entity.TaskStatusDoing: true,
	entity.TaskStatusDone:  true,
}

var validTaskPriority = map[string]bool{
	entity.TaskPriorityLow:    true,
	entity.TaskPriorityNormal: true,
	entity.TaskPriorityHigh:   true,
}

// Create crea una tarea dentro de un proyecto existente.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.TaskRequest) (*dto.TaskResponse, error) {
	if in.ProjectID == "" || in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.FindByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.TaskStatusTodo
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.TaskPriorityNormal
	}
	if !validTaskStatus[status] || !validTaskPriority[priority] {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	task := &entity.Task{
		ID:         uuid.New().String(),
		ProjectID:  in.ProjectID,
		Title:      in.Title,
		Detail:     in.Detail,
		Status:     status,
		Priority:   priority,
		AssigneeID: in.AssigneeID,
		DueDate:    in.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// Update edita los campos mutables de la tarea.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.TaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		task.Title = in.Title
	}
	if in.Detail != "" {
		task.Detail = in.Detail
	}
	if in.Status != "" {
		if !validTaskStatus[in.Status] {
			return nil, domain.ErrInvalidInput
		}
		task.Status = in.Status
	}
	if in.Priority != "" {
		if !validTaskPriority[in.Priority] {
			return nil, domain.ErrInvalidInput
		}
		task.Priority = in.Priority
	}
	if in.AssigneeID != "" {
		task.AssigneeID = in.AssigneeID
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// GetByID obtiene una tarea por su ID; devuelve nil si no existe.
func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// ListByProject lista las tareas de un proyecto.
func (uc *TaskUseCase) ListByProject(ctx context.Context, projectID string, limit, offset int) ([]dto.TaskResponse, error) {
	list, err := uc.repo.ListByProject(ctx, projectID, limit, offset)
	if err != nil {
		return nil, err
	}
	return tasksToResponses(list), nil
}

// ListByAssignee lista las tareas asignadas a un usuario (vista del portal
// proveedor: solo sus tareas).
func (uc *TaskUseCase) ListByAssignee(ctx context.Context, assigneeID string, limit, offset int) ([]dto.TaskResponse, error) {
	list, err := uc.repo.ListByAssignee(ctx, assigneeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return tasksToResponses(list), nil
}

func tasksToResponses(list []*entity.Task) []dto.TaskResponse {
	items := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *taskToResponse(t))
	}
	return items
}

func taskToResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:         t.ID,
		ProjectID:  t.ProjectID,
		Title:      t.Title,
		Detail:     t.Detail,
		Status:     t.Status,
		Priority:   t.Priority,
		AssigneeID: t.AssigneeID,
		DueDate:    t.DueDate,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
