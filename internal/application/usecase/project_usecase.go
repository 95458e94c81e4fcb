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

// ProjectUseCase casos de uso de proyectos.
type ProjectUseCase struct {
	repo        repository.ProjectRepository
	accountRepo repository.AccountRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, accountRepo repository.AccountRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, accountRepo: accountRepo}
}

var validProjectStatus = map[string]bool{
	entity.ProjectStatusDraft:     true,
	entity.ProjectStatusActive:    true,
	entity.ProjectStatusPaused:    true,
	entity.ProjectStatusDone:      true,
	entity.ProjectStatusCancelled: true,
}

// Create crea un proyecto para una cuenta cliente existente.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	if in.AccountID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accountRepo.FindByID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusDraft
	}
	if !validProjectStatus[status] {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	project := &entity.Project{
		ID:        uuid.New().String(),
		AccountID: in.AccountID,
		Name:      in.Name,
		Summary:   in.Summary,
		Status:    status,
		Budget:    in.Budget,
		StartDate: in.StartDate,
		DueDate:   in.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return projectToResponse(project), nil
}

// GetByID obtiene un proyecto. (nil, nil) si no existe.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return projectToResponse(project), nil
}

// Update edita los campos mutables del proyecto.
func (uc *ProjectUseCase) Update(ctx context.Context, id string, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		project.Name = in.Name
	}
	if in.Summary != "" {
		project.Summary = in.Summary
	}
	if in.Status != "" {
		if !validProjectStatus[in.Status] {
			return nil, domain.ErrInvalidInput
		}
		project.Status = in.Status
	}
	if !in.Budget.IsZero() {
		project.Budget = in.Budget
	}
	if in.StartDate != nil {
		project.StartDate = in.StartDate
	}
	if in.DueDate != nil {
		project.DueDate = in.DueDate
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return projectToResponse(project), nil
}

// List lista proyectos; si accountID no está vacío filtra por cuenta (vista
// del portal cliente: solo sus proyectos).
func (uc *ProjectUseCase) List(ctx context.Context, accountID string, limit, offset int) ([]dto.ProjectResponse, error) {
	var (
		list []*entity.Project
		err  error
	)
	if accountID != "" {
		list, err = uc.repo.ListByAccount(ctx, accountID, limit, offset)
	} else {
		list, err = uc.repo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *projectToResponse(p))
	}
	return items, nil
}

func projectToResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:        p.ID,
		AccountID: p.AccountID,
		Name:      p.Name,
		Summary:   p.Summary,
		Status:    p.Status,
		Budget:    p.Budget,
		StartDate: p.StartDate,
		DueDate:   p.DueDate,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
