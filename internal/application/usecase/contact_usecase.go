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

// ContactUseCase casos de uso de contactos de cuenta.
type ContactUseCase struct {
	repo        repository.ContactRepository
	accountRepo repository.AccountRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, accountRepo repository.AccountRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo, accountRepo: accountRepo}
}

// Create crea un contacto verificando que la cuenta exista.
func (uc *ContactUseCase) Create(ctx context.Context, in dto.ContactRequest) (*dto.ContactResponse, error) {
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
	now := time.Now()
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		AccountID: in.AccountID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Position:  in.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contactToResponse(contact), nil
}

// ListByAccount lista los contactos de una cuenta.
func (uc *ContactUseCase) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]dto.ContactResponse, error) {
	list, err := uc.repo.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *contactToResponse(c))
	}
	return items, nil
}

// GetByID obtiene un contacto. (nil, nil) si no existe.
func (uc *ContactUseCase) GetByID(ctx context.Context, id string) (*dto.ContactResponse, error) {
	contact, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return contactToResponse(contact), nil
}

func contactToResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
