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

// AccountUseCase casos de uso del CRM: cuentas cliente y proveedor.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso con el puerto de persistencia.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create crea una cuenta. Kind debe ser client o vendor.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.AccountRequest) (*dto.AccountResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.AccountKindClient && in.Kind != entity.AccountKindVendor {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = "prospect"
	}
	now := time.Now()
	account := &entity.Account{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Kind:      in.Kind,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return accountToResponse(account), nil
}

// GetByID obtiene una cuenta por ID. (nil, nil) si no existe.
func (uc *AccountUseCase) GetByID(ctx context.Context, id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return accountToResponse(account), nil
}

// Update edita los campos mutables de la cuenta.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.AccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		account.Name = in.Name
	}
	if in.TaxID != "" {
		account.TaxID = in.TaxID
	}
	if in.Address != "" {
		account.Address = in.Address
	}
	if in.Phone != "" {
		account.Phone = in.Phone
	}
	if in.Email != "" {
		account.Email = in.Email
	}
	if in.Status != "" {
		account.Status = in.Status
	}
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return accountToResponse(account), nil
}

// List lista cuentas, opcionalmente filtradas por kind.
func (uc *AccountUseCase) List(ctx context.Context, kind string, limit, offset int) ([]dto.AccountResponse, error) {
	list, err := uc.repo.List(ctx, kind, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *accountToResponse(a))
	}
	return items, nil
}

func accountToResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Kind:      a.Kind,
		TaxID:     a.TaxID,
		Address:   a.Address,
		Phone:     a.Phone,
		Email:     a.Email,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
