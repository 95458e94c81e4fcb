package repository

import (
	"context"

	"github.com/jhondav/agencia-api/internal/domain/entity"
)

// AccountRepository puerto de persistencia para cuentas del CRM.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	List(ctx context.Context, kind string, limit, offset int) ([]*entity.Account, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepository puerto de persistencia para contactos de cuenta.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Contact, error)
	Delete(ctx context.Context, id string) error
}
