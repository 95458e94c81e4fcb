package repository

import (
	"context"

	"github.com/jhondav/agencia-api/internal/domain/entity"
)

// ContractRepository puerto de persistencia para contratos.
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	FindByID(ctx context.Context, id string) (*entity.Contract, error)
	Update(ctx context.Context, contract *entity.Contract) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Contract, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Contract, error)
	Delete(ctx context.Context, id string) error
}

// NoteRepository puerto de persistencia para notas.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	FindByID(ctx context.Context, id string) (*entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	ListByEntity(ctx context.Context, entityKind, entityID string, limit, offset int) ([]*entity.Note, error)
	Delete(ctx context.Context, id string) error
}
