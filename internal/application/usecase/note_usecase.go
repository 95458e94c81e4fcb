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

// Tipos de entidad que aceptan notas.
var validNoteEntity = map[string]bool{
	"account":  true,
	"project":  true,
	"contract": true,
}

// NoteUseCase casos de uso de notas libres.
type NoteUseCase struct {
	repo repository.NoteRepository
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(repo repository.NoteRepository) *NoteUseCase {
	return &NoteUseCase{repo: repo}
}

// Create crea una nota firmada por el autor.
func (uc *NoteUseCase) Create(ctx context.Context, authorID string, in dto.NoteRequest) (*dto.NoteResponse, error) {
	if authorID == "" || in.EntityID == "" || in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validNoteEntity[in.EntityKind] {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	note := &entity.Note{
		ID:         uuid.New().String(),
		AuthorID:   authorID,
		EntityKind: in.EntityKind,
		EntityID:   in.EntityID,
		Body:       in.Body,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return noteToResponse(note), nil
}

// ListByEntity lista las notas de una entidad.
func (uc *NoteUseCase) ListByEntity(ctx context.Context, entityKind, entityID string, limit, offset int) ([]dto.NoteResponse, error) {
	list, err := uc.repo.ListByEntity(ctx, entityKind, entityID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NoteResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *noteToResponse(n))
	}
	return items, nil
}

func noteToResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}
	return &dto.NoteResponse{
		ID:         n.ID,
		AuthorID:   n.AuthorID,
		EntityKind: n.EntityKind,
		EntityID:   n.EntityID,
		Body:       n.Body,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}
