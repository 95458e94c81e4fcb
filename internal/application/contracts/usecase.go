package contracts

import (
	"context"
	"time"

	"github.com/google/uuid"

	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/ports"
	"github.com/jhondav/agencia-api/internal/domain"
	domainbilling "github.com/jhondav/agencia-api/internal/domain/billing"
	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/repository"
)

// ContractUseCase casos de uso de contratos: creación con IVA derivado,
// reestructuración opcional del alcance vía IA y renderizado del documento
// con los campos calculados (precio, fechas, IVA).
type ContractUseCase struct {
	repo        repository.ContractRepository
	accountRepo repository.AccountRepository
	llm         ports.LLMService // nil = reestructuración deshabilitada
	docGen      DocumentGenerator
	issuer      appbilling.Issuer
	currency    string
}

// NewContractUseCase construye el caso de uso. llm puede ser nil.
func NewContractUseCase(
	repo repository.ContractRepository,
	accountRepo repository.AccountRepository,
	llm ports.LLMService,
	docGen DocumentGenerator,
	issuer appbilling.Issuer,
	defaultCurrency string,
) *ContractUseCase {
	return &ContractUseCase{
		repo:        repo,
		accountRepo: accountRepo,
		llm:         llm,
		docGen:      docGen,
		issuer:      issuer,
		currency:    defaultCurrency,
	}
}

// Create crea el contrato. Si RestructureScope es true y hay LLM disponible,
// el alcance se reescribe antes de persistir; un fallo del LLM no aborta la
// creación (el texto original sigue siendo válido).
func (uc *ContractUseCase) Create(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if in.AccountID == "" || in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accountRepo.FindByID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	amounts, err := domainbilling.ComputeAmounts(in.Net, in.VATRate)
	if err != nil {
		return nil, err
	}

	scope := in.Scope
	if in.RestructureScope && uc.llm != nil && scope != "" {
		llmCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		draft, llmErr := uc.llm.DraftText(llmCtx, "Reestructura este alcance de contrato en secciones numeradas, conservando todos los compromisos", scope)
		cancel()
		if llmErr == nil && draft.Body != "" {
			scope = draft.Body
		}
	}

	currency := in.Currency
	if currency == "" {
		currency = uc.currency
	}
	now := time.Now()
	contract := &entity.Contract{
		ID:        uuid.New().String(),
		AccountID: in.AccountID,
		ProjectID: in.ProjectID,
		Title:     in.Title,
		Scope:     scope,
		Status:    entity.ContractStatusDraft,
		Currency:  currency,
		Net:       amounts.Net,
		VATRate:   amounts.VATRate,
		VATAmount: amounts.VATAmount,
		Total:     amounts.Total,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, contract); err != nil {
		return nil, err
	}
	return contractToResponse(contract), nil
}

// GetByID obtiene el contrato. (nil, nil) si no existe.
func (uc *ContractUseCase) GetByID(ctx context.Context, id string) (*dto.ContractResponse, error) {
	contract, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return contractToResponse(contract), nil
}

// List lista contratos; si accountID no está vacío filtra por cuenta.
func (uc *ContractUseCase) List(ctx context.Context, accountID string, limit, offset int) ([]dto.ContractResponse, error) {
	var (
		list []*entity.Contract
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
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *contractToResponse(c))
	}
	return items, nil
}

// UpdateStatus avanza el estado del contrato (sent, signed, void).
func (uc *ContractUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.ContractStatusSent, entity.ContractStatusSigned, entity.ContractStatusVoid:
	default:
		return domain.ErrInvalidInput
	}
	contract, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if contract == nil {
		return domain.ErrNotFound
	}
	contract.Status = status
	contract.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, contract)
}

// Document renderiza el documento del contrato con los campos derivados.
func (uc *ContractUseCase) Document(ctx context.Context, id string) ([]byte, error) {
	contract, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	account, err := uc.accountRepo.FindByID(ctx, contract.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return uc.docGen.GenerateContractDocument(ctx, contract, uc.issuer, account)
}

func contractToResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		ProjectID: c.ProjectID,
		Title:     c.Title,
		Scope:     c.Scope,
		Status:    c.Status,
		Currency:  c.Currency,
		Net:       c.Net,
		VATRate:   c.VATRate,
		VATAmount: c.VATAmount,
		Total:     c.Total,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
