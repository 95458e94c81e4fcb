package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest creación de contrato. Net es el precio acordado;
// el IVA y el total se derivan con la tarifa. Si RestructureScope es true,
// el alcance se reescribe con el servicio de IA antes de persistir.
type CreateContractRequest struct {
	AccountID        string          `json:"account_id"`
	ProjectID        string          `json:"project_id,omitempty"`
	Title            string          `json:"title"`
	Scope            string          `json:"scope"`
	Currency         string          `json:"currency"`
	Net              decimal.Decimal `json:"net"`
	VATRate          decimal.Decimal `json:"vat_rate"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          *time.Time      `json:"end_date,omitempty"`
	RestructureScope bool            `json:"restructure_scope,omitempty"`
}

// ContractResponse proyección pública del contrato.
type ContractResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	ProjectID string          `json:"project_id,omitempty"`
	Title     string          `json:"title"`
	Scope     string          `json:"scope"`
	Status    string          `json:"status"`
	Currency  string          `json:"currency"`
	Net       decimal.Decimal `json:"net"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	VATAmount decimal.Decimal `json:"vat_amount"`
	Total     decimal.Decimal `json:"total"`
	StartDate time.Time       `json:"start_date"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NoteRequest alta/edición de nota.
type NoteRequest struct {
	EntityKind string `json:"entity_kind"` // account, project, contract
	EntityID   string `json:"entity_id"`
	Body       string `json:"body"`
}

// NoteResponse proyección pública de la nota.
type NoteResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	EntityKind string    `json:"entity_kind"`
	EntityID   string    `json:"entity_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
