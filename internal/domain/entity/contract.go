package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de contrato.
const (
	ContractStatusDraft  = "draft"
	ContractStatusSent   = "sent"
	ContractStatusSigned = "signed"
	ContractStatusVoid   = "void"
)

// Contract acuerdo comercial con una cuenta. Scope es el texto libre del
// alcance (redactable/reestructurable vía IA); los montos con IVA derivado
// se calculan en internal/domain/billing al generar el documento.
type Contract struct {
	ID        string
	AccountID string
	ProjectID string // opcional
	Title     string
	Scope     string
	Status    string // ver constantes ContractStatus*
	Currency  string
	Net       decimal.Decimal
	VATRate   decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time // nil = duración indefinida
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Note nota libre ligada a una entidad (cuenta, proyecto o contrato).
type Note struct {
	ID         string
	AuthorID   string
	EntityKind string // account, project, contract
	EntityID   string
	Body       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
