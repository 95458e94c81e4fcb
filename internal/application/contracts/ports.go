package contracts

import (
	"context"

	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	"github.com/jhondav/agencia-api/internal/domain/entity"
)

// DocumentGenerator puerto de renderizado del documento de contrato: recibe
// el contrato con montos ya derivados y devuelve los bytes del documento.
type DocumentGenerator interface {
	GenerateContractDocument(ctx context.Context, contract *entity.Contract, issuer appbilling.Issuer, account *entity.Account) ([]byte, error)
}
