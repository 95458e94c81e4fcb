package http

import (
	"github.com/gofiber/fiber/v2"

	appcontracts "github.com/jhondav/agencia-api/internal/application/contracts"
	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain"
)

// ContractHandler maneja los contratos comerciales.
type ContractHandler struct {
	uc *appcontracts.ContractUseCase
}

// NewContractHandler construye el handler de contratos.
func NewContractHandler(uc *appcontracts.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato (opcionalmente reestructura el alcance con IA)
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateContractRequest  true  "contrato"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contract, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contract)
}

// GetByID godoc
// @Summary      Obtener contrato por ID
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	contract, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	if contract == nil {
		return crudError(c, domain.ErrNotFound)
	}
	return c.JSON(contract)
}

// List godoc
// @Summary      Listar contratos
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  query  string  false  "filtrar por cuenta"
// @Param        limit       query  int     false  "máx resultados"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}  dto.ContractResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	contracts, err := h.uc.List(c.Context(), c.Query("account_id"), page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(contracts)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado del contrato (sent, signed, void)
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  object{status=string}  true  "nuevo estado"
// @Success      204   "sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/status [put]
func (h *ContractHandler) UpdateStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return crudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Document godoc
// @Summary      Descargar el documento PDF del contrato
// @Tags         contracts
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/document [get]
func (h *ContractHandler) Document(c *fiber.Ctx) error {
	docBytes, err := h.uc.Document(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contrato.pdf"`)
	return c.Send(docBytes)
}

// clientContract resuelve un contrato del portal cliente: la cuenta sale del
// token, nunca de la petición, y un contrato ajeno se trata como inexistente.
func (h *ContractHandler) clientContract(c *fiber.Ctx) (*dto.ContractResponse, error) {
	accountID := GetAccountID(c)
	if accountID == "" {
		return nil, domain.ErrForbidden
	}
	contract, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if contract == nil || contract.AccountID != accountID {
		return nil, domain.ErrNotFound
	}
	return contract, nil
}

// ClientList godoc
// @Summary      Listar los contratos de la cuenta del token (portal cliente)
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.ContractResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/client/contracts [get]
func (h *ContractHandler) ClientList(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == "" {
		return noAccountLink(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	contracts, err := h.uc.List(c.Context(), accountID, page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(contracts)
}

// ClientGetByID godoc
// @Summary      Obtener un contrato propio (portal cliente)
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/client/contracts/{id} [get]
func (h *ContractHandler) ClientGetByID(c *fiber.Ctx) error {
	contract, err := h.clientContract(c)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(contract)
}

// ClientDocument godoc
// @Summary      Descargar el documento de un contrato propio (portal cliente)
// @Tags         client
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/client/contracts/{id}/document [get]
func (h *ContractHandler) ClientDocument(c *fiber.Ctx) error {
	contract, err := h.clientContract(c)
	if err != nil {
		return crudError(c, err)
	}
	docBytes, err := h.uc.Document(c.Context(), contract.ID)
	if err != nil {
		return crudError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="contrato.pdf"`)
	return c.Send(docBytes)
}
