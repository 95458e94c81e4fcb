package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/usecase"
)

// ContactHandler maneja los contactos de cuenta.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler de contactos.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contacto
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ContactRequest  true  "contacto"
// @Success      201   {object}  dto.ContactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contact, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

// GetByID godoc
// @Summary      Obtener contacto por ID
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del contacto"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	contact, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(contact)
}

// ListByAccount godoc
// @Summary      Listar contactos de una cuenta
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  query  string  true   "ID de la cuenta"
// @Param        limit       query  int     false  "máx resultados"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}  dto.ContactResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) ListByAccount(c *fiber.Ctx) error {
	accountID := c.Query("account_id")
	if accountID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "account_id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	contacts, err := h.uc.ListByAccount(c.Context(), accountID, page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(contacts)
}
