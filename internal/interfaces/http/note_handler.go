package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/usecase"
)

// NoteHandler maneja las notas ligadas a cuentas, proyectos y contratos.
type NoteHandler struct {
	uc *usecase.NoteUseCase
}

// NewNoteHandler construye el handler de notas.
func NewNoteHandler(uc *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear nota
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.NoteRequest  true  "nota"
// @Success      201   {object}  dto.NoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c *fiber.Ctx) error {
	var in dto.NoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	note, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// ListByEntity godoc
// @Summary      Listar notas de una entidad
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        entity_kind  query  string  true   "account, project o contract"
// @Param        entity_id    query  string  true   "ID de la entidad"
// @Param        limit        query  int     false  "máx resultados"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {array}  dto.NoteResponse
// @Router       /api/notes [get]
func (h *NoteHandler) ListByEntity(c *fiber.Ctx) error {
	entityKind := c.Query("entity_kind")
	entityID := c.Query("entity_id")
	if entityKind == "" || entityID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entity_kind y entity_id son requeridos"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	notes, err := h.uc.ListByEntity(c.Context(), entityKind, entityID, page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(notes)
}
