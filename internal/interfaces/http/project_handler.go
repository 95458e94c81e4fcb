package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/usecase"
	"github.com/jhondav/agencia-api/internal/domain"
)

// ProjectHandler maneja los proyectos.
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler de proyectos.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ProjectRequest  true  "proyecto"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.ProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	project, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetByID godoc
// @Summary      Obtener proyecto por ID
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	project, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	if project == nil {
		return crudError(c, domain.ErrNotFound)
	}
	return c.JSON(project)
}

// Update godoc
// @Summary      Actualizar proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "ID del proyecto"
// @Param        body  body  dto.ProjectRequest  true  "proyecto"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.ProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	project, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(project)
}

// List godoc
// @Summary      Listar proyectos
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  query  string  false  "filtrar por cuenta"
// @Param        limit       query  int     false  "máx resultados"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}  dto.ProjectResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	projects, err := h.uc.List(c.Context(), c.Query("account_id"), page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(projects)
}

// ClientList godoc
// @Summary      Listar los proyectos de la cuenta del token (portal cliente)
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.ProjectResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/client/projects [get]
func (h *ProjectHandler) ClientList(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == "" {
		return noAccountLink(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	projects, err := h.uc.List(c.Context(), accountID, page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(projects)
}

// ClientGetByID godoc
// @Summary      Obtener un proyecto propio (portal cliente)
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/client/projects/{id} [get]
func (h *ProjectHandler) ClientGetByID(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == "" {
		return noAccountLink(c)
	}
	project, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	if project == nil || project.AccountID != accountID {
		return crudError(c, domain.ErrNotFound)
	}
	return c.JSON(project)
}
