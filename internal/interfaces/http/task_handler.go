package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/usecase"
	"github.com/jhondav/agencia-api/internal/domain"
)

// TaskHandler maneja las tareas de proyecto.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TaskRequest  true  "tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	task, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update godoc
// @Summary      Actualizar tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string           true  "ID de la tarea"
// @Param        body  body  dto.TaskRequest  true  "tarea"
// @Success      200   {object}  dto.TaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	task, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(task)
}

// ListByProject godoc
// @Summary      Listar tareas de un proyecto
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query  string  true   "ID del proyecto"
// @Param        limit       query  int     false  "máx resultados"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) ListByProject(c *fiber.Ctx) error {
	projectID := c.Query("project_id")
	if projectID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "project_id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	tasks, err := h.uc.ListByProject(c.Context(), projectID, page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(tasks)
}

// ListMine godoc
// @Summary      Listar las tareas asignadas al usuario del token (portal proveedor)
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.TaskResponse
// @Router       /api/tasks/mine [get]
func (h *TaskHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	tasks, err := h.uc.ListByAssignee(c.Context(), GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(tasks)
}

// VendorUpdate godoc
// @Summary      Actualizar una tarea propia (portal proveedor)
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string           true  "ID de la tarea"
// @Param        body  body  dto.TaskRequest  true  "tarea"
// @Success      200   {object}  dto.TaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendor/tasks/{id} [put]
func (h *TaskHandler) VendorUpdate(c *fiber.Ctx) error {
	task, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	// Una tarea ajena se responde igual que una inexistente.
	if task == nil || task.AssigneeID != GetUserID(c) {
		return crudError(c, domain.ErrNotFound)
	}
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El proveedor no puede reasignar la tarea a otro usuario.
	in.AssigneeID = ""
	updated, err := h.uc.Update(c.Context(), task.ID, in)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(updated)
}
