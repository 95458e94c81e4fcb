package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/session"
	"github.com/jhondav/agencia-api/internal/domain"
)

// SessionHandler expone el estado de espacios de la sesión.
type SessionHandler struct {
	uc *session.SessionUseCase
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(uc *session.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Current godoc
// @Summary      Estado de la sesión (espacio activo y permitidos)
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	resp, err := h.uc.Current(SessionUser(c))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

// ChangeSpace godoc
// @Summary      Cambiar el espacio activo
// @Description  Si el rol no puede entrar al espacio destino, la petición
// @Description  queda en no-op: responde 200 con changed=false y el espacio
// @Description  activo anterior.
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SpaceChangeRequest  true  "espacio destino"
// @Success      200  {object}  dto.SessionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/space [put]
func (h *SessionHandler) ChangeSpace(c *fiber.Ctx) error {
	var in dto.SpaceChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Space == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "space es requerido"})
	}
	resp, err := h.uc.ChangeSpace(SessionUser(c), in.Space)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(resp)
}

// Navigation godoc
// @Summary      Menú visible en el espacio activo
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.NavigationEntryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/navigation [get]
func (h *SessionHandler) Navigation(c *fiber.Ctx) error {
	entries, err := h.uc.Navigation(SessionUser(c))
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(entries)
}

// Logout godoc
// @Summary      Cerrar sesión (destruye el estado de espacios)
// @Tags         session
// @Security     BearerAuth
// @Success      204  "sin contenido"
// @Router       /api/session [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
	}
	if errors.Is(err, domain.ErrInvalidRole) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "el rol del usuario no es válido"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
