package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/usecase"
)

// AIHandler expone la redacción asistida por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Draft godoc
// @Summary      Redactar o reestructurar texto con IA
// @Description  Recibe una instrucción ("redacta una nota de reunión",
//               "reestructura este alcance") y un texto de partida opcional,
//               y devuelve el borrador estructurado del modelo.
//               Requiere autenticación. Timeout interno de 10 s.
// @Tags         ai
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AIDraftRequest  true  "instruction (obligatorio) y source (opcional)"
// @Success      200   {object}  dto.AIDraftDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/draft [post]
func (h *AIHandler) Draft(c *fiber.Ctx) error {
	if GetUserID(c) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "token inválido",
		})
	}

	var req dto.AIDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	result, err := h.uc.Draft(c.Context(), req)
	if err != nil {
		return aiError(c, err)
	}
	return c.JSON(result)
}

// aiError traduce los fallos del caso de uso de IA al código HTTP adecuado.
func aiError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled),
		strings.Contains(err.Error(), "timeout"):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
			Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo",
		})
	case strings.Contains(err.Error(), "obligatorio"):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case strings.Contains(err.Error(), "ANTHROPIC_API_KEY"):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "AI_UNAVAILABLE", Message: "el servicio de redacción IA no está configurado",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
