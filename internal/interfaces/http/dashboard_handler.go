package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhondav/agencia-api/internal/application/analytics"
	"github.com/jhondav/agencia-api/internal/application/dto"
)

// DashboardHandler maneja el resumen de actividad de cada espacio.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de actividad de la agencia (espacio interno)
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// ClientSummary godoc
// @Summary      Resumen de actividad de la cuenta del token (portal cliente)
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ClientDashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/client/dashboard [get]
func (h *DashboardHandler) ClientSummary(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == "" {
		return noAccountLink(c)
	}
	summary, err := h.uc.GetClientSummary(c.Context(), accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// VendorSummary godoc
// @Summary      Carga de trabajo del usuario del token (portal proveedor)
// @Tags         vendor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.VendorDashboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/vendor/dashboard [get]
func (h *DashboardHandler) VendorSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetVendorSummary(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
