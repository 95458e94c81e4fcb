package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain"
)

// InvoiceHandler maneja las facturas: creación, consulta, estado y las dos
// exportaciones (PDF y UBL).
type InvoiceHandler struct {
	invoiceUC *appbilling.CreateInvoiceUseCase
	pdfUC     *appbilling.InvoicePDFUseCase
	ublUC     *appbilling.UBLExportUseCase
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(invoiceUC *appbilling.CreateInvoiceUseCase, pdfUC *appbilling.InvoicePDFUseCase, ublUC *appbilling.UBLExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, pdfUC: pdfUC, ublUC: ublUC}
}

// Create godoc
// @Summary      Crear factura (numeración y montos los asigna el sistema)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvoiceRequest  true  "factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.invoiceUC.Create(c.Context(), in)
	if err != nil {
		return crudError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetByID godoc
// @Summary      Obtener factura con renglones
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.invoiceUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	if invoice == nil {
		return crudError(c, domain.ErrNotFound)
	}
	return c.JSON(invoice)
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  query  string  false  "filtrar por cuenta"
// @Param        limit       query  int     false  "máx resultados"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	invoices, err := h.invoiceUC.List(c.Context(), c.Query("account_id"), page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(invoices)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de la factura (issued, paid, void)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la factura"
// @Param        body  body  object{status=string}  true  "nuevo estado"
// @Success      204   "sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/status [put]
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.invoiceUC.UpdateStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return crudError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Descargar la representación PDF de la factura
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="factura.pdf"`)
	return c.Send(pdfBytes)
}

// ClientList godoc
// @Summary      Listar las facturas de la cuenta del token (portal cliente)
// @Description  El filtro de cuenta sale siempre del claim account_id del
//               token; cualquier account_id de la query se ignora.
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/client/invoices [get]
func (h *InvoiceHandler) ClientList(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == "" {
		return noAccountLink(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.Normalize()
	invoices, err := h.invoiceUC.List(c.Context(), accountID, page.Limit, page.Offset)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(invoices)
}

// ClientGetByID godoc
// @Summary      Obtener una factura propia (portal cliente)
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/client/invoices/{id} [get]
func (h *InvoiceHandler) ClientGetByID(c *fiber.Ctx) error {
	invoice, err := h.clientInvoice(c)
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(invoice)
}

// ClientPDF godoc
// @Summary      Descargar el PDF de una factura propia (portal cliente)
// @Tags         client
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/client/invoices/{id}/pdf [get]
func (h *InvoiceHandler) ClientPDF(c *fiber.Ctx) error {
	if _, err := h.clientInvoice(c); err != nil {
		return crudError(c, err)
	}
	pdfBytes, err := h.pdfUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return crudError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="factura.pdf"`)
	return c.Send(pdfBytes)
}

// clientInvoice carga la factura del path y verifica que pertenezca a la
// cuenta del token. Una factura ajena responde igual que una inexistente.
func (h *InvoiceHandler) clientInvoice(c *fiber.Ctx) (*dto.InvoiceResponse, error) {
	accountID := GetAccountID(c)
	if accountID == "" {
		return nil, domain.ErrForbidden
	}
	invoice, err := h.invoiceUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.AccountID != accountID {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

// UBL godoc
// @Summary      Exportar la factura como UBL 2.1 (XML en base64 + digest canónico)
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.UBLExportResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/ubl [get]
func (h *InvoiceHandler) UBL(c *fiber.Ctx) error {
	resp, err := h.ublUC.Export(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotIssued) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_ISSUED", Message: "solo se exportan facturas emitidas o pagadas"})
		}
		return crudError(c, err)
	}
	return c.JSON(resp)
}
