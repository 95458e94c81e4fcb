package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhondav/agencia-api/internal/application/analytics"
	"github.com/jhondav/agencia-api/internal/application/auth"
	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	appcontracts "github.com/jhondav/agencia-api/internal/application/contracts"
	"github.com/jhondav/agencia-api/internal/application/session"
	"github.com/jhondav/agencia-api/internal/application/usecase"
	"github.com/jhondav/agencia-api/internal/domain/space"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SessionUC   *session.SessionUseCase
	AccountUC   *usecase.AccountUseCase
	ContactUC   *usecase.ContactUseCase
	ProjectUC   *usecase.ProjectUseCase
	TaskUC      *usecase.TaskUseCase
	NoteUC      *usecase.NoteUseCase
	AIUC        *usecase.AIUseCase
	InvoiceUC   *appbilling.CreateInvoiceUseCase
	PDFUC       *appbilling.InvoicePDFUseCase
	UBLUC       *appbilling.UBLExportUseCase
	ContractUC  *appcontracts.ContractUseCase
	DashboardUC *appanalytics.DashboardUseCase
	RSM         space.RoleSpaceMap
	JWTSecret   string
}

// Router registra las rutas de la API. Los grupos de rutas se cuelgan del
// espacio que los posee: el middleware RequireSpace repite en el servidor la
// decisión que la UI ya tomó al filtrar la navegación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión: estado de espacios, cambio y navegación. Accesible para todo
	// usuario autenticado; la denegación de cambio es un no-op, no un error.
	sessionGroup := protected.Group("/session")
	sessionHandler := NewSessionHandler(deps.SessionUC)
	sessionGroup.Get("/", sessionHandler.Current)
	sessionGroup.Put("/space", sessionHandler.ChangeSpace)
	sessionGroup.Get("/navigation", sessionHandler.Navigation)
	sessionGroup.Delete("/", sessionHandler.Logout)

	requireInternal := RequireSpace(space.SpaceInternal, deps.RSM)
	requireClient := RequireSpace(space.SpaceClient, deps.RSM)
	requireVendor := RequireSpace(space.SpaceVendor, deps.RSM)

	// Dashboard: cada espacio tiene su propio resumen
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", requireInternal, dashboardHandler.Summary)
	protected.Get("/client/dashboard", requireClient, dashboardHandler.ClientSummary)
	protected.Get("/vendor/dashboard", requireVendor, dashboardHandler.VendorSummary)

	// CRM: cuentas y contactos (espacio interno)
	accounts := protected.Group("/accounts", requireInternal)
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Put("/:id", accountHandler.Update)

	contacts := protected.Group("/contacts", requireInternal)
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/", contactHandler.ListByAccount)
	contacts.Get("/:id", contactHandler.GetByID)

	// Proyectos: visibles en interno y en el portal de cliente
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects := protected.Group("/projects", requireInternal)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)

	// En el portal de cliente la cuenta sale siempre del claim del token,
	// nunca de la query: un cliente solo ve lo suyo.
	clientProjects := protected.Group("/client/projects", requireClient)
	clientProjects.Get("/", projectHandler.ClientList)
	clientProjects.Get("/:id", projectHandler.ClientGetByID)

	// Tareas: gestión interna + portal de proveedor
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := protected.Group("/tasks", requireInternal)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.ListByProject)
	tasks.Put("/:id", taskHandler.Update)

	vendorTasks := protected.Group("/vendor/tasks", requireVendor)
	vendorTasks.Get("/", taskHandler.ListMine)
	vendorTasks.Put("/:id", taskHandler.VendorUpdate)

	// Facturas: gestión interna + consulta en el portal de cliente
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC, deps.UBLUC)
	invoices := protected.Group("/invoices", requireInternal)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	// Cambiar el estado de una factura toca el ciclo fiscal: solo finanzas
	// o administración.
	invoices.Put("/:id/status", RequireRole(space.RoleFinance, space.RoleAdmin), invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Get("/:id/ubl", invoiceHandler.UBL)

	clientInvoices := protected.Group("/client/invoices", requireClient)
	clientInvoices.Get("/", invoiceHandler.ClientList)
	clientInvoices.Get("/:id", invoiceHandler.ClientGetByID)
	clientInvoices.Get("/:id/pdf", invoiceHandler.ClientPDF)

	// Contratos (espacio interno; el documento PDF también para clientes)
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts := protected.Group("/contracts", requireInternal)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Put("/:id/status", contractHandler.UpdateStatus)
	contracts.Get("/:id/document", contractHandler.Document)

	clientContracts := protected.Group("/client/contracts", requireClient)
	clientContracts.Get("/", contractHandler.ClientList)
	clientContracts.Get("/:id", contractHandler.ClientGetByID)
	clientContracts.Get("/:id/document", contractHandler.ClientDocument)

	// Notas (espacio interno)
	notes := protected.Group("/notes", requireInternal)
	noteHandler := NewNoteHandler(deps.NoteUC)
	notes.Post("/", noteHandler.Create)
	notes.Get("/", noteHandler.ListByEntity)

	// Redacción IA (espacio interno)
	ai := protected.Group("/ai", requireInternal)
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/draft", aiHandler.Draft)
}
