package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/usecase"
	"github.com/jhondav/agencia-api/internal/domain/entity"
	"github.com/jhondav/agencia-api/internal/domain/space"
	apphttp "github.com/jhondav/agencia-api/internal/interfaces/http"
	pkgjwt "github.com/jhondav/agencia-api/pkg/jwt"
)

const otraCuentaID = "33333333-3333-3333-3333-333333333333"

// fakeProjectRepo repositorio en memoria para las rutas de portal.
type fakeProjectRepo struct {
	projects []*entity.Project
}

func (f *fakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	f.projects = append(f.projects, p)
	return nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id string) (*entity.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, _ *entity.Project) error { return nil }

func (f *fakeProjectRepo) List(_ context.Context, _, _ int) ([]*entity.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectRepo) ListByAccount(_ context.Context, accountID string, _, _ int) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range f.projects {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, _ string) error { return nil }

// fakeTaskRepo repositorio en memoria de tareas.
type fakeTaskRepo struct {
	tasks []*entity.Task
}

func (f *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, id string) (*entity.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, _ *entity.Task) error { return nil }

func (f *fakeTaskRepo) ListByProject(_ context.Context, _ string, _, _ int) ([]*entity.Task, error) {
	return f.tasks, nil
}

func (f *fakeTaskRepo) ListByAssignee(_ context.Context, assigneeID string, _, _ int) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.tasks {
		if t.AssigneeID == assigneeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, _ string) error { return nil }

// fakeInvoiceRepo repositorio en memoria de facturas, sin renglones.
type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice, _ []entity.InvoiceLine) error {
	f.invoices = append(f.invoices, inv)
	return nil
}

func (f *fakeInvoiceRepo) FindByID(_ context.Context, id string) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) FindLines(_ context.Context, _ string) ([]entity.InvoiceLine, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) UpdateStatus(_ context.Context, _, _ string) error { return nil }

func (f *fakeInvoiceRepo) ListByAccount(_ context.Context, accountID string, _, _ int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.AccountID == accountID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) List(_ context.Context, _, _ int) ([]*entity.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeInvoiceRepo) NextNumber(_ context.Context, _ string) (string, error) {
	return "0001", nil
}

// buildPortalApp monta los grupos de portal con el mismo encadenado de
// middlewares que el router real.
func buildPortalApp(projectRepo *fakeProjectRepo, taskRepo *fakeTaskRepo) *fiber.App {
	rsm := space.DefaultRoleSpaceMap()
	app := fiber.New()

	projectUC := usecase.NewProjectUseCase(projectRepo, nil)
	projectHandler := apphttp.NewProjectHandler(projectUC)
	taskUC := usecase.NewTaskUseCase(taskRepo, projectRepo)
	taskHandler := apphttp.NewTaskHandler(taskUC)

	protected := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	requireClient := apphttp.RequireSpace(space.SpaceClient, rsm)
	requireVendor := apphttp.RequireSpace(space.SpaceVendor, rsm)

	clientProjects := protected.Group("/client/projects", requireClient)
	clientProjects.Get("/", projectHandler.ClientList)
	clientProjects.Get("/:id", projectHandler.ClientGetByID)

	vendorTasks := protected.Group("/vendor/tasks", requireVendor)
	vendorTasks.Get("/", taskHandler.ListMine)
	vendorTasks.Put("/:id", taskHandler.VendorUpdate)

	return app
}

func proyectoDe(accountID, id, name string) *entity.Project {
	return &entity.Project{
		ID:        id,
		AccountID: accountID,
		Name:      name,
		Status:    entity.ProjectStatusActive,
	}
}

func TestPortalCliente_SoloVeSuCuenta(t *testing.T) {
	projectRepo := &fakeProjectRepo{projects: []*entity.Project{
		proyectoDe(testAccountID, "p-propio", "Rediseño web"),
		proyectoDe(otraCuentaID, "p-ajeno", "Campaña ajena"),
	}}
	app := buildPortalApp(projectRepo, &fakeTaskRepo{})
	auth := tokenForRole(t, "client_admin") // vinculado a testAccountID

	t.Run("el filtro de cuenta del query se ignora", func(t *testing.T) {
		resp := getConAuth(t, app, "/api/client/projects/?account_id="+otraCuentaID, auth)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []dto.ProjectResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "p-propio", list[0].ID)
		assert.Equal(t, testAccountID, list[0].AccountID)
	})

	t.Run("proyecto propio accesible", func(t *testing.T) {
		resp := getConAuth(t, app, "/api/client/projects/p-propio", auth)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("proyecto de otra cuenta responde 404", func(t *testing.T) {
		resp := getConAuth(t, app, "/api/client/projects/p-ajeno", auth)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode,
			"un recurso ajeno debe ser indistinguible de uno inexistente")
		assert.Contains(t, string(body), "NOT_FOUND")
	})
}

func TestPortalCliente_FacturasDeOtraCuentaInaccesibles(t *testing.T) {
	invoiceRepo := &fakeInvoiceRepo{invoices: []*entity.Invoice{
		{ID: "f-propia", AccountID: testAccountID, Prefix: "FV", Number: "0001", Status: entity.InvoiceStatusIssued},
		{ID: "f-ajena", AccountID: otraCuentaID, Prefix: "FV", Number: "0002", Status: entity.InvoiceStatusIssued},
	}}

	rsm := space.DefaultRoleSpaceMap()
	app := fiber.New()
	invoiceUC := appbilling.NewCreateInvoiceUseCase(nil, invoiceRepo, nil, appbilling.Issuer{}, "FV", "EUR")
	invoiceHandler := apphttp.NewInvoiceHandler(invoiceUC, nil, nil)

	clientInvoices := app.Group("/api/client/invoices",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSpace(space.SpaceClient, rsm),
	)
	clientInvoices.Get("/", invoiceHandler.ClientList)
	clientInvoices.Get("/:id", invoiceHandler.ClientGetByID)

	auth := tokenForRole(t, "client_admin") // vinculado a testAccountID

	t.Run("listar con account_id ajeno devuelve solo lo propio", func(t *testing.T) {
		resp := getConAuth(t, app, "/api/client/invoices/?account_id="+otraCuentaID, auth)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []dto.InvoiceResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, testAccountID, list[0].AccountID)
	})

	t.Run("factura ajena por ID responde 404", func(t *testing.T) {
		resp := getConAuth(t, app, "/api/client/invoices/f-ajena", auth)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("factura propia por ID responde 200", func(t *testing.T) {
		resp := getConAuth(t, app, "/api/client/invoices/f-propia", auth)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestPortalCliente_TokenSinCuenta(t *testing.T) {
	app := buildPortalApp(&fakeProjectRepo{}, &fakeTaskRepo{})
	tok := firmarToken(t, pkgjwt.Options{UserID: testUserID, Role: "client_admin"})

	resp := getConAuth(t, app, "/api/client/projects/", "Bearer "+tok)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "NO_ACCOUNT")
}

func TestPortalProveedor_SoloTareasPropias(t *testing.T) {
	taskRepo := &fakeTaskRepo{tasks: []*entity.Task{
		{ID: "t-propia", ProjectID: "p1", Title: "Maquetar", Status: entity.TaskStatusTodo,
			Priority: entity.TaskPriorityNormal, AssigneeID: testUserID},
		{ID: "t-ajena", ProjectID: "p1", Title: "Otra cosa", Status: entity.TaskStatusTodo,
			Priority: entity.TaskPriorityNormal, AssigneeID: "otro-usuario"},
	}}
	app := buildPortalApp(&fakeProjectRepo{}, taskRepo)
	auth := tokenForRole(t, "vendor")

	putTarea := func(id string) *http.Response {
		req := httptest.NewRequest(http.MethodPut, "/api/vendor/tasks/"+id,
			strings.NewReader(`{"status":"doing"}`))
		req.Header.Set("Authorization", auth)
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	t.Run("lista solo lo asignado", func(t *testing.T) {
		resp := getConAuth(t, app, "/api/vendor/tasks/", auth)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []dto.TaskResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "t-propia", list[0].ID)
	})

	t.Run("actualiza la tarea propia", func(t *testing.T) {
		resp := putTarea("t-propia")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var task dto.TaskResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&task))
		assert.Equal(t, entity.TaskStatusDoing, task.Status)
		assert.Equal(t, testUserID, task.AssigneeID, "el proveedor no puede reasignar")
	})

	t.Run("la tarea de otro responde 404", func(t *testing.T) {
		resp := putTarea("t-ajena")
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
