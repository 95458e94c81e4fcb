package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/domain/space"
	apphttp "github.com/jhondav/agencia-api/internal/interfaces/http"
)

// buildSpaceApp monta una ruta por espacio, igual que el router real.
func buildSpaceApp() *fiber.App {
	rsm := space.DefaultRoleSpaceMap()
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app.Get("/internal",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSpace(space.SpaceInternal, rsm),
		ok,
	)
	app.Get("/client",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSpace(space.SpaceClient, rsm),
		ok,
	)
	app.Get("/vendor",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSpace(space.SpaceVendor, rsm),
		ok,
	)
	return app
}

func getWithToken(t *testing.T, app *fiber.App, path, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireSpace_AdminAccedeATodos(t *testing.T) {
	app := buildSpaceApp()
	for _, path := range []string{"/internal", "/client", "/vendor"} {
		resp := getWithToken(t, app, path, "admin")
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "admin debe entrar a %s", path)
	}
}

func TestRequireSpace_VendorSoloSuEspacio(t *testing.T) {
	app := buildSpaceApp()

	resp := getWithToken(t, app, "/vendor", "vendor")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, path := range []string{"/internal", "/client"} {
		resp := getWithToken(t, app, path, "vendor")
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "vendor no debe entrar a %s", path)
		assert.Contains(t, string(body), "SPACE_DENIED")
	}
}

func TestRequireSpace_ClientMemberSoloEspacioCliente(t *testing.T) {
	app := buildSpaceApp()

	resp := getWithToken(t, app, "/client", "client_member")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getWithToken(t, app, "/internal", "client_member")
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Un rol interno sin acceso a portales externos: la ruta cliente lo rechaza
// aunque esté autenticado y sea staff.
func TestRequireSpace_SalesBloqueadoEnPortales(t *testing.T) {
	app := buildSpaceApp()

	resp := getWithToken(t, app, "/internal", "sales")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, path := range []string{"/client", "/vendor"} {
		resp := getWithToken(t, app, path, "sales")
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	}
}

// Un rol desconocido en el token nunca pasa: denegación por defecto.
func TestRequireSpace_RolDesconocidoDenegado(t *testing.T) {
	app := buildSpaceApp()
	for _, path := range []string{"/internal", "/client", "/vendor"} {
		resp := getWithToken(t, app, path, "superuser")
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	}
}
