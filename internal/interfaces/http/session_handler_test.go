package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/session"
	"github.com/jhondav/agencia-api/internal/domain/space"
	"github.com/jhondav/agencia-api/internal/infrastructure/memory"
	apphttp "github.com/jhondav/agencia-api/internal/interfaces/http"
)

// buildSessionApp monta las rutas de sesión como el router real.
func buildSessionApp() *fiber.App {
	rsm := space.DefaultRoleSpaceMap()
	uc := session.NewSessionUseCase(memory.NewSessionStore(rsm), rsm, space.DefaultNavigation())
	handler := apphttp.NewSessionHandler(uc)

	app := fiber.New()
	grp := app.Group("/api/session", apphttp.AuthMiddleware(testJWTSecret))
	grp.Get("/", handler.Current)
	grp.Put("/space", handler.ChangeSpace)
	grp.Get("/navigation", handler.Navigation)
	grp.Delete("/", handler.Logout)
	return app
}

func sessionRequest(t *testing.T, app *fiber.App, method, path, role, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeSession(t *testing.T, resp *http.Response) dto.SessionResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSession_EstadoInicialPorRol(t *testing.T) {
	app := buildSessionApp()

	resp := sessionRequest(t, app, http.MethodGet, "/api/session/", "client_admin", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeSession(t, resp)

	assert.Equal(t, "client", out.ActiveSpace)
	assert.Equal(t, []string{"client"}, out.PermittedSpaces)
	assert.Nil(t, out.Changed)
}

func TestSession_CambioPermitido(t *testing.T) {
	app := buildSessionApp()

	resp := sessionRequest(t, app, http.MethodPut, "/api/session/space", "admin", `{"space":"vendor"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeSession(t, resp)

	require.NotNil(t, out.Changed)
	assert.True(t, *out.Changed)
	assert.Equal(t, "vendor", out.ActiveSpace)
}

// La denegación es un no-op: 200 con changed=false y el espacio anterior
// intacto, nunca un error.
func TestSession_CambioDenegadoEsNoOp(t *testing.T) {
	app := buildSessionApp()

	resp := sessionRequest(t, app, http.MethodPut, "/api/session/space", "vendor", `{"space":"internal"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeSession(t, resp)

	require.NotNil(t, out.Changed)
	assert.False(t, *out.Changed)
	assert.Equal(t, "vendor", out.ActiveSpace, "el espacio activo no debe moverse en una denegación")

	// El estado persiste entre peticiones: sigue en vendor.
	resp = sessionRequest(t, app, http.MethodGet, "/api/session/", "vendor", "")
	out = decodeSession(t, resp)
	assert.Equal(t, "vendor", out.ActiveSpace)
}

// Un espacio inexistente también queda en no-op.
func TestSession_EspacioInexistenteEsNoOp(t *testing.T) {
	app := buildSessionApp()

	resp := sessionRequest(t, app, http.MethodPut, "/api/session/space", "admin", `{"space":"backstage"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeSession(t, resp)

	require.NotNil(t, out.Changed)
	assert.False(t, *out.Changed)
	assert.Equal(t, "internal", out.ActiveSpace)
}

func TestSession_NavigationFiltradaPorEspacio(t *testing.T) {
	app := buildSessionApp()

	resp := sessionRequest(t, app, http.MethodGet, "/api/session/navigation", "vendor", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var entries []dto.NavigationEntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.NotEmpty(t, entries)

	// Todas las entradas devueltas declaran el espacio vendor en el menú canónico.
	valid := map[string]bool{}
	for _, e := range space.VisibleNavigation(space.DefaultNavigation(), space.SpaceVendor) {
		valid[e.Route] = true
	}
	for _, e := range entries {
		assert.True(t, valid[e.Route], "la ruta %s no es visible en vendor", e.Route)
	}
}

func TestSession_LogoutReiniciaElEstado(t *testing.T) {
	app := buildSessionApp()

	// Mover a vendor y cerrar sesión.
	resp := sessionRequest(t, app, http.MethodPut, "/api/session/space", "admin", `{"space":"vendor"}`)
	resp.Body.Close()
	resp = sessionRequest(t, app, http.MethodDelete, "/api/session/", "admin", "")
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// La siguiente sesión arranca en el espacio por defecto del rol.
	resp = sessionRequest(t, app, http.MethodGet, "/api/session/", "admin", "")
	out := decodeSession(t, resp)
	assert.Equal(t, "internal", out.ActiveSpace)
}
