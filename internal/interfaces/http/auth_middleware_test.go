package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/domain/space"
	apphttp "github.com/jhondav/agencia-api/internal/interfaces/http"
	pkgjwt "github.com/jhondav/agencia-api/pkg/jwt"
)

const (
	testJWTSecret = "secreto-solo-para-tests"
	testUserID    = "11111111-1111-1111-1111-111111111111"
	testAccountID = "22222222-2222-2222-2222-222222222222"
	testIssuer    = "agencia-api-test"
	testExpMin    = 60
)

// appConRoles monta una ruta protegida por AuthMiddleware + RequireRole que
// responde 200 con el rol resuelto cuando ambos middlewares dejan pasar.
func appConRoles(roles ...space.Role) *fiber.App {
	app := fiber.New()
	app.Get("/restringida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(roles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": apphttp.GetRole(c)})
		},
	)
	return app
}

func firmarToken(t *testing.T, opts pkgjwt.Options) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, opts)
	require.NoError(t, err)
	return tok
}

// tokenForRole devuelve el header Authorization completo para el rol dado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	return "Bearer " + firmarToken(t, pkgjwt.Options{
		UserID:    testUserID,
		Role:      role,
		AccountID: testAccountID,
	})
}

func getConAuth(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_PorRol(t *testing.T) {
	casos := []struct {
		nombre     string
		permitidos []space.Role
		rolToken   string
		esperado   int
		codigo     string
	}{
		{"admin en ruta de admin", []space.Role{space.RoleAdmin}, "admin", http.StatusOK, ""},
		{"finance en ruta admin o finance", []space.Role{space.RoleAdmin, space.RoleFinance}, "finance", http.StatusOK, ""},
		{"vendor rechazado en ruta de admin", []space.Role{space.RoleAdmin}, "vendor", http.StatusForbidden, "FORBIDDEN"},
		{"sales rechazado en ruta de finance", []space.Role{space.RoleFinance}, "sales", http.StatusForbidden, "FORBIDDEN"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			app := appConRoles(tc.permitidos...)
			tok := firmarToken(t, pkgjwt.Options{UserID: testUserID, Role: tc.rolToken})
			resp := getConAuth(t, app, "/restringida", "Bearer "+tok)
			defer resp.Body.Close()

			assert.Equal(t, tc.esperado, resp.StatusCode)
			if tc.codigo != "" {
				cuerpo, _ := io.ReadAll(resp.Body)
				assert.Contains(t, string(cuerpo), tc.codigo)
			}
		})
	}
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	app := appConRoles(space.RoleAdmin)
	tok := firmarToken(t, pkgjwt.Options{UserID: testUserID})

	resp := getConAuth(t, app, "/restringida", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token sin claim de rol no identifica al usuario ante RequireRole")
	cuerpo, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(cuerpo), "MISSING_ROLE")
}

func TestAuthMiddleware_RechazaPeticionesSinCredenciales(t *testing.T) {
	app := appConRoles(space.RoleAdmin)

	t.Run("sin header Authorization", func(t *testing.T) {
		resp := getConAuth(t, app, "/restringida", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		cuerpo, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(cuerpo), "MISSING_TOKEN")
	})

	t.Run("token malformado", func(t *testing.T) {
		resp := getConAuth(t, app, "/restringida", "Bearer ni.siquiera.jwt")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		cuerpo, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(cuerpo), "INVALID_TOKEN")
	})
}

func TestAuthMiddleware_PropagaClaimsEnLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/yo", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"account_id": apphttp.GetAccountID(c),
			"role":       apphttp.GetRole(c),
		})
	})

	tok := firmarToken(t, pkgjwt.Options{
		UserID:    testUserID,
		Role:      "client_admin",
		AccountID: testAccountID,
	})
	resp := getConAuth(t, app, "/yo", "Bearer "+tok)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var claims map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&claims))
	assert.Equal(t, testUserID, claims["user_id"])
	assert.Equal(t, testAccountID, claims["account_id"])
	assert.Equal(t, "client_admin", claims["role"])
}

func TestJWT_CicloGenerarParsear(t *testing.T) {
	tok := firmarToken(t, pkgjwt.Options{
		UserID:    testUserID,
		Role:      "delivery",
		AccountID: testAccountID,
	})

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "delivery", claims.Role)
	assert.Equal(t, testAccountID, claims.AccountID)
}

func TestJWT_Rechazos(t *testing.T) {
	t.Run("token expirado", func(t *testing.T) {
		tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, -1, pkgjwt.Options{
			UserID: testUserID,
			Role:   "admin",
		})
		require.NoError(t, err)

		_, err = pkgjwt.Parse(testJWTSecret, tok)
		assert.Error(t, err)
	})

	t.Run("secret distinto", func(t *testing.T) {
		tok := firmarToken(t, pkgjwt.Options{UserID: testUserID, Role: "admin"})
		_, err := pkgjwt.Parse("otro-secret", tok)
		assert.Error(t, err)
	})
}
