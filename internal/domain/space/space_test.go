package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/space"
)

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes del mapeo rol → espacios
// ──────────────────────────────────────────────────────────────────────────────

// Totalidad: todo rol del conjunto cerrado tiene al menos un espacio.
func TestPermittedSpaces_TotalidadTodosLosRoles(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	for _, role := range space.AllRoles {
		spaces, err := rsm.PermittedSpaces(role)
		require.NoError(t, err, "rol %q debe estar en el mapeo", role)
		assert.NotEmpty(t, spaces, "rol %q debe mapear a un conjunto no vacío", role)
	}
}

// Cobertura: la unión de todos los conjuntos cubre los tres espacios.
func TestPermittedSpaces_CoberturaCompleta(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	covered := make(map[space.Space]bool)
	for _, role := range space.AllRoles {
		spaces, err := rsm.PermittedSpaces(role)
		require.NoError(t, err)
		for _, s := range spaces {
			covered[s] = true
		}
	}
	for _, s := range space.AllSpaces {
		assert.True(t, covered[s], "el espacio %q no debe quedar huérfano", s)
	}
}

func TestDefaultRoleSpaceMap_ValidateOK(t *testing.T) {
	assert.NoError(t, space.DefaultRoleSpaceMap().Validate())
}

func TestValidate_RechazaMapeosRotos(t *testing.T) {
	// Conjunto vacío para un rol
	broken := space.RoleSpaceMap{space.RoleAdmin: {}}
	assert.ErrorIs(t, broken.Validate(), domain.ErrInvalidInput)

	// Espacio huérfano: nadie llega a vendor
	orphan := space.RoleSpaceMap{
		space.RoleAdmin:  {space.SpaceInternal, space.SpaceClient},
		space.RoleVendor: {space.SpaceClient},
	}
	assert.ErrorIs(t, orphan.Validate(), domain.ErrInvalidInput)
}

// Rol fuera del conjunto enumerado → ErrInvalidRole (dato corrupto aguas
// arriba, no se degrada en silencio).
func TestPermittedSpaces_RolDesconocidoRetornaError(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	spaces, err := rsm.PermittedSpaces(space.Role("superuser"))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Nil(t, spaces)
}

// Rol vacío = sesión no autenticada: conjunto vacío sin error.
func TestPermittedSpaces_RolVacioSinError(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	spaces, err := rsm.PermittedSpaces("")
	assert.NoError(t, err)
	assert.Empty(t, spaces)
}

// PermittedSpaces devuelve una copia: mutarla no debe tocar la configuración.
func TestPermittedSpaces_DevuelveCopia(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	spaces, err := rsm.PermittedSpaces(space.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, spaces)

	spaces[0] = space.Space("mutado")
	again, err := rsm.PermittedSpaces(space.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, space.SpaceInternal, again[0], "la tabla compartida no debe mutar")
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccessSpace
// ──────────────────────────────────────────────────────────────────────────────

// Denegación por defecto: sin usuario o sin rol, ningún espacio es accesible.
func TestCanAccessSpace_SinUsuarioNiRolSiempreFalse(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	sinRol := &space.User{ID: "u1", Name: "Ana"}
	for _, s := range space.AllSpaces {
		assert.False(t, rsm.CanAccessSpace(nil, s), "usuario nil no accede a %q", s)
		assert.False(t, rsm.CanAccessSpace(sinRol, s), "usuario sin rol no accede a %q", s)
	}
}

func TestCanAccessSpace_RolInvalidoEsFalse(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	corrupto := &space.User{ID: "u1", Role: space.Role("ghost")}
	assert.False(t, rsm.CanAccessSpace(corrupto, space.SpaceInternal))
}

// Escenario: admin accede a los tres espacios.
func TestCanAccessSpace_AdminAccesoTotal(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	admin := &space.User{ID: "u1", Role: space.RoleAdmin}
	for _, s := range space.AllSpaces {
		assert.True(t, rsm.CanAccessSpace(admin, s), "admin debe acceder a %q", s)
	}
}

// Escenario: vendor solo ve su portal.
func TestCanAccessSpace_VendorRestringido(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	vendor := &space.User{ID: "u2", Role: space.RoleVendor}
	assert.True(t, rsm.CanAccessSpace(vendor, space.SpaceVendor))
	assert.False(t, rsm.CanAccessSpace(vendor, space.SpaceInternal))
	assert.False(t, rsm.CanAccessSpace(vendor, space.SpaceClient))
}

// El mapeo es inyectable: con una tabla alternativa las decisiones cambian
// sin tocar código.
func TestCanAccessSpace_MapeoAlternativoInyectado(t *testing.T) {
	alternativo := space.RoleSpaceMap{
		space.RoleVendor: {space.SpaceVendor, space.SpaceClient},
		space.RoleAdmin:  {space.SpaceInternal},
	}
	vendor := &space.User{ID: "u2", Role: space.RoleVendor}
	assert.True(t, alternativo.CanAccessSpace(vendor, space.SpaceClient),
		"el mapeo alternativo debe abrir client a vendor")
}

// ──────────────────────────────────────────────────────────────────────────────
// DefaultSpaceFor
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultSpaceFor_PrimerEspacioCanonico(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()

	casos := []struct {
		role space.Role
		want space.Space
	}{
		{space.RoleAdmin, space.SpaceInternal},
		{space.RoleSales, space.SpaceInternal},
		{space.RoleClientAdmin, space.SpaceClient},
		{space.RoleClientMember, space.SpaceClient},
		{space.RoleVendor, space.SpaceVendor},
	}
	for _, c := range casos {
		got, err := rsm.DefaultSpaceFor(c.role)
		require.NoError(t, err, "rol %q", c.role)
		assert.Equal(t, c.want, got, "rol %q no debe arrancar en un espacio ajeno", c.role)
	}
}

func TestDefaultSpaceFor_RolInvalidoRetornaError(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()
	_, err := rsm.DefaultSpaceFor(space.Role("ghost"))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}
