package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/domain/space"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de la sesión: transiciones solo vía RequestSpaceChange,
// denegación como no-op silencioso.
// ──────────────────────────────────────────────────────────────────────────────

func adminSession() *space.SessionState {
	return space.NewSessionState(
		&space.User{ID: "u1", Name: "Ana", Role: space.RoleAdmin},
		space.DefaultRoleSpaceMap(),
	)
}

func vendorSession() *space.SessionState {
	return space.NewSessionState(
		&space.User{ID: "u2", Name: "Proveedor", Role: space.RoleVendor},
		space.DefaultRoleSpaceMap(),
	)
}

// Escenario admin: transición a cualquiera de los tres espacios funciona.
func TestRequestSpaceChange_AdminCambiaATodos(t *testing.T) {
	st := adminSession()
	require.Equal(t, space.SpaceInternal, st.ActiveSpace(), "admin arranca en internal")

	for _, s := range []space.Space{space.SpaceClient, space.SpaceVendor, space.SpaceInternal} {
		changed := st.RequestSpaceChange(s)
		assert.True(t, changed, "admin debe poder activar %q", s)
		assert.Equal(t, s, st.ActiveSpace())
	}
}

// Transición permitida idempotente: repetir el mismo destino no altera nada.
func TestRequestSpaceChange_IdempotenteEnDestinoPermitido(t *testing.T) {
	st := adminSession()
	require.True(t, st.RequestSpaceChange(space.SpaceClient))

	for i := 0; i < 3; i++ {
		assert.True(t, st.RequestSpaceChange(space.SpaceClient))
		assert.Equal(t, space.SpaceClient, st.ActiveSpace(),
			"repetir la transición debe dejar activeSpace igual")
	}
}

// Denegación = no-op: el espacio activo queda exactamente como estaba.
func TestRequestSpaceChange_DenegadoEsNoOp(t *testing.T) {
	st := vendorSession()
	require.Equal(t, space.SpaceVendor, st.ActiveSpace(), "vendor arranca en su portal")

	changed := st.RequestSpaceChange(space.SpaceInternal)
	assert.False(t, changed, "vendor no debe entrar a internal")
	assert.Equal(t, space.SpaceVendor, st.ActiveSpace(),
		"la denegación no debe mover el espacio activo")

	changed = st.RequestSpaceChange(space.SpaceClient)
	assert.False(t, changed)
	assert.Equal(t, space.SpaceVendor, st.ActiveSpace())
}

// Escenario no autenticado: cualquier petición de cambio es no-op.
func TestRequestSpaceChange_SinUsuarioTodoDenegado(t *testing.T) {
	st := space.NewSessionState(nil, space.DefaultRoleSpaceMap())
	assert.Empty(t, st.ActiveSpace(), "sin usuario no hay espacio activo")

	for _, s := range space.AllSpaces {
		assert.False(t, st.RequestSpaceChange(s), "sin usuario no se activa %q", s)
		assert.Empty(t, st.ActiveSpace())
	}
}

// El espacio inicial se resuelve con el rol, nunca "internal" a ciegas.
func TestNewSessionState_EspacioInicialSegunRol(t *testing.T) {
	rsm := space.DefaultRoleSpaceMap()

	cliente := space.NewSessionState(&space.User{ID: "u3", Role: space.RoleClientMember}, rsm)
	assert.Equal(t, space.SpaceClient, cliente.ActiveSpace(),
		"client_member no debe defaultear a internal")

	vendor := space.NewSessionState(&space.User{ID: "u4", Role: space.RoleVendor}, rsm)
	assert.Equal(t, space.SpaceVendor, vendor.ActiveSpace())
}

func TestReset_VuelveAlEstadoNoAutenticado(t *testing.T) {
	st := adminSession()
	st.Reset()
	assert.Nil(t, st.User())
	assert.Empty(t, st.ActiveSpace())
	assert.False(t, st.RequestSpaceChange(space.SpaceInternal),
		"tras logout todo cambio de espacio queda denegado")
}
