package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/domain/space"
)

func TestSessionStore_GetOrCreate_ReusaSesion(t *testing.T) {
	store := NewSessionStore(space.DefaultRoleSpaceMap())
	user := &space.User{ID: "u-1", Role: space.RoleAdmin}

	first := store.GetOrCreate(user)
	require.NotNil(t, first)
	assert.Equal(t, space.SpaceInternal, first.ActiveSpace())

	// Cambiamos de espacio y la siguiente lectura debe conservar el estado.
	require.True(t, first.RequestSpaceChange(space.SpaceVendor))
	second := store.GetOrCreate(user)
	assert.Same(t, first, second)
	assert.Equal(t, space.SpaceVendor, second.ActiveSpace())
}

func TestSessionStore_Drop_ReiniciaEspacio(t *testing.T) {
	store := NewSessionStore(space.DefaultRoleSpaceMap())
	user := &space.User{ID: "u-2", Role: space.RoleAdmin}

	st := store.GetOrCreate(user)
	require.True(t, st.RequestSpaceChange(space.SpaceClient))

	store.Drop(user.ID)

	fresh := store.GetOrCreate(user)
	assert.NotSame(t, st, fresh)
	assert.Equal(t, space.SpaceInternal, fresh.ActiveSpace())
}

func TestSessionStore_UsuarioNulo_SesionEfimera(t *testing.T) {
	store := NewSessionStore(space.DefaultRoleSpaceMap())

	st := store.GetOrCreate(nil)
	require.NotNil(t, st)
	assert.Nil(t, st.User())
	assert.Empty(t, st.ActiveSpace())
}
