package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhondav/agencia-api/internal/domain/space"
)

// El filtrado preserva el orden relativo original: [A(internal,client),
// B(vendor), C(internal)] con activo=internal → [A, C].
func TestVisibleNavigation_PreservaOrden(t *testing.T) {
	entries := []space.NavigationEntry{
		{Title: "A", Route: "/a", Spaces: []space.Space{space.SpaceInternal, space.SpaceClient}},
		{Title: "B", Route: "/b", Spaces: []space.Space{space.SpaceVendor}},
		{Title: "C", Route: "/c", Spaces: []space.Space{space.SpaceInternal}},
	}

	visible := space.VisibleNavigation(entries, space.SpaceInternal)
	require.Len(t, visible, 2)
	assert.Equal(t, "A", visible[0].Title)
	assert.Equal(t, "C", visible[1].Title)
}

// Espacio ausente de todos los conjuntos → secuencia vacía, sin error.
func TestVisibleNavigation_EspacioSinEntradas(t *testing.T) {
	entries := []space.NavigationEntry{
		{Title: "A", Route: "/a", Spaces: []space.Space{space.SpaceInternal}},
	}
	visible := space.VisibleNavigation(entries, space.SpaceVendor)
	assert.Empty(t, visible)
}

// Escenario vendor: con el menú canónico y activo=vendor, solo aparecen
// entradas cuyo conjunto incluye vendor.
func TestVisibleNavigation_MenuCanonicoEnVendor(t *testing.T) {
	visible := space.VisibleNavigation(space.DefaultNavigation(), space.SpaceVendor)
	require.NotEmpty(t, visible)
	for _, e := range visible {
		assert.Contains(t, e.Spaces, space.SpaceVendor,
			"la entrada %q no debe mostrarse en vendor", e.Title)
	}
	// Las rutas exclusivas del staff interno no se filtran al portal proveedor.
	for _, e := range visible {
		assert.NotEqual(t, "/accounts", e.Route)
		assert.NotEqual(t, "/invoices", e.Route)
	}
}

// Toda entrada del menú canónico declara al menos un espacio.
func TestDefaultNavigation_EntradasBienFormadas(t *testing.T) {
	for _, e := range space.DefaultNavigation() {
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Route)
		assert.NotEmpty(t, e.Spaces, "la entrada %q debe declarar espacios", e.Title)
	}
}
