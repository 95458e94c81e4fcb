package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSeedSQL_CreaDirectorioDestino(t *testing.T) {
	// El directorio migrations/ no existe en un checkout limpio; el generador
	// debe crearlo en vez de fallar.
	outPath := filepath.Join(t.TempDir(), "migrations", "010_seed_demo.sql")

	cuentas := []cuenta{
		{
			id:           "11111111-1111-1111-1111-111111111111",
			kind:         "client",
			name:         "Agencia O'Brien",
			taxID:        "B12345678",
			contactName:  "Ana Gómez",
			contactEmail: "ana@obrien.es",
		},
		{
			id:   "22222222-2222-2222-2222-222222222222",
			kind: "vendor",
			name: "Estudio Delta",
		},
	}

	contactos, err := writeSeedSQL(outPath, "cuentas.csv", cuentas)
	require.NoError(t, err)
	assert.Equal(t, 1, contactos)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	sql := string(raw)
	assert.Contains(t, sql, "INSERT INTO accounts")
	assert.Contains(t, sql, "INSERT INTO contacts")
	// Las comillas simples del nombre deben ir escapadas.
	assert.Contains(t, sql, "Agencia O''Brien")
	assert.Contains(t, sql, "ON CONFLICT (id) DO NOTHING;")
}

func TestSQLText(t *testing.T) {
	assert.Equal(t, "NULL", sqlText(""))
	assert.Equal(t, "'B12345678'", sqlText("B12345678"))
	assert.Equal(t, "'O''Brien'", sqlText("O'Brien"))
}
