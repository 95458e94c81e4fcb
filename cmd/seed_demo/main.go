// seed_demo genera un script SQL para poblar cuentas y contactos de demostración
// a partir de un CSV separado por punto y coma (export típico de Excel).
//
// Uso: go run ./cmd/seed_demo [ruta/cuentas.csv]
// Por defecto busca cuentas.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/010_seed_demo.sql
//
// Columnas esperadas: tipo;nombre;nif;direccion;email;telefono;contacto;email_contacto
// Los exports de Excel suelen venir en ISO-8859-1; se detecta y convierte.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type cuenta struct {
	id           string
	kind         string
	name         string
	taxID        string
	address      string
	email        string
	phone        string
	contactName  string
	contactEmail string
}

func main() {
	csvPath := "cuentas.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	// Excel en Windows exporta ISO-8859-1; si el contenido no es UTF-8 válido
	// se reinterpreta antes de parsear.
	var src io.Reader = strings.NewReader(string(raw))
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	r := csv.NewReader(src)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var cuentas []cuenta
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
		// Saltar cabecera si la primera fila no parece un tipo válido
		if first {
			first = false
			if k := strings.ToLower(strings.TrimSpace(rec[0])); k != "client" && k != "vendor" {
				continue
			}
		}
		if len(rec) < 3 {
			continue
		}
		c := cuenta{
			id:    uuid.New().String(),
			kind:  strings.ToLower(strings.TrimSpace(rec[0])),
			name:  strings.TrimSpace(rec[1]),
			taxID: strings.TrimSpace(rec[2]),
		}
		if c.kind != "client" && c.kind != "vendor" {
			fmt.Fprintf(os.Stderr, "Tipo de cuenta desconocido %q (fila omitida)\n", rec[0])
			continue
		}
		if len(rec) > 3 {
			c.address = strings.TrimSpace(rec[3])
		}
		if len(rec) > 4 {
			c.email = strings.TrimSpace(rec[4])
		}
		if len(rec) > 5 {
			c.phone = strings.TrimSpace(rec[5])
		}
		if len(rec) > 6 {
			c.contactName = strings.TrimSpace(rec[6])
		}
		if len(rec) > 7 {
			c.contactEmail = strings.TrimSpace(rec[7])
		}
		if c.name == "" {
			continue
		}
		cuentas = append(cuentas, c)
	}

	if len(cuentas) == 0 {
		fmt.Fprintln(os.Stderr, "CSV sin filas válidas")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "010_seed_demo.sql")
	contactos, err := writeSeedSQL(outPath, filepath.Base(csvPath), cuentas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir seed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d cuentas, %d contactos\n", outPath, len(cuentas), contactos)
}

// writeSeedSQL escribe el script de seed creando el directorio destino si hace
// falta (un checkout recién clonado no trae migrations/). Devuelve cuántos
// contactos se incluyeron.
func writeSeedSQL(outPath, sourceName string, cuentas []cuenta) (int, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, fmt.Errorf("crear directorio: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("crear archivo: %w", err)
	}
	defer out.Close()

	out.WriteString("-- Cuentas y contactos de demostración\n")
	out.WriteString("-- Generado desde " + sourceName + " por cmd/seed_demo\n\n")

	contactos := 0
	for _, c := range cuentas {
		fmt.Fprintf(out, "INSERT INTO accounts (id, name, kind, tax_id, address, phone, email, status, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', %s, %s, %s, %s, 'active', NOW(), NOW())\n",
			c.id, escapeSQL(c.name), c.kind,
			sqlText(c.taxID), sqlText(c.address), sqlText(c.phone), sqlText(c.email))
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")

		if c.contactName != "" {
			fmt.Fprintf(out, "INSERT INTO contacts (id, account_id, name, email, phone, position, created_at, updated_at)\n")
			fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', %s, NULL, NULL, NOW(), NOW())\n",
				uuid.New().String(), c.id, escapeSQL(c.contactName), sqlText(c.contactEmail))
			out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
			contactos++
		}
		out.WriteString("\n")
	}
	return contactos, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// sqlText devuelve literal SQL citado, o NULL si el valor está vacío.
func sqlText(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
