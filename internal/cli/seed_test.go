package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/revenue-api/internal/application/catalog"
	"github.com/jhoicas/revenue-api/internal/infrastructure/memory"
)

func encode1250(t *testing.T, s string) []byte {
	t.Helper()
	out, err := charmap.Windows1250.NewEncoder().String(s)
	require.NoError(t, err)
	return []byte(out)
}

func TestReadCatalog_Windows1250(t *testing.T) {
	raw := encode1250(t, "name;description;version;category\nKsięgowość;Program dla małych firm;2.1;Finanse\n")

	rows, err := readCatalog(bytes.NewReader(raw), "windows-1250", ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Księgowość", rows[0].Name)
	assert.Equal(t, "Program dla małych firm", rows[0].Description)
	assert.Equal(t, "2.1", rows[0].Version)
	assert.Equal(t, "Finanse", rows[0].Category)
}

func TestReadCatalog_UTF8ConBOMYSinCabecera(t *testing.T) {
	raw := "\xef\xbb\xbfOffice, Suite ofimática, 1.0, Oficina\nERP,Gestión,3.0,Finanzas\n"

	rows, err := readCatalog(strings.NewReader(raw), "utf-8", ',')
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Office", rows[0].Name)
	assert.Equal(t, "Suite ofimática", rows[0].Description)
	assert.Equal(t, "ERP", rows[1].Name)
}

func TestReadCatalog_ColumnasIncorrectas(t *testing.T) {
	_, err := readCatalog(strings.NewReader("a,b,c\n"), "utf-8", ',')
	require.Error(t, err)
}

func TestReadCatalog_FilaInvalida(t *testing.T) {
	_, err := readCatalog(strings.NewReader("Office,desc,1.0,Oficina\n,desc,1.0,Oficina\n"), "utf-8", ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fila 2")
}

func TestReadCatalog_CharsetDesconocido(t *testing.T) {
	_, err := readCatalog(strings.NewReader(""), "ebcdic", ',')
	require.Error(t, err)
}

func TestParseDelimiter(t *testing.T) {
	r, err := parseDelimiter(";")
	require.NoError(t, err)
	assert.Equal(t, ';', r)

	r, err = parseDelimiter(`\t`)
	require.NoError(t, err)
	assert.Equal(t, '\t', r)

	_, err = parseDelimiter(";;")
	require.Error(t, err)
}

func TestSeedCatalog_CuentaDuplicados(t *testing.T) {
	repos := memory.NewStore().Repositories()
	uc := catalog.NewCatalogUseCase(repos.Software, repos.Discounts)

	rows, err := readCatalog(strings.NewReader("Office,Suite,1.0,Oficina\nERP,Gestión,3.0,Finanzas\nOffice,Suite,1.0,Oficina\n"), "utf-8", ',')
	require.NoError(t, err)

	res, err := seedCatalog(context.Background(), uc, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Duplicates)
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SWEEPER_ENABLED", "false")

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedCommand_Memoria(t *testing.T) {
	path := filepath.Join(t.TempDir(), "katalog.csv")
	require.NoError(t, os.WriteFile(path, encode1250(t, "Księgi;Rachunkowość;1.0;Finanse\n"), 0o600))

	out, err := runRoot(t, "seed", "--file", path, "--charset", "windows-1250", "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, out, "productos creados: 1, duplicados: 0")
}

func TestSweepCommand_SinVencidos(t *testing.T) {
	out, err := runRoot(t, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "contratos desactivados: 0, pagos reembolsados: 0")
}

func TestMigrateCommand_RequierePostgres(t *testing.T) {
	_, err := runRoot(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER=postgres")
}

func TestCreateAdminCommand(t *testing.T) {
	out, err := runRoot(t, "create-admin", "--username", "root", "--password", "supersecreta")
	require.NoError(t, err)
	assert.Contains(t, out, `admin "root" creado`)

	_, err = runRoot(t, "create-admin", "--username", "root", "--password", "corta")
	require.Error(t, err)
}
