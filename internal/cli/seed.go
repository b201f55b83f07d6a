package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/revenue-api/internal/application/catalog"
	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/bootstrap"
	"github.com/jhoicas/revenue-api/internal/domain"
)

// catalogColumns orden esperado de columnas del CSV de catálogo.
var catalogColumns = []string{"name", "description", "version", "category"}

// charsets codificaciones aceptadas por --charset. Las hojas de cálculo exportadas
// en Windows para catálogos polacos suelen venir en windows-1250.
var charsets = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
	"windows-1250": charmap.Windows1250,
	"cp1250":       charmap.Windows1250,
	"iso-8859-2":   charmap.ISO8859_2,
	"latin2":       charmap.ISO8859_2,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

// seedResult resumen de una carga.
type seedResult struct {
	Created    int
	Duplicates int
}

func newSeedCommand(rt *runtime) *cobra.Command {
	var (
		file      string
		charset   string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga productos de software desde un CSV",
		Long: `Carga el catálogo de productos desde un CSV con columnas name,description,version,category.
La primera fila puede ser cabecera. Los productos ya existentes se cuentan como duplicados.

Ejemplos:
  revenuectl seed --file catalogo.csv
  revenuectl seed --file katalog.csv --charset windows-1250 --delimiter ";"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			comma, err := parseDelimiter(delimiter)
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("abrir CSV: %w", err)
			}
			defer f.Close()

			rows, err := readCatalog(f, charset, comma)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := bootstrap.OpenStorage(ctx, rt.cfg, rt.log)
			if err != nil {
				return err
			}
			defer store.Close()

			uc := catalog.NewCatalogUseCase(store.Software, store.Discounts)
			res, err := seedCatalog(ctx, uc, rows)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "productos creados: %d, duplicados: %d\n", res.Created, res.Duplicates)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Ruta del CSV")
	cmd.Flags().StringVar(&charset, "charset", "utf-8", "Codificación del archivo (utf-8, windows-1250, iso-8859-2...)")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "Separador de columnas")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("el separador debe ser un único carácter: %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// decoderReader envuelve r para convertir desde charset a UTF-8.
func decoderReader(r io.Reader, charset string) (io.Reader, error) {
	enc, ok := charsets[strings.ToLower(strings.TrimSpace(charset))]
	if !ok {
		return nil, fmt.Errorf("codificación no soportada: %s", charset)
	}
	if enc == unicode.UTF8 {
		// Quita el BOM si viene.
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// readCatalog lee y valida las filas del CSV. La primera fila se descarta si coincide con catalogColumns.
func readCatalog(r io.Reader, charset string, comma rune) ([]dto.CreateSoftwareRequest, error) {
	dec, err := decoderReader(r, charset)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(dec)
	reader.Comma = comma
	reader.FieldsPerRecord = len(catalogColumns)
	reader.TrimLeadingSpace = true

	validate := validator.New(validator.WithRequiredStructEnabled())

	var rows []dto.CreateSoftwareRequest
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("CSV: %w", err)
		}
		if line == 1 && isHeader(record) {
			continue
		}
		req := dto.CreateSoftwareRequest{
			Name:        strings.TrimSpace(record[0]),
			Description: strings.TrimSpace(record[1]),
			Version:     strings.TrimSpace(record[2]),
			Category:    strings.TrimSpace(record[3]),
		}
		if err := validate.Struct(req); err != nil {
			return nil, fmt.Errorf("fila %d: %w", line, err)
		}
		rows = append(rows, req)
	}
	return rows, nil
}

func isHeader(record []string) bool {
	for i, col := range catalogColumns {
		if !strings.EqualFold(strings.TrimSpace(record[i]), col) {
			return false
		}
	}
	return true
}

// seedCatalog crea los productos; los duplicados no detienen la carga.
func seedCatalog(ctx context.Context, uc *catalog.CatalogUseCase, rows []dto.CreateSoftwareRequest) (seedResult, error) {
	var res seedResult
	for i, row := range rows {
		if _, err := uc.CreateProduct(ctx, row); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				res.Duplicates++
				continue
			}
			return res, fmt.Errorf("producto %d (%s): %w", i+1, row.Name, err)
		}
		res.Created++
	}
	return res, nil
}
