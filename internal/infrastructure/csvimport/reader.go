// Package csvimport lee operaciones de inventario desde CSV con columnas
// product,location,timestamp,op,quantity. La fila de encabezado es opcional.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
)

const columns = 5

// Options opciones de lectura.
type Options struct {
	Latin1    bool // entrada en ISO-8859-1
	Delimiter rune // ',' por defecto
}

// Read parsea todo el CSV. Los errores llevan el número de línea y envuelven domain.ErrInvalidInput.
func Read(r io.Reader, opts Options) ([]inventory.ImportRow, error) {
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columns
	cr.TrimLeadingSpace = true
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	var rows []inventory.ImportRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %v: %w", err, domain.ErrInvalidInput)
		}
		line, _ := cr.FieldPos(0)
		if len(rows) == 0 && isHeader(rec) {
			continue
		}
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row.Line = line
		rows = append(rows, row)
	}
	return rows, nil
}

func isHeader(rec []string) bool {
	return strings.EqualFold(strings.TrimSpace(rec[0]), "product")
}

func parseRecord(rec []string) (inventory.ImportRow, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	ts, err := parseTimestamp(rec[2])
	if err != nil {
		return inventory.ImportRow{}, err
	}
	qty, err := parseQuantity(rec[4])
	if err != nil {
		return inventory.ImportRow{}, err
	}
	return inventory.ImportRow{
		Product:  rec[0],
		Location: rec[1],
		Op: ledger.Operation{
			Kind:      strings.ToLower(rec[3]),
			Timestamp: ts,
			Quantity:  qty,
		},
	}, nil
}

// parseQuantity acepta decimales exactos; lo que solo entiende strconv (NaN, Inf, hex) pasa por
// ledger.QuantityFromFloat, que rechaza los no finitos.
func parseQuantity(s string) (decimal.Decimal, error) {
	if q, err := decimal.NewFromString(s); err == nil {
		return q, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cantidad %q: %w", s, domain.ErrInvalidInput)
	}
	return ledger.QuantityFromFloat(f)
}

// parseTimestamp acepta RFC3339 o milisegundos Unix.
func parseTimestamp(s string) (time.Time, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, domain.ErrInvalidInput)
	}
	return t, nil
}
