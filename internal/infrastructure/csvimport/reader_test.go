package csvimport_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
	"github.com/jhoicas/Scheduling-api/internal/infrastructure/csvimport"
)

func TestRead_ConEncabezado(t *testing.T) {
	in := "product,location,timestamp,op,quantity\n" +
		"Widget,Warehouse-A,2024-01-01T08:00:00Z,add,100\n" +
		"Widget, Warehouse-A ,1704103200000,REMOVE,30.5\n"

	rows, err := csvimport.Read(strings.NewReader(in), csvimport.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Widget", rows[0].Product)
	assert.Equal(t, ledger.OpAdd, rows[0].Op.Kind)
	assert.True(t, rows[0].Op.Timestamp.Equal(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	assert.Equal(t, "Warehouse-A", rows[1].Location)
	assert.Equal(t, ledger.OpRemove, rows[1].Op.Kind)
	assert.Equal(t, "30.5", rows[1].Op.Quantity.String())
	assert.True(t, rows[1].Op.Timestamp.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
}

func TestRead_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("Café,Bodega Ñuñoa,2024-01-01T08:00:00Z,add,1\n")
	require.NoError(t, err)

	rows, err := csvimport.Read(bytes.NewReader([]byte(raw)), csvimport.Options{Latin1: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café", rows[0].Product)
	assert.Equal(t, "Bodega Ñuñoa", rows[0].Location)
}

func TestRead_Delimitador(t *testing.T) {
	rows, err := csvimport.Read(strings.NewReader("A;B;2024-01-01T08:00:00Z;update;7\n"), csvimport.Options{Delimiter: ';'})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ledger.OpUpdate, rows[0].Op.Kind)
}

func TestRead_Errores(t *testing.T) {
	for name, in := range map[string]string{
		"columnas":  "A,B,2024-01-01T08:00:00Z,add\n",
		"timestamp": "A,B,ayer,add,1\n",
		"cantidad":  "A,B,2024-01-01T08:00:00Z,add,mucho\n",
		"nan":       "A,B,2024-01-01T08:00:00Z,add,NaN\n",
		"infinito":  "A,B,2024-01-01T08:00:00Z,add,+Inf\n",
	} {
		_, err := csvimport.Read(strings.NewReader(in), csvimport.Options{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}
