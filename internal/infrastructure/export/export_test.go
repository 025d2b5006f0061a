package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/infrastructure/export"
)

var t0 = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func statement() export.Statement {
	return export.Statement{
		Relation: entity.ProductLocation{ProductName: "Widget", LocationName: "Warehouse-A", Key: "Widget@Warehouse-A"},
		Changes: []entity.InventoryChange{
			{Timestamp: t0, NetChange: decimal.NewFromInt(100)},
			{Timestamp: t0.Add(2 * time.Hour), NetChange: decimal.NewFromInt(50)},
			{Timestamp: t0.Add(4 * time.Hour), NetChange: decimal.NewFromInt(-30)},
		},
		GeneratedAt: t0.Add(24 * time.Hour),
	}
}

func TestStatement_LinesYBalance(t *testing.T) {
	st := statement()
	lines := st.Lines()
	require.Len(t, lines, 3)
	assert.True(t, decimal.NewFromInt(150).Equal(lines[1].Cumulative))
	assert.True(t, decimal.NewFromInt(120).Equal(lines[2].Cumulative))
	assert.True(t, decimal.NewFromInt(120).Equal(st.Balance()))
}

func TestXMLExporter_DocumentoCanonico(t *testing.T) {
	doc, err := export.NewXMLExporter().Export(statement())
	require.NoError(t, err)

	xml := string(doc.Canonical)
	assert.Contains(t, xml, `<InventoryLedger`)
	assert.Contains(t, xml, `key="Widget@Warehouse-A"`)
	assert.Contains(t, xml, `cumulative="150"`)
	assert.Contains(t, xml, `timestamp="2024-01-01T12:00:00.000Z"`)
	assert.Contains(t, xml, `<Balance>120</Balance>`)
	assert.Len(t, doc.Digest, 64)
}

func TestXMLExporter_DigestEstable(t *testing.T) {
	st := statement()
	a, err := export.NewXMLExporter().Export(st)
	require.NoError(t, err)

	st.GeneratedAt = time.Now()
	b, err := export.NewXMLExporter().Export(st)
	require.NoError(t, err)
	assert.Equal(t, a.Digest, b.Digest, "la fecha de generación no afecta el digest")

	st.Changes[0].NetChange = decimal.NewFromInt(101)
	c, err := export.NewXMLExporter().Export(st)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest, c.Digest)
}

func TestPDFExporter_GeneraPDF(t *testing.T) {
	st := statement()
	xmlDoc, err := export.NewXMLExporter().Export(st)
	require.NoError(t, err)

	out, err := export.NewPDFExporter("scheduling-api").Export(st, xmlDoc.Digest)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestPDFExporter_LedgerVacio(t *testing.T) {
	st := statement()
	st.Changes = nil
	out, err := export.NewPDFExporter("scheduling-api").Export(st, "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
