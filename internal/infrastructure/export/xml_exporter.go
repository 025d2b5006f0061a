package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"
)

// XMLDocument XML canónico (C14N) del ledger y el SHA-256 hex de esos bytes.
type XMLDocument struct {
	Canonical []byte
	Digest    string
}

// XMLExporter construye el XML del ledger:
//
//	<InventoryLedger key product location entries>
//	  <Change timestamp netChange cumulative/>...
//	  <Balance>n</Balance>
//	</InventoryLedger>
//
// GeneratedAt no forma parte del documento; el mismo ledger produce siempre el mismo digest.
type XMLExporter struct{}

// NewXMLExporter crea el exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// Export genera el documento canónico y su digest.
func (e *XMLExporter) Export(st Statement) (*XMLDocument, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("InventoryLedger")
	root.CreateAttr("key", st.Relation.Key)
	root.CreateAttr("product", st.Relation.ProductName)
	root.CreateAttr("location", st.Relation.LocationName)
	root.CreateAttr("entries", strconv.Itoa(len(st.Changes)))

	for _, l := range st.Lines() {
		el := root.CreateElement("Change")
		el.CreateAttr("timestamp", l.Timestamp.Format(timestampLayout))
		el.CreateAttr("netChange", l.NetChange.String())
		el.CreateAttr("cumulative", l.Cumulative.String())
	}
	root.CreateElement("Balance").SetText(st.Balance().String())

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	canonical, err := canonicalizeXML(raw)
	if err != nil {
		return nil, fmt.Errorf("export: canonicalizar XML: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return &XMLDocument{Canonical: canonical, Digest: hex.EncodeToString(sum[:])}, nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
