package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
	"github.com/jhoicas/Scheduling-api/internal/infrastructure/export"
)

// HeaderLedgerDigest lleva el SHA-256 del XML canónico del ledger.
const HeaderLedgerDigest = "X-Ledger-Digest"

// ExportHandler sirve el ledger de una relación como XML canónico o extracto PDF.
type ExportHandler struct {
	svc *inventory.Service
	xml *export.XMLExporter
	pdf *export.PDFExporter
}

// NewExportHandler construye el handler.
func NewExportHandler(svc *inventory.Service, xml *export.XMLExporter, pdf *export.PDFExporter) *ExportHandler {
	return &ExportHandler{svc: svc, xml: xml, pdf: pdf}
}

func (h *ExportHandler) statement(key string) (export.Statement, error) {
	rel, err := h.svc.GetProductLocation(key)
	if err != nil {
		return export.Statement{}, err
	}
	return export.Statement{
		Relation:    rel.ProductLocation,
		Changes:     rel.Ledger.GetAllInventoryChanges(),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// XML godoc
// @Summary      Exportar ledger como XML canónico
// @Description  El header X-Ledger-Digest trae el SHA-256 hex del documento.
// @Tags         export
// @Produce      xml
// @Param        key  path  string  true  "producto@ubicacion"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/export.xml [get]
func (h *ExportHandler) XML(c *fiber.Ctx) error {
	st, err := h.statement(c.Params("key"))
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.xml.Export(st)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(HeaderLedgerDigest, doc.Digest)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(doc.Canonical)
}

// PDF godoc
// @Summary      Exportar extracto PDF del ledger
// @Description  Incluye el digest del XML canónico como texto y QR.
// @Tags         export
// @Produce      application/pdf
// @Param        key  path  string  true  "producto@ubicacion"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/export.pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	st, err := h.statement(c.Params("key"))
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.xml.Export(st)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.pdf.Export(st, doc.Digest)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(HeaderLedgerDigest, doc.Digest)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ledger.pdf"`)
	return c.Send(out)
}
