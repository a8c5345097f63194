package infra

// pdf.go — printable inventory report using go-pdf/fpdf.
// A4 portrait with a header, generation timestamp, and one row per product
// (name, category, unit, base price). Returned in memory so the handler can
// stream it without touching disk.

import (
	"bytes"
	"fmt"

	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerarInventarioPDF renders the current product catalog as a PDF report.
func GenerarInventarioPDF(generadoEn string, productos []model.Producto) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 28

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 9, "Reporte de Inventario", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Generado: %s", generadoEn), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Total de productos: %d", len(productos)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.42 // name
	col2 := contentW * 0.22 // category
	col3 := contentW * 0.16 // unit
	col4 := contentW * 0.20 // price

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Categoría", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, "Unidad", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 7, "Precio", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, producto := range productos {
		nombre := producto.Name
		if len(nombre) > 44 {
			nombre = nombre[:43] + "…"
		}
		pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, producto.Category, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, model.NormalizeUnit(producto.Unit), "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+producto.UnitPrice.StringFixed(0), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}
