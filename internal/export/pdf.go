package export

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin     = 10.0
	pdfLineHeight = 3.6
	pdfPadding    = 1.5
)

// column widths in mm, landscape A4
var pdfWidths = []float64{14, 58, 46, 58, 52, 49}

// WritePDF renders a landscape A4 table of weeks.
func WritePDF(out io.Writer, g models.Group, weeks []models.Week) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageH := pdf.GetPageSize()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(Title), "", 1, "C", false, 0, "")
	if g.Name != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("Turma: %s", g.Name)), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetDrawColor(0xE5, 0xE7, 0xEB)
	pdf.SetLineWidth(0.2)
	pdfHeader(pdf, tr)

	pdf.SetFont("Helvetica", "", 7)
	for i, w := range weeks {
		cells := row(w)
		lines := make([][][]byte, len(cells))
		maxLines := 1
		for c, text := range cells {
			lines[c] = pdf.SplitLines([]byte(tr(text)), pdfWidths[c]-2*pdfPadding)
			if n := len(lines[c]); n > maxLines {
				maxLines = n
			}
		}
		h := float64(maxLines)*pdfLineHeight + 2*pdfPadding

		if pdf.GetY()+h > pageH-pdfMargin {
			pdf.AddPage()
			pdfHeader(pdf, tr)
			pdf.SetFont("Helvetica", "", 7)
		}

		if i%2 == 1 {
			pdf.SetFillColor(0xF9, 0xFA, 0xFB)
		} else {
			pdf.SetFillColor(0xFF, 0xFF, 0xFF)
		}
		x, y := pdf.GetXY()
		for c := range cells {
			pdf.Rect(x, y, pdfWidths[c], h, "FD")
			align := "L"
			if c == 0 {
				align = "C"
			}
			for l, line := range lines[c] {
				pdf.SetXY(x+pdfPadding, y+pdfPadding+float64(l)*pdfLineHeight)
				pdf.CellFormat(pdfWidths[c]-2*pdfPadding, pdfLineHeight, string(line), "", 0, align, false, 0, "")
			}
			x += pdfWidths[c]
		}
		pdf.SetXY(pdfMargin, y+h)
	}

	if len(weeks) == 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 8, tr("Nenhuma semana cadastrada."), "", 1, "C", false, 0, "")
	}

	return pdf.Output(out)
}

func pdfHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(0x3B, 0x82, 0xF6)
	pdf.SetTextColor(0xF5, 0xF5, 0xF5)
	for c, title := range Columns {
		pdf.CellFormat(pdfWidths[c], 9, tr(title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}
