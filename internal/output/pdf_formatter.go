package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders an A4 report using the core PDF fonts.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle(report.Title, true)

	// Core fonts are cp1252, which covers £ and the bullet.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	w := &pdfWriter{pdf: pdf, tr: tr}

	pdf.AddPage()
	w.title(report)
	w.summary(report.Summary)
	for _, t := range report.Tables {
		w.table(t)
	}
	w.notes(append(append([]string{}, report.Notes...), DefaultAssumptions...))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) title(report *Report) {
	w.pdf.SetFont("Arial", "B", 18)
	w.pdf.SetTextColor(0, 51, 102)
	w.pdf.CellFormat(contentWidth, 10, w.tr(report.Title), "", 1, "L", false, 0, "")

	w.pdf.SetFont("Arial", "I", 9)
	w.pdf.SetTextColor(120, 120, 120)
	sub := fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006"))
	if report.Subtitle != "" {
		sub = report.Subtitle + " | " + sub
	}
	w.pdf.CellFormat(contentWidth, 6, w.tr(sub), "", 1, "L", false, 0, "")
	w.pdf.Ln(4)
}

func (w *pdfWriter) summary(fields []Field) {
	if len(fields) == 0 {
		return
	}
	w.pdf.SetFillColor(245, 247, 250)
	w.pdf.SetDrawColor(200, 200, 200)
	for i, f := range fields {
		fill := i%2 == 0
		w.pdf.SetFont("Arial", "", 10)
		w.pdf.SetTextColor(80, 80, 80)
		w.pdf.CellFormat(contentWidth*0.6, 7, w.tr(f.Label), "B", 0, "L", fill, 0, "")
		w.pdf.SetFont("Arial", "B", 10)
		w.pdf.SetTextColor(30, 30, 30)
		w.pdf.CellFormat(contentWidth*0.4, 7, w.tr(f.Value), "B", 1, "R", fill, 0, "")
	}
	w.pdf.Ln(6)
}

func (w *pdfWriter) table(t Table) {
	if len(t.Columns) == 0 {
		return
	}
	if t.Title != "" {
		w.pdf.SetFont("Arial", "B", 12)
		w.pdf.SetTextColor(0, 51, 102)
		w.pdf.CellFormat(contentWidth, 8, w.tr(t.Title), "", 1, "L", false, 0, "")
	}

	widths := make([]float64, len(t.Columns))
	for i := range widths {
		widths[i] = contentWidth / float64(len(t.Columns))
	}

	w.header(t.Columns, widths)
	for _, row := range t.Rows {
		if w.pdf.GetY() > 297-marginBottom-10 {
			w.pdf.AddPage()
			w.header(t.Columns, widths)
		}
		w.pdf.SetFillColor(250, 250, 250)
		w.pdf.SetTextColor(50, 50, 50)
		w.pdf.SetFont("Arial", "", 8)
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			w.pdf.CellFormat(widths[i], 5, w.tr(cell), "1", 0, align(i), true, 0, "")
		}
		w.pdf.Ln(-1)
	}
	w.pdf.Ln(6)
}

func (w *pdfWriter) header(columns []string, widths []float64) {
	w.pdf.SetFillColor(0, 51, 102)
	w.pdf.SetTextColor(255, 255, 255)
	w.pdf.SetFont("Arial", "B", 8)
	for i, col := range columns {
		w.pdf.CellFormat(widths[i], 6, w.tr(col), "1", 0, align(i), true, 0, "")
	}
	w.pdf.Ln(-1)
}

func (w *pdfWriter) notes(notes []string) {
	if len(notes) == 0 {
		return
	}
	w.pdf.SetFont("Arial", "I", 8)
	w.pdf.SetTextColor(120, 120, 120)
	for _, n := range notes {
		w.pdf.MultiCell(contentWidth, 4, w.tr("• "+n), "", "L", false)
	}
}

func align(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}
