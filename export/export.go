package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/curewell/carepartner/core"
)

// Disclaimer is the fixed notice printed at the foot of every exported report.
const Disclaimer = "Disclaimer: This is an AI-generated response for informational purposes only. " +
	"Please consult with a qualified healthcare professional for medical advice."

const (
	pageMarginLeft = 20.0
	textWidth      = 170.0
	disclaimerY    = 250.0
)

// PDFExporter renders reports as single-page PDF artifacts named
// medical-report-<id>.pdf.
type PDFExporter struct{}

// Interface compliance (compile-time assertion)
var _ core.Exporter = (*PDFExporter)(nil)

// NewPDFExporter constructs a stateless PDF exporter.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

// Export implements core.Exporter. The report is never mutated, and the PDF
// metadata dates are pinned to the report timestamp so repeated exports of
// the same report are byte-identical.
func (e *PDFExporter) Export(r core.Report) (core.Artifact, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(r.CreatedAt)
	pdf.SetModificationDate(r.CreatedAt)
	pdf.SetLeftMargin(pageMarginLeft)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 255)
	pdf.Cell(textWidth, 10, "Medical Consultation Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(textWidth, 8, fmt.Sprintf("ID: %s", r.ID))
	pdf.Ln(8)
	pdf.Cell(textWidth, 8, fmt.Sprintf("Timestamp: %s", r.CreatedAt.Format("1/2/2006, 3:04:05 PM")))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(textWidth, 8, "Patient Query:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(textWidth, 6, r.Query, "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(textWidth, 8, "Medical Response:")
	pdf.Ln(8)
	for _, line := range ParseLines(r.Response) {
		for _, seg := range line.Segments {
			style := ""
			if seg.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 12)
			pdf.Write(6, seg.Text)
		}
		pdf.Ln(8)
	}

	pdf.SetY(disclaimerY)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(textWidth, 5, Disclaimer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return core.Artifact{}, fmt.Errorf("render pdf: %w", err)
	}
	return core.Artifact{
		Filename:    fmt.Sprintf("medical-report-%s.pdf", r.ID),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}
