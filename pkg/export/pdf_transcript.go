package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageLeftMargin   = 10.0
	pageTopMargin    = 15.0
	pageBottomMargin = 15.0

	tableHeadHeight = 8.0
	tableRowHeight  = 7.0
	legendRowHeight = 6.0
)

// TranscriptPDF renders a Transcript into a paginated A4 document.
type TranscriptPDF struct{}

// NewTranscriptPDF constructs a PDF transcript renderer.
func NewTranscriptPDF() *TranscriptPDF {
	return &TranscriptPDF{}
}

// Render creates the printable transcript. Page breaks are driven by the
// emitted row positions, so arbitrarily long course lists flow onto
// continuation pages from the fixed top margin.
func (e *TranscriptPDF) Render(doc Transcript) ([]byte, error) {
	if len(doc.Rows) == 0 {
		return nil, fmt.Errorf("transcript requires at least one row")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeftMargin, pageTopMargin, pageLeftMargin)
	pdf.SetAutoPageBreak(false, pageBottomMargin)
	pdf.AddPage()

	_, pageHeight := pdf.GetPageSize()
	usableBottom := pageHeight - pageBottomMargin
	ensure := func(height float64) {
		if pdf.GetY()+height > usableBottom {
			pdf.AddPage()
			pdf.SetY(pageTopMargin)
		}
	}

	// Title block.
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, strings.ToUpper(doc.Institution), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, "Academic Transcript", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Metadata block.
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", doc.GeneratedAt.Format("2 January 2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Courses: %d    Total credit hours: %d", doc.CourseCount, doc.TotalCredits), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Headline aggregate.
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, fmt.Sprintf("CGPA (%s scale): %.2f  -  %s", doc.ScaleName, doc.Average, doc.Classification), "", 1, "L", false, 0, "")
	if doc.ShowEquivalent {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("4.0 scale equivalent: %.2f", doc.Equivalent), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	widths := []float64{15, 55, 25, 30, 30, 35}
	headers := []string{"S/N", "Course", "Grade", "Credits", "Points", "Quality Pts"}
	drawHead := func() {
		pdf.SetFont("Arial", "B", 10)
		for i, header := range headers {
			pdf.CellFormat(widths[i], tableHeadHeight, header, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	ensure(tableHeadHeight + tableRowHeight)
	drawHead()
	for _, row := range doc.Rows {
		if pdf.GetY()+tableRowHeight > usableBottom {
			pdf.AddPage()
			pdf.SetY(pageTopMargin)
			drawHead()
		}
		cells := []string{
			fmt.Sprintf("%d", row.Serial),
			row.Code,
			row.Grade,
			fmt.Sprintf("%d", row.CreditHours),
			fmt.Sprintf("%.1f", row.Points),
			fmt.Sprintf("%.1f", row.QualityPoints),
		}
		aligns := []string{"C", "L", "C", "C", "C", "C"}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], tableRowHeight, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Totals row.
	ensure(tableRowHeight)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], tableRowHeight, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], tableRowHeight, fmt.Sprintf("%d", doc.TotalCredits), "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[4], tableRowHeight, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[5], tableRowHeight, fmt.Sprintf("%.1f", doc.TotalQualityPoints), "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.Ln(4)

	// Grade-point legend for the active scale.
	ensure(legendRowHeight * float64(len(doc.PointLegend)+1))
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, legendRowHeight, fmt.Sprintf("Grading (%s scale)", doc.ScaleName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, entry := range doc.PointLegend {
		pdf.CellFormat(0, legendRowHeight, fmt.Sprintf("%s = %.1f points", entry.Grade, entry.Points), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	// Classification legend.
	ensure(legendRowHeight * float64(len(doc.Bands)+1))
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, legendRowHeight, "Classification", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, band := range doc.Bands {
		pdf.CellFormat(0, legendRowHeight, fmt.Sprintf("%s: %s", band.Name, band.Range), "", 1, "L", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render transcript pdf: %w", err)
	}
	return buf.Bytes(), nil
}
