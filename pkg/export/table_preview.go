package export

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteTranscriptTable renders the course breakdown as a plain-text table.
// It is a terminal preview of the same row model the PDF lays out.
func WriteTranscriptTable(w io.Writer, doc Transcript) {
	fmt.Fprintf(w, "%s\n", doc.Institution)
	fmt.Fprintf(w, "CGPA (%s scale): %.2f - %s\n", doc.ScaleName, doc.Average, doc.Classification)
	if doc.ShowEquivalent {
		fmt.Fprintf(w, "4.0 scale equivalent: %.2f\n", doc.Equivalent)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"S/N", "Course", "Grade", "Credits", "Points", "Quality Pts"})
	for _, row := range doc.Rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.Serial),
			row.Code,
			row.Grade,
			fmt.Sprintf("%d", row.CreditHours),
			fmt.Sprintf("%.1f", row.Points),
			fmt.Sprintf("%.1f", row.QualityPoints),
		})
	}
	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d", doc.TotalCredits), "", fmt.Sprintf("%.1f", doc.TotalQualityPoints)})
	table.Render()
}
