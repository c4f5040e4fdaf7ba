package export

import "time"

// TranscriptRow is one valid course in original entry order.
type TranscriptRow struct {
	Serial        int
	Code          string
	Grade         string
	CreditHours   int
	Points        float64
	QualityPoints float64
}

// PointLegendEntry is one line of the grade-to-points legend.
type PointLegendEntry struct {
	Grade  string
	Points float64
}

// BandLegendEntry is one line of the classification legend.
type BandLegendEntry struct {
	Name  string
	Range string
}

// Transcript is the fully computed document handed to a renderer. Renderers
// lay it out; they never reach back into session state.
type Transcript struct {
	Institution    string
	GeneratedAt    time.Time
	ScaleName      string
	Average        float64
	Classification string
	ShowEquivalent bool
	Equivalent     float64

	CourseCount        int
	TotalCredits       int
	TotalQualityPoints float64

	Rows        []TranscriptRow
	PointLegend []PointLegendEntry
	Bands       []BandLegendEntry
}
