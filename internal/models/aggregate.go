package models

// AggregateResult is the derived session summary. It is recomputed from
// scratch after every mutation, never updated incrementally.
type AggregateResult struct {
	Scale              Scale   `json:"scale"`
	Average            float64 `json:"average"`
	Equivalent         float64 `json:"equivalent"`
	ValidCourses       int     `json:"valid_courses"`
	TotalCredits       int     `json:"total_credits"`
	TotalQualityPoints float64 `json:"total_quality_points"`
	Classification     string  `json:"classification"`
}

// ClassificationBand is one row of the fixed degree-classification legend.
// Bands use literal thresholds independent of the active scale.
type ClassificationBand struct {
	Name string
	Min  float64
	Max  float64 // negative means open-ended
}

// ClassificationBands in descending order of merit.
var ClassificationBands = []ClassificationBand{
	{Name: "First Class", Min: 4.50, Max: -1},
	{Name: "Second Class Upper", Min: 3.50, Max: 4.49},
	{Name: "Second Class Lower", Min: 2.40, Max: 3.49},
	{Name: "Third Class", Min: 1.50, Max: 2.39},
	{Name: "Pass", Min: 1.00, Max: 1.49},
}

// Unclassified labels averages below the lowest band.
const Unclassified = "Unclassified"

// ClassificationFor maps an average to its band name.
func ClassificationFor(average float64) string {
	for _, band := range ClassificationBands {
		if average >= band.Min {
			return band.Name
		}
	}
	return Unclassified
}
