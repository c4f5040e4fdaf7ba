package service

import (
	"math"
	"sort"
	"strings"

	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/models"
)

// roundAverage rounds half away from zero to two decimal places, matching
// how the institution publishes CGPAs.
func roundAverage(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeAverage returns the credit-weighted grade-point average over the
// valid courses, 0 when none qualify. Invalid courses are excluded, not an
// error, and an unrecognised grade weighs in at 0.0.
func ComputeAverage(courses []models.Course, scale models.Scale) float64 {
	var quality float64
	var credits int
	for _, course := range courses {
		if !course.Valid() {
			continue
		}
		quality += scale.Points(course.Grade) * float64(course.CreditHours)
		credits += course.CreditHours
	}
	if credits == 0 {
		return 0
	}
	return roundAverage(quality / float64(credits))
}

// ComputeAggregate derives the full session summary for the active scale.
// The cross-scale equivalent is recomputed against the other table rather
// than rescaled; the tables are not affine images of each other.
func ComputeAggregate(courses []models.Course, scale models.Scale) models.AggregateResult {
	result := models.AggregateResult{Scale: scale}
	for _, course := range courses {
		if !course.Valid() {
			continue
		}
		result.ValidCourses++
		result.TotalCredits += course.CreditHours
		result.TotalQualityPoints += scale.Points(course.Grade) * float64(course.CreditHours)
	}
	result.Average = ComputeAverage(courses, scale)
	result.Equivalent = ComputeAverage(courses, scale.Other())
	result.Classification = models.ClassificationFor(result.Average)
	return result
}

// DuplicateCodes returns the course codes appearing more than once among
// non-empty codes, compared trimmed and case-insensitively. Advisory only.
func DuplicateCodes(courses []models.Course) []string {
	counts := make(map[string]int)
	for _, course := range courses {
		code := strings.ToUpper(strings.TrimSpace(course.Code))
		if code == "" {
			continue
		}
		counts[code]++
	}

	var duplicates []string
	for code, n := range counts {
		if n > 1 {
			duplicates = append(duplicates, code)
		}
	}
	sort.Strings(duplicates)
	return duplicates
}
