package models

import (
	"strconv"
	"strings"
)

// Grade is a letter grade on the institutional scale. Empty means ungraded.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"

	GradeNone Grade = ""
)

// GradeLetters lists the recognised letters in descending order.
var GradeLetters = []Grade{GradeA, GradeB, GradeC, GradeD, GradeE, GradeF}

// Known reports whether g is one of the recognised letters.
func (g Grade) Known() bool {
	for _, letter := range GradeLetters {
		if g == letter {
			return true
		}
	}
	return false
}

// Credit-hour bounds enforced at entry time.
const (
	MinCreditHours     = 1
	MaxCreditHours     = 6
	DefaultCreditHours = 1
)

// ClampCreditHours forces hours into the [MinCreditHours, MaxCreditHours] range.
func ClampCreditHours(hours int) int {
	if hours < MinCreditHours {
		return MinCreditHours
	}
	if hours > MaxCreditHours {
		return MaxCreditHours
	}
	return hours
}

// ParseCreditHours interprets raw user input, defaulting non-numeric values.
func ParseCreditHours(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultCreditHours
	}
	return ClampCreditHours(n)
}

// Course is one academic unit in the session.
type Course struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Grade       Grade  `json:"grade"`
	CreditHours int    `json:"creditHours"`
}

// Valid reports whether the course counts towards the aggregate: a non-blank
// code, a grade, and positive credit hours.
func (c Course) Valid() bool {
	return strings.TrimSpace(c.Code) != "" && c.Grade != GradeNone && c.CreditHours > 0
}
