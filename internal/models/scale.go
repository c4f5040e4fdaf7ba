package models

// Scale selects which grade-point table and document legend apply.
type Scale string

const (
	ScaleFourPoint Scale = "4.0"
	ScaleFivePoint Scale = "5.0"
)

// NativeScale is the institution's own scale, used as the default everywhere
// a scale is absent or unrecognised.
const NativeScale = ScaleFivePoint

var gradePointTables = map[Scale]map[Grade]float64{
	ScaleFivePoint: {
		GradeA: 5.0,
		GradeB: 4.0,
		GradeC: 3.0,
		GradeD: 2.0,
		GradeE: 1.0,
		GradeF: 0.0,
	},
	// E collapses to 0 here, so the two tables are not affine images of
	// each other and conversions must be recomputed, not rescaled.
	ScaleFourPoint: {
		GradeA: 4.0,
		GradeB: 3.0,
		GradeC: 2.0,
		GradeD: 1.0,
		GradeE: 0.0,
		GradeF: 0.0,
	},
}

// Known reports whether s is one of the two supported scales.
func (s Scale) Known() bool {
	_, ok := gradePointTables[s]
	return ok
}

// Other returns the alternate scale.
func (s Scale) Other() Scale {
	if s == ScaleFourPoint {
		return ScaleFivePoint
	}
	return ScaleFourPoint
}

// Points resolves a grade against the scale's table. Unrecognised grades
// resolve to 0.0 as a defined fallback rather than an error.
func (s Scale) Points(g Grade) float64 {
	table, ok := gradePointTables[s]
	if !ok {
		table = gradePointTables[NativeScale]
	}
	return table[g]
}

// MaxPoints returns the table's highest value (the A grade).
func (s Scale) MaxPoints() float64 {
	return s.Points(GradeA)
}
