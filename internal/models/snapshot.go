package models

import "time"

// Snapshot is the external save-file shape: the full course list (valid or
// not), the active scale and the save timestamp. It is hand-editable JSON,
// not the live in-memory model.
type Snapshot struct {
	Courses     []SnapshotCourse `json:"courses"`
	Scale       Scale            `json:"scale,omitempty"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// SnapshotCourse is one stored course entry. Code and Grade are pointers so
// a load can tell an absent field from a deliberately empty one: entries must
// carry both fields, but either may be blank for incomplete courses.
type SnapshotCourse struct {
	ID          string  `json:"id" validate:"required"`
	Code        *string `json:"code" validate:"required"`
	Grade       *string `json:"grade" validate:"required"`
	CreditHours int     `json:"creditHours" validate:"gt=0"`
}
