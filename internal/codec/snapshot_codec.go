package codec

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/models"
	appErrors "github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/errors"
)

// SnapshotCodec serialises the course list to the save-file document and
// validates it back. Loads are all-or-nothing: the caller replaces its whole
// state with the decoded result or keeps what it had.
type SnapshotCodec struct {
	validate *validator.Validate
}

// New constructs a SnapshotCodec.
func New() *SnapshotCodec {
	return &SnapshotCodec{validate: validator.New()}
}

// DecodeResult carries a successfully loaded document.
type DecodeResult struct {
	Courses []models.Course
	Scale   models.Scale
}

// Encode renders the full course list, including incomplete entries, as an
// indented document a human can hand-edit.
func (c *SnapshotCodec) Encode(courses []models.Course, scale models.Scale, now time.Time) ([]byte, error) {
	snapshot := models.Snapshot{
		Courses:     make([]models.SnapshotCourse, 0, len(courses)),
		Scale:       scale,
		LastUpdated: now.UTC(),
	}
	for i := range courses {
		course := courses[i]
		code := course.Code
		grade := string(course.Grade)
		snapshot.Courses = append(snapshot.Courses, models.SnapshotCourse{
			ID:          course.ID,
			Code:        &code,
			Grade:       &grade,
			CreditHours: course.CreditHours,
		})
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to encode snapshot")
	}
	return data, nil
}

// Decode parses and validates a saved document. Failures are typed:
// unparsable text, a missing/non-array courses collection, or a collection
// that filters down to nothing. Entries missing an id, a code/grade field or
// positive credit hours are dropped silently; later entries reusing an id are
// dropped too.
func (c *SnapshotCodec) Decode(data []byte) (*DecodeResult, error) {
	var envelope struct {
		Courses json.RawMessage `json:"courses"`
		Scale   models.Scale    `json:"scale"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnparsableDocument.Code, appErrors.ErrUnparsableDocument.Message)
	}

	if len(envelope.Courses) == 0 || string(envelope.Courses) == "null" {
		return nil, appErrors.Clone(appErrors.ErrMissingCourses, "")
	}
	var entries []models.SnapshotCourse
	if err := json.Unmarshal(envelope.Courses, &entries); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMissingCourses.Code, appErrors.ErrMissingCourses.Message)
	}

	seen := make(map[string]struct{}, len(entries))
	courses := make([]models.Course, 0, len(entries))
	for _, entry := range entries {
		if err := c.validate.Struct(entry); err != nil {
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}
		courses = append(courses, models.Course{
			ID:          entry.ID,
			Code:        *entry.Code,
			Grade:       models.Grade(*entry.Grade),
			CreditHours: models.ClampCreditHours(entry.CreditHours),
		})
	}
	if len(courses) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNoValidCourses, "")
	}

	scale := envelope.Scale
	if !scale.Known() {
		scale = models.NativeScale
	}
	return &DecodeResult{Courses: courses, Scale: scale}, nil
}
