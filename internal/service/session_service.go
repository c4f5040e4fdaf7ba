package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/models"
	appErrors "github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/errors"
)

// SessionService owns the live course list and scale for one session and
// keeps the derived aggregate fresh: every mutation triggers a synchronous
// recompute, so the summary is never stale relative to the list.
type SessionService struct {
	logger *zap.Logger

	courses    []models.Course
	scale      models.Scale
	aggregate  models.AggregateResult
	duplicates []string
}

// NewSessionService constructs an empty session on the given scale.
func NewSessionService(scale models.Scale, logger *zap.Logger) *SessionService {
	if !scale.Known() {
		scale = models.NativeScale
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SessionService{logger: logger, scale: scale}
	s.recompute()
	return s
}

// AddCourse appends a blank course with a fresh id and the default credit
// load, and returns it.
func (s *SessionService) AddCourse() models.Course {
	course := models.Course{
		ID:          uuid.NewString(),
		CreditHours: models.DefaultCreditHours,
	}
	s.courses = append(s.courses, course)
	s.recompute()
	s.logger.Debug("course added", zap.String("course_id", course.ID))
	return course
}

// RemoveCourse deletes the course with the given id.
func (s *SessionService) RemoveCourse(id string) error {
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			s.recompute()
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

// UpdateCode sets a course's code.
func (s *SessionService) UpdateCode(id, code string) error {
	return s.update(id, func(c *models.Course) error {
		c.Code = code
		return nil
	})
}

// UpdateGrade sets a course's grade. Only the recognised letters or the
// empty ungraded value are accepted at entry time.
func (s *SessionService) UpdateGrade(id string, grade models.Grade) error {
	return s.update(id, func(c *models.Course) error {
		if grade != models.GradeNone && !grade.Known() {
			return appErrors.Clone(appErrors.ErrValidation, "unknown grade letter")
		}
		c.Grade = grade
		return nil
	})
}

// UpdateCreditHours sets a course's credit hours, clamped into range so an
// out-of-range value is never stored.
func (s *SessionService) UpdateCreditHours(id string, hours int) error {
	return s.update(id, func(c *models.Course) error {
		c.CreditHours = models.ClampCreditHours(hours)
		return nil
	})
}

// SetScale switches the grading scale. Stored grades are untouched; only
// their numeric interpretation changes.
func (s *SessionService) SetScale(scale models.Scale) error {
	if !scale.Known() {
		return appErrors.Clone(appErrors.ErrValidation, "unknown grading scale")
	}
	s.scale = scale
	s.recompute()
	return nil
}

// Replace swaps in a loaded course list and scale as one atomic step.
func (s *SessionService) Replace(courses []models.Course, scale models.Scale) {
	if !scale.Known() {
		scale = models.NativeScale
	}
	s.courses = append([]models.Course(nil), courses...)
	s.scale = scale
	s.recompute()
	s.logger.Info("session replaced", zap.Int("courses", len(courses)), zap.String("scale", string(scale)))
}

// Courses returns a copy of the live course list in entry order.
func (s *SessionService) Courses() []models.Course {
	return append([]models.Course(nil), s.courses...)
}

// Scale returns the active scale.
func (s *SessionService) Scale() models.Scale {
	return s.scale
}

// Aggregate returns the current derived summary.
func (s *SessionService) Aggregate() models.AggregateResult {
	return s.aggregate
}

// Duplicates returns the advisory duplicate-code warnings.
func (s *SessionService) Duplicates() []string {
	return append([]string(nil), s.duplicates...)
}

func (s *SessionService) update(id string, apply func(*models.Course) error) error {
	for i := range s.courses {
		if s.courses[i].ID == id {
			if err := apply(&s.courses[i]); err != nil {
				return err
			}
			s.recompute()
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

func (s *SessionService) recompute() {
	s.aggregate = ComputeAggregate(s.courses, s.scale)
	s.duplicates = DuplicateCodes(s.courses)
}
