package service

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/models"
	appErrors "github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/errors"
	"github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/export"
)

type transcriptRenderer interface {
	Render(doc export.Transcript) ([]byte, error)
}

type transcriptStorage interface {
	Save(filename string, data []byte) (string, error)
}

// TranscriptConfig brands the generated artifact.
type TranscriptConfig struct {
	InstitutionName string
	FilenamePrefix  string
}

// TranscriptService builds the transcript document from the session and
// hands it to a renderer. It reads the session without mutating it.
type TranscriptService struct {
	session  *SessionService
	renderer transcriptRenderer
	storage  transcriptStorage
	cfg      TranscriptConfig
	logger   *zap.Logger
	now      func() time.Time
}

// NewTranscriptService constructs a TranscriptService.
func NewTranscriptService(session *SessionService, renderer transcriptRenderer, storage transcriptStorage, cfg TranscriptConfig, logger *zap.Logger) *TranscriptService {
	if renderer == nil {
		renderer = export.NewTranscriptPDF()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.InstitutionName == "" {
		cfg.InstitutionName = "University CGPA Calculator"
	}
	if cfg.FilenamePrefix == "" {
		cfg.FilenamePrefix = "CGPA"
	}
	return &TranscriptService{
		session:  session,
		renderer: renderer,
		storage:  storage,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Export renders the PDF transcript and stores it under a dated filename.
func (s *TranscriptService) Export() (string, error) {
	doc, err := s.buildDocument()
	if err != nil {
		return "", err
	}
	payload, err := s.renderer.Render(doc)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render transcript")
	}
	filename := fmt.Sprintf("%s_transcript_%s.pdf", s.cfg.FilenamePrefix, s.now().Format("2006-01-02"))
	name, err := s.storage.Save(filename, payload)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to store transcript")
	}
	s.logger.Info("transcript exported", zap.String("file", name), zap.Int("rows", len(doc.Rows)))
	return name, nil
}

// Preview writes the plain-text course table to w under the same
// preconditions as Export.
func (s *TranscriptService) Preview(w io.Writer) error {
	doc, err := s.buildDocument()
	if err != nil {
		return err
	}
	export.WriteTranscriptTable(w, doc)
	return nil
}

// buildDocument assembles the renderer input, refusing when there is nothing
// worth printing: no courses at all, or none that qualify for scoring.
func (s *TranscriptService) buildDocument() (export.Transcript, error) {
	courses := s.session.Courses()
	if len(courses) == 0 {
		return export.Transcript{}, appErrors.Clone(appErrors.ErrNothingToRender, "add at least one course first")
	}

	scale := s.session.Scale()
	aggregate := s.session.Aggregate()

	rows := make([]export.TranscriptRow, 0, len(courses))
	for _, course := range courses {
		if !course.Valid() {
			continue
		}
		points := scale.Points(course.Grade)
		rows = append(rows, export.TranscriptRow{
			Serial:        len(rows) + 1,
			Code:          course.Code,
			Grade:         string(course.Grade),
			CreditHours:   course.CreditHours,
			Points:        points,
			QualityPoints: points * float64(course.CreditHours),
		})
	}
	if len(rows) == 0 {
		return export.Transcript{}, appErrors.Clone(appErrors.ErrNothingToRender, "no complete courses to include")
	}

	doc := export.Transcript{
		Institution:        s.cfg.InstitutionName,
		GeneratedAt:        s.now(),
		ScaleName:          string(scale),
		Average:            aggregate.Average,
		Classification:     aggregate.Classification,
		ShowEquivalent:     scale == models.NativeScale,
		Equivalent:         aggregate.Equivalent,
		CourseCount:        aggregate.ValidCourses,
		TotalCredits:       aggregate.TotalCredits,
		TotalQualityPoints: aggregate.TotalQualityPoints,
		Rows:               rows,
	}
	for _, letter := range models.GradeLetters {
		doc.PointLegend = append(doc.PointLegend, export.PointLegendEntry{
			Grade:  string(letter),
			Points: scale.Points(letter),
		})
	}
	for _, band := range models.ClassificationBands {
		doc.Bands = append(doc.Bands, export.BandLegendEntry{Name: band.Name, Range: bandRange(band)})
	}
	return doc, nil
}

func bandRange(band models.ClassificationBand) string {
	if band.Max < 0 {
		return fmt.Sprintf("%.2f and above", band.Min)
	}
	return fmt.Sprintf("%.2f - %.2f", band.Min, band.Max)
}
