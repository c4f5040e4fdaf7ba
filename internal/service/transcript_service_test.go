package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/models"
	appErrors "github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/errors"
	"github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/export"
)

type mockRenderer struct {
	lastDoc export.Transcript
	calls   int
}

func (m *mockRenderer) Render(doc export.Transcript) ([]byte, error) {
	m.lastDoc = doc
	m.calls++
	return []byte("%PDF-stub"), nil
}

func newTranscriptFixture(t *testing.T) (*SessionService, *TranscriptService, *mockRenderer, *mockFileStorage) {
	t.Helper()
	session := newTestSession(t)
	renderer := &mockRenderer{}
	store := newMockFileStorage()
	svc := NewTranscriptService(session, renderer, store, TranscriptConfig{
		InstitutionName: "Test University",
		FilenamePrefix:  "TU",
	}, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC) }
	return session, svc, renderer, store
}

func TestExportRefusesWithNoCourses(t *testing.T) {
	_, svc, renderer, _ := newTranscriptFixture(t)

	_, err := svc.Export()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNothingToRender.Code, appErrors.FromError(err).Code)
	assert.Zero(t, renderer.calls)
}

func TestExportRefusesWithOnlyInvalidCourses(t *testing.T) {
	session, svc, renderer, _ := newTranscriptFixture(t)
	session.AddCourse() // blank entry, never valid

	_, err := svc.Export()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNothingToRender.Code, appErrors.FromError(err).Code)
	assert.Zero(t, renderer.calls)
}

func TestExportBuildsDocumentAndStoresArtifact(t *testing.T) {
	session, svc, renderer, store := newTranscriptFixture(t)
	addGraded(t, session, "MTH101", models.GradeA, 3)
	addGraded(t, session, "PHY101", models.GradeB, 4)
	session.AddCourse() // invalid entries are left out of the table

	name, err := svc.Export()
	require.NoError(t, err)
	assert.Equal(t, "TU_transcript_2024-05-10.pdf", name)
	assert.Contains(t, store.files, name)

	doc := renderer.lastDoc
	assert.Equal(t, "Test University", doc.Institution)
	assert.Equal(t, "5.0", doc.ScaleName)
	assert.Equal(t, 4.43, doc.Average)
	assert.Equal(t, "Second Class Upper", doc.Classification)
	assert.True(t, doc.ShowEquivalent)
	assert.Equal(t, 3.43, doc.Equivalent)
	assert.Equal(t, 2, doc.CourseCount)
	assert.Equal(t, 7, doc.TotalCredits)
	assert.Equal(t, 31.0, doc.TotalQualityPoints)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, export.TranscriptRow{Serial: 1, Code: "MTH101", Grade: "A", CreditHours: 3, Points: 5.0, QualityPoints: 15.0}, doc.Rows[0])
	assert.Equal(t, export.TranscriptRow{Serial: 2, Code: "PHY101", Grade: "B", CreditHours: 4, Points: 4.0, QualityPoints: 16.0}, doc.Rows[1])

	require.Len(t, doc.PointLegend, len(models.GradeLetters))
	assert.Equal(t, export.PointLegendEntry{Grade: "A", Points: 5.0}, doc.PointLegend[0])
	require.Len(t, doc.Bands, len(models.ClassificationBands))
	assert.Equal(t, export.BandLegendEntry{Name: "First Class", Range: "4.50 and above"}, doc.Bands[0])
	assert.Equal(t, export.BandLegendEntry{Name: "Second Class Upper", Range: "3.50 - 4.49"}, doc.Bands[1])
}

func TestExportHidesEquivalentOnFourPointScale(t *testing.T) {
	session, svc, renderer, _ := newTranscriptFixture(t)
	addGraded(t, session, "MTH101", models.GradeA, 3)
	require.NoError(t, session.SetScale(models.ScaleFourPoint))

	_, err := svc.Export()
	require.NoError(t, err)
	assert.False(t, renderer.lastDoc.ShowEquivalent)
	assert.Equal(t, "4.0", renderer.lastDoc.ScaleName)
}

func TestExportDoesNotMutateSession(t *testing.T) {
	session, svc, _, _ := newTranscriptFixture(t)
	addGraded(t, session, "MTH101", models.GradeA, 3)
	before := session.Courses()

	_, err := svc.Export()
	require.NoError(t, err)
	assert.Equal(t, before, session.Courses())
	assert.Equal(t, models.ScaleFivePoint, session.Scale())
}

func TestPreviewWritesCourseTable(t *testing.T) {
	session, svc, _, _ := newTranscriptFixture(t)
	addGraded(t, session, "MTH101", models.GradeA, 3)

	var buf bytes.Buffer
	require.NoError(t, svc.Preview(&buf))
	out := buf.String()
	assert.Contains(t, out, "MTH101")
	assert.Contains(t, out, "Test University")
	assert.Contains(t, out, "5.00")

	buf.Reset()
	session.Replace([]models.Course{{ID: "x", Code: "", Grade: models.GradeNone, CreditHours: 1}}, models.ScaleFivePoint)
	err := svc.Preview(&buf)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNothingToRender.Code, appErrors.FromError(err).Code)
	assert.Zero(t, buf.Len())
}