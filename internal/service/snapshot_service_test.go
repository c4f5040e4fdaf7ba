package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/models"
	appErrors "github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/errors"
)

type mockFileStorage struct {
	files map[string][]byte
	reads int
}

func newMockFileStorage() *mockFileStorage {
	return &mockFileStorage{files: make(map[string][]byte)}
}

func (m *mockFileStorage) Save(filename string, data []byte) (string, error) {
	m.files[filename] = data
	return filename, nil
}

func (m *mockFileStorage) Read(filename string) ([]byte, error) {
	m.reads++
	data, ok := m.files[filename]
	if !ok {
		return nil, fmt.Errorf("no such file %s", filename)
	}
	return data, nil
}

func TestSnapshotSaveUsesDatedFilename(t *testing.T) {
	session := newTestSession(t)
	addGraded(t, session, "MTH101", models.GradeA, 3)

	store := newMockFileStorage()
	svc := NewSnapshotService(session, store, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC) }

	name, err := svc.Save()
	require.NoError(t, err)
	assert.Equal(t, "cgpa_courses_2024-05-10.json", name)
	assert.Contains(t, store.files, name)
}

func TestSnapshotSaveLoadRoundTrip(t *testing.T) {
	session := newTestSession(t)
	addGraded(t, session, "MTH101", models.GradeA, 3)
	addGraded(t, session, "PHY101", models.GradeB, 4)
	session.AddCourse() // incomplete entry rides along
	original := session.Courses()

	store := newMockFileStorage()
	svc := NewSnapshotService(session, store, nil)

	name, err := svc.Save()
	require.NoError(t, err)

	// Wipe the session, then load it back.
	session.Replace([]models.Course{{ID: "tmp", Code: "TMP", Grade: models.GradeC, CreditHours: 2}}, models.ScaleFourPoint)
	require.NoError(t, svc.Load(name))

	assert.Equal(t, original, session.Courses())
	assert.Equal(t, models.ScaleFivePoint, session.Scale())
	assert.Equal(t, 4.43, session.Aggregate().Average)
}

func TestSnapshotLoadRejectsWrongMediaTypeBeforeReading(t *testing.T) {
	session := newTestSession(t)
	store := newMockFileStorage()
	store.files["courses.txt"] = []byte(`{"courses":[{"id":"a","code":"MTH101","grade":"A","creditHours":3}]}`)

	svc := NewSnapshotService(session, store, nil)
	err := svc.Load("courses.txt")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupportedMediaType.Code, appErrors.FromError(err).Code)
	assert.Zero(t, store.reads)
}

func TestSnapshotFailedLoadLeavesSessionUntouched(t *testing.T) {
	session := newTestSession(t)
	addGraded(t, session, "MTH101", models.GradeA, 3)
	before := session.Courses()

	store := newMockFileStorage()
	store.files["bad.json"] = []byte(`{"scale":"4.0"}`)
	store.files["empty.json"] = []byte(`{"courses":[]}`)
	store.files["broken.json"] = []byte(`{broken`)

	svc := NewSnapshotService(session, store, nil)
	for file, wantCode := range map[string]string{
		"bad.json":    appErrors.ErrMissingCourses.Code,
		"empty.json":  appErrors.ErrNoValidCourses.Code,
		"broken.json": appErrors.ErrUnparsableDocument.Code,
	} {
		err := svc.Load(file)
		require.Error(t, err, file)
		assert.Equal(t, wantCode, appErrors.FromError(err).Code, file)
		assert.Equal(t, before, session.Courses(), file)
		assert.Equal(t, models.ScaleFivePoint, session.Scale(), file)
	}
}

func TestLoadDocumentRequiresDeclaredType(t *testing.T) {
	session := newTestSession(t)
	svc := NewSnapshotService(session, newMockFileStorage(), nil)

	valid := []byte(`{"courses":[{"id":"a","code":"MTH101","grade":"A","creditHours":3}]}`)

	err := svc.LoadDocument(valid, "")
	assert.Equal(t, appErrors.ErrUnsupportedMediaType.Code, appErrors.FromError(err).Code)

	err = svc.LoadDocument(valid, "text/plain")
	assert.Equal(t, appErrors.ErrUnsupportedMediaType.Code, appErrors.FromError(err).Code)

	require.NoError(t, svc.LoadDocument(valid, "application/json; charset=utf-8"))
	assert.Len(t, session.Courses(), 1)
}
