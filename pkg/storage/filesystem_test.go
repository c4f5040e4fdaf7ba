package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveReadRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("cgpa_courses_2024-05-10.json", []byte(`{"courses":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "cgpa_courses_2024-05-10.json", name)

	data, err := store.Read(name)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"courses":[]}`), data)
}

func TestReadMissingFile(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read("nope.json")
	assert.Error(t, err)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("a.json", []byte("{}"))
	require.NoError(t, err)
	require.NoError(t, store.Delete("a.json"))
	require.NoError(t, store.Delete("a.json"))
}

func TestPathResolvesUnderBaseDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "a.json"), store.Path("a.json"))
}
