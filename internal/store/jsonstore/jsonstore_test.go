package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lungarella-raffaele/marc/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "marc.json"))
}

func TestLoadMissingFile(t *testing.T) {
	st := tempStore(t)

	f, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, Version, f.Version)
	assert.Empty(t, f.Records)
	assert.Empty(t, f.Tags)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := tempStore(t)

	first := model.New("buy milk", "errand")
	second := model.New("write report", "")
	second.Done = true
	in := &File{
		Version: Version,
		Tags:    []string{"errand"},
		Records: []model.Record{first, second},
	}
	require.NoError(t, st.Save(in))

	out, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, in.Tags, out.Tags)
	require.Len(t, out.Records, 2)
	for i, want := range in.Records {
		got := out.Records[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Content, got.Content)
		assert.Equal(t, want.Done, got.Done)
		assert.Equal(t, want.Tag, got.Tag)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	}
}

func TestSaveOfLoadedStoreIsIdempotent(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Save(&File{
		Version: Version,
		Tags:    []string{"a", "b"},
		Records: []model.Record{model.New("one", "a"), model.New("two", "b")},
	}))

	before, err := os.ReadFile(st.Path())
	require.NoError(t, err)

	f, err := st.Load()
	require.NoError(t, err)
	require.NoError(t, st.Save(f))

	after, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestLoadCorruptedFile(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0o700))
	require.NoError(t, os.WriteFile(st.Path(), []byte("not json at all"), 0o644))

	_, err := st.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestLoadSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "record without content", body: `{"version":1,"records":[{"id":"x"}]}`},
		{name: "empty content", body: `{"version":1,"records":[{"id":"x","content":""}]}`},
		{name: "missing version", body: `{"records":[]}`},
		{name: "records not an array", body: `{"version":1,"records":{}}`},
		{name: "empty tag name", body: `{"version":1,"tags":[""],"records":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := tempStore(t)
			require.NoError(t, os.WriteFile(st.Path(), []byte(tc.body), 0o644))

			_, err := st.Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidStore)
		})
	}
}

func TestSaveCreatesDirAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st := New(filepath.Join(dir, "nested", "marc.json"))

	require.NoError(t, st.Save(&File{Records: []model.Record{model.New("x", "")}}))

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "marc.json", entries[0].Name())

	f, err := st.Load()
	require.NoError(t, err)
	// zero version filled in on save
	assert.Equal(t, Version, f.Version)
}
