package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lungarella-raffaele/marc/internal/model"
	"github.com/lungarella-raffaele/marc/internal/store/jsonstore"
)

func twoRecordFile() *jsonstore.File {
	return &jsonstore.File{
		Version: jsonstore.Version,
		Records: []model.Record{model.New("alpha", ""), model.New("beta", "")},
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m tea.Model, msg tea.Msg) editor {
	t.Helper()
	updated, _ := m.Update(msg)
	em, ok := updated.(editor)
	require.True(t, ok)
	return em
}

func TestToggleSelectedRecord(t *testing.T) {
	m := newEditor(twoRecordFile())

	em := step(t, m, tea.KeyMsg{Type: tea.KeySpace})

	recs := em.records()
	require.Len(t, recs, 2)
	assert.True(t, recs[0].Done)
	assert.False(t, recs[1].Done)
	assert.True(t, em.changed)
}

func TestToggleTargetsSelectionUnderFilter(t *testing.T) {
	m := newEditor(twoRecordFile())
	m.list.SetFilterText("beta")
	sel, ok := m.list.SelectedItem().(listItem)
	require.True(t, ok)
	require.Equal(t, "beta", sel.Rec.Content)

	em := step(t, m, tea.KeyMsg{Type: tea.KeySpace})

	recs := em.records()
	require.Len(t, recs, 2)
	assert.False(t, recs[0].Done, "record outside the filter must not change")
	assert.True(t, recs[1].Done)
}

func TestDeleteTargetsSelectionUnderFilter(t *testing.T) {
	m := newEditor(twoRecordFile())
	m.list.SetFilterText("beta")

	em := step(t, m, runeKey('d'))

	recs := em.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "alpha", recs[0].Content)
	assert.True(t, em.changed)
}

func TestUndoRestoresDeletedRecordAtPosition(t *testing.T) {
	m := newEditor(twoRecordFile())
	m.list.SetFilterText("beta")

	em := step(t, m, runeKey('d'))
	em.list.ResetFilter()
	em = step(t, em, runeKey('u'))

	recs := em.records()
	require.Len(t, recs, 2)
	assert.Equal(t, "alpha", recs[0].Content)
	assert.Equal(t, "beta", recs[1].Content)
}

func TestKeysIgnoredWhileTypingFilter(t *testing.T) {
	m := newEditor(twoRecordFile())

	em := step(t, m, runeKey('/')) // enter filtering mode
	em = step(t, em, runeKey('d')) // must type into the filter, not delete

	require.Len(t, em.records(), 2)
	assert.False(t, em.changed)
}
