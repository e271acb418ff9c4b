package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("")
	})
}

func TestDefaultThemeIsClassic(t *testing.T) {
	resetTheme(t)

	// usable without an explicit SetTheme call
	assert.Equal(t, "☐", Current().BoxUnchecked)
	assert.Equal(t, "☑", Current().BoxChecked)
	assert.Equal(t, "│", Current().V)
	assert.Equal(t, "✔", Current().SymDone)
}

func TestSetTheme(t *testing.T) {
	resetTheme(t)

	SetTheme("mono")
	assert.Equal(t, "[ ]", Current().BoxUnchecked)
	assert.Equal(t, "|", Current().V)

	SetTheme("neon")
	assert.Equal(t, "◻", Current().BoxUnchecked)

	SetTheme("unknown falls back to classic")
	assert.Equal(t, "☐", Current().BoxUnchecked)
}
