package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsLongOption(t *testing.T) {
	p, err := parseArgs([]string{"--tag", "test", "should work"}, addSpecs)
	require.NoError(t, err)

	tag, ok := p.option("tag")
	assert.True(t, ok)
	assert.Equal(t, "test", tag)
	assert.Equal(t, []string{"should work"}, p.values)
}

func TestParseArgsShortOption(t *testing.T) {
	p, err := parseArgs([]string{"-t", "test", "should work"}, addSpecs)
	require.NoError(t, err)

	tag, ok := p.option("tag")
	assert.True(t, ok)
	assert.Equal(t, "test", tag)
	assert.Equal(t, []string{"should work"}, p.values)
}

func TestParseArgsConcatenatedFlags(t *testing.T) {
	p, err := parseArgs([]string{"-ud"}, logSpecs)
	require.NoError(t, err)

	assert.True(t, p.flag("undone"))
	assert.True(t, p.flag("done"))
	assert.Empty(t, p.values)
}

func TestParseArgsFlagsAfterValues(t *testing.T) {
	p, err := parseArgs([]string{"buy milk", "--tag", "errand"}, addSpecs)
	require.NoError(t, err)

	tag, ok := p.option("tag")
	assert.True(t, ok)
	assert.Equal(t, "errand", tag)
	assert.Equal(t, []string{"buy milk"}, p.values)
}

func TestParseArgsUnknownArg(t *testing.T) {
	_, err := parseArgs([]string{"--pippo"}, logSpecs)
	require.Error(t, err)

	_, err = parseArgs([]string{"-x"}, logSpecs)
	require.Error(t, err)
}

func TestParseArgsMissingValue(t *testing.T) {
	_, err := parseArgs([]string{"--tag"}, addSpecs)
	require.Error(t, err)

	_, err = parseArgs([]string{"-t"}, addSpecs)
	require.Error(t, err)
}

func TestParseArgsHelpIsAlwaysAccepted(t *testing.T) {
	for _, specs := range [][]argSpec{addSpecs, logSpecs, rmSpecs, tagSpecs, editSpecs} {
		p, err := parseArgs([]string{"--help"}, specs)
		require.NoError(t, err)
		assert.True(t, p.flag("help"))
	}
}
