package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lungarella-raffaele/marc/internal/model"
)

func testRecords() []model.Record {
	return []model.Record{
		{ID: "aaa111", Content: "buy milk"},
		{ID: "bbb222", Content: "write report"},
		{ID: "bbb333", Content: "buy stamps"},
	}
}

func TestResolveSelectorByIndex(t *testing.T) {
	idx, err := resolveSelector(testRecords(), "2")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestResolveSelectorIndexOutOfRange(t *testing.T) {
	_, err := resolveSelector(testRecords(), "0")
	require.Error(t, err)

	_, err = resolveSelector(testRecords(), "4")
	require.Error(t, err)
}

func TestResolveSelectorByIDPrefix(t *testing.T) {
	idx, err := resolveSelector(testRecords(), "aaa")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestResolveSelectorAmbiguousIDPrefix(t *testing.T) {
	_, err := resolveSelector(testRecords(), "bbb")
	require.Error(t, err)
}

func TestResolveSelectorByContent(t *testing.T) {
	idx, err := resolveSelector(testRecords(), "REPORT")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestResolveSelectorAmbiguousContent(t *testing.T) {
	_, err := resolveSelector(testRecords(), "buy")
	require.Error(t, err)
}

func TestResolveSelectorNotFound(t *testing.T) {
	_, err := resolveSelector(testRecords(), "nonexistent")
	require.Error(t, err)

	_, err = resolveSelector(nil, "anything")
	require.Error(t, err)
}
