package filter

import (
	"testing"

	"github.com/YLivay/minifixed/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var records = []table.Record{
	{"Column1": "simple1", "Column2": "la lala la", "Column3": "123"},
	{"Column1": "simple2", "Column2": "lalala  la", "Column3": "123*321"},
}

func TestNew_RejectsEmptyQuery(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestNew_RejectsInvalidQuery(t *testing.T) {
	_, err := New(".Column1 ==")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse query")
}

func TestFilter_MatchesEquality(t *testing.T) {
	f, err := New(`.Column1 == "simple2"`)
	require.NoError(t, err)

	ok, err := f.Match(records[0])
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.Match(records[1])
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestFilter_TruthyValues(t *testing.T) {
	f, err := New(`.Column3`)
	require.NoError(t, err)

	ok, err := f.Match(table.Record{"Column3": ""})
	assert.NoError(t, err)
	assert.True(t, ok, "empty string is truthy in jq")

	ok, err = f.Match(table.Record{})
	assert.NoError(t, err)
	assert.False(t, ok, "missing key is null")
}

func TestFilter_NoOutputDoesNotMatch(t *testing.T) {
	f, err := New(`empty`)
	require.NoError(t, err)

	ok, err := f.Match(records[0])
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFilter_RuntimeError(t *testing.T) {
	f, err := New(`.Column3 | tonumber > 100`)
	require.NoError(t, err)

	ok, err := f.Match(records[0])
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = f.Match(records[1])
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to evaluate query")
}

func TestFilter_Apply(t *testing.T) {
	f, err := New(`.Column2 | test("  ")`)
	require.NoError(t, err)
	assert.EqualValues(t, `.Column2 | test("  ")`, f.String())

	matched, err := f.Apply(records)
	assert.NoError(t, err)
	assert.EqualValues(t, []table.Record{records[1]}, matched)
}
