package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsRaggedRecords(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]string{
		{"1", "2"},
		{"3"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestColumn(t *testing.T) {
	f, err := New([]string{"a", "b"}, [][]string{
		{"1", "x"},
		{"2", "y"},
	})
	require.NoError(t, err)

	col, err := f.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, col)

	_, err = f.Column("missing")
	assert.Error(t, err)
}

func TestNumericColumn(t *testing.T) {
	f, err := New([]string{"a"}, [][]string{
		{"1.5"},
		{""},
		{"na"},
		{"-2"},
		{" 3 "},
	})
	require.NoError(t, err)

	samples, err := f.NumericColumn("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 3}, samples)
}

func TestNumericColumn_Unparsable(t *testing.T) {
	f, err := New([]string{"a"}, [][]string{{"hello"}})
	require.NoError(t, err)

	_, err = f.NumericColumn("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "a"`)
}

func TestWidthHeightHasColumn(t *testing.T) {
	f, err := New([]string{"a", "b", "c"}, [][]string{{"1", "2", "3"}})
	require.NoError(t, err)

	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 1, f.Height())
	assert.True(t, f.HasColumn("b"))
	assert.False(t, f.HasColumn("z"))
}
