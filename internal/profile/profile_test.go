package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netsentry/domain/frame"
)

func TestSummarize(t *testing.T) {
	f, err := frame.New([]string{"a", "b", "empty"}, [][]string{
		{"1", "10", "na"},
		{"2", "20", ""},
		{"3", "30", "na"},
	})
	require.NoError(t, err)

	summaries := Summarize(f, []string{"a", "b", "empty", "missing"})
	require.Len(t, summaries, 2)

	assert.Equal(t, "a", summaries[0].Name)
	assert.Equal(t, 3, summaries[0].Count)
	assert.InDelta(t, 2.0, summaries[0].Mean, 1e-12)
	assert.InDelta(t, 1.0, summaries[0].Min, 1e-12)
	assert.InDelta(t, 3.0, summaries[0].Max, 1e-12)
	assert.InDelta(t, 2.0, summaries[0].Median, 1e-12)

	assert.Equal(t, "b", summaries[1].Name)
	assert.InDelta(t, 20.0, summaries[1].Mean, 1e-12)
}
