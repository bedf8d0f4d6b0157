package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFramify(t *testing.T) {
	docs := []bson.D{
		{{Key: "_id", Value: "abc"}, {Key: "a", Value: int32(1)}, {Key: "b", Value: "na"}},
		{{Key: "_id", Value: "def"}, {Key: "a", Value: 2.5}, {Key: "b", Value: "x"}, {Key: "c", Value: true}},
	}

	f, err := framify(docs)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, f.Columns)
	assert.Equal(t, [][]string{
		{"1", "na", ""},
		{"2.5", "x", "true"},
	}, f.Records)
}

func TestFramify_Empty(t *testing.T) {
	f, err := framify(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Width())
	assert.Equal(t, 0, f.Height())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "-3", cellString(int64(-3)))
	assert.Equal(t, "0.5", cellString(0.5))
	assert.Equal(t, "hello", cellString("hello"))
	assert.Equal(t, "false", cellString(false))
}
