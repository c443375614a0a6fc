package outline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Shape(t *testing.T) {
	root, err := Parse([]string{"2.1", "2.4", "2.4.2", "3", "5.2.3"})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 5}, root.Indices())

	two := root.Child(2)
	require.NotNil(t, two)
	assert.Equal(t, Branch, two.Kind())
	assert.Equal(t, []int{1, 4}, two.Node.Indices())
	assert.Equal(t, Leaf, two.Node.Child(1).Kind())
	assert.Equal(t, Both, two.Node.Child(4).Kind())
	assert.Equal(t, Leaf, two.Node.Child(4).Node.Child(2).Kind())

	assert.Equal(t, Leaf, root.Child(3).Kind())

	five := root.Child(5)
	assert.Equal(t, Branch, five.Kind())
	assert.Equal(t, Branch, five.Node.Child(2).Kind())
	assert.Equal(t, []int{3}, five.Node.Child(2).Node.Indices())
}

func TestParse_NeverInventsIndices(t *testing.T) {
	root, err := Parse([]string{"7.3.9"})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, root.Indices())
	assert.Equal(t, []int{3}, root.Child(7).Node.Indices())
	assert.Equal(t, []int{9}, root.Child(7).Node.Child(3).Node.Indices())
	assert.Nil(t, root.Child(1))
}

func TestParse_Nil(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParse_Empty(t *testing.T) {
	root, err := Parse([]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, root.Len())
}

func TestParse_MalformedReportsIndex(t *testing.T) {
	_, err := Parse([]string{"1", "1.1", "1..2"})
	require.Error(t, err)

	var le *LabelError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Index)
	assert.Equal(t, "1..2", le.Label)
}

func TestParse_RejectsOutOfOrder(t *testing.T) {
	tests := [][]string{
		{"2", "1"},
		{"2.1", "3", "2.2"},
		{"1.1", "1.1"},
		{"1.2", "1"},
	}
	for _, labels := range tests {
		_, err := Parse(labels)
		require.Error(t, err, "%v", labels)
		assert.True(t, errors.Is(err, ErrInvalidInput), "%v", labels)
		assert.False(t, errors.Is(err, ErrMalformedLabel), "%v", labels)
	}
}
