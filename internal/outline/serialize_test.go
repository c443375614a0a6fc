package outline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_DepthFirstWithParentFirst(t *testing.T) {
	root, err := Parse([]string{"1", "1.1", "1.1.1", "1.2", "2"})
	require.NoError(t, err)

	var got []string
	for l := range root.All() {
		got = append(got, l.String())
	}
	assert.Equal(t, []string{"1", "1.1", "1.1.1", "1.2", "2"}, got)
}

func TestAll_StopsEarly(t *testing.T) {
	root, err := Parse([]string{"1", "1.1", "1.2", "2"})
	require.NoError(t, err)

	var got []string
	for l := range root.All() {
		got = append(got, l.String())
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"1", "1.1"}, got)
}

func TestAll_YieldsIndependentSlices(t *testing.T) {
	root, err := Parse([]string{"1.1", "1.2", "1.3"})
	require.NoError(t, err)

	var got []Label
	for l := range root.All() {
		got = append(got, l)
	}
	require.Len(t, got, 3)
	got[0][1] = 99
	assert.Equal(t, "1.2", got[1].String())
	assert.Equal(t, "1.3", got[2].String())
}

func TestLabels_EmptyTree(t *testing.T) {
	var n *Node
	assert.Equal(t, []string{}, n.Labels())
}

func TestDump(t *testing.T) {
	root, err := Parse([]string{"2", "2.3", "5.1"})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Dump(&sb, root))
	assert.Equal(t, "2 *\n\t3 *\n5\n\t1 *\n", sb.String())
}
