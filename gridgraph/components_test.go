package gridgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// componentSizes returns the size of every component in discovery order.
func componentSizes(comps [][]int) []int {
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}

	return sizes
}

// TestConnectedComponents_Threshold runs one grid under rising thresholds.
//
//	3 1 3
//	1 1 1
//	3 2 3
//
// Threshold 1 joins everything; 2 keeps the bottom row together; 3 leaves the
// four corners isolated, even under Conn8 since they are two cells apart.
func TestConnectedComponents_Threshold(t *testing.T) {
	grid := [][]int{
		{3, 1, 3},
		{1, 1, 1},
		{3, 2, 3},
	}
	cases := []struct {
		name      string
		threshold int
		conn      Connectivity
		sizes     []int
	}{
		{"T1Conn4", 1, Conn4, []int{9}},
		{"T2Conn4", 2, Conn4, []int{1, 1, 3}},
		{"T3Conn4", 3, Conn4, []int{1, 1, 1, 1}},
		{"T3Conn8", 3, Conn8, []int{1, 1, 1, 1}},
		{"T4", 4, Conn4, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := NewGridGraph(grid, GridOptions{LandThreshold: tc.threshold, Conn: tc.conn})
			require.NoError(t, err)
			assert.Equal(t, tc.sizes, componentSizes(gg.ConnectedComponents()))
		})
	}
}

// TestConnectedComponents_Ordering checks that components are numbered by
// their first cell in row-major order and that this cell opens the component,
// even when BFS later reaches cells on earlier columns.
//
//	0 0 1 0
//	1 1 1 0
//	0 0 0 1
func TestConnectedComponents_Ordering(t *testing.T) {
	grid := [][]int{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 1},
	}
	gg, err := From2D(grid, Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, gg.index(2, 0), comps[0][0])
	assert.ElementsMatch(t, []int{gg.index(2, 0), gg.index(2, 1), gg.index(1, 1), gg.index(0, 1)}, comps[0])
	assert.Equal(t, []int{gg.index(3, 2)}, comps[1])

	labels := gg.ComponentLabels()
	for c, comp := range comps {
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			assert.Equal(t, c, labels[y][x], "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, -1, labels[0][0])
}

// TestConnectedComponents_Diagonal8 separates corner-touching cells under
// Conn4 and joins them under Conn8.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	}
	g4, err := From2D(grid, Conn4)
	require.NoError(t, err)
	assert.Len(t, g4.ConnectedComponents(), 5)

	g8, err := From2D(grid, Conn8)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, componentSizes(g8.ConnectedComponents()))
}

// TestCollect_MarksSeen verifies the BFS helper stops at free cells and
// flags every cell it returns.
func TestCollect_MarksSeen(t *testing.T) {
	gg, err := From2D([][]int{{1, 1, 0, 1}}, Conn4)
	require.NoError(t, err)

	seen := make([]bool, 4)
	got := gg.collect(0, seen)
	assert.Equal(t, []int{0, 1}, got)
	assert.Equal(t, []bool{true, true, false, false}, seen)
}

// TestFrom2D_Invalid ensures From2D forwards construction errors.
func TestFrom2D_Invalid(t *testing.T) {
	_, err := From2D(nil, Conn4)
	assert.True(t, errors.Is(err, ErrEmptyGrid))

	_, err = From2D([][]int{{1}, {}}, Conn4)
	assert.True(t, errors.Is(err, ErrNonRectangular))
}
