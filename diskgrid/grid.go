package diskgrid

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/knotgrid/gridgraph"
	"github.com/katalvlaran/knotgrid/knot"
)

const (
	// Rows is the number of rows in a disk map, one digest each.
	Rows = 128
	// Cols is the number of squares per row, one per digest bit.
	Cols = knot.DigestSize * 8
)

// Grid is an immutable disk usage map. cells[y][x] is 1 for a used square.
type Grid struct {
	key     string
	cells   [][]int
	used    int
	labels  [][]int
	regions int
}

// New hashes the 128 row keys of key and analyses the resulting map.
// Surrounding whitespace in key is ignored.
// Returns ErrEmptyKey for a blank key, ErrWorkers for a bad WithWorkers value.
func New(key string, opts ...Option) (*Grid, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		return nil, fmt.Errorf("New(workers=%d): %w", cfg.workers, ErrWorkers)
	}

	cells := hashRows(key, cfg.workers)
	gg, err := gridgraph.From2D(cells, gridgraph.Conn4)
	if err != nil {
		return nil, err
	}
	labels := gg.ComponentLabels()

	g := &Grid{key: key, cells: cells, labels: labels}
	for y := range cells {
		for x := range cells[y] {
			g.used += cells[y][x]
			if labels[y][x]+1 > g.regions {
				g.regions = labels[y][x] + 1
			}
		}
	}

	return g, nil
}

// hashRows fills every row from its own digest. Each worker writes only the
// rows it receives, so no locking is needed.
func hashRows(key string, workers int) [][]int {
	cells := make([][]int, Rows)
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for y := range jobs {
				cells[y] = expandRow(knot.DigestFromText(key + "-" + strconv.Itoa(y)))
			}
		}()
	}
	for y := 0; y < Rows; y++ {
		jobs <- y
	}
	close(jobs)
	wg.Wait()

	return cells
}

func expandRow(d knot.Digest) []int {
	row := make([]int, Cols)
	for x := range row {
		if d.Bit(x) {
			row[x] = 1
		}
	}

	return row
}

// Key returns the trimmed key the map was built from.
func (g *Grid) Key() string { return g.key }

// Used returns the number of used squares.
func (g *Grid) Used() int { return g.used }

// Regions returns the number of orthogonally connected regions of used squares.
func (g *Grid) Regions() int { return g.regions }

// IsUsed reports whether square (x,y) is used; out-of-range squares are free.
func (g *Grid) IsUsed(x, y int) bool {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return false
	}

	return g.cells[y][x] == 1
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) ([]int, error) {
	if y < 0 || y >= Rows {
		return nil, fmt.Errorf("Row(%d): %w", y, ErrRowIndex)
	}
	out := make([]int, Cols)
	copy(out, g.cells[y])

	return out, nil
}

// RegionLabels returns a Rows×Cols copy of the region index of every square,
// -1 for free squares. Regions are numbered in row-major order of their first square.
func (g *Grid) RegionLabels() [][]int {
	out := make([][]int, Rows)
	for y := range out {
		out[y] = make([]int, Cols)
		copy(out[y], g.labels[y])
	}

	return out
}

// Render draws the top-left width×height corner, '#' for used and '.' for
// free, one line per row each ending in '\n'. The size is clipped to the map.
func (g *Grid) Render(width, height int) string {
	width, height = clamp(width, Cols), clamp(height, Rows)
	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.cells[y][x] == 1 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}

	return v
}
