package gridgraph

// ConnectedComponents finds all contiguous regions of occupied cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major scan order;
// each is a slice of row-major cell indices in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			comps = append(comps, gg.collect(i0, seen))
		}
	}

	return comps
}

// ComponentLabels returns a Height×Width matrix holding, for every cell, the
// index of its component in ConnectedComponents order, or -1 for free cells.
func (gg *GridGraph) ComponentLabels() [][]int {
	labels := make([][]int, gg.Height)
	for y := range labels {
		labels[y] = make([]int, gg.Width)
		for x := range labels[y] {
			labels[y][x] = -1
		}
	}
	for c, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			labels[y][x] = c
		}
	}

	return labels
}

// collect runs BFS from start over occupied cells, marking them in seen.
func (gg *GridGraph) collect(start int, seen []bool) []int {
	queue := []int{start}
	seen[start] = true

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.IsLand(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
