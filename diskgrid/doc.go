// Package diskgrid builds the 128×128 disk usage map derived from a key
// string with the Knot Hash, and analyses it.
//
// Row j of the map is knot.DigestFromText(key + "-" + j); its 128 bits,
// most significant first, become the row's squares (1 = used, 0 = free).
// Rows are independent, so New hashes them on a small worker pool.
//
// Regions are groups of used squares joined orthogonally; they are counted
// with gridgraph.ConnectedComponents under Conn4.
//
//	g, err := diskgrid.New("flqrgnkx")
//	g.Used()    // 8108
//	g.Regions() // 1242
package diskgrid
