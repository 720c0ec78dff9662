package diskgrid_test

import (
	"fmt"

	"github.com/katalvlaran/knotgrid/diskgrid"
)

// ExampleNew builds the sample disk map and prints its corner and counts.
func ExampleNew() {
	g, err := diskgrid.New("flqrgnkx")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g.Render(8, 3))
	fmt.Println("used:", g.Used())
	fmt.Println("regions:", g.Regions())
	// Output:
	// ##.#.#..
	// .#.#.#.#
	// ....#.#.
	// used: 8108
	// regions: 1242
}
