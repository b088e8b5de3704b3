package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvlfield/grid"
)

// ExampleDomain_SquaredDistance demonstrates the wrap-around metric on a
// periodic axis: points near opposite ends of the box are close neighbors.
//
// Scenario:
//
//   - 1-D box [0, 10) with 10 grid nodes, periodic.
//   - Locations 0.0 and 9.0 are 1.0 apart through the seam, not 9.0.
//
// Complexity: O(N) per call, N ≤ 3.
func ExampleDomain_SquaredDistance() {
	d, _ := grid.NewDomain([]float64{0}, []float64{10}, []int{10}, []bool{true})

	fmt.Println("squared distance:", d.SquaredDistance([]float64{0}, []float64{9}))

	// Output:
	// squared distance: 1
}

// ExampleDomain_Coord shows the axis-0-fastest linear index convention on a
// 2-D grid: index 1 steps along x, index 3 steps along y.
func ExampleDomain_Coord() {
	d, _ := grid.NewDomain(
		[]float64{0, 0},
		[]float64{1, 1},
		[]int{3, 3},
		[]bool{false, false},
	)

	fmt.Println(d.Coord(0), d.Coord(1), d.Coord(3))

	// Output:
	// [0 0] [0.5 0] [0 0.5]
}
