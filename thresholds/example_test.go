package thresholds_test

import (
	"fmt"

	"github.com/qcdlib/dglap/thresholds"
)

// ExampleAtlas_Path evolves from the 3-flavor region across the charm and
// bottom thresholds.
func ExampleAtlas_Path() {
	atlas, _ := thresholds.NewAtlas([]float64{4, 20, 1000}, 2)
	for _, s := range atlas.Path(100) {
		fmt.Printf("%g -> %g (nf=%d)\n", s.ScaleFrom, s.ScaleTo, s.NF)
	}
	// Output:
	// 2 -> 4 (nf=3)
	// 4 -> 20 (nf=4)
	// 20 -> 100 (nf=5)
}
