package runcard

import "math"

// XGridLinear returns size points linearly spaced between xmin and xmax
// inclusive.
func XGridLinear(size int, xmin, xmax float64) []float64 {
	grid := make([]float64, size)
	step := (xmax - xmin) / float64(size-1)
	for i := range grid {
		grid[i] = xmin + float64(i)*step
	}
	grid[size-1] = xmax
	return grid
}

// XGridLogLinear returns size points logarithmically spaced between xmin
// and 1 inclusive, the common choice for small-x coverage.
func XGridLogLinear(size int, xmin float64) []float64 {
	grid := make([]float64, size)
	step := -math.Log10(xmin) / float64(size-1)
	for i := range grid {
		grid[i] = math.Pow(10, math.Log10(xmin)+float64(i)*step)
	}
	grid[size-1] = 1
	return grid
}
