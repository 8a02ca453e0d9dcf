package mellin

import (
	"errors"
	"math"
)

// ErrNoConvergence indicates that the adaptive quadrature exhausted its
// interval budget before reaching the requested tolerance. The best
// estimate and its error bound are still returned.
var ErrNoConvergence = errors.New("mellin: quadrature did not converge within the interval budget")

// ErrBadInterval indicates an empty or inverted integration interval.
var ErrBadInterval = errors.New("mellin: invalid integration interval")

// Defaults of the quadrature configuration.
const (
	// DefaultAbsTol is the default absolute error tolerance.
	DefaultAbsTol = 1e-12

	// DefaultRelTol is the default relative error tolerance.
	DefaultRelTol = 1e-5

	// DefaultMaxIntervals bounds the number of adaptive subdivisions.
	DefaultMaxIntervals = 100
)

// QuadConfig configures the adaptive Gauss–Kronrod quadrature.
type QuadConfig struct {
	// AbsTol is the absolute error tolerance.
	AbsTol float64

	// RelTol is the relative error tolerance.
	RelTol float64

	// MaxIntervals bounds the number of subdivided intervals; exceeding it
	// surfaces ErrNoConvergence together with the best estimate.
	MaxIntervals int
}

// DefaultQuadConfig returns the default tolerances and budget.
func DefaultQuadConfig() QuadConfig {
	return QuadConfig{AbsTol: DefaultAbsTol, RelTol: DefaultRelTol, MaxIntervals: DefaultMaxIntervals}
}

// Gauss–Kronrod 7/15 nodes and weights on [-1,1]. The odd Kronrod nodes
// form the embedded 7-point Gauss rule.
var (
	gkNodes = [8]float64{
		0.991455371120813, 0.949107912342759, 0.864864423359769, 0.741531185599394,
		0.586087235467691, 0.405845151377397, 0.207784955007898, 0.0,
	}
	gkWeightsK = [8]float64{
		0.022935322010529, 0.063092092629979, 0.104790010322250, 0.140653259715525,
		0.169004726639267, 0.190350578064785, 0.204432940075298, 0.209482141084728,
	}
	gkWeightsG = [4]float64{
		0.129484966168870, 0.279705391489277, 0.381830050505119, 0.417959183673469,
	}
)

// interval is one adaptive subdivision with its local estimate.
type interval struct {
	a, b     float64
	estimate float64
	errBound float64
}

// gk15 evaluates the 15-point Kronrod rule and its embedded 7-point Gauss
// rule on [a,b], returning the Kronrod estimate and the |K15−G7| error.
func gk15(f func(float64) float64, a, b float64) (float64, float64) {
	c := 0.5 * (a + b)
	h := 0.5 * (b - a)
	var sumK, sumG float64
	for i, x := range gkNodes {
		if x == 0 {
			v := f(c)
			sumK += gkWeightsK[i] * v
			sumG += gkWeightsG[3] * v

			continue
		}
		vLo := f(c - h*x)
		vHi := f(c + h*x)
		sumK += gkWeightsK[i] * (vLo + vHi)
		if i%2 == 1 {
			sumG += gkWeightsG[i/2] * (vLo + vHi)
		}
	}

	return sumK * h, math.Abs(sumK-sumG) * math.Abs(h)
}

// Quad integrates f over [a,b] adaptively: the worst interval is split
// until the summed error bound satisfies the tolerances or the budget is
// exhausted.
//
// Stage 1 (Validate): interval sanity.
// Stage 2 (Iterate): bisect the interval with the largest error bound.
// Stage 3 (Finalize): sum estimates; flag non-convergence, never discard
// the best estimate.
func Quad(f func(float64) float64, a, b float64, cfg QuadConfig) (float64, float64, error) {
	if !(b > a) {
		return 0, 0, ErrBadInterval
	}
	if cfg.MaxIntervals <= 0 {
		cfg = DefaultQuadConfig()
	}

	est, errB := gk15(f, a, b)
	intervals := []interval{{a: a, b: b, estimate: est, errBound: errB}}

	for len(intervals) < cfg.MaxIntervals {
		total, totalErr := 0.0, 0.0
		worst := 0
		for i, iv := range intervals {
			total += iv.estimate
			totalErr += iv.errBound
			if iv.errBound > intervals[worst].errBound {
				worst = i
			}
		}
		if totalErr <= math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(total)) {
			return total, totalErr, nil
		}

		// split the worst interval in half
		iv := intervals[worst]
		mid := 0.5 * (iv.a + iv.b)
		le, lerr := gk15(f, iv.a, mid)
		re, rerr := gk15(f, mid, iv.b)
		intervals[worst] = interval{a: iv.a, b: mid, estimate: le, errBound: lerr}
		intervals = append(intervals, interval{a: mid, b: iv.b, estimate: re, errBound: rerr})
	}

	var total, totalErr float64
	for _, iv := range intervals {
		total += iv.estimate
		totalErr += iv.errBound
	}
	if totalErr <= math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(total)) {
		return total, totalErr, nil
	}

	return total, totalErr, ErrNoConvergence
}
