package operator

import "github.com/qcdlib/dglap/kernel"

// AnomalousDimensions supplies the Mellin-space evolution kernels'
// input: the perturbative tower of anomalous dimensions. Implementations
// must be pure functions of their arguments; the Builder calls them
// concurrently from many workers. The returned slices are indexed by
// perturbative order and must have at least order+1 entries.
type AnomalousDimensions interface {
	// GammaNS returns the scalar tower for one non-singlet sector
	// (NSPlus, NSMinus or NSValence).
	GammaNS(order int, sector Sector, n complex128, nf int) []complex128
	// GammaSinglet returns the 2×2 matrix tower of the coupled
	// quark-singlet/gluon block.
	GammaSinglet(order int, n complex128, nf int) []kernel.Matrix2
}

// BasisProvider exposes the interpolation basis over the x-grid: for
// each basis index a callable at a complex Mellin variable, already
// rescaled to the inversion point exp(logx), plus a support test used to
// skip whole quadratures. Implementations must be pure and safe for
// concurrent use.
type BasisProvider interface {
	// GridSize returns the number of grid points (= basis functions).
	GridSize() int
	// XGrid returns the ordered momentum fractions; callers treat the
	// slice as read-only.
	XGrid() []float64
	// EvaluateN evaluates basis function j at Mellin variable n,
	// including the x^{-N} reconstruction factor for the inversion point
	// exp(logx). A vanishing return short-circuits the kernel evaluation.
	EvaluateN(j int, n complex128, logx float64) complex128
	// ActiveAt reports whether basis function j has support that can
	// contribute at the inversion point exp(logx); a false return skips
	// the quadrature entirely.
	ActiveAt(j int, logx float64) bool
}

// MatchingProvider builds the flavor-threshold crossing operator
// inserted between two segments with different flavor counts. nf is the
// flavor count below the threshold; backward marks evolution toward
// lower scales. The returned operator must serve every flavor label the
// neighboring segments expose, including intrinsic heavy-quark sectors.
type MatchingProvider interface {
	MatchingOperator(order, nf int, backward bool) (*PhysicalOperator, error)
}
