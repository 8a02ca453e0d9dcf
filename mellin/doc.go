// Package mellin implements the numerical inverse Mellin transformation:
// contour paths in the complex moment plane and the adaptive quadrature
// that integrates along them.
//
// 🚀 What is a Mellin inversion?
//
//	DGLAP evolution is multiplicative in Mellin space. To get back to
//	momentum-fraction space the analytic kernel f(N) is integrated along
//	a contour wrapping the poles on the real axis. The Talbot path
//
//	    p(t) = o + r·(θ·cot θ + iθ),  θ = π(2t−1),  t ∈ [0,1]
//
//	bends into the left half plane and gives the fastest convergence of
//	all textbook choices. Two parameterizations are used:
//	  • non-singlet: r = 1/2, o = 0 (poles only up to N = 0)
//	  • singlet:     r = 0.4·16/(1−ln x), o = 1 (poles up to N = 1)
//
// The integration runs over t ∈ [0.5, 1−cut] (the path is symmetric, only
// the upper half is integrated and the real part doubled by convention);
// the singular point t = 0.5 is replaced by its analytic limit.
//
// ⚙️ Usage:
//
//	p := mellin.NonSingletPath()
//	val, errEst, err := mellin.Invert(f, 1e-2, p, mellin.DefaultQuadConfig())
//
// The quadrature is an adaptive Gauss–Kronrod G7/K15 scheme with absolute
// and relative tolerances (defaults 1e-12 and 1e-5) and a bounded interval
// budget. On budget exhaustion the best estimate and its error bound are
// returned together with ErrNoConvergence — never an unbounded retry.
//
// Complexity: O(intervals) kernel evaluations, 15 per interval.
package mellin
