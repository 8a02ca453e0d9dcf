package mellin

import "math"

// Path is a Talbot contour parameterization. R is the scaling parameter
// (effectively the intersection with the real axis), O the real offset.
// The pair is a configuration input: pick it with NonSingletPath or
// SingletPath depending on the pole structure of the integrand.
type Path struct {
	R float64
	O float64
}

// NonSingletPath returns the symmetric Talbot path used for non-singlet
// kernels, whose poles reach up to N = 0.
func NonSingletPath() Path {
	return Path{R: 0.5, O: 0.0}
}

// SingletPath returns the shifted Talbot path used for singlet kernels,
// whose poles reach up to N = 1. The radius scales with the inversion
// point: logx is ln(x) of the momentum fraction being inverted.
func SingletPath(logx float64) Path {
	return Path{R: 0.4 * 16.0 / (1.0 - logx), O: 1.0}
}

// N maps the real parameter t ∈ [0,1] onto the contour:
//
//	p(t) = o + r·(θ·cot θ + iθ), θ = π(2t−1)
//
// The cotangent is singular at t = 0.5; the analytic limit θ·cot θ → 1 is
// substituted there.
func (p Path) N(t float64) complex128 {
	theta := math.Pi * (2.0*t - 1.0)
	re := 1.0
	if t != 0.5 {
		re = theta / math.Tan(theta)
	}

	return complex(p.O+p.R*re, p.R*theta)
}

// Jac is the derivative of N with respect to t (the contour Jacobian).
// The 1/sin² term is singular at t = 0.5; its limit is 0.
func (p Path) Jac(t float64) complex128 {
	theta := math.Pi * (2.0*t - 1.0)
	re := 0.0
	if t != 0.5 {
		sin := math.Sin(theta)
		re = 1.0/math.Tan(theta) - theta/(sin*sin)
	}

	return complex(p.R*math.Pi*2.0*re, p.R*math.Pi*2.0)
}
