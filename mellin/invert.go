package mellin

import "math"

// Integrand is an analytic function of the complex Mellin variable.
// The inversion factor x^{-N} is expected to be already included in the
// integrand — typical kernels naturally develop such factors, and joining
// them improves convergence.
type Integrand func(n complex128) complex128

// mellinPrefactor recombines the contour integral into the real inverse:
// -i/π, together with taking the real part, accounts for the mirrored
// lower half of the symmetric path.
var mellinPrefactor = complex(0.0, -1.0/math.Pi)

// Invert performs the numerical inverse Mellin transformation of f along
// the given Talbot path.
//
// The real integration variable runs over t ∈ [0.5, 1−cut]: the path is
// symmetric about t = 0.5 and the lower half contributes the complex
// conjugate, so only the upper half is integrated. cut keeps the endpoint
// clear of the t = 1 singularity of the path.
//
// Returns the estimated value, an error bound, and ErrNoConvergence when
// the quadrature budget was exhausted (the estimate is still usable).
func Invert(f Integrand, cut float64, p Path, cfg QuadConfig) (float64, float64, error) {
	g := func(t float64) float64 {
		v := f(p.N(t))
		if v == 0 {
			return 0.0
		}

		return real(mellinPrefactor * v * p.Jac(t))
	}

	return Quad(g, 0.5, 1.0-cut, cfg)
}
