package kernel

import (
	"math"

	"github.com/qcdlib/dglap/coupling"
)

// Evolution integrals jᵢⱼ: the closed-form antiderivatives of aⁱ/β(a)
// between two coupling values, truncated consistently with the
// perturbative order. The decompose kernels are a single exponential of
// γ₀·j01 + γ₁·j11.

// b1 is the beta-function ratio β₁/β₀ entering every next-to-leading
// order formula of this package.
func b1(nf int) float64 {
	return coupling.Beta1(nf) / coupling.Beta0(nf)
}

// J00 returns the leading-order integral ∫ da/(β₀·a) = ln(a1/a0)/β₀.
func J00(a1, a0 float64, nf int) float64 {
	return math.Log(a1/a0) / coupling.Beta0(nf)
}

// J11Exact returns ∫ da/(β₀·a·(1+b₁·a)) resummed in b₁:
// ln((1+b₁·a1)/(1+b₁·a0))/β₁.
func J11Exact(a1, a0 float64, nf int) float64 {
	b := b1(nf)
	return math.Log((1+b*a1)/(1+b*a0)) / coupling.Beta1(nf)
}

// J11Expanded returns the same integral truncated at the leading term,
// (a1−a0)/β₀.
func J11Expanded(a1, a0 float64, nf int) float64 {
	return (a1 - a0) / coupling.Beta0(nf)
}

// J01Exact returns ∫ da·(1/(β₀·a) − b₁/(β₀·(1+b₁·a))) = j00 − b₁·j11.
func J01Exact(a1, a0 float64, nf int) float64 {
	return J00(a1, a0, nf) - b1(nf)*J11Exact(a1, a0, nf)
}

// J01Expanded truncates J01Exact consistently at next-to-leading order.
func J01Expanded(a1, a0 float64, nf int) float64 {
	return J00(a1, a0, nf) - b1(nf)*J11Expanded(a1, a0, nf)
}

// geomspace fills dst with steps+1 points geometrically spaced between
// a0 and a1 inclusive. Both endpoints must be positive; couplings always
// are.
func geomspace(a0, a1 float64, steps int) []float64 {
	pts := make([]float64, steps+1)
	ratio := math.Pow(a1/a0, 1/float64(steps))
	pts[0] = a0
	for i := 1; i < steps; i++ {
		pts[i] = pts[i-1] * ratio
	}
	pts[steps] = a1
	return pts
}
