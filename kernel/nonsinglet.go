package kernel

import (
	"math/cmplx"

	"github.com/qcdlib/dglap/coupling"
)

// NonSinglet evaluates the scalar evolution kernel for one non-singlet
// distribution between coupling values a0 and a1 at fixed flavor number
// nf. gamma holds the anomalous-dimension tower; entries up to
// gamma[Order] are read.
//
// At order 0 every strategy is the same closed-form exponential, taken
// as an explicit branch.
func (d *Dispatcher) NonSinglet(gamma []complex128, a1, a0 float64, nf int) complex128 {
	if d.cfg.Order == 0 {
		return nsLO(gamma[0], a1, a0, nf)
	}
	switch d.cfg.Method {
	case IterateExact, IterateExpanded:
		return d.nsIterate(gamma, a1, a0, nf)
	case DecomposeExact:
		return cmplx.Exp(gamma[0]*complex(J01Exact(a1, a0, nf), 0) +
			gamma[1]*complex(J11Exact(a1, a0, nf), 0))
	case DecomposeExpanded:
		return cmplx.Exp(gamma[0]*complex(J01Expanded(a1, a0, nf), 0) +
			gamma[1]*complex(J11Expanded(a1, a0, nf), 0))
	case PerturbativeExact:
		return d.nsPerturbative(gamma, a1, a0, nf, true)
	case PerturbativeExpanded:
		return d.nsPerturbative(gamma, a1, a0, nf, false)
	case Truncated:
		return d.nsTruncated(gamma, a1, a0, nf, false)
	case OrderedTruncated:
		return d.nsTruncated(gamma, a1, a0, nf, true)
	}
	// unreachable: Config validated by New
	return nsLO(gamma[0], a1, a0, nf)
}

// nsLO is the closed-form leading-order kernel exp(γ₀·j00).
func nsLO(gamma0 complex128, a1, a0 float64, nf int) complex128 {
	return cmplx.Exp(gamma0 * complex(J00(a1, a0, nf), 0))
}

// nsIterate composes micro-step exponentials of the midpoint-evaluated
// integrand with the full β denominator. Both iterate variants run the
// same integrand; the exact/expanded split only reaches the coupling
// evolution feeding a1 and a0.
func (d *Dispatcher) nsIterate(gamma []complex128, a1, a0 float64, nf int) complex128 {
	beta0 := complex(coupling.Beta0(nf), 0)
	beta1 := complex(coupling.Beta1(nf), 0)
	steps := geomspace(a0, a1, d.cfg.EvOpIterations)
	e := complex(1, 0)
	for k := 0; k < len(steps)-1; k++ {
		al, ah := steps[k], steps[k+1]
		aHalf := complex((al+ah)/2, 0)
		delta := complex(ah-al, 0)
		num := gamma[0]*aHalf + gamma[1]*aHalf*aHalf
		e *= cmplx.Exp(num / (beta0*aHalf*aHalf + beta1*aHalf*aHalf*aHalf) * delta)
	}
	return e
}

// nsRVec builds the R-series of the perturbative solution. exact extends
// the tail through the −b₁ recursion; otherwise it stops at the
// perturbative order.
func (d *Dispatcher) nsRVec(gamma []complex128, nf int, exact bool) []complex128 {
	beta0 := complex(coupling.Beta0(nf), 0)
	ratio := complex(b1(nf), 0)
	r := make([]complex128, d.cfg.EvOpMaxOrder+1)
	r[0] = gamma[0] / beta0
	if len(r) > 1 {
		r[1] = gamma[1]/beta0 - ratio*r[0]
	}
	if exact {
		for k := 2; k < len(r); k++ {
			r[k] = -ratio * r[k-1]
		}
	}
	return r
}

// nsUVec resolves the recursion k·uₖ = Σⱼ rₖ₋ⱼ·uⱼ; in the scalar sector
// everything commutes and the projector terms collapse.
func nsUVec(r []complex128) []complex128 {
	u := make([]complex128, len(r))
	u[0] = 1
	for k := 1; k < len(u); k++ {
		var sum complex128
		for j := 0; j < k; j++ {
			sum += r[k-j] * u[j]
		}
		u[k] = sum / complex(float64(k), 0)
	}
	return u
}

// nsSumU evaluates the truncated series U(a) = Σ aᵏ·uₖ.
func nsSumU(u []complex128, a float64) complex128 {
	sum := complex(0, 0)
	ak := complex(1, 0)
	ca := complex(a, 0)
	for _, uk := range u {
		sum += ak * uk
		ak *= ca
	}
	return sum
}

// nsPerturbative evaluates U(a1)·E_LO·U(a0)⁻¹ in a single step; the
// scalar sector needs no micro-stepping.
func (d *Dispatcher) nsPerturbative(gamma []complex128, a1, a0 float64, nf int, exact bool) complex128 {
	u := nsUVec(d.nsRVec(gamma, nf, exact))
	return nsSumU(u, a1) * nsLO(gamma[0], a1, a0, nf) / nsSumU(u, a0)
}

// nsTruncated keeps only u₁ = (γ₁ − b₁·γ₀)/β₀ and composes micro-steps,
// either multiplicatively or in the ordered ratio form.
func (d *Dispatcher) nsTruncated(gamma []complex128, a1, a0 float64, nf int, ordered bool) complex128 {
	u1 := (gamma[1] - complex(b1(nf), 0)*gamma[0]) / complex(coupling.Beta0(nf), 0)
	steps := geomspace(a0, a1, d.cfg.EvOpIterations)
	e := complex(1, 0)
	for k := 0; k < len(steps)-1; k++ {
		al, ah := steps[k], steps[k+1]
		e0 := nsLO(gamma[0], ah, al, nf)
		var ek complex128
		if ordered {
			ek = e0 * (1 + complex(ah, 0)*u1) / (1 + complex(al, 0)*u1)
		} else {
			ek = e0 * (1 + u1*complex(ah-al, 0))
		}
		e = ek * e
	}
	return e
}
