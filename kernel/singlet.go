package kernel

import (
	"math/cmplx"

	"github.com/qcdlib/dglap/coupling"
)

// Singlet evaluates the 2×2 evolution kernel for the coupled
// quark-singlet/gluon system between coupling values a0 and a1 at fixed
// flavor number nf. gamma holds the anomalous-dimension matrices; entries
// up to gamma[Order] are read.
//
// Unlike the scalar sector the matrices at different couplings do not
// commute, so every strategy beyond the single-exponential decompose
// pair is micro-stepped.
func (d *Dispatcher) Singlet(gamma []Matrix2, a1, a0 float64, nf int) Matrix2 {
	if d.cfg.Order == 0 {
		return singletLO(gamma[0], a1, a0, nf)
	}
	switch d.cfg.Method {
	case IterateExact, IterateExpanded:
		return d.singletIterate(gamma, a1, a0, nf)
	case DecomposeExact:
		ln := gamma[0].Scale(complex(J01Exact(a1, a0, nf), 0)).
			Add(gamma[1].Scale(complex(J11Exact(a1, a0, nf), 0)))
		e, _, _, _, _ := ln.ExpSinglet()
		return e
	case DecomposeExpanded:
		ln := gamma[0].Scale(complex(J01Expanded(a1, a0, nf), 0)).
			Add(gamma[1].Scale(complex(J11Expanded(a1, a0, nf), 0)))
		e, _, _, _, _ := ln.ExpSinglet()
		return e
	case PerturbativeExact:
		return d.singletPerturbative(gamma, a1, a0, nf, true)
	case PerturbativeExpanded:
		return d.singletPerturbative(gamma, a1, a0, nf, false)
	case Truncated:
		return d.singletTruncated(gamma, a1, a0, nf, false)
	case OrderedTruncated:
		return d.singletTruncated(gamma, a1, a0, nf, true)
	}
	// unreachable: Config validated by New
	return singletLO(gamma[0], a1, a0, nf)
}

// singletLO is the closed-form leading-order kernel exp(γ₀·j00), taken
// through the eigensystem of γ₀.
func singletLO(gamma0 Matrix2, a1, a0 float64, nf int) Matrix2 {
	ln := gamma0.Scale(complex(J00(a1, a0, nf), 0))
	e, _, _, _, _ := ln.ExpSinglet()
	return e
}

// singletIterate composes micro-step matrix exponentials of the
// midpoint-evaluated integrand with the full β denominator, later steps
// multiplying from the left. Both iterate variants run the same
// integrand; the exact/expanded split only reaches the coupling
// evolution feeding a1 and a0.
func (d *Dispatcher) singletIterate(gamma []Matrix2, a1, a0 float64, nf int) Matrix2 {
	beta0 := coupling.Beta0(nf)
	beta1 := coupling.Beta1(nf)
	steps := geomspace(a0, a1, d.cfg.EvOpIterations)
	e := Identity2()
	for k := 0; k < len(steps)-1; k++ {
		al, ah := steps[k], steps[k+1]
		aHalf := (al + ah) / 2
		delta := ah - al
		num := gamma[0].Scale(complex(aHalf, 0)).Add(gamma[1].Scale(complex(aHalf*aHalf, 0)))
		den := beta0*aHalf*aHalf + beta1*aHalf*aHalf*aHalf
		ek, _, _, _, _ := num.Scale(complex(delta/den, 0)).ExpSinglet()
		e = ek.Mul(e)
	}
	return e
}

// singletRVec builds the R-matrix series of the perturbative solution.
func (d *Dispatcher) singletRVec(gamma []Matrix2, nf int, exact bool) []Matrix2 {
	beta0 := complex(coupling.Beta0(nf), 0)
	ratio := complex(b1(nf), 0)
	r := make([]Matrix2, d.cfg.EvOpMaxOrder+1)
	r[0] = gamma[0].Scale(1 / beta0)
	if len(r) > 1 {
		r[1] = gamma[1].Scale(1 / beta0).Sub(r[0].Scale(ratio))
	}
	if exact {
		for k := 2; k < len(r); k++ {
			r[k] = r[k-1].Scale(-ratio)
		}
	}
	return r
}

// singletUVec resolves the recursion k·Uₖ + [Uₖ, R₀] = Σⱼ Rₖ₋ⱼ·Uⱼ by
// projecting onto the eigenspaces of R₀: the diagonal blocks divide by
// k, the off-diagonal blocks pick up the eigenvalue difference.
func singletUVec(r []Matrix2) []Matrix2 {
	_, rP, rM, eP, eM := r[0].ExpSinglet()
	u := make([]Matrix2, len(r))
	u[0] = Identity2()
	for k := 1; k < len(u); k++ {
		var rp Matrix2
		for j := 0; j < k; j++ {
			rp = rp.Add(r[k-j].Mul(u[j]))
		}
		ck := complex(float64(k), 0)
		u[k] = eM.Mul(rp).Mul(eM).Add(eP.Mul(rp).Mul(eP)).Scale(1 / ck).
			Add(eP.Mul(rp).Mul(eM).Scale(1 / (rM - rP + ck))).
			Add(eM.Mul(rp).Mul(eP).Scale(1 / (rP - rM + ck)))
	}
	return u
}

// singletSumU evaluates the truncated series U(a) = Σ aᵏ·Uₖ.
func singletSumU(u []Matrix2, a float64) Matrix2 {
	var sum Matrix2
	ak := complex(1, 0)
	ca := complex(a, 0)
	for _, uk := range u {
		sum = sum.Add(uk.Scale(ak))
		ak *= ca
	}
	return sum
}

// singletLOEigen is the leading-order kernel through a precomputed
// eigensystem of γ₀, avoiding one decomposition per micro-step.
func singletLOEigen(lP, lM complex128, eP, eM Matrix2, j00 float64) Matrix2 {
	cj := complex(j00, 0)
	return eP.Scale(cmplx.Exp(lP * cj)).Add(eM.Scale(cmplx.Exp(lM * cj)))
}

// singletPerturbative micro-steps U(ah)·E_LO·U(al)⁻¹; the series inverse
// is taken exactly through the 2×2 cofactor formula.
func (d *Dispatcher) singletPerturbative(gamma []Matrix2, a1, a0 float64, nf int, exact bool) Matrix2 {
	u := singletUVec(d.singletRVec(gamma, nf, exact))
	_, lP, lM, eP, eM := gamma[0].ExpSinglet()
	steps := geomspace(a0, a1, d.cfg.EvOpIterations)
	e := Identity2()
	for k := 0; k < len(steps)-1; k++ {
		al, ah := steps[k], steps[k+1]
		e0 := singletLOEigen(lP, lM, eP, eM, J00(ah, al, nf))
		ek := singletSumU(u, ah).Mul(e0).Mul(singletSumU(u, al).Inverse())
		e = ek.Mul(e)
	}
	return e
}

// singletTruncated keeps only the first-order term U₁ of the
// perturbative series, resolved through the eigen-projectors of R₀ like
// the full recursion, and composes micro-steps either in the linearized
// form E₀ + ah·U₁·E₀ − al·E₀·U₁ or in the ordered ratio form
// (1+ah·U₁)·E₀·(1+al·U₁)⁻¹.
func (d *Dispatcher) singletTruncated(gamma []Matrix2, a1, a0 float64, nf int, ordered bool) Matrix2 {
	ratio := complex(b1(nf), 0)
	beta0 := complex(coupling.Beta0(nf), 0)
	r := []Matrix2{
		gamma[0].Scale(1 / beta0),
		gamma[1].Scale(1 / beta0).Sub(gamma[0].Scale(ratio / beta0)),
	}
	u1 := singletUVec(r)[1]
	_, lP, lM, eP, eM := gamma[0].ExpSinglet()
	id := Identity2()
	steps := geomspace(a0, a1, d.cfg.EvOpIterations)
	e := Identity2()
	for k := 0; k < len(steps)-1; k++ {
		al, ah := steps[k], steps[k+1]
		e0 := singletLOEigen(lP, lM, eP, eM, J00(ah, al, nf))
		var ek Matrix2
		if ordered {
			ek = id.Add(u1.Scale(complex(ah, 0))).Mul(e0).
				Mul(id.Add(u1.Scale(complex(al, 0))).Inverse())
		} else {
			ek = e0.Add(u1.Scale(complex(ah, 0)).Mul(e0)).Sub(e0.Mul(u1.Scale(complex(al, 0))))
		}
		e = ek.Mul(e)
	}
	return e
}
