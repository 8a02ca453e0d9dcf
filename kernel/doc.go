// Package kernel evaluates DGLAP evolution kernels in Mellin space: the
// solutions Ẽ(a₁ ← a₀) of the evolution equation for a given tower of
// anomalous dimensions and a pair of coupling values.
//
// 🚀 What is an evolution kernel?
//
//	In Mellin space the DGLAP equation becomes an ordinary differential
//	equation in the coupling. Its formal solution is an exponentiated
//	integral; beyond leading order the exponentiation is ambiguous at
//	higher orders, and several equivalent-at-the-truncation but
//	numerically distinct strategies exist:
//
//	  • IterateExact / IterateExpanded — N geometric micro-steps, each a
//	    midpoint-evaluated (matrix) exponential, composed by product
//	  • DecomposeExact / DecomposeExpanded — one closed-form pair of
//	    evolution integrals and a single (matrix) exponential
//	  • PerturbativeExact / PerturbativeExpanded — R-matrix series and its
//	    exponentiated U-series up to a configured order,
//	    U(a₁)·E_LO·U(a₀)⁻¹
//	  • Truncated / OrderedTruncated — only the first U-series term,
//	    multiplicative or ordered as (1+a₁U₁)·E_LO·(1+a₀U₁)⁻¹
//
//	At leading order every strategy collapses to the single closed-form
//	exponential — enforced as an explicit branch, since the general
//	formulas are ill-defined there.
//
// The non-singlet sector is scalar; the singlet sector is a 2×2 complex
// matrix whose exponential is taken through the closed-form eigensystem
// (see ExpSinglet).
//
// ⚙️ Usage:
//
//	d, err := kernel.New(kernel.Config{
//	    Order:          1,
//	    Method:         kernel.IterateExact,
//	    EvOpIterations: 10,
//	    EvOpMaxOrder:   10,
//	})
//	e := d.NonSinglet(gammaNS, a1, a0, nf) // scalar kernel
//	m := d.Singlet(gammaS, a1, a0, nf)     // 2×2 kernel
//
// Invariant: for a₁ == a₀ every kernel is exactly the identity.
//
// Errors (construction time only — evaluation never fails):
//   - ErrUnknownMethod       — unrecognized strategy.
//   - ErrOrderNotImplemented — no kernel coefficients at that order.
//   - ErrBadIterations       — non-positive micro-step or series budget.
package kernel
