// Package coupling evolves the QCD (and optionally QED) running couplings
// between squared scales, walking across heavy-quark flavor thresholds.
//
// 🚀 What does it solve?
//
//	The renormalization-group equation of the strong coupling
//	a_s = α_s/(4π), truncated at the configured perturbative order:
//
//	    da_s/dln μ² = −a_s² · Σ_k β_k(nf) a_s^k
//
//	Two solution strategies are offered per flavor segment:
//	  • Exact    — adaptive Runge–Kutta integration of the truncated RGE
//	              (at leading order the closed form is used, being exact)
//	  • Expanded — closed-form truncated series in the reference coupling
//
// At every threshold strictly between the reference and the target scale a
// discontinuous matching correction is applied, with coefficients depending
// on the log-ratio of renormalization and factorization scales and on the
// crossing direction (hep-ph/9706430).
//
// ⚙️ Usage:
//
//	atlas, _ := thresholds.NewAtlas([]float64{4, 20, 1000}, 8315.25)
//	c, err := coupling.New(coupling.Config{
//	    AlphaS:   0.118,
//	    RefScale: 8315.25,
//	    OrderQCD: 1,
//	    Method:   coupling.MethodExact,
//	    Atlas:    atlas,
//	})
//	state, err := c.A(100) // CouplingState at Q²=100
//
// All scales are squared (GeV²); all couplings are normalized by 4π.
//
// Errors:
//   - ErrBadReference          — non-positive reference coupling or scale.
//   - ErrOrderNotImplemented   — order beyond the implemented truncation.
//   - ErrUnknownMethod         — unrecognized solution method.
//   - ErrNoConvergence         — the ODE solver exhausted its step budget
//     (the best estimate is still returned).
package coupling
