// Package operator assembles DGLAP evolution operators: the matrices that
// carry a vector of parton distributions, sampled on an x-grid, from one
// scale to another.
//
// 🚀 Pipeline
//
//	For one flavor segment the Builder loops over (output grid point,
//	basis function) pairs, wraps the anomalous-dimension tower and the
//	kernel dispatcher into a Mellin integrand, and hands it to the
//	contour inverter. The resulting value/error matrices are stored per
//	flavor sector (non-singlet +, −, valence; the 2×2 singlet block) as
//	OperatorMembers. Segments are cached write-once in the Grid's arena
//	keyed by (scaleFrom, scaleTo, nf); the Grid composes cached segments
//	and externally supplied matching operators into one PhysicalOperator
//	per requested target scale.
//
// All scales in this package are squared scales (Q², GeV²), matching the
// thresholds and coupling packages.
//
// ✨ Key types
//
//	Member           — one (value, error) matrix pair over the x-grid
//	Operator         — per-segment computation, write-once state machine
//	PhysicalOperator — evolution-basis map "target.input" → Member
//	Grid             — driver: arena, matching insertion, composition
//
// ⚙️ Concurrency
//
//	Operator.Compute runs a bounded worker pool (errgroup) over output
//	grid rows; each worker owns its rows exclusively, so the merge is
//	coordinate-keyed and lock-free. Providers must be pure functions of
//	their arguments. Compute itself is serialized: concurrent callers
//	wait for the running computation and share its result. A canceled
//	computation is discarded entirely; the segment returns to the
//	uncomputed state and is never served partial.
//
// Errors: configuration problems surface at construction. Quadrature
// non-convergence is carried as data in the error matrices; it only
// turns fatal when an entry's error estimate exceeds its value by the
// hard sanity bound. A matching operator that cannot serve a required
// flavor label fails the whole target with ErrMissingMatchingLabel.
package operator
