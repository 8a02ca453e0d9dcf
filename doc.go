// Package dglap is an in-memory engine for computing DGLAP evolution
// kernel operators — the linear maps that carry parton distributions
// from one energy scale to another in perturbative QCD.
//
// 🚀 What is dglap?
//
//	A library that turns analytic Mellin-space kernels into
//	momentum-fraction-space operators:
//		• Flavor thresholds: route an evolution path across heavy-quark masses
//		• Running coupling: solve the beta-function RGE, exactly or expanded
//		• Mellin inversion: Talbot contours + adaptive Gauss–Kronrod quadrature
//		• Evolution kernels: eight solution strategies, non-singlet & singlet
//		• Operator algebra: value/error matrix pairs with propagated bounds
//
// ✨ Why choose dglap?
//
//   - Explicit configuration — no global mutable state, validated eagerly
//   - Parallel by construction — grid points integrate on a bounded worker pool
//   - Errors as data — every operator carries its numerical error matrix
//   - Pluggable physics — anomalous dimensions, matching conditions and
//     interpolation bases are injected through small interfaces
//
// Everything is organized under flat subpackages:
//
//	thresholds/ — flavor-threshold atlas and evolution-path segmentation
//	coupling/   — QCD (and QED) running-coupling solver with threshold matching
//	mellin/     — Talbot inversion paths and adaptive contour quadrature
//	kernel/     — evolution-kernel strategies for both flavor sectors
//	operator/   — per-segment operator builder and multi-segment composer
//	runcard/    — YAML theory & operator cards feeding the engine
//
// Data flows leaf-first:
//
//	thresholds → coupling → (mellin + kernel) → operator → PhysicalOperator
//
// Dive into the package docs for formulas, tolerances and worked examples.
//
//	go get github.com/qcdlib/dglap
package dglap
