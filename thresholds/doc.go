// Package thresholds models the heavy-quark flavor thresholds of QCD and
// computes the path an evolution has to follow to get from one scale to
// another.
//
// 🚀 What is a thresholds atlas?
//
//	The squared-scale axis is divided into regions by the (squared) heavy
//	quark threshold scales. Inside region i exactly nf = 3+i quark flavors
//	are active. Evolving between two scales means walking through every
//	region in between, one segment per region:
//
//	    0 ──── t_c ──── t_b ──── t_t ──── ∞
//	      nf=3     nf=4     nf=5     nf=6
//
// The Atlas answers two questions:
//
//   - NFAt(scale): how many flavors are active at a given scale?
//     A scale sitting exactly on a threshold belongs to the region above it.
//   - Path(...): which same-flavor segments connect two scales?
//     Ascending and descending walks are both supported and zero-length
//     segments are dropped.
//
// ⚙️ Usage:
//
//	atlas, err := thresholds.NewAtlas([]float64{4, 20, 1000}, 1.65)
//	if err != nil { ... }
//	segs := atlas.Path(1e4) // from the reference scale up to 10⁴
//
// Fixed-flavor setups (FFNS) are built with NewFFNS, which pins the flavor
// count over the whole axis.
//
// Complexity: construction O(n), every query O(n) with n ≤ 4 regions.
package thresholds
