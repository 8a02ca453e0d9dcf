// Package runcard reads the YAML run cards driving an evolution run and
// turns them into engine configuration.
//
// 🚀 Two cards describe a run:
//
//	TheoryCard   — physics inputs: reference coupling and scale,
//	               perturbative order, evolution method, flavor scheme,
//	               heavy-quark masses and threshold ratios, the
//	               factorization/renormalization scale ratio, intrinsic
//	               flavor switches.
//	OperatorCard — numerics: the interpolation x-grid, polynomial degree
//	               and log flag, micro-step and series budgets, and the
//	               list of target scales (squared).
//
// Both cards are validated eagerly at parse time; a card that parses is
// safe to build from. The builders assemble the engine pieces:
//
//	theory.Atlas()      -> *thresholds.Atlas
//	theory.Couplings()  -> *coupling.Couplings
//	Build(theory, op, gamma, basis, matching) -> *operator.Grid
//
// ⚙️ Usage:
//
//	theory, err := runcard.ParseTheory(theoryYAML)
//	card, err := runcard.ParseOperator(operatorYAML)
//	grid, err := runcard.Build(theory, card, gamma, basis, matching)
//	ops, err := grid.Compute(ctx, card.Targets()...)
//
// Scales on the cards are quoted unsquared (GeV), the common convention
// of run cards; the builders square them for the engine.
package runcard
