package operator

import (
	"context"
	"fmt"
	"sync"

	"github.com/qcdlib/dglap/coupling"
	"github.com/qcdlib/dglap/kernel"
	"github.com/qcdlib/dglap/thresholds"
)

// Grid drives the whole evolution: it walks the threshold path to each
// requested target scale, computes (or reuses) the per-segment
// operators, inserts matching operators at flavor boundaries and
// composes everything into one PhysicalOperator per target.
//
// Segment operators are cached in a write-once arena keyed by
// (scaleFrom, scaleTo, nf); a segment shared by several targets is
// integrated exactly once. Compute processes targets sequentially — the
// parallelism lives inside the segment builder.
type Grid struct {
	cfg       Config
	disp      *kernel.Dispatcher
	atlas     *thresholds.Atlas
	couplings *coupling.Couplings
	gamma     AnomalousDimensions
	basis     BasisProvider
	matching  MatchingProvider

	mu    sync.Mutex
	arena map[thresholds.Key]*Operator
}

// NewGrid validates the configuration and wires the collaborators.
// matching may be nil as long as no requested path crosses a flavor
// threshold.
//
// Stage 1 (Validate): kernel configuration, scale ratio, contour cut,
// non-nil collaborators.
func NewGrid(cfg Config, atlas *thresholds.Atlas, couplings *coupling.Couplings,
	gamma AnomalousDimensions, basis BasisProvider, matching MatchingProvider) (*Grid, error) {
	disp, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	if atlas == nil {
		return nil, fmt.Errorf("%w: thresholds atlas", ErrNilDependency)
	}
	if couplings == nil {
		return nil, fmt.Errorf("%w: couplings", ErrNilDependency)
	}
	if gamma == nil {
		return nil, fmt.Errorf("%w: anomalous-dimension provider", ErrNilDependency)
	}
	if basis == nil {
		return nil, fmt.Errorf("%w: basis provider", ErrNilDependency)
	}
	return &Grid{
		cfg:       cfg,
		disp:      disp,
		atlas:     atlas,
		couplings: couplings,
		gamma:     gamma,
		basis:     basis,
		matching:  matching,
		arena:     make(map[thresholds.Key]*Operator),
	}, nil
}

// Compute returns one PhysicalOperator per target squared scale, in the
// order requested. A fatal error on any target aborts the whole call; no
// partial operator is returned.
func (g *Grid) Compute(ctx context.Context, targets ...float64) ([]*PhysicalOperator, error) {
	out := make([]*PhysicalOperator, 0, len(targets))
	for _, target := range targets {
		op, err := g.generate(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("operator: target %g: %w", target, err)
		}
		out = append(out, op)
	}
	return out, nil
}

// generate builds the operator for a single target scale.
func (g *Grid) generate(ctx context.Context, target float64) (*PhysicalOperator, error) {
	path := g.atlas.Path(target)
	if len(path) == 0 {
		// zero-length evolution
		return IdentityOperator(g.basis.GridSize(), g.atlas.NFAt(target), target, g.cfg.IntrinsicRange), nil
	}

	ops := make([]*Operator, len(path))
	for i, seg := range path {
		op, err := g.segment(seg)
		if err != nil {
			return nil, err
		}
		if err := op.Compute(ctx); err != nil {
			return nil, err
		}
		ops[i] = op
	}

	last := len(path) - 1
	intrinsic := g.cfg.IntrinsicRange
	if path[last].IsBackward() {
		intrinsic = []int{4, 5, 6}
	}
	final := AdToEvolMap(ops[last].Members(), path[last].NF, target, intrinsic)

	// fold in the lower segments, highest first, with a matching
	// operator at every flavor boundary
	for i := last - 1; i >= 0; i-- {
		if g.matching == nil {
			return nil, fmt.Errorf("%w: matching provider (path crosses a flavor threshold)", ErrNilDependency)
		}
		seg := path[i]
		match, err := g.matching.MatchingOperator(g.cfg.Order, seg.NF, seg.IsBackward())
		if err != nil {
			return nil, fmt.Errorf("matching at %g: %w", seg.ScaleTo, err)
		}
		phys := AdToEvolMap(ops[i].Members(), seg.NF, seg.ScaleTo, intrinsic)
		final, err = final.Join(match)
		if err != nil {
			return nil, err
		}
		final, err = final.Join(phys)
		if err != nil {
			return nil, err
		}
	}
	return final, nil
}

// segment returns the arena-cached operator for seg, creating it (with
// couplings evaluated at both endpoints) on first sight.
func (g *Grid) segment(seg thresholds.PathSegment) (*Operator, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if op, ok := g.arena[seg.Key()]; ok {
		return op, nil
	}
	s1, err := g.couplings.AWithFact(seg.ScaleTo/g.cfg.FactToRen, seg.ScaleTo)
	if err != nil {
		return nil, fmt.Errorf("coupling at %g: %w", seg.ScaleTo, err)
	}
	s0, err := g.couplings.AWithFact(seg.ScaleFrom/g.cfg.FactToRen, seg.ScaleFrom)
	if err != nil {
		return nil, fmt.Errorf("coupling at %g: %w", seg.ScaleFrom, err)
	}
	op := newSegment(g.cfg, g.disp, g.gamma, g.basis, seg.NF, seg.ScaleFrom, seg.ScaleTo, s1.AS, s0.AS)
	g.arena[seg.Key()] = op
	return op, nil
}
