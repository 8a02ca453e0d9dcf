package operator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/qcdlib/dglap/coupling"
	"github.com/qcdlib/dglap/kernel"
	"github.com/qcdlib/dglap/mellin"
)

// Operator holds the evolution matrices of one flavor segment in the
// anomalous-dimension basis. It is computed at most once; Compute is
// idempotent afterwards and a failed or canceled run leaves it
// uncomputed with no partial results.
type Operator struct {
	cfg   Config
	disp  *kernel.Dispatcher
	gamma AnomalousDimensions
	basis BasisProvider

	nf                 int
	scaleFrom, scaleTo float64
	a1, a0             float64

	mu       sync.Mutex
	computed bool
	members  map[Sector]*Member
}

// newSegment wires one segment; couplings are already evaluated at the
// segment endpoints by the Grid.
func newSegment(cfg Config, disp *kernel.Dispatcher, gamma AnomalousDimensions,
	basis BasisProvider, nf int, scaleFrom, scaleTo, a1, a0 float64) *Operator {
	return &Operator{
		cfg:       cfg,
		disp:      disp,
		gamma:     gamma,
		basis:     basis,
		nf:        nf,
		scaleFrom: scaleFrom,
		scaleTo:   scaleTo,
		a1:        a1,
		a0:        a0,
	}
}

// NF returns the segment's active flavor count.
func (o *Operator) NF() int { return o.nf }

// ScaleTo returns the segment's target squared scale.
func (o *Operator) ScaleTo() float64 { return o.scaleTo }

// Members returns the computed sector matrices. The map is read-only
// after Compute succeeds; it is nil before.
func (o *Operator) Members() map[Sector]*Member { return o.members }

// integrationSectors lists the sectors that are actually integrated; the
// remaining non-singlet members follow by the copy rules.
func integrationSectors(order int) []Sector {
	s := []Sector{NSPlus}
	if order > 0 {
		s = append(s, NSMinus)
	}
	return append(s, SingletQQ, SingletQG, SingletGQ, SingletGG)
}

// Compute runs the integrations once. Repeated calls on a computed
// segment return immediately; concurrent callers wait for the running
// computation and share its result. A failure or cancellation resets
// the segment, so the next caller retries from scratch under its own
// context.
func (o *Operator) Compute(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.computed {
		return nil
	}
	if err := o.compute(ctx); err != nil {
		o.members = nil
		return err
	}
	o.computed = true
	return nil
}

func (o *Operator) compute(ctx context.Context) error {
	size := o.basis.GridSize()
	members := make(map[Sector]*Member, len(allSectors))
	for _, s := range allSectors {
		members[s] = NewMember(size)
	}
	sectors := integrationSectors(o.cfg.Order)
	xgrid := o.basis.XGrid()

	start := time.Now()
	log.Printf("operator: segment %g -> %g (nf=%d): 0/%d rows", o.scaleFrom, o.scaleTo, o.nf, size)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.Workers)
	for k := 0; k < size; k++ {
		k := k
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rowStart := time.Now()
			logx := math.Log(xgrid[k])
			for j := 0; j < size; j++ {
				if !o.basis.ActiveAt(j, logx) {
					continue
				}
				for _, sec := range sectors {
					val, errEst, err := o.invertElement(sec, j, logx)
					if err != nil {
						return err
					}
					members[sec].Value[k][j] = val
					members[sec].Error[k][j] = errEst
				}
			}
			log.Printf("operator: segment %g -> %g (nf=%d): row %d/%d took %s",
				o.scaleFrom, o.scaleTo, o.nf, k+1, size, time.Since(rowStart).Round(time.Millisecond))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("operator: segment %g -> %g (nf=%d): done in %s",
		o.scaleFrom, o.scaleTo, o.nf, time.Since(start).Round(time.Millisecond))

	copyNS(members, o.cfg.Order)
	o.members = members
	return nil
}

// invertElement performs the contour inversion for one matrix element.
// Quadrature non-convergence is carried in the error estimate; only the
// hard sanity bound is fatal.
func (o *Operator) invertElement(sec Sector, j int, logx float64) (float64, float64, error) {
	var path mellin.Path
	if sec.IsSinglet() {
		path = mellin.SingletPath(logx)
	} else {
		path = mellin.NonSingletPath()
	}
	f := o.integrand(sec, j, logx)
	val, errEst, err := mellin.Invert(f, o.cfg.MellinCut, path, o.cfg.Quad)
	if err != nil && !mellinSoft(err) {
		return 0, 0, err
	}
	if errEst > sanityAbsFloor && errEst > math.Abs(val) {
		return 0, 0, fmt.Errorf("%w: sector %s, basis %d, logx %g: %g ± %g",
			ErrUnstable, sec, j, logx, val, errEst)
	}
	return val, errEst, nil
}

// mellinSoft separates recoverable quadrature conditions, reported as
// data, from genuine failures.
func mellinSoft(err error) bool {
	return err == nil || errors.Is(err, mellin.ErrNoConvergence)
}

// integrand combines basis function, anomalous dimensions and evolution
// kernel into the Mellin integrand of one element. The basis factor is
// evaluated first so that out-of-support points skip the kernel.
func (o *Operator) integrand(sec Sector, j int, logx float64) mellin.Integrand {
	l := math.Log(o.cfg.FactToRen)
	return func(n complex128) complex128 {
		pj := o.basis.EvaluateN(j, n, logx)
		if pj == 0 {
			return 0
		}
		var ker complex128
		if sec.IsSinglet() {
			gs := o.gamma.GammaSinglet(o.cfg.Order, n, o.nf)
			gs = gammaSingletFact(gs, o.cfg.Order, o.nf, l)
			row, col := sec.singletIndices()
			ker = o.disp.Singlet(gs, o.a1, o.a0, o.nf)[row][col]
		} else {
			gns := o.gamma.GammaNS(o.cfg.Order, sec, n, o.nf)
			gns = gammaNSFact(gns, o.cfg.Order, o.nf, l)
			ker = o.disp.NonSinglet(gns, o.a1, o.a0, o.nf)
		}
		return ker * pj
	}
}

// gammaNSFact shifts the NLO coefficient by the factorization-scale log,
// γ₁ → γ₁ − β₀·γ₀·L.
func gammaNSFact(gamma []complex128, order, nf int, l float64) []complex128 {
	if order == 0 || l == 0 {
		return gamma
	}
	out := make([]complex128, len(gamma))
	copy(out, gamma)
	out[1] -= complex(coupling.Beta0(nf)*l, 0) * out[0]
	return out
}

// gammaSingletFact is the singlet analogue of gammaNSFact.
func gammaSingletFact(gamma []kernel.Matrix2, order, nf int, l float64) []kernel.Matrix2 {
	if order == 0 || l == 0 {
		return gamma
	}
	out := make([]kernel.Matrix2, len(gamma))
	copy(out, gamma)
	out[1] = out[1].Sub(out[0].Scale(complex(coupling.Beta0(nf)*l, 0)))
	return out
}

// copyNS fills the non-integrated non-singlet sectors: at LO all three
// coincide, at NLO the valence follows the minus combination.
func copyNS(members map[Sector]*Member, order int) {
	switch order {
	case 0:
		members[NSMinus] = members[NSPlus].Copy()
		members[NSValence] = members[NSPlus].Copy()
	case 1:
		members[NSValence] = members[NSMinus].Copy()
	}
}
