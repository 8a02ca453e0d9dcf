package coupling

import (
	"errors"
	"fmt"
	"math"

	"github.com/qcdlib/dglap/thresholds"
)

var (
	// ErrBadReference indicates a non-positive reference coupling or scale.
	ErrBadReference = errors.New("coupling: reference coupling and scale must be positive")

	// ErrUnknownMethod indicates an unrecognized RGE solution method.
	ErrUnknownMethod = errors.New("coupling: unknown solution method")

	// ErrNilAtlas indicates that no thresholds atlas was supplied.
	ErrNilAtlas = errors.New("coupling: thresholds atlas is nil")
)

// Method selects how the RGE is solved inside one flavor segment.
type Method int

const (
	// MethodExact integrates the truncated RGE with an adaptive
	// Runge–Kutta solver. At leading order it falls back to the closed
	// form, which is then the exact solution.
	MethodExact Method = iota

	// MethodExpanded evaluates the closed-form truncated series in powers
	// of the reference coupling; no numerical integration takes place.
	MethodExpanded
)

// ParseMethod maps the run-card spellings onto a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "exact", "EXA":
		return MethodExact, nil
	case "expanded", "EXP", "TRN":
		return MethodExpanded, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// State is a pair of coupling values valid at one scale and flavor count.
// Both couplings are normalized as value/(4π).
type State struct {
	// AS is the strong coupling a_s = α_s/(4π).
	AS float64

	// AEM is the electromagnetic coupling a_em = α_em/(4π).
	AEM float64

	// Scale is the squared scale the values are valid at.
	Scale float64

	// NF is the active-flavor count the values are valid at.
	NF int
}

// Config collects the immutable inputs of a Couplings solver.
type Config struct {
	// AlphaS is the reference value α_s(RefScale) — NOT divided by 4π,
	// matching the common way reference values are quoted.
	AlphaS float64

	// AlphaEM is the reference value α_em(RefScale). Optional; zero means
	// the electromagnetic coupling is not tracked.
	AlphaEM float64

	// RefScale is the squared reference scale μ₀².
	RefScale float64

	// OrderQCD is the truncation order of the QCD beta function:
	// 0 = leading order (β₀ only), up to MaxOrderQCD.
	OrderQCD int

	// OrderQED is the truncation order of the QED beta function:
	// 0 = frozen α_em, up to MaxOrderQED.
	OrderQED int

	// Method selects exact or expanded segment solutions.
	Method Method

	// Atlas provides the flavor segmentation of the scale axis.
	Atlas *thresholds.Atlas

	// Leptons is the number of charged leptons entering the QED beta
	// function. Defaults to 3 when QED running is enabled.
	Leptons int
}

// Couplings walks coupling values along threshold paths. It is immutable
// and safe for concurrent use after construction.
type Couplings struct {
	cfg   Config
	refAS float64 // a_s at the reference scale
	refEM float64 // a_em at the reference scale
}

// New validates the configuration and builds a Couplings solver.
// All configuration errors surface here, never during evaluation.
func New(cfg Config) (*Couplings, error) {
	if cfg.Atlas == nil {
		return nil, ErrNilAtlas
	}
	if cfg.AlphaS <= 0 || cfg.RefScale <= 0 {
		return nil, fmt.Errorf("alpha_s=%g scale=%g: %w", cfg.AlphaS, cfg.RefScale, ErrBadReference)
	}
	if cfg.OrderQCD < 0 || cfg.OrderQCD > MaxOrderQCD {
		return nil, fmt.Errorf("QCD order %d: %w", cfg.OrderQCD, ErrOrderNotImplemented)
	}
	if cfg.OrderQED < 0 || cfg.OrderQED > MaxOrderQED {
		return nil, fmt.Errorf("QED order %d: %w", cfg.OrderQED, ErrOrderNotImplemented)
	}
	if cfg.Method != MethodExact && cfg.Method != MethodExpanded {
		return nil, fmt.Errorf("method %d: %w", cfg.Method, ErrUnknownMethod)
	}
	if cfg.OrderQED > 0 && cfg.AlphaEM <= 0 {
		return nil, fmt.Errorf("alpha_em=%g with QED running: %w", cfg.AlphaEM, ErrBadReference)
	}
	if cfg.Leptons == 0 {
		cfg.Leptons = 3
	}

	return &Couplings{
		cfg:   cfg,
		refAS: cfg.AlphaS / (4.0 * math.Pi),
		refEM: cfg.AlphaEM / (4.0 * math.Pi),
	}, nil
}

// RefScale returns the squared reference scale.
func (c *Couplings) RefScale() float64 { return c.cfg.RefScale }

// RefState returns the coupling state at the reference scale.
func (c *Couplings) RefState() State {
	return State{
		AS:    c.refAS,
		AEM:   c.refEM,
		Scale: c.cfg.RefScale,
		NF:    c.cfg.Atlas.NFAt(c.cfg.RefScale),
	}
}

// A computes the coupling state at scaleTo, assuming equal factorization
// and renormalization scales.
func (c *Couplings) A(scaleTo float64) (State, error) {
	return c.AWithFact(scaleTo, scaleTo)
}

// AWithFact computes the coupling state at scaleTo with a separate
// factorization scale entering the threshold matching logarithm.
//
// The path from the reference scale is walked segment by segment; at every
// flavor boundary strictly between reference and target a discontinuous
// matching correction is applied before continuing.
func (c *Couplings) AWithFact(scaleTo, factScale float64) (State, error) {
	if scaleTo <= 0 {
		return State{}, fmt.Errorf("scale %g: %w", scaleTo, thresholds.ErrBadScale)
	}
	as := c.refAS
	aem := c.refEM
	path := c.cfg.Atlas.Path(scaleTo)
	var solveErr error
	for k, seg := range path {
		// Numerically-equal endpoints carry no running, but the segment
		// still ends on a flavor wall: the matching jump below applies
		// regardless, since the flavor count changes even when the
		// coupling does not move.
		if !closeEnough(seg.ScaleFrom, seg.ScaleTo) {
			next, err := c.computeAS(as, seg.NF, seg.ScaleFrom, seg.ScaleTo)
			if err != nil {
				solveErr = err
			}
			as = next
			aem = c.computeAEM(aem, seg.NF, seg.ScaleFrom, seg.ScaleTo)
		}
		// matching at the boundary towards the next segment
		if k < len(path)-1 {
			down := path[k+1].NF < seg.NF
			l := math.Log(scaleTo / factScale)
			as = matchQCD(as, c.cfg.OrderQCD, l, down)
		}
	}

	state := State{AS: as, AEM: aem, Scale: scaleTo, NF: c.cfg.Atlas.NFAt(scaleTo)}

	return state, solveErr
}

// computeAS advances the strong coupling over one same-flavor segment.
func (c *Couplings) computeAS(asRef float64, nf int, scaleFrom, scaleTo float64) (float64, error) {
	if c.cfg.Method == MethodExact {
		return c.computeExact(asRef, nf, scaleFrom, scaleTo)
	}

	return c.computeExpanded(asRef, nf, scaleFrom, scaleTo), nil
}

// computeExpanded evaluates the closed-form truncated solution.
func (c *Couplings) computeExpanded(asRef float64, nf int, scaleFrom, scaleTo float64) float64 {
	beta0 := Beta0(nf)
	lmu := math.Log(scaleTo / scaleFrom)
	den := 1.0 + beta0*asRef*lmu
	asLO := asRef / den
	res := asLO
	if c.cfg.OrderQCD >= 1 {
		b1 := Beta1(nf) / beta0
		asNLO := asLO * (1.0 - b1*asLO*math.Log(den))
		res = asNLO
		if c.cfg.OrderQCD == 2 {
			b2 := Beta2(nf) / beta0
			res = asLO * (1.0 +
				asLO*(asLO-asRef)*(b2-b1*b1) +
				asNLO*b1*math.Log(asNLO/asRef))
		}
	}

	return res
}

// computeExact integrates the truncated RGE numerically. The equation is
// rescaled to run in u = β₀·ln(scaleTo/scaleFrom), which keeps step sizes
// of order one for any physical interval.
func (c *Couplings) computeExact(asRef float64, nf int, scaleFrom, scaleTo float64) (float64, error) {
	// at leading order the expanded expression is the exact solution
	if c.cfg.OrderQCD == 0 {
		return c.computeExpanded(asRef, nf, scaleFrom, scaleTo), nil
	}
	beta0 := Beta0(nf)
	u := beta0 * math.Log(scaleTo/scaleFrom)
	bvec := []float64{1.0}
	if c.cfg.OrderQCD >= 1 {
		bvec = append(bvec, Beta1(nf)/beta0)
	}
	if c.cfg.OrderQCD >= 2 {
		bvec = append(bvec, Beta2(nf)/beta0)
	}
	rge := func(_ float64, a float64) float64 {
		rhs := 0.0
		ak := 1.0
		for _, bk := range bvec {
			rhs += bk * ak
			ak *= a
		}

		return -a * a * rhs
	}

	return rk45(rge, asRef, u)
}

// computeAEM advances the electromagnetic coupling over one segment.
// Only leading-order running is implemented; the LO closed form is exact.
func (c *Couplings) computeAEM(aemRef float64, nf int, scaleFrom, scaleTo float64) float64 {
	if c.cfg.OrderQED == 0 || aemRef == 0 {
		return aemRef
	}
	beta0 := Beta0QED(nf, c.cfg.Leptons)
	lmu := math.Log(scaleTo / scaleFrom)

	return aemRef / (1.0 + beta0*aemRef*lmu)
}

// matchQCD applies the discontinuous threshold matching to the strong
// coupling. l is the log-ratio of renormalization and factorization scales;
// the coefficients flip with the crossing direction (hep-ph/9706430).
func matchQCD(as float64, order int, l float64, down bool) float64 {
	if order == 0 {
		return as
	}
	var c1, c2 float64
	if down {
		c1 = -4.0 / 3.0 * TR * l
		c2 = 4.0/9.0*l*l - 38.0/3.0*l - 14.0/3.0
	} else {
		c1 = 4.0 / 3.0 * TR * l
		c2 = 4.0/9.0*l*l + 38.0/3.0*l + 14.0/3.0
	}
	switch order {
	case 1:
		return as * (1.0 + c1*as)
	default:
		return as * (1.0 + c1*as + c2*as*as)
	}
}

// closeEnough reports whether two scales are numerically indistinguishable.
func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}
