package kernel

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects the exponentiation strategy for the evolution kernel.
type Method int

const (
	// IterateExact composes N micro-step exponentials of the exact
	// integrand dln = γ(a)/β(a)·da evaluated at the midpoint.
	IterateExact Method = iota
	// IterateExpanded runs the same kernel integrand as IterateExact; the
	// two spellings differ only in how the coupling endpoints were evolved.
	IterateExpanded
	// PerturbativeExact builds the U-series from the exact R recursion
	// and evaluates U(a1)·E_LO·U(a0)⁻¹.
	PerturbativeExact
	// PerturbativeExpanded truncates the R recursion at the perturbative
	// order before building the U-series.
	PerturbativeExpanded
	// Truncated keeps only the first U-series term, micro-stepped as a
	// product of (1 + U1·Δa) factors times the leading-order kernel.
	Truncated
	// OrderedTruncated keeps the first U-series term in ordered form,
	// (1 + a_high·U1)·E_LO·(1 + a_low·U1)⁻¹ per micro-step.
	OrderedTruncated
	// DecomposeExact evaluates a single exponential of the exact
	// evolution integrals, exp(γ0·j01 + γ1·j11).
	DecomposeExact
	// DecomposeExpanded is DecomposeExact with the integrals expanded in
	// the coupling.
	DecomposeExpanded
)

// String returns the canonical runcard spelling of the method.
func (m Method) String() string {
	switch m {
	case IterateExact:
		return "iterate-exact"
	case IterateExpanded:
		return "iterate-expanded"
	case PerturbativeExact:
		return "perturbative-exact"
	case PerturbativeExpanded:
		return "perturbative-expanded"
	case Truncated:
		return "truncated"
	case OrderedTruncated:
		return "ordered-truncated"
	case DecomposeExact:
		return "decompose-exact"
	case DecomposeExpanded:
		return "decompose-expanded"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a runcard spelling onto a Method. Both the canonical
// hyphenated names and the legacy short codes (EXA, EXP, TRN, ORD) are
// accepted, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iterate-exact", "exa":
		return IterateExact, nil
	case "iterate-expanded", "exp":
		return IterateExpanded, nil
	case "perturbative-exact":
		return PerturbativeExact, nil
	case "perturbative-expanded":
		return PerturbativeExpanded, nil
	case "truncated", "trn":
		return Truncated, nil
	case "ordered-truncated", "ord":
		return OrderedTruncated, nil
	case "decompose-exact":
		return DecomposeExact, nil
	case "decompose-expanded":
		return DecomposeExpanded, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

var (
	// ErrUnknownMethod reports an unrecognized kernel strategy name.
	ErrUnknownMethod = errors.New("kernel: unknown method")
	// ErrOrderNotImplemented reports a perturbative order for which no
	// kernel coefficients exist.
	ErrOrderNotImplemented = errors.New("kernel: order not implemented")
	// ErrBadIterations reports a non-positive micro-step or series budget.
	ErrBadIterations = errors.New("kernel: iterations and series order must be positive")
)

// MaxOrder is the highest perturbative order the kernels cover
// (0 = LO, 1 = NLO).
const MaxOrder = 1

// Config fixes the kernel strategy once for a Dispatcher. All knobs are
// validated eagerly by New; evaluation itself never fails.
type Config struct {
	// Order is the perturbative order of the anomalous-dimension tower
	// (0 = LO, 1 = NLO).
	Order int
	// Method is the exponentiation strategy. Ignored at Order 0, where
	// every strategy collapses to the closed-form exponential.
	Method Method
	// EvOpIterations is the number of geometric micro-steps for the
	// iterative and truncated strategies.
	EvOpIterations int
	// EvOpMaxOrder is the truncation order of the U-series for the
	// perturbative strategies.
	EvOpMaxOrder int
}

// DefaultConfig returns the strategy used when a runcard stays silent:
// NLO iterate-exact with ten micro-steps and a ten-term U-series.
func DefaultConfig() Config {
	return Config{
		Order:          1,
		Method:         IterateExact,
		EvOpIterations: 10,
		EvOpMaxOrder:   10,
	}
}

// Dispatcher evaluates evolution kernels under one fixed Config.
// A Dispatcher is immutable and safe for concurrent use.
type Dispatcher struct {
	cfg Config
}

// New validates cfg and returns a ready Dispatcher.
//
// Stage 1 (Validate): order within [0, MaxOrder], method recognized,
// positive iteration and series budgets.
func New(cfg Config) (*Dispatcher, error) {
	if cfg.Order < 0 || cfg.Order > MaxOrder {
		return nil, fmt.Errorf("%w: order %d", ErrOrderNotImplemented, cfg.Order)
	}
	if cfg.Method < IterateExact || cfg.Method > DecomposeExpanded {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(cfg.Method))
	}
	if cfg.EvOpIterations < 1 || cfg.EvOpMaxOrder < 1 {
		return nil, fmt.Errorf("%w: iterations=%d, max order=%d",
			ErrBadIterations, cfg.EvOpIterations, cfg.EvOpMaxOrder)
	}
	return &Dispatcher{cfg: cfg}, nil
}

// Config returns the dispatcher's (validated) configuration.
func (d *Dispatcher) Config() Config { return d.cfg }
