package runcard

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/qcdlib/dglap/kernel"
)

var (
	// ErrInvalidCard reports a card that parsed as YAML but fails
	// validation; the wrapped message names the field.
	ErrInvalidCard = errors.New("runcard: invalid card")
	// ErrUnknownScheme reports a flavor scheme other than FFNS or VFNS.
	ErrUnknownScheme = errors.New("runcard: unknown flavor number scheme")
)

// TheoryCard carries the physics inputs of a run. Field spellings follow
// the established card conventions.
type TheoryCard struct {
	// AlphaS is α_s at the reference scale QRef.
	AlphaS float64 `yaml:"alphas"`
	// QRef is the unsquared reference scale in GeV.
	QRef float64 `yaml:"Qref"`
	// PTO is the perturbative order, 0 = LO, 1 = NLO.
	PTO int `yaml:"PTO"`
	// ModEv names the kernel evolution method; the canonical hyphenated
	// spellings and the short codes EXA/EXP/TRN are accepted.
	ModEv string `yaml:"ModEv"`
	// FNS is the flavor number scheme, FFNS or VFNS.
	FNS string `yaml:"FNS"`
	// NfFF is the fixed flavor count, read only under FFNS.
	NfFF int `yaml:"NfFF"`

	// Heavy-quark masses in GeV.
	MCharm  float64 `yaml:"mc"`
	MBottom float64 `yaml:"mb"`
	MTop    float64 `yaml:"mt"`
	// Threshold ratios: the matching scale of each quark is mass·ratio.
	KCThr float64 `yaml:"kcThr"`
	KBThr float64 `yaml:"kbThr"`
	KTThr float64 `yaml:"ktThr"`

	// FactToRenRatio is the unsquared ratio μF/μR; 1 keeps them equal.
	FactToRenRatio float64 `yaml:"fact_to_ren_scale_ratio"`

	// IC/IB switch intrinsic charm/bottom on (1) or off (0).
	IC int `yaml:"IC"`
	IB int `yaml:"IB"`
}

// OperatorCard carries the numerical settings of a run.
type OperatorCard struct {
	// XGrid is the ordered interpolation grid in (0, 1].
	XGrid []float64 `yaml:"interpolation_xgrid"`
	// PolynomialDegree is the interpolation degree handed to the basis
	// provider.
	PolynomialDegree int `yaml:"interpolation_polynomial_degree"`
	// IsLog selects interpolation in ln x rather than x.
	IsLog bool `yaml:"interpolation_is_log"`
	// EvOpIterations is the kernel micro-step count.
	EvOpIterations int `yaml:"ev_op_iterations"`
	// EvOpMaxOrder is the perturbative U-series truncation.
	EvOpMaxOrder int `yaml:"ev_op_max_order"`
	// Q2Grid lists the target squared scales in GeV².
	Q2Grid []float64 `yaml:"Q2grid"`
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidCard, fmt.Sprintf(format, args...))
}

// ParseTheory decodes and validates a theory card.
func ParseTheory(data []byte) (*TheoryCard, error) {
	t := &TheoryCard{
		FNS:            "VFNS",
		KCThr:          1,
		KBThr:          1,
		KTThr:          1,
		FactToRenRatio: 1,
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("runcard: decoding theory card: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TheoryCard) validate() error {
	if t.AlphaS <= 0 {
		return invalid("alphas %g must be positive", t.AlphaS)
	}
	if t.QRef <= 0 {
		return invalid("Qref %g must be positive", t.QRef)
	}
	if t.PTO < 0 || t.PTO > kernel.MaxOrder {
		return invalid("PTO %d outside the implemented orders", t.PTO)
	}
	if _, err := kernel.ParseMethod(t.ModEv); err != nil {
		return fmt.Errorf("%w: ModEv: %s", ErrInvalidCard, err)
	}
	switch t.FNS {
	case "FFNS":
		if t.NfFF < 3 || t.NfFF > 6 {
			return invalid("NfFF %d outside [3, 6]", t.NfFF)
		}
	case "VFNS":
		if t.MCharm <= 0 || t.MBottom <= 0 || t.MTop <= 0 {
			return invalid("VFNS requires positive quark masses, got mc=%g mb=%g mt=%g",
				t.MCharm, t.MBottom, t.MTop)
		}
		if t.KCThr <= 0 || t.KBThr <= 0 || t.KTThr <= 0 {
			return invalid("threshold ratios must be positive, got kc=%g kb=%g kt=%g",
				t.KCThr, t.KBThr, t.KTThr)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScheme, t.FNS)
	}
	if t.FactToRenRatio <= 0 {
		return invalid("fact_to_ren_scale_ratio %g must be positive", t.FactToRenRatio)
	}
	if t.IC != 0 && t.IC != 1 || t.IB != 0 && t.IB != 1 {
		return invalid("IC/IB must be 0 or 1, got %d/%d", t.IC, t.IB)
	}
	return nil
}

// ParseOperator decodes and validates an operator card.
func ParseOperator(data []byte) (*OperatorCard, error) {
	o := &OperatorCard{
		PolynomialDegree: 4,
		IsLog:            true,
		EvOpIterations:   10,
		EvOpMaxOrder:     10,
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("runcard: decoding operator card: %w", err)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *OperatorCard) validate() error {
	if len(o.XGrid) < 2 {
		return invalid("interpolation_xgrid needs at least two points, got %d", len(o.XGrid))
	}
	for i, x := range o.XGrid {
		if x <= 0 || x > 1 {
			return invalid("interpolation_xgrid[%d] = %g outside (0, 1]", i, x)
		}
		if i > 0 && x <= o.XGrid[i-1] {
			return invalid("interpolation_xgrid must be strictly increasing at index %d", i)
		}
	}
	if o.PolynomialDegree < 1 || o.PolynomialDegree >= len(o.XGrid) {
		return invalid("interpolation_polynomial_degree %d outside [1, grid size)", o.PolynomialDegree)
	}
	if o.EvOpIterations < 1 || o.EvOpMaxOrder < 1 {
		return invalid("ev_op_iterations %d and ev_op_max_order %d must be positive",
			o.EvOpIterations, o.EvOpMaxOrder)
	}
	if len(o.Q2Grid) == 0 {
		return invalid("Q2grid must not be empty")
	}
	for i, q2 := range o.Q2Grid {
		if q2 <= 0 {
			return invalid("Q2grid[%d] = %g must be positive", i, q2)
		}
	}
	return nil
}

// Targets returns the squared target scales of the run.
func (o *OperatorCard) Targets() []float64 {
	out := make([]float64, len(o.Q2Grid))
	copy(out, o.Q2Grid)
	return out
}
