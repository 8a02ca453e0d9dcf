package operator

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/qcdlib/dglap/kernel"
	"github.com/qcdlib/dglap/mellin"
)

var (
	// ErrNilDependency reports a missing collaborator at construction.
	ErrNilDependency = errors.New("operator: nil dependency")
	// ErrBadMellinCut reports a cut outside (0, 0.5).
	ErrBadMellinCut = errors.New("operator: mellin cut must be in (0, 0.5)")
	// ErrBadScaleRatio reports a non-positive factorization/renormalization
	// scale ratio.
	ErrBadScaleRatio = errors.New("operator: fact-to-ren ratio must be positive")
	// ErrUnstable reports an operator entry whose error estimate exceeds
	// its value, the hard sanity bound of the whole computation.
	ErrUnstable = errors.New("operator: entry error exceeds its value")
)

// DefaultMellinCut trims the upper end of the inversion contour.
const DefaultMellinCut = 1e-2

// sanityAbsFloor keeps near-zero entries, whose error estimate is pure
// quadrature noise, from tripping the relative sanity bound.
const sanityAbsFloor = 1e-8

// Config collects every knob of the operator computation. The kernel
// fields mirror kernel.Config and are validated through it.
type Config struct {
	// Order is the perturbative QCD order (0 = LO, 1 = NLO).
	Order int
	// Method selects the kernel exponentiation strategy.
	Method kernel.Method
	// EvOpIterations is the micro-step count of the iterative strategies.
	EvOpIterations int
	// EvOpMaxOrder is the U-series truncation of the perturbative ones.
	EvOpMaxOrder int
	// FactToRen is the squared ratio μF²/μR²; 1 keeps the scales equal.
	FactToRen float64
	// MellinCut trims the inversion contour to t ∈ [0.5, 1−cut].
	MellinCut float64
	// Quad configures the contour quadrature; zero value means defaults.
	Quad mellin.QuadConfig
	// IntrinsicRange lists intrinsic heavy flavors (subset of {4, 5, 6})
	// that evolve with the identity instead of being generated.
	IntrinsicRange []int
	// Workers bounds the builder pool; 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig mirrors kernel.DefaultConfig with equal scales and the
// standard contour cut.
func DefaultConfig() Config {
	kc := kernel.DefaultConfig()
	return Config{
		Order:          kc.Order,
		Method:         kc.Method,
		EvOpIterations: kc.EvOpIterations,
		EvOpMaxOrder:   kc.EvOpMaxOrder,
		FactToRen:      1,
		MellinCut:      DefaultMellinCut,
		Quad:           mellin.DefaultQuadConfig(),
	}
}

// normalize validates cfg and fills defaults, returning the ready kernel
// dispatcher alongside.
func (cfg *Config) normalize() (*kernel.Dispatcher, error) {
	disp, err := kernel.New(kernel.Config{
		Order:          cfg.Order,
		Method:         cfg.Method,
		EvOpIterations: cfg.EvOpIterations,
		EvOpMaxOrder:   cfg.EvOpMaxOrder,
	})
	if err != nil {
		return nil, err
	}
	if cfg.FactToRen == 0 {
		cfg.FactToRen = 1
	}
	if cfg.FactToRen < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadScaleRatio, cfg.FactToRen)
	}
	if cfg.MellinCut == 0 {
		cfg.MellinCut = DefaultMellinCut
	}
	if cfg.MellinCut < 0 || cfg.MellinCut >= 0.5 {
		return nil, fmt.Errorf("%w: %g", ErrBadMellinCut, cfg.MellinCut)
	}
	if cfg.Quad == (mellin.QuadConfig{}) {
		cfg.Quad = mellin.DefaultQuadConfig()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return disp, nil
}
