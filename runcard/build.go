package runcard

import (
	"github.com/qcdlib/dglap/coupling"
	"github.com/qcdlib/dglap/kernel"
	"github.com/qcdlib/dglap/operator"
	"github.com/qcdlib/dglap/thresholds"
)

// Atlas builds the flavor-threshold atlas of the card: matching scales
// (mass·ratio)² under VFNS, a frozen flavor count under FFNS.
func (t *TheoryCard) Atlas() (*thresholds.Atlas, error) {
	ref := t.QRef * t.QRef
	if t.FNS == "FFNS" {
		return thresholds.NewFFNS(t.NfFF, ref)
	}
	walls := []float64{
		(t.MCharm * t.KCThr) * (t.MCharm * t.KCThr),
		(t.MBottom * t.KBThr) * (t.MBottom * t.KBThr),
		(t.MTop * t.KTThr) * (t.MTop * t.KTThr),
	}
	return thresholds.NewAtlas(walls, ref)
}

// KernelMethod returns the parsed evolution strategy.
func (t *TheoryCard) KernelMethod() (kernel.Method, error) {
	return kernel.ParseMethod(t.ModEv)
}

// couplingMethod derives the RGE solution method from the evolution
// strategy: the exact kernel strategies pair with the exact coupling,
// everything else runs on the expanded closed form.
func couplingMethod(m kernel.Method) coupling.Method {
	switch m {
	case kernel.IterateExact, kernel.DecomposeExact, kernel.PerturbativeExact:
		return coupling.MethodExact
	default:
		return coupling.MethodExpanded
	}
}

// Couplings builds the running-coupling solver over the card's atlas.
func (t *TheoryCard) Couplings() (*coupling.Couplings, error) {
	atlas, err := t.Atlas()
	if err != nil {
		return nil, err
	}
	method, err := t.KernelMethod()
	if err != nil {
		return nil, err
	}
	return coupling.New(coupling.Config{
		AlphaS:   t.AlphaS,
		RefScale: t.QRef * t.QRef,
		OrderQCD: t.PTO,
		Method:   couplingMethod(method),
		Atlas:    atlas,
	})
}

// IntrinsicRange lists the intrinsic heavy flavors switched on by the
// card.
func (t *TheoryCard) IntrinsicRange() []int {
	var r []int
	if t.IC == 1 {
		r = append(r, 4)
	}
	if t.IB == 1 {
		r = append(r, 5)
	}
	return r
}

// Build assembles the operator grid from both cards and the external
// providers. The basis provider must match the card's x-grid.
func Build(t *TheoryCard, o *OperatorCard, gamma operator.AnomalousDimensions,
	basis operator.BasisProvider, matching operator.MatchingProvider) (*operator.Grid, error) {
	atlas, err := t.Atlas()
	if err != nil {
		return nil, err
	}
	couplings, err := t.Couplings()
	if err != nil {
		return nil, err
	}
	method, err := t.KernelMethod()
	if err != nil {
		return nil, err
	}
	cfg := operator.DefaultConfig()
	cfg.Order = t.PTO
	cfg.Method = method
	cfg.EvOpIterations = o.EvOpIterations
	cfg.EvOpMaxOrder = o.EvOpMaxOrder
	cfg.FactToRen = t.FactToRenRatio * t.FactToRenRatio
	cfg.IntrinsicRange = t.IntrinsicRange()
	return operator.NewGrid(cfg, atlas, couplings, gamma, basis, matching)
}
