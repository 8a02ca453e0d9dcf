package runcard_test

import (
	"context"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcdlib/dglap/kernel"
	"github.com/qcdlib/dglap/operator"
	"github.com/qcdlib/dglap/runcard"
)

const theoryYAML = `
alphas: 0.118
Qref: 91.1876
PTO: 1
ModEv: EXA
FNS: VFNS
mc: 1.51
mb: 4.92
mt: 172.5
kcThr: 1.0
kbThr: 1.0
ktThr: 1.0
fact_to_ren_scale_ratio: 1.0
IC: 1
IB: 0
`

const operatorYAML = `
interpolation_xgrid: [1.0e-4, 1.0e-2, 0.1, 0.5, 1.0]
interpolation_polynomial_degree: 2
interpolation_is_log: true
ev_op_iterations: 20
ev_op_max_order: 8
Q2grid: [100.0, 10000.0]
`

func TestParseTheory(t *testing.T) {
	card, err := runcard.ParseTheory([]byte(theoryYAML))
	require.NoError(t, err, "reference theory card must parse")

	assert.Equal(t, 0.118, card.AlphaS)
	assert.Equal(t, 91.1876, card.QRef)
	assert.Equal(t, 1, card.PTO)
	assert.Equal(t, "VFNS", card.FNS)
	assert.Equal(t, []int{4}, card.IntrinsicRange(), "IC switches intrinsic charm on")

	m, err := card.KernelMethod()
	require.NoError(t, err)
	assert.Equal(t, kernel.IterateExact, m, "EXA maps onto iterate-exact")
}

func TestParseTheory_Defaults(t *testing.T) {
	card, err := runcard.ParseTheory([]byte("alphas: 0.118\nQref: 91.1876\nModEv: EXA\nmc: 1.51\nmb: 4.92\nmt: 172.5\n"))
	require.NoError(t, err, "omitted fields fall back to defaults")
	assert.Equal(t, "VFNS", card.FNS)
	assert.Equal(t, 1.0, card.KCThr)
	assert.Equal(t, 1.0, card.FactToRenRatio)
	assert.Equal(t, 0, card.PTO)
}

func TestParseTheory_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative alphas":   "alphas: -0.1\nQref: 91\nModEv: EXA\nmc: 1\nmb: 4\nmt: 172\n",
		"zero Qref":         "alphas: 0.118\nQref: 0\nModEv: EXA\nmc: 1\nmb: 4\nmt: 172\n",
		"order too high":    "alphas: 0.118\nQref: 91\nPTO: 5\nModEv: EXA\nmc: 1\nmb: 4\nmt: 172\n",
		"unknown method":    "alphas: 0.118\nQref: 91\nModEv: euler\nmc: 1\nmb: 4\nmt: 172\n",
		"missing masses":    "alphas: 0.118\nQref: 91\nModEv: EXA\n",
		"bad FFNS flavors":  "alphas: 0.118\nQref: 91\nModEv: EXA\nFNS: FFNS\nNfFF: 9\n",
		"bad intrinsic":     "alphas: 0.118\nQref: 91\nModEv: EXA\nmc: 1\nmb: 4\nmt: 172\nIC: 2\n",
		"bad scale ratio":   "alphas: 0.118\nQref: 91\nModEv: EXA\nmc: 1\nmb: 4\nmt: 172\nfact_to_ren_scale_ratio: -1\n",
	}
	for name, card := range cases {
		_, err := runcard.ParseTheory([]byte(card))
		assert.ErrorIs(t, err, runcard.ErrInvalidCard, name)
	}

	_, err := runcard.ParseTheory([]byte("alphas: 0.118\nQref: 91\nModEv: EXA\nFNS: ZM-VFNS\n"))
	assert.ErrorIs(t, err, runcard.ErrUnknownScheme, "unknown scheme has its own sentinel")
}

func TestParseOperator(t *testing.T) {
	card, err := runcard.ParseOperator([]byte(operatorYAML))
	require.NoError(t, err)
	assert.Len(t, card.XGrid, 5)
	assert.Equal(t, 2, card.PolynomialDegree)
	assert.True(t, card.IsLog)
	assert.Equal(t, 20, card.EvOpIterations)
	assert.Equal(t, []float64{100.0, 10000.0}, card.Targets())
}

func TestParseOperator_Invalid(t *testing.T) {
	cases := map[string]string{
		"too few points":  "interpolation_xgrid: [0.5]\nQ2grid: [100]\n",
		"point above one": "interpolation_xgrid: [0.5, 2.0]\nQ2grid: [100]\n",
		"not increasing":  "interpolation_xgrid: [0.5, 0.5, 1.0]\nQ2grid: [100]\n",
		"degree too big":  "interpolation_xgrid: [0.1, 0.5, 1.0]\ninterpolation_polynomial_degree: 3\nQ2grid: [100]\n",
		"zero iterations": "interpolation_xgrid: [0.1, 1.0]\ninterpolation_polynomial_degree: 1\nev_op_iterations: 0\nQ2grid: [100]\n",
		"empty targets":   "interpolation_xgrid: [0.1, 1.0]\ninterpolation_polynomial_degree: 1\n",
		"negative target": "interpolation_xgrid: [0.1, 1.0]\ninterpolation_polynomial_degree: 1\nQ2grid: [-4]\n",
	}
	for name, card := range cases {
		_, err := runcard.ParseOperator([]byte(card))
		assert.ErrorIs(t, err, runcard.ErrInvalidCard, name)
	}
}

func TestTheoryCard_Atlas(t *testing.T) {
	card, err := runcard.ParseTheory([]byte(theoryYAML))
	require.NoError(t, err)

	atlas, err := card.Atlas()
	require.NoError(t, err)
	walls := atlas.Walls()
	require.Len(t, walls, 3)
	assert.InDelta(t, 1.51*1.51, walls[0], 1e-12, "charm wall is (mc·kc)²")
	assert.InDelta(t, 4.92*4.92, walls[1], 1e-12, "bottom wall is (mb·kb)²")
	assert.InDelta(t, 172.5*172.5, walls[2], 1e-12, "top wall is (mt·kt)²")
	assert.Equal(t, 5, atlas.RefNF(), "M_Z sits between bottom and top")
}

func TestTheoryCard_AtlasFFNS(t *testing.T) {
	card, err := runcard.ParseTheory([]byte("alphas: 0.118\nQref: 91.1876\nModEv: EXA\nFNS: FFNS\nNfFF: 4\n"))
	require.NoError(t, err)
	atlas, err := card.Atlas()
	require.NoError(t, err)
	assert.Equal(t, 4, atlas.RefNF())
	assert.Equal(t, 4, atlas.NFAt(1e6), "FFNS never changes flavor count")
}

func TestTheoryCard_Couplings(t *testing.T) {
	card, err := runcard.ParseTheory([]byte(theoryYAML))
	require.NoError(t, err)

	c, err := card.Couplings()
	require.NoError(t, err)
	ref := c.RefState()
	assert.InDelta(t, 0.118/(4*3.14159265358979), ref.AS, 1e-6, "reference a_s = α_s/4π")

	// the truncated strategies pair with the expanded coupling
	trn := *card
	trn.ModEv = "TRN"
	c2, err := trn.Couplings()
	require.NoError(t, err)
	assert.NotNil(t, c2)
}

// frozenGamma and powerBasis are the smallest possible providers to
// exercise Build end to end.
type frozenGamma struct{}

func (frozenGamma) GammaNS(order int, _ operator.Sector, _ complex128, _ int) []complex128 {
	return make([]complex128, order+1)
}

func (frozenGamma) GammaSinglet(order int, _ complex128, _ int) []kernel.Matrix2 {
	return make([]kernel.Matrix2, order+1)
}

type powerBasis struct {
	xgrid []float64
}

func (b powerBasis) GridSize() int              { return len(b.xgrid) }
func (b powerBasis) XGrid() []float64           { return b.xgrid }
func (b powerBasis) ActiveAt(int, float64) bool { return true }

func (b powerBasis) EvaluateN(j int, n complex128, logx float64) complex128 {
	return cmplx.Exp(-n*complex(logx, 0)) / (n + complex(float64(j), 0))
}

func TestBuild(t *testing.T) {
	theory, err := runcard.ParseTheory([]byte("alphas: 0.35\nQref: 1.4142\nModEv: EXA\nFNS: FFNS\nNfFF: 4\n"))
	require.NoError(t, err)
	card, err := runcard.ParseOperator([]byte("interpolation_xgrid: [0.1, 0.4, 0.8]\ninterpolation_polynomial_degree: 2\nQ2grid: [2.0]\n"))
	require.NoError(t, err)

	grid, err := runcard.Build(theory, card, frozenGamma{}, powerBasis{card.XGrid}, nil)
	require.NoError(t, err, "consistent cards must build a grid")

	ops, err := grid.Compute(context.Background(), theory.QRef*theory.QRef)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, 1.0, ops[0].Members["V.V"].Value[0][0], "zero-length evolution is the identity")
}

func TestXGridLinear(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, runcard.XGridLinear(3, 0, 1))
}

func TestXGridLogLinear(t *testing.T) {
	grid := runcard.XGridLogLinear(3, 1e-2)
	require.Len(t, grid, 3)
	assert.InDelta(t, 1e-2, grid[0], 1e-15)
	assert.InDelta(t, 1e-1, grid[1], 1e-12)
	assert.Equal(t, 1.0, grid[2], "upper end is exactly one")
}
