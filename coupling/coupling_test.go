package coupling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcdlib/dglap/coupling"
	"github.com/qcdlib/dglap/thresholds"
)

const mz2 = 91.1876 * 91.1876

func ffnsCouplings(t *testing.T, order int, method coupling.Method, ref float64) *coupling.Couplings {
	t.Helper()
	atlas, err := thresholds.NewFFNS(5, ref)
	require.NoError(t, err)
	c, err := coupling.New(coupling.Config{
		AlphaS:   0.118,
		RefScale: ref,
		OrderQCD: order,
		Method:   method,
		Atlas:    atlas,
	})
	require.NoError(t, err)

	return c
}

// TestNew_Validation exercises the eager configuration checks.
func TestNew_Validation(t *testing.T) {
	atlas, err := thresholds.NewFFNS(5, mz2)
	require.NoError(t, err)

	_, err = coupling.New(coupling.Config{AlphaS: 0.118, RefScale: mz2, Method: coupling.MethodExact})
	assert.ErrorIs(t, err, coupling.ErrNilAtlas)

	_, err = coupling.New(coupling.Config{AlphaS: -0.1, RefScale: mz2, Atlas: atlas})
	assert.ErrorIs(t, err, coupling.ErrBadReference)

	_, err = coupling.New(coupling.Config{AlphaS: 0.118, RefScale: 0, Atlas: atlas})
	assert.ErrorIs(t, err, coupling.ErrBadReference)

	_, err = coupling.New(coupling.Config{AlphaS: 0.118, RefScale: mz2, OrderQCD: 3, Atlas: atlas})
	assert.ErrorIs(t, err, coupling.ErrOrderNotImplemented)

	_, err = coupling.New(coupling.Config{AlphaS: 0.118, RefScale: mz2, Method: coupling.Method(42), Atlas: atlas})
	assert.ErrorIs(t, err, coupling.ErrUnknownMethod)
}

// TestA_Reference returns the reference value unchanged when queried at the
// reference scale.
func TestA_Reference(t *testing.T) {
	for _, method := range []coupling.Method{coupling.MethodExact, coupling.MethodExpanded} {
		c := ffnsCouplings(t, 1, method, mz2)
		st, err := c.A(mz2)
		require.NoError(t, err)
		assert.InDelta(t, 0.118/(4.0*math.Pi), st.AS, 1e-14, "reference scale must return reference coupling")
		assert.Equal(t, 5, st.NF)
	}
}

// TestA_AsymptoticFreedom checks that the strong coupling is non-increasing
// with the scale for all flavor counts.
func TestA_AsymptoticFreedom(t *testing.T) {
	for nf := 3; nf <= 6; nf++ {
		atlas, err := thresholds.NewFFNS(nf, 10)
		require.NoError(t, err)
		for order := 0; order <= 2; order++ {
			c, err := coupling.New(coupling.Config{
				AlphaS:   0.25,
				RefScale: 10,
				OrderQCD: order,
				Method:   coupling.MethodExact,
				Atlas:    atlas,
			})
			require.NoError(t, err)
			prev := math.Inf(1)
			for _, q2 := range []float64{10, 100, 1000, 1e4, 1e5} {
				st, err := c.A(q2)
				require.NoError(t, err)
				assert.LessOrEqual(t, st.AS, prev+1e-15,
					"a_s must not increase with the scale (nf=%d order=%d q2=%g)", nf, order, q2)
				prev = st.AS
			}
		}
	}
}

// TestA_RoundTrip evolves a_s(M_Z²)=0.118/(4π) down to Q²=100 and back with
// the exact NLO method; the reference value must be recovered to 1e-10.
func TestA_RoundTrip(t *testing.T) {
	down := ffnsCouplings(t, 1, coupling.MethodExact, mz2)
	low, err := down.A(100)
	require.NoError(t, err)
	assert.Greater(t, low.AS, 0.118/(4.0*math.Pi), "coupling grows towards lower scales")

	atlas, err := thresholds.NewFFNS(5, 100)
	require.NoError(t, err)
	up, err := coupling.New(coupling.Config{
		AlphaS:   low.AS * 4.0 * math.Pi,
		RefScale: 100,
		OrderQCD: 1,
		Method:   coupling.MethodExact,
		Atlas:    atlas,
	})
	require.NoError(t, err)
	back, err := up.A(mz2)
	require.NoError(t, err)
	assert.InDelta(t, 0.118/(4.0*math.Pi), back.AS, 1e-10, "round trip must recover the reference")
}

// TestA_ExactVsExpanded requires the two methods to agree at the truncation
// accuracy for a short evolution interval.
func TestA_ExactVsExpanded(t *testing.T) {
	for order := 0; order <= 2; order++ {
		exact := ffnsCouplings(t, order, coupling.MethodExact, mz2)
		expd := ffnsCouplings(t, order, coupling.MethodExpanded, mz2)
		a, err := exact.A(mz2 * 1.2)
		require.NoError(t, err)
		b, err := expd.A(mz2 * 1.2)
		require.NoError(t, err)
		// the schemes differ at O(a^{order+2}); a ≈ 1e-2 here
		assert.InDelta(t, a.AS, b.AS, 5e-7, "order %d", order)
	}
}

// TestA_ExpandedEqualsExactAtLO: at leading order the closed form is the
// exact solution, so the two methods must coincide identically.
func TestA_ExpandedEqualsExactAtLO(t *testing.T) {
	exact := ffnsCouplings(t, 0, coupling.MethodExact, mz2)
	expd := ffnsCouplings(t, 0, coupling.MethodExpanded, mz2)
	for _, q2 := range []float64{1, 10, 100, 1e4, 1e6} {
		a, err := exact.A(q2)
		require.NoError(t, err)
		b, err := expd.A(q2)
		require.NoError(t, err)
		assert.Equal(t, a.AS, b.AS, "LO exact must be the closed form at q2=%g", q2)
	}
}

// TestA_ThresholdMatchingContinuity: at leading order the matching is the
// identity and the coupling is continuous across a threshold.
func TestA_ThresholdMatchingContinuity(t *testing.T) {
	atlas, err := thresholds.NewAtlas([]float64{4, 25, 30000}, 2)
	require.NoError(t, err)
	c, err := coupling.New(coupling.Config{
		AlphaS:   0.35,
		RefScale: 2,
		OrderQCD: 0,
		Method:   coupling.MethodExact,
		Atlas:    atlas,
	})
	require.NoError(t, err)

	below, err := c.A(25 * (1 - 1e-9))
	require.NoError(t, err)
	above, err := c.A(25 * (1 + 1e-9))
	require.NoError(t, err)
	assert.InDelta(t, below.AS, above.AS, 1e-8, "LO coupling is continuous across thresholds")
	assert.Equal(t, 4, below.NF)
	assert.Equal(t, 5, above.NF)
}

// TestAWithFact_MatchingAcrossFlatSegment crosses a threshold between two
// scales so close that neither segment runs the coupling: the matching
// jump must still be applied, with the jump set by the factorization log.
func TestAWithFact_MatchingAcrossFlatSegment(t *testing.T) {
	const wall = 25.0
	atlas, err := thresholds.NewAtlas([]float64{wall}, wall*(1-1e-13))
	require.NoError(t, err)
	c, err := coupling.New(coupling.Config{
		AlphaS:   0.35,
		RefScale: wall * (1 - 1e-13),
		OrderQCD: 1,
		Method:   coupling.MethodExact,
		Atlas:    atlas,
	})
	require.NoError(t, err)

	target := wall * (1 + 1e-13)
	st, err := c.AWithFact(target, target/math.E)
	require.NoError(t, err)
	require.Equal(t, 4, st.NF)

	// ln(target/fact) = 1, upward crossing at NLO.
	ref := 0.35 / (4.0 * math.Pi)
	want := ref * (1.0 + 4.0/3.0*coupling.TR*ref)
	assert.InDelta(t, want, st.AS, 1e-15, "jump must land even when the segments carry no running")
}

// TestA_QEDFrozen keeps the electromagnetic coupling constant at QED
// order zero and runs it upward at order one.
func TestA_QEDFrozen(t *testing.T) {
	atlas, err := thresholds.NewFFNS(5, mz2)
	require.NoError(t, err)

	frozen, err := coupling.New(coupling.Config{
		AlphaS: 0.118, AlphaEM: 0.007496, RefScale: mz2,
		OrderQCD: 1, OrderQED: 0,
		Method: coupling.MethodExact, Atlas: atlas,
	})
	require.NoError(t, err)
	st, err := frozen.A(1e6)
	require.NoError(t, err)
	assert.Equal(t, 0.007496/(4.0*math.Pi), st.AEM, "QED order 0 freezes a_em")

	running, err := coupling.New(coupling.Config{
		AlphaS: 0.118, AlphaEM: 0.007496, RefScale: mz2,
		OrderQCD: 1, OrderQED: 1,
		Method: coupling.MethodExact, Atlas: atlas,
	})
	require.NoError(t, err)
	st2, err := running.A(1e6)
	require.NoError(t, err)
	assert.Greater(t, st2.AEM, st.AEM, "a_em grows with the scale")
}

// TestParseMethod covers the run-card spellings.
func TestParseMethod(t *testing.T) {
	for s, want := range map[string]coupling.Method{
		"exact": coupling.MethodExact, "EXA": coupling.MethodExact,
		"expanded": coupling.MethodExpanded, "EXP": coupling.MethodExpanded, "TRN": coupling.MethodExpanded,
	} {
		got, err := coupling.ParseMethod(s)
		require.NoError(t, err)
		assert.Equal(t, want, got, s)
	}
	_, err := coupling.ParseMethod("iterate-exact")
	assert.ErrorIs(t, err, coupling.ErrUnknownMethod)
}
