package coupling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qcdlib/dglap/coupling"
)

// TestBeta_ReferenceValues pins the beta coefficients against their
// literature values.
func TestBeta_ReferenceValues(t *testing.T) {
	assert.InDelta(t, 9.0, coupling.Beta0(3), 1e-12, "beta_0(3)")
	assert.InDelta(t, 23.0/3.0, coupling.Beta0(5), 1e-12, "beta_0(5)")
	assert.InDelta(t, 64.0, coupling.Beta1(3), 1e-12, "beta_1(3)")
	assert.InDelta(t, 102.0-38.0/3.0*5.0, coupling.Beta1(5), 1e-12, "beta_1(5)")
	assert.InDelta(t, 3863.0/6.0, coupling.Beta2(3), 1e-9, "beta_2(3)")
}

// TestBeta_Monotone checks that beta_0 decreases with nf but stays positive
// up to 6 flavors (asymptotic freedom).
func TestBeta_Monotone(t *testing.T) {
	prev := coupling.Beta0(3)
	for nf := 4; nf <= 6; nf++ {
		cur := coupling.Beta0(nf)
		assert.Less(t, cur, prev, "beta_0 must decrease with nf")
		assert.Positive(t, cur, "beta_0 must stay positive for nf<=6")
		prev = cur
	}
}

// TestBeta_OrderNotImplemented rejects coefficients beyond the truncation.
func TestBeta_OrderNotImplemented(t *testing.T) {
	_, err := coupling.Beta(3, 5)
	assert.ErrorIs(t, err, coupling.ErrOrderNotImplemented)

	_, err = coupling.B(4, 5)
	assert.ErrorIs(t, err, coupling.ErrOrderNotImplemented)
}

// TestBeta0QED has the opposite sign: the electromagnetic coupling grows.
func TestBeta0QED(t *testing.T) {
	assert.Negative(t, coupling.Beta0QED(5, 3))
	// nf=5, nl=3: -4/3*(3 + 3*11/9) = -4/3*(3 + 11/3)
	assert.InDelta(t, -4.0/3.0*(3.0+11.0/3.0), coupling.Beta0QED(5, 3), 1e-12)
}
