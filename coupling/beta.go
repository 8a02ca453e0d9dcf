package coupling

import (
	"errors"
	"fmt"
)

// Color factors of SU(3). They are fixed constants of the theory and are
// deliberately not configurable.
const (
	// CA is the adjoint Casimir N_C.
	CA = 3.0

	// CF is the fundamental Casimir (N_C²-1)/(2 N_C).
	CF = 4.0 / 3.0

	// TR is the color trace normalization.
	TR = 0.5
)

// MaxOrderQCD is the highest implemented truncation of the QCD beta
// function: beta_0, beta_1, beta_2 — i.e. up to NNLO running.
const MaxOrderQCD = 2

// MaxOrderQED is the highest implemented truncation of the QED beta
// function (leading order only).
const MaxOrderQED = 1

// ErrOrderNotImplemented indicates a perturbative order beyond the
// implemented beta-function truncation.
var ErrOrderNotImplemented = errors.New("coupling: order not implemented")

// Beta0 computes the first coefficient of the QCD beta function.
func Beta0(nf int) float64 {
	return 11.0/3.0*CA - 4.0/3.0*TR*float64(nf)
}

// Beta1 computes the second coefficient of the QCD beta function.
func Beta1(nf int) float64 {
	tf := TR * float64(nf)

	return 34.0/3.0*CA*CA - 20.0/3.0*CA*tf - 4.0*CF*tf
}

// Beta2 computes the third coefficient of the QCD beta function.
func Beta2(nf int) float64 {
	tf := TR * float64(nf)

	return 2857.0/54.0*CA*CA*CA -
		1415.0/27.0*CA*CA*tf -
		205.0/9.0*CF*CA*tf +
		2.0*CF*CF*tf +
		44.0/9.0*CF*tf*tf +
		158.0/27.0*CA*tf*tf
}

// Beta computes the k-th coefficient of the QCD beta function for nf active
// flavors. Coefficients beyond MaxOrderQCD are not implemented.
func Beta(k, nf int) (float64, error) {
	switch k {
	case 0:
		return Beta0(nf), nil
	case 1:
		return Beta1(nf), nil
	case 2:
		return Beta2(nf), nil
	default:
		return 0, fmt.Errorf("beta_%d: %w", k, ErrOrderNotImplemented)
	}
}

// B computes the reduced coefficient b_k = beta_k/beta_0.
func B(k, nf int) (float64, error) {
	bk, err := Beta(k, nf)
	if err != nil {
		return 0, err
	}

	return bk / Beta0(nf), nil
}

// sumSquaredCharges returns Σ e_q² over the nf lightest quark flavors,
// in the mass ordering d, u, s, c, b, t.
func sumSquaredCharges(nf int) float64 {
	// charge pattern: d(1/9) u(4/9) s(1/9) c(4/9) b(1/9) t(4/9)
	var sum float64
	for q := 0; q < nf; q++ {
		if q == 1 || q == 3 || q == 5 {
			sum += 4.0 / 9.0
		} else {
			sum += 1.0 / 9.0
		}
	}

	return sum
}

// Beta0QED computes the first coefficient of the QED beta function for nf
// active quark flavors and nl charged leptons, in the same sign convention
// as the QCD one: da/dlnμ² = −a² β0. The coefficient is negative, i.e. the
// electromagnetic coupling grows with the scale.
func Beta0QED(nf, nl int) float64 {
	return -4.0 / 3.0 * (float64(nl) + CA*sumSquaredCharges(nf))
}
