package coupling

import (
	"errors"
	"math"
)

// ErrNoConvergence indicates that the adaptive ODE solver exhausted its step
// budget before covering the integration interval at the requested
// tolerance. The best estimate found so far is still returned.
var ErrNoConvergence = errors.New("coupling: ODE solver did not converge within the step budget")

// Solver tolerances and budget for the RGE integration. The tolerances are
// deliberately tight: coupling values are O(1e-2) and enter the evolution
// kernels exponentiated.
const (
	odeAbsTol   = 1e-13
	odeRelTol   = 1e-12
	odeMaxSteps = 10000
)

// rk45 integrates the scalar ODE y' = f(t, y) from t=0 to t=tEnd with the
// Dormand–Prince embedded Runge–Kutta pair (adaptive step size).
//
// Stage 1 (Prepare): pick an initial step covering 1% of the interval.
// Stage 2 (Iterate): advance with the 5th-order solution, control the step
// by the 4th/5th-order error estimate.
// Stage 3 (Finalize): land exactly on tEnd; flag budget exhaustion.
//
// Complexity: O(steps) function evaluations, 6 per accepted step.
func rk45(f func(t, y float64) float64, y0, tEnd float64) (float64, error) {
	if tEnd == 0 {
		return y0, nil
	}
	t, y := 0.0, y0
	h := tEnd / 100.0
	dir := math.Copysign(1, tEnd)

	for steps := 0; steps < odeMaxSteps; steps++ {
		if (tEnd-t)*dir <= 0 {
			return y, nil
		}
		// never overshoot the endpoint
		if (t+h-tEnd)*dir > 0 {
			h = tEnd - t
		}

		k1 := f(t, y)
		k2 := f(t+h/5.0, y+h*(k1/5.0))
		k3 := f(t+3.0*h/10.0, y+h*(3.0/40.0*k1+9.0/40.0*k2))
		k4 := f(t+4.0*h/5.0, y+h*(44.0/45.0*k1-56.0/15.0*k2+32.0/9.0*k3))
		k5 := f(t+8.0*h/9.0, y+h*(19372.0/6561.0*k1-25360.0/2187.0*k2+64448.0/6561.0*k3-212.0/729.0*k4))
		k6 := f(t+h, y+h*(9017.0/3168.0*k1-355.0/33.0*k2+46732.0/5247.0*k3+49.0/176.0*k4-5103.0/18656.0*k5))

		// 5th order solution (also the 7th stage position, FSAL)
		y5 := y + h*(35.0/384.0*k1+500.0/1113.0*k3+125.0/192.0*k4-2187.0/6784.0*k5+11.0/84.0*k6)
		k7 := f(t+h, y5)
		// embedded 4th order solution
		y4 := y + h*(5179.0/57600.0*k1+7571.0/16695.0*k3+393.0/640.0*k4-92097.0/339200.0*k5+187.0/2100.0*k6+1.0/40.0*k7)

		errEst := math.Abs(y5 - y4)
		tol := odeAbsTol + odeRelTol*math.Max(math.Abs(y), math.Abs(y5))
		if errEst <= tol {
			t += h
			y = y5
		}
		// step-size controller with safety factor and growth clamps
		factor := 5.0
		if errEst > 0 {
			factor = 0.9 * math.Pow(tol/errEst, 0.2)
			factor = math.Min(math.Max(factor, 0.2), 5.0)
		}
		h *= factor
	}

	return y, ErrNoConvergence
}
