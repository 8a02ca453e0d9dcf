package kernel

import "math/cmplx"

// Matrix2 is a 2×2 complex matrix in the singlet flavor basis,
// rows/columns ordered (q, g). Value semantics: every operation returns
// a fresh matrix and leaves the receiver untouched.
type Matrix2 [2][2]complex128

// Identity2 returns the 2×2 identity.
func Identity2() Matrix2 {
	return Matrix2{{1, 0}, {0, 1}}
}

// Mul returns the matrix product m·o.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		{m[0][0]*o[0][0] + m[0][1]*o[1][0], m[0][0]*o[0][1] + m[0][1]*o[1][1]},
		{m[1][0]*o[0][0] + m[1][1]*o[1][0], m[1][0]*o[0][1] + m[1][1]*o[1][1]},
	}
}

// Add returns the element-wise sum m+o.
func (m Matrix2) Add(o Matrix2) Matrix2 {
	return Matrix2{
		{m[0][0] + o[0][0], m[0][1] + o[0][1]},
		{m[1][0] + o[1][0], m[1][1] + o[1][1]},
	}
}

// Sub returns the element-wise difference m−o.
func (m Matrix2) Sub(o Matrix2) Matrix2 {
	return Matrix2{
		{m[0][0] - o[0][0], m[0][1] - o[0][1]},
		{m[1][0] - o[1][0], m[1][1] - o[1][1]},
	}
}

// Scale returns s·m.
func (m Matrix2) Scale(s complex128) Matrix2 {
	return Matrix2{
		{s * m[0][0], s * m[0][1]},
		{s * m[1][0], s * m[1][1]},
	}
}

// Inverse returns m⁻¹ through the 2×2 cofactor formula. A singular
// matrix yields Inf/NaN entries; callers in this package only invert
// matrices that are perturbatively close to the identity.
func (m Matrix2) Inverse() Matrix2 {
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	return Matrix2{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}
}

// ExpSinglet returns the matrix exponential of m together with its
// eigensystem: the eigenvalues λ± and the projectors e± onto their
// eigenspaces, so that
//
//	exp(m) = e₊·exp(λ₊) + e₋·exp(λ₋)
//
// The closed form follows from the Cayley–Hamilton theorem for 2×2
// matrices. Degenerate eigenvalues (vanishing discriminant) do not occur
// for physical singlet anomalous dimensions; the case is still covered
// through the Jordan form exp(m) = e^λ·(1 + m − λ·1), with the full
// projector assigned to λ₊, so that exp of the zero matrix is exactly
// the identity.
func (m Matrix2) ExpSinglet() (exp Matrix2, lambdaP, lambdaM complex128, eP, eM Matrix2) {
	trace := m[0][0] + m[1][1]
	det := cmplx.Sqrt((m[0][0]-m[1][1])*(m[0][0]-m[1][1]) + 4*m[0][1]*m[1][0])
	lambdaP = 0.5 * (trace + det)
	lambdaM = 0.5 * (trace - det)
	id := Identity2()
	if det == 0 {
		eP, eM = id, Matrix2{}
		exp = id.Add(m.Sub(id.Scale(lambdaP))).Scale(cmplx.Exp(lambdaP))
		return exp, lambdaP, lambdaM, eP, eM
	}
	eP = m.Sub(id.Scale(lambdaM)).Scale(1 / det)
	eM = m.Sub(id.Scale(lambdaP)).Scale(-1 / det)
	exp = eP.Scale(cmplx.Exp(lambdaP)).Add(eM.Scale(cmplx.Exp(lambdaM)))
	return exp, lambdaP, lambdaM, eP, eM
}
