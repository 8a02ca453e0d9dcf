package operator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrShapeMismatch reports an algebra operation between members of
	// different grid sizes.
	ErrShapeMismatch = errors.New("operator: member shape mismatch")
)

// Sector labels one flavor combination in the anomalous-dimension basis.
type Sector string

const (
	NSPlus    Sector = "NS_p"
	NSMinus   Sector = "NS_m"
	NSValence Sector = "NS_v"
	SingletQQ Sector = "S_qq"
	SingletQG Sector = "S_qg"
	SingletGQ Sector = "S_gq"
	SingletGG Sector = "S_gg"
)

// allSectors is the full storage set of one segment operator.
var allSectors = []Sector{
	NSPlus, NSMinus, NSValence,
	SingletQQ, SingletQG, SingletGQ, SingletGG,
}

// IsSinglet reports whether the sector is an element of the coupled
// quark-singlet/gluon block.
func (s Sector) IsSinglet() bool { return strings.HasPrefix(string(s), "S_") }

// singletIndices maps a singlet sector onto its (row, column) in the 2×2
// kernel, 0 = quark, 1 = gluon.
func (s Sector) singletIndices() (row, col int) {
	if s[2] == 'g' {
		row = 1
	}
	if s[3] == 'g' {
		col = 1
	}
	return row, col
}

// Member is one operator element: a value matrix over the x-grid and the
// accompanying quadrature-error matrix, both indexed
// [output point][basis function].
type Member struct {
	Value [][]float64
	Error [][]float64
}

// NewMember returns a zero-filled size×size member.
func NewMember(size int) *Member {
	return &Member{Value: zeros(size), Error: zeros(size)}
}

// IdentityMember returns a member whose value is the identity matrix and
// whose error vanishes.
func IdentityMember(size int) *Member {
	m := NewMember(size)
	for i := 0; i < size; i++ {
		m.Value[i][i] = 1
	}
	return m
}

// Size returns the grid dimension.
func (m *Member) Size() int { return len(m.Value) }

// Copy returns a deep copy.
func (m *Member) Copy() *Member {
	out := NewMember(m.Size())
	for i := range m.Value {
		copy(out.Value[i], m.Value[i])
		copy(out.Error[i], m.Error[i])
	}
	return out
}

// Join returns the matrix product m·o, the operator applying o first and
// m second. Errors combine through the first-order additive rule
// |m|·err(o) + err(m)·|o|; this is a bound, not a covariance propagation.
func (m *Member) Join(o *Member) (*Member, error) {
	n := m.Size()
	if o.Size() != n {
		return nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, o.Size())
	}
	out := NewMember(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			v, e := m.Value[i][k], m.Error[i][k]
			av := math.Abs(v)
			for j := 0; j < n; j++ {
				out.Value[i][j] += v * o.Value[k][j]
				out.Error[i][j] += av*o.Error[k][j] + e*math.Abs(o.Value[k][j])
			}
		}
	}
	return out, nil
}

// Add returns the element-wise sum; errors add linearly.
func (m *Member) Add(o *Member) (*Member, error) {
	n := m.Size()
	if o.Size() != n {
		return nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, o.Size())
	}
	out := NewMember(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Value[i][j] = m.Value[i][j] + o.Value[i][j]
			out.Error[i][j] = m.Error[i][j] + o.Error[i][j]
		}
	}
	return out, nil
}

func zeros(size int) [][]float64 {
	backing := make([]float64, size*size)
	rows := make([][]float64, size)
	for i := range rows {
		rows[i] = backing[i*size : (i+1)*size]
	}
	return rows
}
