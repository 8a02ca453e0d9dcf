package thresholds

// Physical bounds on the active-flavor count: the three light quarks are
// always active, the top quark is the last one to open up.
const (
	// MinFlavors is the number of always-active light flavors.
	MinFlavors = 3

	// MaxFlavors is the largest supported active-flavor count.
	MaxFlavors = 6
)

// PathSegment is one oriented sub-interval of an evolution path over which
// the active-flavor count is constant. It is immutable once created.
type PathSegment struct {
	// ScaleFrom is the squared scale the segment starts at.
	ScaleFrom float64

	// ScaleTo is the squared scale the segment ends at.
	ScaleTo float64

	// NF is the number of active flavors on the segment.
	NF int
}

// IsBackward reports whether the segment runs towards smaller scales.
func (s PathSegment) IsBackward() bool {
	return s.ScaleFrom > s.ScaleTo
}

// IsDegenerate reports whether the segment has zero length.
// Degenerate segments carry no evolution and are dropped from paths.
func (s PathSegment) IsDegenerate() bool {
	return s.ScaleFrom == s.ScaleTo
}

// Key is a comparable identifier of a segment, suitable as a cache key.
type Key struct {
	ScaleFrom float64
	ScaleTo   float64
	NF        int
}

// Key returns the comparable identifier of the segment.
func (s PathSegment) Key() Key {
	return Key{ScaleFrom: s.ScaleFrom, ScaleTo: s.ScaleTo, NF: s.NF}
}
