package thresholds

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsortedWalls indicates that the threshold scales were not strictly
	// increasing.
	ErrUnsortedWalls = errors.New("thresholds: threshold scales must be strictly increasing")

	// ErrBadScale indicates a non-positive or non-finite reference/query scale.
	ErrBadScale = errors.New("thresholds: scale must be positive and finite")

	// ErrBadFlavor indicates an active-flavor count outside [3,6].
	ErrBadFlavor = errors.New("thresholds: flavor count out of range")
)

// Atlas holds the ordered list of flavor-threshold scales together with a
// reference scale and flavor count. It is immutable after construction;
// all queries are read-only.
//
// The wall list covers the interior boundaries only: walls[i] separates the
// region with nf = MinFlavors+i from the one with nf = MinFlavors+i+1. The
// implicit outer boundaries are 0 and +∞.
type Atlas struct {
	walls    []float64
	refScale float64
	refNF    int
	fixedNF  int // 0 in VFNS mode, pinned flavor count otherwise
}

// NewAtlas builds a variable-flavor-number atlas from the interior threshold
// scales (squared, strictly increasing, at most MaxFlavors-MinFlavors many)
// and the reference scale.
//
// Stage 1 (Validate): walls strictly increasing and positive, refScale > 0.
// Stage 2 (Finalize): locate the reference flavor count.
func NewAtlas(walls []float64, refScale float64) (*Atlas, error) {
	if !(refScale > 0) || math.IsInf(refScale, 1) {
		return nil, fmt.Errorf("reference scale %g: %w", refScale, ErrBadScale)
	}
	if len(walls) > MaxFlavors-MinFlavors {
		return nil, fmt.Errorf("%d thresholds: %w", len(walls), ErrBadFlavor)
	}
	prev := 0.0
	for _, w := range walls {
		if !(w > prev) || math.IsInf(w, 1) {
			return nil, fmt.Errorf("wall %g after %g: %w", w, prev, ErrUnsortedWalls)
		}
		prev = w
	}
	a := &Atlas{walls: append([]float64(nil), walls...), refScale: refScale}
	a.refNF = a.NFAt(refScale)

	return a, nil
}

// NewFFNS builds a fixed-flavor-number atlas: nf flavors are active on the
// whole scale axis and no thresholds are ever crossed.
func NewFFNS(nf int, refScale float64) (*Atlas, error) {
	if nf < MinFlavors || nf > MaxFlavors {
		return nil, fmt.Errorf("nf=%d: %w", nf, ErrBadFlavor)
	}
	if !(refScale > 0) || math.IsInf(refScale, 1) {
		return nil, fmt.Errorf("reference scale %g: %w", refScale, ErrBadScale)
	}

	return &Atlas{refScale: refScale, refNF: nf, fixedNF: nf}, nil
}

// RefScale returns the reference squared scale of the atlas.
func (a *Atlas) RefScale() float64 { return a.refScale }

// RefNF returns the number of active flavors at the reference scale.
func (a *Atlas) RefNF() int { return a.refNF }

// Walls returns a copy of the interior threshold scales.
func (a *Atlas) Walls() []float64 {
	return append([]float64(nil), a.walls...)
}

// NFAt returns the number of active flavors at the given squared scale.
// A scale equal to a threshold belongs to the region above it.
func (a *Atlas) NFAt(scale float64) int {
	if a.fixedNF != 0 {
		return a.fixedNF
	}
	nf := MinFlavors
	for _, w := range a.walls {
		if scale < w {
			break
		}
		nf++
	}

	return nf
}

// wall returns the boundary between the regions with nf and nf+1 flavors.
func (a *Atlas) wall(nf int) float64 {
	return a.walls[nf-MinFlavors]
}

// Path returns the list of same-flavor segments connecting the reference
// scale to scaleTo. The flavor counts at both ends are located on the atlas.
func (a *Atlas) Path(scaleTo float64) []PathSegment {
	return a.PathFrom(a.refScale, scaleTo)
}

// PathFrom returns the list of same-flavor segments connecting scaleFrom to
// scaleTo, walking the threshold walls in between. Zero-length segments at
// the walls are dropped so that downstream ratios stay well-defined.
func (a *Atlas) PathFrom(scaleFrom, scaleTo float64) []PathSegment {
	return a.walk(scaleFrom, scaleTo, a.NFAt(scaleFrom), a.NFAt(scaleTo))
}

// PathWithNF is PathFrom with explicit flavor counts at both endpoints,
// overriding the located ones. It is used to force matched evolutions, e.g.
// expressing an operator right below a threshold in the scheme above it.
func (a *Atlas) PathWithNF(scaleFrom, scaleTo float64, nfFrom, nfTo int) ([]PathSegment, error) {
	if nfFrom < MinFlavors || nfFrom > MaxFlavors || nfTo < MinFlavors || nfTo > MaxFlavors {
		return nil, fmt.Errorf("nf %d->%d: %w", nfFrom, nfTo, ErrBadFlavor)
	}

	return a.walk(scaleFrom, scaleTo, nfFrom, nfTo), nil
}

// walk produces one segment per flavor region crossed between the endpoints.
// Intermediate segment boundaries sit exactly on the crossed walls.
func (a *Atlas) walk(scaleFrom, scaleTo float64, nfFrom, nfTo int) []PathSegment {
	// Same region: a single direct segment, or nothing at all.
	if nfFrom == nfTo {
		if scaleFrom == scaleTo {
			return nil
		}

		return []PathSegment{{ScaleFrom: scaleFrom, ScaleTo: scaleTo, NF: nfFrom}}
	}

	dir := 1
	if nfTo < nfFrom {
		dir = -1
	}
	segs := make([]PathSegment, 0, abs(nfTo-nfFrom)+1)
	cur, nf := scaleFrom, nfFrom
	for nf != nfTo {
		// Upper wall when ascending, lower wall when descending.
		var next float64
		if dir > 0 {
			next = a.wall(nf)
		} else {
			next = a.wall(nf - 1)
		}
		if cur != next {
			segs = append(segs, PathSegment{ScaleFrom: cur, ScaleTo: next, NF: nf})
		}
		cur = next
		nf += dir
	}
	if cur != scaleTo {
		segs = append(segs, PathSegment{ScaleFrom: cur, ScaleTo: scaleTo, NF: nfTo})
	}

	return segs
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
