package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// SeparationResult describes how far, and along which axis, two overlapping
// boxes must move apart.
type SeparationResult struct {
	// Separation is the full push needed, pointing from a towards b.
	Separation cp.Vector
	// Normal is Separation with unit length.
	Normal   cp.Vector
	Distance float64
}

// Intersection returns the overlapping region of a and b. Boxes that only
// touch along an edge do not intersect.
func Intersection(a, b cp.BB) (cp.BB, bool) {
	overlap := cp.BB{
		L: math.Max(a.L, b.L),
		B: math.Max(a.B, b.B),
		R: math.Min(a.R, b.R),
		T: math.Min(a.T, b.T),
	}
	if overlap.L >= overlap.R || overlap.B >= overlap.T {
		return cp.BB{}, false
	}
	return overlap, true
}

// Separation computes the minimum translation that separates a from b along a
// single axis. Boxes sharing the same center are separated along x.
func Separation(a, b cp.BB) (SeparationResult, bool) {
	overlap, ok := Intersection(a, b)
	if !ok {
		return SeparationResult{}, false
	}

	width := overlap.R - overlap.L
	height := overlap.T - overlap.B
	ac, bc := center(a), center(b)

	if ac == bc {
		return SeparationResult{
			Separation: cp.Vector{X: width},
			Normal:     cp.Vector{X: 1},
			Distance:   width,
		}, true
	}

	var separation cp.Vector
	if width < height || (width == height && math.Abs(ac.X-bc.X) >= math.Abs(ac.Y-bc.Y)) {
		separation = cp.Vector{X: width}
		if ac.X > bc.X {
			separation.X = -separation.X
		}
	} else {
		separation = cp.Vector{Y: height}
		if ac.Y > bc.Y {
			separation.Y = -separation.Y
		}
	}

	distance := separation.Length()
	return SeparationResult{
		Separation: separation,
		Normal:     separation.Mult(1 / distance),
		Distance:   distance,
	}, true
}

func center(bb cp.BB) cp.Vector {
	return cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
}
