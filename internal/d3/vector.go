package d3

import (
	"math"

	"github.com/soypat/linedraw/internal/d2"
	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector routines used by the voxel walker.

// IsFinite returns true if no component is NaN or infinite.
func IsFinite(a r3.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0) &&
		!math.IsNaN(a.Z) && !math.IsInf(a.Z, 0)
}

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func AbsElem(a r3.Vec) r3.Vec {
	return r3.Vec{
		X: math.Abs(a.X),
		Y: math.Abs(a.Y),
		Z: math.Abs(a.Z),
	}
}

func Max(a r3.Vec) float64 {
	return math.Max(a.Z, math.Max(a.X, a.Y))
}

// CellElem returns the voxel centre each component falls in.
// See d2.CellElem for the border convention.
func CellElem(a r3.Vec) r3.Vec {
	return r3.Vec{
		X: math.Floor(a.X + 0.5),
		Y: math.Floor(a.Y + 0.5),
		Z: math.Floor(a.Z + 0.5),
	}
}

// Less reports whether a sorts before b in lexicographic (x, y, then z) order.
func Less(a, b r3.Vec) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// Elems returns the components of a as an array so axes can be indexed.
func Elems(a r3.Vec) [3]float64 {
	return [3]float64{a.X, a.Y, a.Z}
}

// BorderDist returns, per axis, the distance from a to the first voxel
// border crossed when moving in the direction of sign.
func BorderDist(a, cell r3.Vec, sign [3]int) [3]float64 {
	return [3]float64{
		d2.BorderDist(a.X, cell.X, sign[0]),
		d2.BorderDist(a.Y, cell.Y, sign[1]),
		d2.BorderDist(a.Z, cell.Z, sign[2]),
	}
}
