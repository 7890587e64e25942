package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// IsFinite returns true if no component is NaN or infinite.
func IsFinite(a r2.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func AbsElem(a r2.Vec) r2.Vec {
	return r2.Vec{
		X: math.Abs(a.X),
		Y: math.Abs(a.Y),
	}
}

// Max returns the largest component.
func Max(a r2.Vec) float64 {
	return math.Max(a.X, a.Y)
}

// CellElem returns the cell centre each component falls in. Cells are
// unit wide and centred on integers, a point on a cell border belongs
// to the cell above it.
func CellElem(a r2.Vec) r2.Vec {
	return r2.Vec{
		X: cell(a.X),
		Y: cell(a.Y),
	}
}

// Less reports whether a sorts before b in lexicographic (x, then y) order.
func Less(a, b r2.Vec) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// BorderDist returns the distance from x to the border of cell c
// that is crossed first when moving in direction sign.
func BorderDist(x, c float64, sign int) float64 {
	switch {
	case sign > 0:
		return c + 0.5 - x
	case sign < 0:
		return x - (c - 0.5)
	}
	return 0
}

func cell(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Frac returns the fractional part of x, always in [0, 1).
func Frac(x float64) float64 {
	return x - math.Floor(x)
}
