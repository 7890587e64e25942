/*

Integer 2D/3D Vectors

*/

package linedraw

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// V2i is a 2D integer vector. It identifies a grid cell or pixel.
type V2i [2]int

// V3i is a 3D integer vector. It identifies a voxel.
type V3i [3]int

// Add adds two vectors. Return v = a + b.
func (a V2i) Add(b V2i) V2i {
	return V2i{a[0] + b[0], a[1] + b[1]}
}

// Add adds two vectors. Return v = a + b.
func (a V3i) Add(b V3i) V3i {
	return V3i{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub subtracts two vectors. Return v = a - b.
func (a V2i) Sub(b V2i) V2i {
	return V2i{a[0] - b[0], a[1] - b[1]}
}

// Sub subtracts two vectors. Return v = a - b.
func (a V3i) Sub(b V3i) V3i {
	return V3i{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// AbsElem returns the vector with the absolute value of each component.
func (a V2i) AbsElem() V2i {
	return V2i{iabs(a[0]), iabs(a[1])}
}

// AbsElem returns the vector with the absolute value of each component.
func (a V3i) AbsElem() V3i {
	return V3i{iabs(a[0]), iabs(a[1]), iabs(a[2])}
}

// SignElem returns the sign (-1, 0 or 1) of each component.
func (a V2i) SignElem() V2i {
	return V2i{isign(a[0]), isign(a[1])}
}

// SignElem returns the sign (-1, 0 or 1) of each component.
func (a V3i) SignElem() V3i {
	return V3i{isign(a[0]), isign(a[1]), isign(a[2])}
}

// Less reports whether a sorts before b in lexicographic (x, then y) order.
func (a V2i) Less(b V2i) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

// Less reports whether a sorts before b in lexicographic (x, y, then z) order.
func (a V3i) Less(b V3i) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// ToR2 converts V2i (integer) to r2.Vec (float) at the cell centre.
func (a V2i) ToR2() r2.Vec {
	return r2.Vec{X: float64(a[0]), Y: float64(a[1])}
}

// ToR3 converts V3i (integer) to r3.Vec (float) at the voxel centre.
func (a V3i) ToR3() r3.Vec {
	return r3.Vec{X: float64(a[0]), Y: float64(a[1]), Z: float64(a[2])}
}

func iabs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func isign(a int) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}
