// Package linedraw implements grid traversal algorithms that turn line
// segments and circles into the discrete cells they cover.
//
// Every algorithm is a small iterator value returned by its constructor.
// Cells are produced on demand by Next so a caller may stop early, for
// example at the first occupied voxel, without paying for the rest of the
// segment. Values are independent, so separate goroutines may each walk
// their own iterator.
//
// Integer algorithms (Bresenham, Bresenham3d, Midpoint, BresenhamCircle)
// take cell coordinates. Continuous algorithms (WalkGrid, Supercover,
// WalkVoxels, XiaolinWu, MidpointFloat) take gonum r2/r3 vectors where
// integer coordinates are cell centres, so cell i spans [i-0.5, i+0.5).
//
// Integer arithmetic is not checked for overflow. Coordinates and their
// differences must stay below 2^61 in magnitude.
package linedraw

import "io"

// Line2 is a sequence of 2D cells. Next returns the next cell and true,
// or false once the sequence is exhausted.
type Line2 interface {
	Next() (V2i, bool)
}

// Line3 is a sequence of 3D voxels.
type Line3 interface {
	Next() (V3i, bool)
}

// Coverage is a sequence of anti-aliasing samples.
type Coverage interface {
	Next() (CoverageSample, bool)
}

// ReadPoints writes cells from it into dst and returns the number written.
// It returns io.EOF once it is exhausted and no cells were written.
func ReadPoints(it Line2, dst []V2i) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot read into empty point slice")
	}
	for n < len(dst) {
		p, ok := it.Next()
		if !ok {
			if n == 0 {
				return 0, io.EOF
			}
			break
		}
		dst[n] = p
		n++
	}
	return n, nil
}

// ReadVoxels writes voxels from it into dst and returns the number written.
// It returns io.EOF once it is exhausted and no voxels were written.
func ReadVoxels(it Line3, dst []V3i) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot read into empty voxel slice")
	}
	for n < len(dst) {
		v, ok := it.Next()
		if !ok {
			if n == 0 {
				return 0, io.EOF
			}
			break
		}
		dst[n] = v
		n++
	}
	return n, nil
}

// Collect2 reads the full contents of it.
func Collect2(it Line2) []V2i {
	var result []V2i
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		result = append(result, p)
	}
	return result
}

// Collect3 reads the full contents of it.
func Collect3(it Line3) []V3i {
	var result []V3i
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		result = append(result, v)
	}
	return result
}

// CollectCoverage reads the full contents of it.
func CollectCoverage(it Coverage) []CoverageSample {
	var result []CoverageSample
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		result = append(result, s)
	}
	return result
}
