package linedraw

// Bresenham3d walks the voxels of an integer 3D segment. The driving
// axis is the one with the greatest absolute delta (x, then y, then z on
// ties) and each of the two other axes keeps its own error accumulator.
// Both endpoints are included and consecutive voxels differ by at most
// one along every axis.
//
// As with Bresenham, ties are resolved towards the lexicographically
// smaller endpoint so both directions cover the same voxels.
type Bresenham3d struct {
	v     V3i
	sign  V3i
	axes  [3]int // driving axis followed by the two minor axes
	delta [3]int // absolute deltas indexed like axes
	err   [2]int // minor axis accumulators
	bias  int
	count int
}

// NewBresenham3d returns an iterator over the voxels from start to end.
func NewBresenham3d(start, end V3i) *Bresenham3d {
	d := end.Sub(start)
	ad := d.AbsElem()
	b := &Bresenham3d{
		v:    start,
		sign: d.SignElem(),
		axes: [3]int{0, 1, 2},
	}
	switch {
	case ad[0] >= ad[1] && ad[0] >= ad[2]:
	case ad[1] >= ad[2]:
		b.axes = [3]int{1, 0, 2}
	default:
		b.axes = [3]int{2, 0, 1}
	}
	for i, axis := range b.axes {
		b.delta[i] = ad[axis]
	}
	b.count = b.delta[0] + 1
	if end.Less(start) {
		b.bias = 1
	}
	return b
}

// Next returns the next voxel.
func (b *Bresenham3d) Next() (V3i, bool) {
	if b.count == 0 {
		return V3i{}, false
	}
	b.count--
	v := b.v
	if b.count > 0 {
		drive := b.axes[0]
		b.v[drive] += b.sign[drive]
		for i := range b.err {
			axis := b.axes[i+1]
			b.err[i] += 2 * b.delta[i+1]
			if b.err[i]+b.bias > b.delta[0] {
				b.v[axis] += b.sign[axis]
				b.err[i] -= 2 * b.delta[0]
			}
		}
	}
	return v, true
}

// Len returns the number of voxels not yet returned by Next.
func (b *Bresenham3d) Len() int { return b.count }

// Bresenham3dPoints returns all voxels from start to end.
func Bresenham3dPoints(start, end V3i) []V3i {
	b := NewBresenham3d(start, end)
	pts := make([]V3i, 0, b.Len())
	for v, ok := b.Next(); ok; v, ok = b.Next() {
		pts = append(pts, v)
	}
	return pts
}
