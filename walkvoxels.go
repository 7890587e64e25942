package linedraw

import (
	"github.com/soypat/linedraw/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// WalkVoxels walks the voxels crossed by a continuous 3D segment. Every
// step changes exactly one coordinate by one (6-connected), so no voxel
// the segment passes through is skipped.
//
// When the segment crosses two or three voxel faces at the same point the
// faces are crossed in x, y, z order if the walk goes in lexicographically
// increasing direction (see V3i.Less) and in z, y, x order otherwise, so
// both directions visit the same set of voxels.
//
// The walk is bounded by the number of faces between the start and end
// voxel, never by accumulated floating point distance.
type WalkVoxels struct {
	v       V3i
	sign    V3i
	left    [3]int
	a, d    [3]float64 // see gridWalk
	prio    [3]int
	started bool
}

// NewWalkVoxels returns a walk from the voxel containing start to the
// voxel containing end. It fails if either point is not finite or out of range.
func NewWalkVoxels(start, end r3.Vec) (*WalkVoxels, error) {
	if err := checkSegment3("walkvoxels", start, end); err != nil {
		return nil, err
	}
	v, q := cellR3(start), cellR3(end)
	delta := d3.Elems(r3.Sub(end, start))
	w := &WalkVoxels{
		v:    v,
		left: q.Sub(v).AbsElem(),
		prio: [3]int{0, 1, 2},
	}
	for i, di := range delta {
		w.sign[i] = sign(di)
		w.d[i] = nonzero(di)
	}
	if d3.Less(end, start) {
		w.prio = [3]int{2, 1, 0}
	}
	w.a = d3.BorderDist(start, v.ToR3(), w.sign)
	return w, nil
}

// Next returns the next voxel.
func (w *WalkVoxels) Next() (V3i, bool) {
	if !w.started {
		w.started = true
		return w.v, true
	}
	best := -1
	for _, i := range w.prio {
		if w.left[i] == 0 {
			continue
		}
		// Border i is reached before border best when a[i]/d[i] < a[best]/d[best].
		if best < 0 || w.a[i]*w.d[best] < w.a[best]*w.d[i] {
			best = i
		}
	}
	if best < 0 {
		return V3i{}, false
	}
	w.v[best] += w.sign[best]
	w.a[best]++
	w.left[best]--
	return w.v, true
}

// Len returns the number of voxels yet to be returned.
func (w *WalkVoxels) Len() int {
	n := w.left[0] + w.left[1] + w.left[2]
	if !w.started {
		n++
	}
	return n
}

// WalkVoxelsPoints returns all voxels of a WalkVoxels walk.
func WalkVoxelsPoints(start, end r3.Vec) ([]V3i, error) {
	w, err := NewWalkVoxels(start, end)
	if err != nil {
		return nil, err
	}
	return Collect3(w), nil
}
