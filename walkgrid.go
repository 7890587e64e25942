package linedraw

import (
	"github.com/soypat/linedraw/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// gridWalk holds the state shared by WalkGrid and Supercover: a DDA over
// the cell borders crossed by a continuous segment.
//
// For each axis a[i] is the distance along that axis from the start to the
// next border still to be crossed and d[i] the absolute segment delta. The
// next border crossed is the one with the smallest a[i]/d[i], compared
// cross-multiplied so no division takes place. left counts the borders
// still to be crossed per axis and is what bounds the walk, so
// accumulated rounding can not make it overshoot or stop short.
type gridWalk struct {
	p        V2i
	sign     V2i
	left     [2]int
	a, d     [2]float64
	reversed bool
	started  bool
}

func (g *gridWalk) init(op string, start, end r2.Vec) error {
	if err := checkSegment2(op, start, end); err != nil {
		return err
	}
	p, q := cellR2(start), cellR2(end)
	delta := r2.Sub(end, start)
	*g = gridWalk{
		p:        p,
		sign:     V2i{sign(delta.X), sign(delta.Y)},
		left:     q.Sub(p).AbsElem(),
		d:        [2]float64{nonzero(delta.X), nonzero(delta.Y)},
		reversed: d2.Less(end, start),
	}
	c := p.ToR2()
	g.a[0] = d2.BorderDist(start.X, c.X, g.sign[0])
	g.a[1] = d2.BorderDist(start.Y, c.Y, g.sign[1])
	return nil
}

func (g *gridWalk) done() bool {
	return g.left[0] == 0 && g.left[1] == 0
}

// choose returns the axis whose border is crossed next. corner is true
// when both borders are crossed at the same point, in which case axis
// is meaningless.
func (g *gridWalk) choose() (axis int, corner bool) {
	switch {
	case g.left[0] == 0:
		return 1, false
	case g.left[1] == 0:
		return 0, false
	}
	tx := g.a[0] * g.d[1]
	ty := g.a[1] * g.d[0]
	switch {
	case tx < ty:
		return 0, false
	case ty < tx:
		return 1, false
	}
	return 0, true
}

func (g *gridWalk) step(axis int) {
	g.p[axis] += g.sign[axis]
	g.a[axis]++
	g.left[axis]--
}

// WalkGrid walks the cells crossed by a continuous 2D segment, changing a
// single coordinate by one at every step (4-connected).
//
// When the segment passes exactly through a cell corner only one of the
// two side cells is visited. Walking in lexicographically increasing
// direction (see V2i.Less) the vertical step is taken first, walking the
// other way the horizontal step is taken first. Both directions thus visit
// the same set of cells.
type WalkGrid struct {
	g gridWalk
}

// NewWalkGrid returns a walk from the cell containing start to the cell
// containing end. It fails if either point is not finite or out of range.
func NewWalkGrid(start, end r2.Vec) (*WalkGrid, error) {
	w := &WalkGrid{}
	if err := w.g.init("walkgrid", start, end); err != nil {
		return nil, err
	}
	return w, nil
}

// Next returns the next cell.
func (w *WalkGrid) Next() (V2i, bool) {
	g := &w.g
	if !g.started {
		g.started = true
		return g.p, true
	}
	if g.done() {
		return V2i{}, false
	}
	axis, corner := g.choose()
	if corner {
		axis = 1
		if g.reversed {
			axis = 0
		}
	}
	g.step(axis)
	return g.p, true
}

// Len returns the number of cells yet to be returned.
func (w *WalkGrid) Len() int {
	n := w.g.left[0] + w.g.left[1]
	if !w.g.started {
		n++
	}
	return n
}

// Supercover walks every cell a continuous 2D segment touches. It behaves
// like WalkGrid except at cell corners, where the vertical neighbour, the
// horizontal neighbour and then the diagonal cell are all returned.
type Supercover struct {
	g       gridWalk
	pending [2]V2i
	n, i    int
}

// NewSupercover returns a walk from the cell containing start to the cell
// containing end. It fails if either point is not finite or out of range.
func NewSupercover(start, end r2.Vec) (*Supercover, error) {
	s := &Supercover{}
	if err := s.g.init("supercover", start, end); err != nil {
		return nil, err
	}
	return s, nil
}

// Next returns the next cell.
func (s *Supercover) Next() (V2i, bool) {
	g := &s.g
	if s.i < s.n {
		p := s.pending[s.i]
		s.i++
		return p, true
	}
	if !g.started {
		g.started = true
		return g.p, true
	}
	if g.done() {
		return V2i{}, false
	}
	axis, corner := g.choose()
	if !corner {
		g.step(axis)
		return g.p, true
	}
	vertical := g.p.Add(V2i{0, g.sign[1]})
	horizontal := g.p.Add(V2i{g.sign[0], 0})
	g.step(0)
	g.step(1)
	s.pending = [2]V2i{horizontal, g.p}
	s.n, s.i = 2, 0
	return vertical, true
}

// WalkGridPoints returns all cells of a WalkGrid walk.
func WalkGridPoints(start, end r2.Vec) ([]V2i, error) {
	w, err := NewWalkGrid(start, end)
	if err != nil {
		return nil, err
	}
	return Collect2(w), nil
}

// SupercoverPoints returns all cells of a Supercover walk.
func SupercoverPoints(start, end r2.Vec) ([]V2i, error) {
	s, err := NewSupercover(start, end)
	if err != nil {
		return nil, err
	}
	return Collect2(s), nil
}
