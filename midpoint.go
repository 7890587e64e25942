package linedraw

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Midpoint walks the cells of an integer segment with the midpoint line
// algorithm: a decision variable tracks which side of the ideal line the
// midpoint between the two candidate cells lies on. For the same input it
// produces exactly the cells of Bresenham, including the tie rule.
type Midpoint struct {
	p     V2i
	sign  V2i
	major int
	dmaj  int
	dmin  int
	d     int // decision variable
	bias  int
	count int
}

// NewMidpoint returns an iterator over the cells from start to end.
func NewMidpoint(start, end V2i) *Midpoint {
	delta := end.Sub(start)
	ad := delta.AbsElem()
	m := &Midpoint{
		p:    start,
		sign: delta.SignElem(),
	}
	if ad[1] > ad[0] {
		m.major = 1
	}
	m.dmaj, m.dmin = ad[m.major], ad[1-m.major]
	m.d = 2*m.dmin - m.dmaj
	m.count = m.dmaj + 1
	if end.Less(start) {
		m.bias = 1
	}
	return m
}

// Next returns the next cell.
func (m *Midpoint) Next() (V2i, bool) {
	if m.count == 0 {
		return V2i{}, false
	}
	m.count--
	p := m.p
	if m.count > 0 {
		minor := 1 - m.major
		if m.d+m.bias > 0 {
			// Midpoint below the line: diagonal step.
			m.p[minor] += m.sign[minor]
			m.d += 2 * (m.dmin - m.dmaj)
		} else {
			m.d += 2 * m.dmin
		}
		m.p[m.major] += m.sign[m.major]
	}
	return p, true
}

// MidpointPoints returns all cells from start to end.
func MidpointPoints(start, end V2i) []V2i {
	return Collect2(NewMidpoint(start, end))
}

// frame maps a segment onto the first octant: both deltas non-negative
// and the major axis first.
type frame struct {
	sx, sy float64
	swap   bool
}

func newFrame(d r2.Vec) frame {
	f := frame{sx: 1, sy: 1}
	if d.X < 0 {
		f.sx = -1
	}
	if d.Y < 0 {
		f.sy = -1
	}
	f.swap = math.Abs(d.Y) > math.Abs(d.X)
	return f
}

func (f frame) to(v r2.Vec) (u, w float64) {
	u, w = f.sx*v.X, f.sy*v.Y
	if f.swap {
		u, w = w, u
	}
	return u, w
}

func (f frame) from(u, w int) V2i {
	if f.swap {
		u, w = w, u
	}
	return V2i{int(f.sx) * u, int(f.sy) * w}
}

// MidpointFloat is the midpoint line algorithm over continuous endpoints.
// The implicit line a*u + b*w + c is evaluated at the midpoint between the
// two candidate cells. The walk starts at the cell containing the start
// point and ends at the cell containing the end point: if the midpoint
// walk reaches the end column (or row, for steep segments) one cell short
// of it, the end cell follows as a final unit step.
type MidpointFloat struct {
	f    frame
	u, w int
	endU int
	a, b float64
	k    float64
	end  V2i
	prev V2i
	done bool
}

// NewMidpointFloat returns an iterator over the cells from start to end.
func NewMidpointFloat(start, end r2.Vec) (*MidpointFloat, error) {
	if err := checkSegment2("midpoint", start, end); err != nil {
		return nil, err
	}
	f := newFrame(r2.Sub(end, start))
	u0, w0 := f.to(start)
	u1, w1 := f.to(end)
	// Round in the caller's frame so the border convention holds.
	sc, ec := cellR2(start), cellR2(end)
	m := &MidpointFloat{
		f:   f,
		a:   -(w1 - w0),
		b:   u1 - u0,
		end: ec,
	}
	m.u, m.w = f.toCell(sc)
	m.endU, _ = f.toCell(ec)
	c := u0*w1 - u1*w0
	m.k = m.a*(float64(m.u)+1) + m.b*(float64(m.w)+0.5) + c
	return m, nil
}

func (f frame) toCell(p V2i) (u, w int) {
	u, w = int(f.sx)*p[0], int(f.sy)*p[1]
	if f.swap {
		u, w = w, u
	}
	return u, w
}

// Next returns the next cell.
func (m *MidpointFloat) Next() (V2i, bool) {
	if m.u > m.endU {
		if m.done || m.prev == m.end {
			return V2i{}, false
		}
		m.done = true
		return m.end, true
	}
	p := m.f.from(m.u, m.w)
	m.prev = p
	if m.k <= 0 {
		m.k += m.b
		m.w++
	}
	m.k += m.a
	m.u++
	return p, true
}
