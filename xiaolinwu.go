package linedraw

import (
	"math"

	"github.com/soypat/linedraw/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// CoverageSample is a cell and the fraction of it covered by an
// anti-aliased line, in [0, 1].
type CoverageSample struct {
	P V2i
	C float64
}

// XiaolinWuParms configures an anti-aliased line.
type XiaolinWuParms struct {
	Start, End r2.Vec
	// EndpointGap scales the coverage of the first and last columns by the
	// fraction of the column the segment actually spans. It is off by default
	// so that the coverage of every column, end columns included, sums to 1.
	EndpointGap bool
}

// XiaolinWu produces anti-aliased coverage for a continuous 2D segment
// using Xiaolin Wu's algorithm.
//
// The segment is walked one column at a time along its major axis (rows
// for steep segments). At each column centre the line's minor coordinate y
// is split between the two cells floor(y) and floor(y)+1 with coverage
// 1-frac(y) and frac(y). The cell nearer the line is returned first and
// the other cell is left out when y is an integer.
//
// The end columns are ordered so the first sample is always the cell
// containing the start point and the last sample the cell containing the
// end point, even if that cell's coverage is 0. A segment that starts and
// ends in the same cell yields that cell alone with coverage 1.
type XiaolinWu struct {
	steep      bool
	u0, w0, g  float64
	c, end     int
	dir        int
	first      V2i // cell containing the start point
	last       V2i // cell containing the end point
	gap0, gap1 float64
	buf        [2]CoverageSample
	n, i       int
	walked     bool // a column has been sampled
	done       bool
}

// NewXiaolinWu returns the coverage of the segment from start to end.
func NewXiaolinWu(start, end r2.Vec) (*XiaolinWu, error) {
	return NewXiaolinWuParms(XiaolinWuParms{Start: start, End: end})
}

// NewXiaolinWuParms returns the coverage of the segment described by p.
// It fails if either endpoint is not finite or out of range.
func NewXiaolinWuParms(p XiaolinWuParms) (*XiaolinWu, error) {
	if err := checkSegment2("xiaolinwu", p.Start, p.End); err != nil {
		return nil, err
	}
	x := &XiaolinWu{
		first: cellR2(p.Start),
		last:  cellR2(p.End),
		gap0:  1,
		gap1:  1,
	}
	if x.first == x.last {
		x.buf[0] = CoverageSample{P: x.first, C: 1}
		x.n = 1
		x.done = true
		return x, nil
	}
	start, end := p.Start, p.End
	delta := r2.Sub(end, start)
	x.steep = math.Abs(delta.Y) > math.Abs(delta.X)
	if x.steep {
		start = r2.Vec{X: start.Y, Y: start.X}
		end = r2.Vec{X: end.Y, Y: end.X}
		delta = r2.Vec{X: delta.Y, Y: delta.X}
	}
	x.u0, x.w0 = start.X, start.Y
	x.g = delta.Y / delta.X
	c0, c1 := cellR2(start), cellR2(end)
	x.c, x.end = c0[0], c1[0]
	x.dir = isign(x.end - x.c)
	if p.EndpointGap && x.dir != 0 {
		f0, f1 := d2.Frac(start.X+0.5), d2.Frac(end.X+0.5)
		if x.dir > 0 {
			x.gap0, x.gap1 = 1-f0, f1
		} else {
			x.gap0, x.gap1 = f0, 1-f1
		}
	}
	return x, nil
}

// Next returns the next coverage sample.
func (x *XiaolinWu) Next() (CoverageSample, bool) {
	if x.i < x.n {
		s := x.buf[x.i]
		x.i++
		return s, true
	}
	if x.done {
		return CoverageSample{}, false
	}
	x.column()
	x.i = 1
	return x.buf[0], true
}

// column fills buf with the samples of column c and advances to the next one.
func (x *XiaolinWu) column() {
	first, last := !x.walked, x.c == x.end
	gap := 1.0
	switch {
	case first && last:
		// Single column, the gaps do not apply.
	case last:
		gap = x.gap1
	case first:
		gap = x.gap0
	}
	x.walked = true
	y := x.w0 + x.g*(float64(x.c)-x.u0)
	// An end column must hold the endpoint cell as one of its two samples.
	// Exact arithmetic guarantees it, rounding might not.
	if first {
		y = within(y, x.minor(x.first))
	}
	if last {
		y = within(y, x.minor(x.last))
	}
	lo := math.Floor(y)
	frac := y - lo
	s := [2]CoverageSample{
		{P: x.cell(x.c, int(lo)), C: (1 - frac) * gap},
		{P: x.cell(x.c, int(lo)+1), C: frac * gap},
	}
	if frac >= 0.5 {
		s[0], s[1] = s[1], s[0]
	}
	n := 1
	if frac != 0 {
		n = 2
	}
	if first && s[0].P != x.first {
		s[0], s[1] = s[1], s[0]
		n = 2
	}
	if last && s[n-1].P != x.last {
		if n == 1 {
			n = 2
		} else {
			s[0], s[1] = s[1], s[0]
		}
	}
	x.buf, x.n = s, n
	if last {
		x.done = true
	} else {
		x.c += x.dir
	}
}

// minor returns the minor axis coordinate of cell p.
func (x *XiaolinWu) minor(p V2i) float64 {
	if x.steep {
		return float64(p[0])
	}
	return float64(p[1])
}

// within moves y into [w-1, w+1) so that floor(y) or floor(y)+1 is w.
func within(y, w float64) float64 {
	switch {
	case y < w-1:
		return w - 1
	case y >= w+1:
		return w
	}
	return y
}

func (x *XiaolinWu) cell(u, w int) V2i {
	if x.steep {
		return V2i{w, u}
	}
	return V2i{u, w}
}

// CoveragePoints returns all samples of the anti-aliased segment from start to end.
func CoveragePoints(start, end r2.Vec) ([]CoverageSample, error) {
	x, err := NewXiaolinWu(start, end)
	if err != nil {
		return nil, err
	}
	return CollectCoverage(x), nil
}
