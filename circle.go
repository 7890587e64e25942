package linedraw

import "fmt"

// BresenhamCircle walks the cells of a circle using the midpoint circle
// algorithm. One octant is computed (x from 0 up to the 45 degree line)
// and every octant cell is mirrored into all eight octants by the
// iterator itself. Cells shared by two octants, on the axes and on the
// diagonals, are returned once.
//
// For an octant cell (x, y) the mirrored cells relative to the center are
// returned in the order (x,y), (y,x), (y,-x), (x,-y), (-x,-y), (-y,-x),
// (-y,x), (-x,y) with duplicates skipped.
type BresenhamCircle struct {
	center V2i
	x, y   int
	d      int // decision variable
	buf    [8]V2i
	n, i   int
}

// NewBresenhamCircle returns an iterator over the cells of the circle of
// the given radius around center. A radius of 0 yields only the center.
func NewBresenhamCircle(center V2i, radius int) (*BresenhamCircle, error) {
	if radius < 0 {
		err := fmt.Errorf("circle radius %d: %w", radius, ErrNegativeRadius)
		Logger().Debug("rejected input", "op", "circle", "err", err)
		return nil, err
	}
	return &BresenhamCircle{
		center: center,
		y:      radius,
		d:      1 - radius,
	}, nil
}

// Next returns the next cell.
func (c *BresenhamCircle) Next() (V2i, bool) {
	if c.i < c.n {
		p := c.buf[c.i]
		c.i++
		return p, true
	}
	if c.x > c.y {
		return V2i{}, false
	}
	c.mirror()
	if c.d < 0 {
		c.d += 2*c.x + 3
	} else {
		c.d += 2*(c.x-c.y) + 5
		c.y--
	}
	c.x++
	c.i = 1
	return c.buf[0], true
}

// mirror fills buf with the distinct octant images of (x, y).
func (c *BresenhamCircle) mirror() {
	x, y := c.x, c.y
	images := [8]V2i{
		{x, y}, {y, x}, {y, -x}, {x, -y},
		{-x, -y}, {-y, -x}, {-y, x}, {-x, y},
	}
	c.n = 0
outer:
	for _, im := range images {
		p := c.center.Add(im)
		for _, prev := range c.buf[:c.n] {
			if prev == p {
				continue outer
			}
		}
		c.buf[c.n] = p
		c.n++
	}
}

// CirclePoints returns all cells of the circle. It panics if radius is negative.
func CirclePoints(center V2i, radius int) []V2i {
	c, err := NewBresenhamCircle(center, radius)
	if err != nil {
		panic(err)
	}
	return Collect2(c)
}
