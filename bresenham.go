package linedraw

// Bresenham walks the cells of an integer segment with Bresenham's line
// algorithm. Both endpoints are included and consecutive cells are
// king moves apart. Steps along the major axis (the one with the larger
// absolute delta, x on ties) are unconditional; the minor axis steps
// when the doubled error accumulator passes the major delta.
//
// Half-way ties are resolved towards the lexicographically smaller
// endpoint, so the reversed segment covers the same cells.
type Bresenham struct {
	p     V2i
	sign  V2i
	major int // index of the major axis
	dmaj  int // absolute major delta
	dmin  int // absolute minor delta
	err   int
	bias  int // 1 if walking against canonical order
	count int // cells left
}

// NewBresenham returns an iterator over the cells from start to end.
func NewBresenham(start, end V2i) *Bresenham {
	d := end.Sub(start)
	ad := d.AbsElem()
	b := &Bresenham{
		p:    start,
		sign: d.SignElem(),
	}
	if ad[1] > ad[0] {
		b.major = 1
	}
	b.dmaj, b.dmin = ad[b.major], ad[1-b.major]
	b.count = b.dmaj + 1
	if end.Less(start) {
		b.bias = 1
	}
	return b
}

// Next returns the next cell.
func (b *Bresenham) Next() (V2i, bool) {
	if b.count == 0 {
		return V2i{}, false
	}
	b.count--
	p := b.p
	if b.count > 0 {
		minor := 1 - b.major
		b.p[b.major] += b.sign[b.major]
		b.err += 2 * b.dmin
		if b.err+b.bias > b.dmaj {
			b.p[minor] += b.sign[minor]
			b.err -= 2 * b.dmaj
		}
	}
	return p, true
}

// Len returns the number of cells not yet returned by Next.
func (b *Bresenham) Len() int { return b.count }

// BresenhamPoints returns all cells from start to end.
func BresenhamPoints(start, end V2i) []V2i {
	b := NewBresenham(start, end)
	pts := make([]V2i, 0, b.Len())
	for p, ok := b.Next(); ok; p, ok = b.Next() {
		pts = append(pts, p)
	}
	return pts
}
