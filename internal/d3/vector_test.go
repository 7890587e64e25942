package d3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBorderDist(t *testing.T) {
	a := r3.Vec{X: 0.25, Y: -1.1, Z: 0}
	cell := CellElem(a)
	if !EqualWithin(cell, r3.Vec{X: 0, Y: -1, Z: 0}, 0) {
		t.Fatal("bad cell", cell)
	}
	got := BorderDist(a, cell, [3]int{1, -1, 0})
	want := [3]float64{0.25, 0.4, 0}
	for i := range got {
		if d := got[i] - want[i]; d > 1e-12 || d < -1e-12 {
			t.Errorf("axis %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestLess(t *testing.T) {
	if !Less(r3.Vec{X: 1, Y: 5}, r3.Vec{X: 1, Y: 5, Z: 0.5}) {
		t.Fatal("z should break the tie")
	}
	if Less(r3.Vec{X: 2}, r3.Vec{X: 1, Y: 9, Z: 9}) {
		t.Fatal("x sorts first")
	}
	if Less(r3.Vec{X: 1}, r3.Vec{X: 1}) {
		t.Fatal("equal vectors are not less")
	}
}
