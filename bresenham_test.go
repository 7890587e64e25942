package linedraw_test

import (
	"math"
	"slices"
	"testing"

	"github.com/soypat/linedraw"
	"gonum.org/v1/gonum/spatial/r2"
)

type v2 = linedraw.V2i
type v3 = linedraw.V3i

func TestBresenham(t *testing.T) {
	for _, test := range []struct {
		start, end v2
		want       []v2
	}{
		{start: v2{0, 0}, end: v2{5, 3}, want: []v2{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}}},
		{start: v2{0, 0}, end: v2{2, 1}, want: []v2{{0, 0}, {1, 0}, {2, 1}}},
		{start: v2{2, 1}, end: v2{0, 0}, want: []v2{{2, 1}, {1, 0}, {0, 0}}},
		{start: v2{0, 0}, end: v2{0, -3}, want: []v2{{0, 0}, {0, -1}, {0, -2}, {0, -3}}},
		{start: v2{-2, 0}, end: v2{1, 0}, want: []v2{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}}},
		{start: v2{0, 0}, end: v2{-3, 3}, want: []v2{{0, 0}, {-1, 1}, {-2, 2}, {-3, 3}}},
		{start: v2{0, 0}, end: v2{1, 4}, want: []v2{{0, 0}, {0, 1}, {0, 2}, {1, 3}, {1, 4}}},
		{start: v2{7, 7}, end: v2{7, 7}, want: []v2{{7, 7}}},
	} {
		got := linedraw.BresenhamPoints(test.start, test.end)
		if !slices.Equal(got, test.want) {
			t.Errorf("%v->%v: got %v, want %v", test.start, test.end, got, test.want)
		}
		mid := linedraw.MidpointPoints(test.start, test.end)
		if !slices.Equal(mid, test.want) {
			t.Errorf("midpoint %v->%v: got %v, want %v", test.start, test.end, mid, test.want)
		}
	}
}

func TestBresenhamLen(t *testing.T) {
	b := linedraw.NewBresenham(v2{0, 0}, v2{-4, 9})
	if b.Len() != 10 {
		t.Fatalf("want 10 cells, got %d", b.Len())
	}
	b.Next()
	b.Next()
	if b.Len() != 8 {
		t.Fatalf("want 8 cells left, got %d", b.Len())
	}
}

func TestBresenham3d(t *testing.T) {
	for _, test := range []struct {
		start, end v3
		want       []v3
	}{
		{
			start: v3{0, 0, 0}, end: v3{5, 6, 7},
			want: []v3{{0, 0, 0}, {1, 1, 1}, {1, 2, 2}, {2, 3, 3}, {3, 3, 4}, {4, 4, 5}, {4, 5, 6}, {5, 6, 7}},
		},
		{
			start: v3{0, 0, 0}, end: v3{5, 5, 5},
			want: []v3{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}, {5, 5, 5}},
		},
		{
			start: v3{1, 2, 3}, end: v3{1, 2, 0},
			want: []v3{{1, 2, 3}, {1, 2, 2}, {1, 2, 1}, {1, 2, 0}},
		},
		{start: v3{-1, 4, 2}, end: v3{-1, 4, 2}, want: []v3{{-1, 4, 2}}},
	} {
		got := linedraw.Bresenham3dPoints(test.start, test.end)
		if !slices.Equal(got, test.want) {
			t.Errorf("%v->%v: got %v, want %v", test.start, test.end, got, test.want)
		}
	}
}

func TestBresenham3dLong(t *testing.T) {
	start, end := v3{0, 0, 0}, v3{500, 678, 1000}
	fwd := linedraw.Bresenham3dPoints(start, end)
	rev := linedraw.Bresenham3dPoints(end, start)
	if len(fwd) != 1001 || len(rev) != 1001 {
		t.Fatalf("want 1001 voxels both ways, got %d and %d", len(fwd), len(rev))
	}
	if fwd[0] != start || fwd[1000] != end {
		t.Fatal("endpoints not included", fwd[0], fwd[1000])
	}
	if !sameSet3(fwd, rev) {
		t.Fatal("reversed segment covers different voxels")
	}
}

func TestMidpointFloat(t *testing.T) {
	for _, test := range []struct {
		start, end r2.Vec
		want       []v2
	}{
		{
			start: r2.Vec{X: 0, Y: 0}, end: r2.Vec{X: 6, Y: 3},
			want: []v2{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {6, 3}},
		},
		{
			start: r2.Vec{X: 0, Y: 0}, end: r2.Vec{X: -5, Y: -5},
			want: []v2{{0, 0}, {-1, -1}, {-2, -2}, {-3, -3}, {-4, -4}, {-5, -5}},
		},
		{
			start: r2.Vec{X: 0.2, Y: 0.02}, end: r2.Vec{X: 2.8, Y: 7.7},
			want: []v2{{0, 0}, {1, 1}, {1, 2}, {1, 3}, {2, 4}, {2, 5}, {2, 6}, {3, 7}, {3, 8}},
		},
		{
			start: r2.Vec{X: 1.1, Y: -0.3}, end: r2.Vec{X: 1.1, Y: -0.3},
			want: []v2{{1, 0}},
		},
	} {
		m, err := linedraw.NewMidpointFloat(test.start, test.end)
		if err != nil {
			t.Fatal(err)
		}
		got := linedraw.Collect2(m)
		if !slices.Equal(got, test.want) {
			t.Errorf("%v->%v: got %v, want %v", test.start, test.end, got, test.want)
		}
	}
}

func TestBresenhamCircle(t *testing.T) {
	center := v2{3, -2}
	got := linedraw.CirclePoints(center, 0)
	if !slices.Equal(got, []v2{center}) {
		t.Fatalf("radius 0: got %v", got)
	}
	got = linedraw.CirclePoints(v2{0, 0}, 1)
	want := []v2{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	if !slices.Equal(got, want) {
		t.Fatalf("radius 1: got %v, want %v", got, want)
	}
	if got := linedraw.CirclePoints(v2{0, 0}, 2); len(got) != 12 {
		t.Fatalf("radius 2: want 12 cells, got %d: %v", len(got), got)
	}
	for radius := 0; radius < 40; radius++ {
		pts := linedraw.CirclePoints(center, radius)
		seen := make(map[v2]bool)
		for _, p := range pts {
			if seen[p] {
				t.Fatalf("radius %d: duplicate cell %v", radius, p)
			}
			seen[p] = true
			d := p.Sub(center)
			if r := math.Hypot(float64(d[0]), float64(d[1])); math.Abs(r-float64(radius)) >= 1 {
				t.Fatalf("radius %d: cell %v at distance %g", radius, p, r)
			}
			// The circle is symmetric about both axes and the diagonals.
			for _, m := range []v2{{d[0], -d[1]}, {-d[0], d[1]}, {d[1], d[0]}} {
				if !slices.Contains(pts, center.Add(m)) {
					t.Fatalf("radius %d: missing mirror %v of %v", radius, center.Add(m), p)
				}
			}
		}
	}
}
