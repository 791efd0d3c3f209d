package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSetBounds(t *testing.T) {
	set := Set{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 5, Z: 0}, {X: 0, Y: 0, Z: 9}}
	if got, want := set.Min(), (r3.Vec{X: -1, Y: -2, Z: 0}); got != want {
		t.Errorf("got min %v, want %v", got, want)
	}
	if got, want := set.Max(), (r3.Vec{X: 1, Y: 5, Z: 9}); got != want {
		t.Errorf("got max %v, want %v", got, want)
	}
}

func TestTriangleBounds(t *testing.T) {
	tris := []r3.Triangle{
		{{}, {X: 1}, {Y: 1}},
		{{Z: -2}, {X: 4, Y: 1}, {Y: 3}},
	}
	got := TriangleBounds(tris)
	want := Box{Min: r3.Vec{Z: -2}, Max: r3.Vec{X: 4, Y: 3}}
	if !got.Equals(want, 0) {
		t.Errorf("got %v, want %v", got, want)
	}
	if c := got.Center(); !EqualWithin(c, r3.Vec{X: 2, Y: 1.5, Z: -1}, 1e-12) {
		t.Errorf("got center %v", c)
	}
}

func TestFinite(t *testing.T) {
	if !Finite(r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Error("finite vector reported non-finite")
	}
	if !Finite(Elem(math.MaxFloat64)) {
		t.Error("large finite components reported non-finite")
	}
	if Finite(r3.Vec{Y: math.NaN()}) || Finite(r3.Vec{Z: math.Inf(-1)}) {
		t.Error("non-finite vector reported finite")
	}
}
