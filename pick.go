package hulls

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Picker finds the grid point closest to a query point, which is how an
// editor maps a cursor position to the station and line being edited.
type Picker struct {
	tree *kdtree.Tree
}

// NewPicker indexes the points of g. Points of a collapsed end are indexed
// once, as line 0 of their station.
func NewPicker(g *Grid) *Picker {
	pts := make(kdPoints, 0, len(g.pts))
	for i := 0; i < g.Stations(); i++ {
		for j, v := range g.row(i) {
			if j > 0 && ((i == 0 && g.ClosedFore()) || (i == g.Stations()-1 && g.ClosedAft())) {
				break
			}
			pts = append(pts, kdPoint{V: v, station: i, line: j})
		}
	}
	return &Picker{tree: kdtree.New(pts, false)}
}

// Pick returns the station and line indices of the grid point nearest to q
// and the distance between them.
func (pk *Picker) Pick(q r3.Vec) (station, line int, dist float64) {
	got, dist2 := pk.tree.Nearest(kdPoint{V: q})
	p := got.(kdPoint)
	return p.station, p.line, math.Sqrt(dist2)
}

type kdPoint struct {
	V             r3.Vec
	station, line int
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a kdPoint) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdPoint), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdPoint) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.V, b.(kdPoint).V))
}

// c = a.dim - b.dim
func kdComp(a, b kdPoint, dim int) float64 {
	switch dim {
	case 0:
		return a.V.X - b.V.X
	case 1:
		return a.V.Y - b.V.Y
	}
	return a.V.Z - b.V.Z
}

type kdPoints []kdPoint

func (k kdPoints) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdPoints) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdPoints) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), points: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdPoints) Slice(start, end int) kdtree.Interface { return k[start:end] }

type kdPlane struct {
	dim    int
	points kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.points[i], p.points[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}
func (p kdPlane) Len() int {
	return len(p.points)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
