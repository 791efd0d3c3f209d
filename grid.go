package hulls

import (
	"github.com/soypat/hulls/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Grid is the row-major point net of a hull half. Row i is station i,
// column j is the j'th sample around the station from the waterline to
// the centerline top. A Grid is never modified after Generate returns it;
// accessors return copies.
type Grid struct {
	params Parameters
	cols   int
	pts    []r3.Vec
}

// Parameters returns the parameters the grid was generated from.
func (g *Grid) Parameters() Parameters { return g.params }

// Stations returns the number of rows.
func (g *Grid) Stations() int { return len(g.pts) / g.cols }

// Lines returns the number of points per station, which is Parameters().Lines+2.
func (g *Grid) Lines() int { return g.cols }

// ClosedFore reports whether the first station is collapsed to a point.
func (g *Grid) ClosedFore() bool { return g.params.ClosedFore }

// ClosedAft reports whether the last station is collapsed to a point.
func (g *Grid) ClosedAft() bool { return g.params.ClosedAft }

// At returns the point of station i and line j.
func (g *Grid) At(i, j int) r3.Vec {
	if j < 0 || j >= g.cols {
		panic("line index out of range")
	}
	return g.pts[i*g.cols+j]
}

// Row returns a copy of the points of station i.
func (g *Grid) Row(i int) []r3.Vec {
	return append([]r3.Vec(nil), g.row(i)...)
}

// Column returns a copy of line j across all stations.
func (g *Grid) Column(j int) []r3.Vec {
	if j < 0 || j >= g.cols {
		panic("line index out of range")
	}
	n := g.Stations()
	col := make([]r3.Vec, n)
	for i := range col {
		col[i] = g.pts[i*g.cols+j]
	}
	return col
}

// Rows returns a deep copy of the grid as a slice of stations.
func (g *Grid) Rows() [][]r3.Vec {
	rows := make([][]r3.Vec, g.Stations())
	for i := range rows {
		rows[i] = g.Row(i)
	}
	return rows
}

// Points returns every grid point in row-major order.
func (g *Grid) Points() []r3.Vec {
	return append([]r3.Vec(nil), g.pts...)
}

// StationPolylines returns one polyline per station, connecting the
// points of a row in order.
func (g *Grid) StationPolylines() [][]r3.Vec { return g.Rows() }

// WaterlinePolylines returns one polyline per line index, connecting
// the corresponding points of consecutive stations.
func (g *Grid) WaterlinePolylines() [][]r3.Vec {
	lines := make([][]r3.Vec, g.cols)
	for j := range lines {
		lines[j] = g.Column(j)
	}
	return lines
}

// Bounds returns the axis aligned bounding box of the grid points.
func (g *Grid) Bounds() r3.Box {
	set := d3.Set(g.pts)
	return r3.Box{Min: set.Min(), Max: set.Max()}
}

func (g *Grid) row(i int) []r3.Vec {
	return g.pts[i*g.cols : (i+1)*g.cols]
}
