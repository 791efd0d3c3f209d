package render

import (
	"errors"
	"io"

	"github.com/soypat/hulls"
	"gonum.org/v1/gonum/spatial/r3"
)

// gridRenderer walks the cells of a hull grid, splitting every cell into
// two triangles with normals pointing away from the centerline. Triangles
// that collapse onto a closed end are not emitted.
type gridRenderer struct {
	g *hulls.Grid
	// next cell to triangulate, row-major over (Stations-1)*(Lines-1) cells.
	cell int
	// pending holds the second triangle of a cell that did not fit in the
	// caller's buffer.
	pending    r3.Triangle
	hasPending bool
}

// NewGridRenderer returns a Renderer that streams the surface of g.
func NewGridRenderer(g *hulls.Grid) Renderer {
	return &gridRenderer{g: g}
}

func (gr *gridRenderer) cells() int {
	return (gr.g.Stations() - 1) * (gr.g.Lines() - 1)
}

func (gr *gridRenderer) ReadTriangles(t []r3.Triangle) (int, error) {
	if len(t) == 0 {
		return 0, errors.New("ReadTriangles requires room for at least one triangle")
	}
	n := 0
	if gr.hasPending {
		t[0] = gr.pending
		gr.hasPending = false
		n++
	}
	ncols := gr.g.Lines() - 1
	for n < len(t) && gr.cell < gr.cells() {
		i, j := gr.cell/ncols, gr.cell%ncols
		gr.cell++
		a, b := gr.g.At(i, j), gr.g.At(i+1, j)
		c, d := gr.g.At(i+1, j+1), gr.g.At(i, j+1)
		for _, tri := range [2]r3.Triangle{{a, c, b}, {a, d, c}} {
			if degenerate(tri) {
				continue
			}
			if n == len(t) {
				gr.pending = tri
				gr.hasPending = true
				break
			}
			t[n] = tri
			n++
		}
	}
	if n == 0 && !gr.hasPending {
		return 0, io.EOF
	}
	return n, nil
}

// Triangulate returns the surface triangles of g.
func Triangulate(g *hulls.Grid) []r3.Triangle {
	tris, _ := RenderAll(NewGridRenderer(g))
	return tris
}

// Mirror reflects triangles across the centerplane (Y=0) to obtain the
// other side of the hull. Winding is reversed so normals keep pointing
// outward.
func Mirror(tris []r3.Triangle) []r3.Triangle {
	mirrored := make([]r3.Triangle, len(tris))
	for i, t := range tris {
		mirrored[i] = r3.Triangle{flipY(t[0]), flipY(t[2]), flipY(t[1])}
	}
	return mirrored
}

// FullHull returns the triangles of both hull halves.
func FullHull(g *hulls.Grid) []r3.Triangle {
	half := Triangulate(g)
	return append(half, Mirror(half)...)
}

func flipY(v r3.Vec) r3.Vec {
	if v.Y != 0 {
		// keep seam vertices at +0 so both halves encode identically.
		v.Y = -v.Y
	}
	return v
}

func degenerate(t r3.Triangle) bool {
	if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
		return true
	}
	return t.IsDegenerate(0)
}
