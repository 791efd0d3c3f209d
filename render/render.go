package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams the triangles of a surface. ReadTriangles fills t and
// returns the number of triangles written. It returns io.EOF once there are
// no triangles left.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}
