package render

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]r3.Triangle, error) {
	var err error
	var nt int
	result := make([]r3.Triangle, 0, 1<<12)
	buf := make([]r3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// triangleBuffer is a Renderer over an in-memory triangle slice.
type triangleBuffer struct {
	buf []r3.Triangle
}

// NewSliceRenderer returns a Renderer that streams a copy of tris.
func NewSliceRenderer(tris []r3.Triangle) Renderer {
	return &triangleBuffer{buf: append([]r3.Triangle(nil), tris...)}
}

// ReadTriangles reads from this buffer.
func (b *triangleBuffer) ReadTriangles(t []r3.Triangle) (int, error) {
	if len(b.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n, nil
}
