// Package preview draws shaded images of hull meshes.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/hulls/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// View is a camera configuration. Positions are given in the bi-unit cube
// the mesh is fitted into before drawing.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye  r3.Vec
	Near float64
	Far  float64
	// vertical field of view in degrees
	FOVY float64
}

// DefaultView is an isometric view from above the aft quarter, looking
// toward the bow at X=0.
func DefaultView() View {
	return View{
		Up:   r3.Vec{Z: 1},
		Eye:  d3.Elem(2.4),
		Near: 1,
		Far:  10,
		FOVY: 30,
	}
}

// Options configure Image.
type Options struct {
	Width, Height int
	// Supersample renders at a multiple of the output size and downsamples
	// for antialiasing. Values below 1 are treated as 1.
	Supersample int
	// Color and Background are hex colors such as "#468966".
	Color      string
	Background string
	// Light is the light direction. Zero value uses a default light.
	Light r3.Vec
	View  View
}

// DefaultOptions returns options for a 768x432 antialiased image.
func DefaultOptions() Options {
	return Options{
		Width:       768,
		Height:      432,
		Supersample: 2,
		Color:       "#468966",
		Background:  "#FFF8E3",
		View:        DefaultView(),
	}
}

// Image renders triangles with a phong shader after fitting them in a
// bi-unit cube centered at the origin.
func Image(tris []r3.Triangle, opt Options) (image.Image, error) {
	if len(tris) == 0 {
		return nil, errors.New("no triangles to draw")
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opt.Width, opt.Height)
	}
	if opt.View.Near <= 0 || opt.View.Far <= opt.View.Near {
		return nil, fmt.Errorf("invalid clip planes near=%g far=%g", opt.View.Near, opt.View.Far)
	}
	for i, t := range tris {
		if !d3.Finite(t[0]) || !d3.Finite(t[1]) || !d3.Finite(t[2]) {
			return nil, fmt.Errorf("triangle %d has inf/NaN vertex", i)
		}
	}
	if size := d3.TriangleBounds(tris).Size(); size == (r3.Vec{}) {
		return nil, errors.New("triangles collapse to a single point")
	}
	scale := opt.Supersample
	if scale < 1 {
		scale = 1
	}
	fovy := opt.View.FOVY
	if fovy <= 0 {
		fovy = 30
	}
	var (
		view   = opt.View
		eye    = fauxV(view.Eye)
		center = fauxV(view.LookAt)
		up     = fauxV(view.Up)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	if opt.Light != (r3.Vec{}) {
		light = fauxV(opt.Light).Normalize()
	}
	mesh := fauxgl.NewTriangleMesh(fauxTriangles(tris))
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(opt.Width*scale, opt.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(opt.Background))
	aspect := float64(opt.Width) / float64(opt.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(opt.Color)
	context.Shader = shader
	context.DrawMesh(mesh)
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(opt.Width), uint(opt.Height), img, resize.Bilinear)
	}
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}

func fauxTriangles(tris []r3.Triangle) []*fauxgl.Triangle {
	ft := make([]*fauxgl.Triangle, 0, len(tris))
	for _, t := range tris {
		ft = append(ft, fauxgl.NewTriangleForPoints(fauxV(t[0]), fauxV(t[1]), fauxV(t[2])))
	}
	return ft
}

func fauxV(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
