// Package bodyplan draws the lines plan of a hull grid: the body plan with
// the station sections, the half-breadth plan seen from above and the
// profile seen from the side.
package bodyplan

import (
	"fmt"
	"image/color"
	"io"

	"github.com/soypat/hulls"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// View selects which projection of the hull is drawn.
type View int

const (
	// BodyPlan draws the stations on the Y-Z plane. Stations of the fore
	// half are drawn on the right (+Y), the aft half mirrored on the left.
	BodyPlan View = iota
	// HalfBreadth draws the waterlines on the X-Y plane.
	HalfBreadth
	// Profile draws the waterlines on the X-Z plane.
	Profile
)

func (v View) String() string {
	switch v {
	case BodyPlan:
		return "body plan"
	case HalfBreadth:
		return "half-breadth plan"
	case Profile:
		return "profile"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

func (v View) axes() (x, y string) {
	switch v {
	case BodyPlan:
		return "Y", "Z"
	case HalfBreadth:
		return "X", "Y"
	}
	return "X", "Z"
}

// Style sets the colors and sizes of the drawing. The zero value draws
// red points joined by dark yellow lines.
type Style struct {
	PointColor  color.Color
	LineColor   color.Color
	PointRadius vg.Length
	LineWidth   vg.Length
	// HidePoints disables drawing of the grid points.
	HidePoints bool
}

var (
	defaultPointColor = color.RGBA{R: 0xff, A: 0xff}
	defaultLineColor  = color.RGBA{R: 0xc8, G: 0xb4, A: 0xff}
)

func (s Style) withDefaults() Style {
	if s.PointColor == nil {
		s.PointColor = defaultPointColor
	}
	if s.LineColor == nil {
		s.LineColor = defaultLineColor
	}
	if s.PointRadius <= 0 {
		s.PointRadius = vg.Points(2)
	}
	if s.LineWidth <= 0 {
		s.LineWidth = vg.Points(1)
	}
	return s
}

// Plot returns a plot of the view v of g.
func Plot(g *hulls.Grid, v View, style Style) (*plot.Plot, error) {
	if v < BodyPlan || v > Profile {
		return nil, fmt.Errorf("unknown view %d", int(v))
	}
	style = style.withDefaults()
	p := plot.New()
	p.Title.Text = v.String()
	p.X.Label.Text, p.Y.Label.Text = v.axes()
	for _, poly := range Polylines(g, v) {
		xys := make(plotter.XYs, len(poly))
		for i, pt := range poly {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = style.LineColor
		l.LineStyle.Width = style.LineWidth
		p.Add(l)
		if style.HidePoints {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  style.PointColor,
			Radius: style.PointRadius,
			Shape:  draw.CircleGlyph{},
		}
		p.Add(s)
	}
	equalAspect(p, g.Bounds(), v)
	return p, nil
}

// Write draws the view v of g to w in the given format ("png", "svg",
// "pdf", "eps", "jpg" or "tiff").
func Write(w io.Writer, g *hulls.Grid, v View, style Style, width, height vg.Length, format string) error {
	p, err := Plot(g, v, style)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("drawing %s: %w", v, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Polylines returns the 2D polylines drawn for view v: stations for the
// body plan, waterlines otherwise.
func Polylines(g *hulls.Grid, v View) [][]r2.Vec {
	var polys3 [][]r3.Vec
	if v == BodyPlan {
		polys3 = g.StationPolylines()
	} else {
		polys3 = g.WaterlinePolylines()
	}
	mid := g.Parameters().LOA / 2
	polys := make([][]r2.Vec, len(polys3))
	for i, poly := range polys3 {
		polys[i] = make([]r2.Vec, len(poly))
		for j, pt := range poly {
			polys[i][j] = project(pt, v, mid)
		}
	}
	return polys
}

func project(pt r3.Vec, v View, mid float64) r2.Vec {
	switch v {
	case BodyPlan:
		if pt.X > mid {
			return r2.Vec{X: -pt.Y, Y: pt.Z}
		}
		return r2.Vec{X: pt.Y, Y: pt.Z}
	case HalfBreadth:
		return r2.Vec{X: pt.X, Y: pt.Y}
	}
	return r2.Vec{X: pt.X, Y: pt.Z}
}

// equalAspect sets axis ranges so drawings are not distorted for a square
// canvas.
func equalAspect(p *plot.Plot, bb r3.Box, v View) {
	lo := project(bb.Min, v, bb.Max.X)
	hi := project(bb.Max, v, bb.Max.X)
	if v == BodyPlan {
		lo.X = -hi.X
	}
	size := r2.Sub(hi, lo)
	side := size.X
	if size.Y > side {
		side = size.Y
	}
	c := r2.Scale(0.5, r2.Add(lo, hi))
	p.X.Min, p.X.Max = c.X-side/2, c.X+side/2
	p.Y.Min, p.Y.Max = c.Y-side/2, c.Y+side/2
}
