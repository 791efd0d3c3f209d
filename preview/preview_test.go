package preview_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/soypat/hulls"
	"github.com/soypat/hulls/preview"
	"github.com/soypat/hulls/render"
	"gonum.org/v1/plot/cmpimg"
)

func smallOptions() preview.Options {
	opt := preview.DefaultOptions()
	opt.Width, opt.Height = 160, 90
	return opt
}

func TestImageDeterministic(t *testing.T) {
	tris := render.FullHull(hulls.MustGenerate(hulls.Parameters{
		LOA: 12000, Beam: 2000, Stations: 9, Lines: 6, ClosedFore: true,
	}))
	var pngs [2]bytes.Buffer
	for i := range pngs {
		img, err := preview.Image(tris, smallOptions())
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 90 {
			t.Fatalf("got image size %v", b)
		}
		if err := preview.WritePNG(&pngs[i], img); err != nil {
			t.Fatal(err)
		}
	}
	equal, err := cmpimg.EqualApprox("png", pngs[0].Bytes(), pngs[1].Bytes(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("rendering the same mesh twice produced different images")
	}
}

func TestImageDrawsHull(t *testing.T) {
	opt := smallOptions()
	opt.Supersample = 1
	img, err := preview.Image(render.FullHull(hulls.MustGenerate(hulls.DefaultParameters())), opt)
	if err != nil {
		t.Fatal(err)
	}
	bg := color.NRGBAModel.Convert(color.NRGBA{R: 0xff, G: 0xf8, B: 0xe3, A: 0xff})
	b := img.Bounds()
	drawn := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)) != bg {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("image only contains background")
	}
}

func TestImageErrors(t *testing.T) {
	if _, err := preview.Image(nil, smallOptions()); err == nil {
		t.Error("expected error drawing no triangles")
	}
	tris := render.Triangulate(hulls.MustGenerate(hulls.DefaultParameters()))
	opt := smallOptions()
	opt.Width = 0
	if _, err := preview.Image(tris, opt); err == nil {
		t.Error("expected error for zero width")
	}
	opt = smallOptions()
	opt.View.Far = opt.View.Near
	if _, err := preview.Image(tris, opt); err == nil {
		t.Error("expected error for empty clip range")
	}
}
