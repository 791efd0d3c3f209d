package render_test

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/hulls"
	"github.com/soypat/hulls/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTriangleCount(t *testing.T) {
	for _, test := range []struct {
		p    hulls.Parameters
		want int
	}{
		{hulls.Parameters{LOA: 1, Beam: 1, Stations: 2, Lines: 0}, 2},
		{hulls.Parameters{LOA: 1, Beam: 1, Stations: 5, Lines: 3}, 2 * 4 * 4},
		{hulls.Parameters{LOA: 1, Beam: 1, Stations: 5, Lines: 3, ClosedFore: true}, 2*4*4 - 4},
		{hulls.Parameters{LOA: 1, Beam: 1, Stations: 5, Lines: 3, ClosedFore: true, ClosedAft: true}, 2*4*4 - 8},
		{hulls.Parameters{LOA: 1, Beam: 1, Stations: 2, Lines: 3, ClosedFore: true, ClosedAft: true}, 0},
	} {
		g := hulls.MustGenerate(test.p)
		tris := render.Triangulate(g)
		if len(tris) != test.want {
			t.Errorf("%+v: got %d triangles, want %d", test.p, len(tris), test.want)
		}
		for i, tri := range tris {
			if tri.IsDegenerate(1e-12) {
				t.Errorf("%+v: triangle %d degenerate: %v", test.p, i, tri)
			}
		}
	}
}

func TestGridRendererSmallReads(t *testing.T) {
	g := hulls.MustGenerate(hulls.Parameters{LOA: 5, Beam: 1, Stations: 4, Lines: 2, ClosedAft: true})
	want := render.Triangulate(g)
	rd := render.NewGridRenderer(g)
	var got []r3.Triangle
	buf := make([]r3.Triangle, 1)
	for {
		n, err := rd.ReadTriangles(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d triangles one by one, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("triangle %d mismatch: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMirror(t *testing.T) {
	g := hulls.MustGenerate(hulls.DefaultParameters())
	half := render.Triangulate(g)
	full := render.FullHull(g)
	if len(full) != 2*len(half) {
		t.Fatalf("got %d triangles for full hull, want %d", len(full), 2*len(half))
	}
	for i, tri := range full[len(half):] {
		for _, v := range tri {
			if v.Y > 0 {
				t.Fatalf("mirrored triangle %d on positive side: %v", i, tri)
			}
		}
		if n := tri.Normal(); n.Y > 1e-9 {
			t.Errorf("mirrored triangle %d normal points inward: %v", i, n)
		}
	}
}

func TestSTLCreateWrite(t *testing.T) {
	g := hulls.MustGenerate(hulls.DefaultParameters())
	path := filepath.Join(t.TempDir(), "hull.stl")
	err := render.CreateSTL(path, render.NewGridRenderer(g))
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewGridRenderer(g))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
	readback, err := render.ReadSTL(bytes.NewReader(bfile))
	if err != nil {
		t.Fatal(err)
	}
	if len(readback) != len(model) {
		t.Errorf("read %d triangles, wrote %d", len(readback), len(model))
	}
}

func TestCreateSTLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	err := render.CreateSTL(path, render.NewSliceRenderer(nil))
	if err == nil {
		t.Error("expected error writing empty STL")
	}
	if err := render.WriteSTL(io.Discard, nil); err == nil {
		t.Error("expected error writing empty triangle slice")
	}
}

func TestWriteOBJ(t *testing.T) {
	g := hulls.MustGenerate(hulls.Parameters{LOA: 10, Beam: 2, Stations: 3, Lines: 1, ClosedFore: true})
	var b bytes.Buffer
	if err := render.WriteOBJ(&b, g); err != nil {
		t.Fatal(err)
	}
	var verts, lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			verts = append(verts, line)
		case strings.HasPrefix(line, "l "):
			lines = append(lines, line)
		}
	}
	if len(verts) != 9 {
		t.Errorf("got %d vertices, want 9", len(verts))
	}
	if verts[0] != "v 0 0 0" || verts[3] != "v 5 1 0" {
		t.Errorf("unexpected vertices: %q, %q", verts[0], verts[3])
	}
	want := []string{"l 1 2 3", "l 4 5 6", "l 7 8 9", "l 1 4 7", "l 2 5 8", "l 3 6 9"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("got polylines %q, want %q", lines, want)
	}
}

func BenchmarkCreateSTL(b *testing.B) {
	g := hulls.MustGenerate(hulls.Parameters{LOA: 12000, Beam: 2000, Stations: 400, Lines: 100})
	path := filepath.Join(b.TempDir(), "bench.stl")
	for i := 0; i < b.N; i++ {
		render.CreateSTL(path, render.NewGridRenderer(g))
	}
}

func TestSTLRejectsFloat32Overflow(t *testing.T) {
	g := hulls.MustGenerate(hulls.Parameters{LOA: 1e39, Beam: 2, Stations: 3, Lines: 1})
	tris := render.Triangulate(g)
	var b bytes.Buffer
	if err := render.WriteSTL(&b, tris); err == nil {
		t.Error("WriteSTL accepted coordinates that overflow float32")
	}
	path := filepath.Join(t.TempDir(), "huge.stl")
	if err := render.CreateSTL(path, render.NewGridRenderer(g)); err == nil {
		t.Error("CreateSTL accepted coordinates that overflow float32")
	}
}

func TestFullHullSharedSeam(t *testing.T) {
	g := hulls.MustGenerate(hulls.Parameters{LOA: 12000, Beam: 2000, Stations: 4, Lines: 3})
	full := render.FullHull(g)
	var b bytes.Buffer
	if err := render.WriteSTL(&b, full); err != nil {
		t.Fatal(err)
	}
	readback, err := render.ReadSTL(&b)
	if err != nil {
		t.Fatal(err)
	}
	// Every centerline top point must be encoded identically by both halves.
	seen := make(map[r3.Vec]int)
	for _, tri := range readback {
		for _, v := range tri {
			if v.Y == 0 && v.Z != 0 {
				if math.Signbit(v.Y) {
					t.Fatalf("seam vertex %v stored as negative zero", v)
				}
				seen[v]++
			}
		}
	}
	if len(seen) != g.Stations() {
		t.Errorf("got %d distinct seam vertices, want %d", len(seen), g.Stations())
	}
}
