package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/soypat/hulls"
)

// WriteOBJ writes the wireframe of g as a Wavefront OBJ file: one vertex per
// grid point, then a polyline element per station followed by one per
// waterline. Collapsed ends keep all their vertices so that vertex
// indices map one to one to grid indices (index = i*Lines()+j+1).
func WriteOBJ(w io.Writer, g *hulls.Grid) error {
	bw := bufio.NewWriter(w)
	p := g.Parameters()
	fmt.Fprintf(bw, "# hull LOA=%g beam=%g stations=%d lines=%d\n", p.LOA, p.Beam, p.Stations, p.Lines)
	for _, v := range g.Points() {
		fmt.Fprintf(bw, "v %s %s %s\n", fmtFloat(v.X), fmtFloat(v.Y), fmtFloat(v.Z))
	}
	nst, ncol := g.Stations(), g.Lines()
	bw.WriteString("g stations\n")
	for i := 0; i < nst; i++ {
		bw.WriteString("l")
		for j := 0; j < ncol; j++ {
			writeIndex(bw, i*ncol+j+1)
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("g waterlines\n")
	for j := 0; j < ncol; j++ {
		bw.WriteString("l")
		for i := 0; i < nst; i++ {
			writeIndex(bw, i*ncol+j+1)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing OBJ: %w", err)
	}
	return nil
}

func writeIndex(bw *bufio.Writer, idx int) {
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(idx))
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
